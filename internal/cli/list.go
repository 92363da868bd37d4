package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Didstopia/repoherd/internal/github"
	"github.com/Didstopia/repoherd/pkg/util"
)

var listPerPage int

var listCmd = &cobra.Command{
	Use:   "list <owner>",
	Short: "List all repositories of a GitHub account",
	Long: `List every repository visible under a GitHub account, across all pages.

Examples:
  repoherd list octocat
  repoherd list octocat --token <token> --per-page 50`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVarP(&listPerPage, "per-page", "p", github.DefaultPerPage, "Results per page (max 100)")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	owner := args[0]

	if err := util.ValidateOwner(owner); err != nil {
		return err
	}

	apiToken, err := resolveToken()
	if err != nil {
		return err
	}

	client := github.NewClient(apiToken)

	log.Debugf("Listing repositories for %s", owner)

	opts := github.VisibleListOptions()
	opts.PerPage = listPerPage

	repos, err := client.ListRepositories(ctx, owner, opts)
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	if len(repos) == 0 {
		fmt.Printf("No repositories found for %s (or the token lacks sufficient scope)\n", owner)
		return nil
	}

	printRepositoryList(os.Stdout, repos)
	fmt.Printf("\n%d repositories total\n", len(repos))

	return nil
}

// printRepositoryList prints a numbered repository list. The numbering
// matches the selection input expected by the purge command.
func printRepositoryList(w io.Writer, repos []github.Repository) {
	for i, repo := range repos {
		marker := ""
		if repo.Private {
			marker = " (private)"
		}
		if repo.Fork {
			marker += " (fork)"
		}
		fmt.Fprintf(w, "%3d. %s%s\n     %s\n", i+1, repo.Name, marker, repo.CloneURL)
	}
}
