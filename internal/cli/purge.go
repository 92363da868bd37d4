package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	gherrors "github.com/Didstopia/repoherd/internal/errors"
	"github.com/Didstopia/repoherd/internal/github"
	"github.com/Didstopia/repoherd/internal/prompt"
	"github.com/Didstopia/repoherd/internal/purge"
	"github.com/Didstopia/repoherd/pkg/util"
)

var purgePerPage int

var purgeCmd = &cobra.Command{
	Use:   "purge <owner>",
	Short: "Select and delete repositories of a GitHub account",
	Long: `Interactively select repositories of a GitHub account and delete them.

The command prints a numbered repository list, asks which numbers to
delete, and then requires the exact phrase DELETE to be typed before any
destructive call is issued. Any other input aborts with no side effects.

Examples:
  repoherd purge octocat --token <token>
  repoherd purge octocat --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runPurge,
}

func init() {
	purgeCmd.Flags().IntVarP(&purgePerPage, "per-page", "p", github.DefaultPerPage, "Results per page (max 100)")

	rootCmd.AddCommand(purgeCmd)
}

func runPurge(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	owner := args[0]

	if err := util.ValidateOwner(owner); err != nil {
		return err
	}

	apiToken, err := resolveToken()
	if err != nil {
		return err
	}

	// Deletion is gated on an interactive confirmation; refuse to run
	// where nobody can answer the prompt
	if !dryRun && !prompt.IsInteractive() {
		return gherrors.NewValidationError("terminal",
			"purge requires an interactive terminal")
	}

	client := github.NewClient(apiToken)

	// Pre-flight the credential and warn when it belongs to another
	// account than the one being purged
	login, err := client.GetAuthenticatedUser(ctx)
	if err != nil {
		return fmt.Errorf("token validation failed: %w", err)
	}
	if !strings.EqualFold(login, owner) {
		log.Warnf("Token belongs to %s, purging repositories of %s", login, owner)
	}

	if !verbose {
		fmt.Println("Fetching repositories, please wait...")
	}

	opts := github.VisibleListOptions()
	opts.PerPage = purgePerPage

	repos, err := client.ListRepositories(ctx, owner, opts)
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	if len(repos) == 0 {
		fmt.Printf("No repositories found for %s, nothing to delete\n", owner)
		return nil
	}

	fmt.Printf("\nRepositories of %s:\n\n", owner)
	printRepositoryList(os.Stdout, repos)
	fmt.Println()

	p := prompt.New()

	selection, err := p.SelectIndexes(len(repos))
	if err != nil {
		return err
	}

	fmt.Printf("\nThe following %d repositories will be PERMANENTLY deleted:\n\n", len(selection))
	for _, idx := range selection {
		fmt.Printf("  %s/%s\n", owner, repos[idx].Name)
	}
	fmt.Println()

	if err := p.ConfirmPhrase(prompt.DeletePhrase); err != nil {
		return err
	}

	purger := purge.New(client, &purge.Options{
		DryRun:  dryRun,
		Verbose: verbose,
	})

	result, err := purger.Run(ctx, owner, repos, selection)
	if err != nil {
		return err
	}

	fmt.Printf("\nSelected: %d, deleted: %d, failed: %d\n",
		result.Selected, len(result.Deleted), len(result.Failed))

	if len(result.Failed) > 0 {
		for name, itemErr := range result.Failed {
			log.Errorf("delete %s: %v", name, itemErr)
		}
		return gherrors.ErrPartialFailure
	}

	return nil
}
