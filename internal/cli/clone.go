package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/cheggaaa/pb/v3"

	gherrors "github.com/Didstopia/repoherd/internal/errors"
	"github.com/Didstopia/repoherd/internal/git"
	"github.com/Didstopia/repoherd/internal/github"
	"github.com/Didstopia/repoherd/internal/mirror"
	"github.com/Didstopia/repoherd/pkg/util"
)

var clonePerPage int

var cloneCmd = &cobra.Command{
	Use:   "clone <owner> <target-dir>",
	Short: "Clone all repositories of a GitHub account",
	Long: `Clone every repository owned by a GitHub account into a local directory.

Each repository is cloned into <target-dir>/<name>. Directories that
already exist are skipped, never overwritten.

Examples:
  repoherd clone octocat ./backup --token <token>
  repoherd clone octocat ./backup --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: runClone,
}

func init() {
	cloneCmd.Flags().IntVarP(&clonePerPage, "per-page", "p", github.DefaultPerPage, "Results per page (max 100)")

	rootCmd.AddCommand(cloneCmd)
}

func runClone(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	owner := args[0]
	target := args[1]

	if err := util.ValidateOwner(owner); err != nil {
		return err
	}
	if target == "" {
		return gherrors.ErrMissingTarget
	}

	apiToken, err := resolveToken()
	if err != nil {
		return err
	}

	// Verify the git binary is available before any network activity
	g, err := git.NewWithToken(apiToken)
	if err != nil {
		return err
	}
	g.Quiet = !verbose

	client := github.NewClient(apiToken)

	if !verbose {
		fmt.Println("Fetching repositories, please wait...")
	}

	var progressBar *pb.ProgressBar
	progressEnabled := !verbose && !dryRun

	opts := &mirror.Options{
		Target:  target,
		PerPage: clonePerPage,
		DryRun:  dryRun,
		Verbose: verbose,
	}
	opts.OnList = func(total int) {
		if !verbose {
			fmt.Printf("Found %d repositories, starting clone...\n\n", total)
		}
		if progressEnabled && total > 0 {
			progressBar = pb.New(total)
			progressBar.Start()
		}
	}
	opts.Progress = func(repo github.Repository) {
		if progressBar != nil {
			progressBar.Increment()
		}
	}

	m := mirror.New(client, g, opts)

	result, err := m.Run(ctx, owner)
	if progressBar != nil {
		progressBar.Finish()
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nCloned: %d, skipped (already exist): %d, failed: %d\n",
		len(result.Cloned), len(result.Skipped), len(result.Failed))

	if len(result.Failed) > 0 {
		for name, itemErr := range result.Failed {
			log.Errorf("clone %s: %v", name, itemErr)
		}
		return gherrors.ErrPartialFailure
	}

	return nil
}
