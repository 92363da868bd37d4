// Package purge provides the bulk delete loop over selected repositories
package purge

import (
	"context"
	"fmt"
	"os"

	"github.com/Didstopia/repoherd/internal/github"
)

// Options configures the purge operation
type Options struct {
	// DryRun simulates the deletions without making changes
	DryRun bool

	// Verbose enables verbose output
	Verbose bool

	// Progress is called after each processed repository
	Progress func(repo github.Repository)
}

// Result represents the result of a purge operation
type Result struct {
	// Selected is the number of repositories chosen for deletion
	Selected int

	// Deleted repositories
	Deleted []string

	// Failed repositories with errors
	Failed map[string]error
}

// NewResult creates a new purge result
func NewResult() *Result {
	return &Result{
		Deleted: make([]string, 0),
		Failed:  make(map[string]error),
	}
}

// Purger deletes selected repositories one at a time
type Purger struct {
	ghClient github.Client
	opts     *Options
}

// New creates a new Purger
func New(ghClient github.Client, opts *Options) *Purger {
	if opts == nil {
		opts = &Options{}
	}
	return &Purger{
		ghClient: ghClient,
		opts:     opts,
	}
}

// Run deletes the repositories at the selected indexes (0-based into
// repos). A single failed deletion never aborts the batch; callers decide
// how to report partial failure.
func (p *Purger) Run(ctx context.Context, owner string, repos []github.Repository, selection []int) (*Result, error) {
	result := NewResult()
	result.Selected = len(selection)

	for _, idx := range selection {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if idx < 0 || idx >= len(repos) {
			result.Failed[fmt.Sprintf("#%d", idx+1)] = fmt.Errorf("selection out of range")
			continue
		}
		repo := repos[idx]

		if p.opts.DryRun {
			fmt.Printf("[DRY RUN] Would delete: %s/%s\n", owner, repo.Name)
			result.Deleted = append(result.Deleted, repo.Name)
			p.progress(repo)
			continue
		}

		if err := p.ghClient.DeleteRepository(ctx, owner, repo.Name); err != nil {
			result.Failed[repo.Name] = err
			fmt.Fprintf(os.Stderr, "Failed to delete %s: %v\n", repo.Name, err)
		} else {
			result.Deleted = append(result.Deleted, repo.Name)
			if p.opts.Verbose {
				fmt.Printf("Deleted: %s/%s\n", owner, repo.Name)
			}
		}
		p.progress(repo)
	}

	return result, nil
}

func (p *Purger) progress(repo github.Repository) {
	if p.opts.Progress != nil {
		p.opts.Progress(repo)
	}
}
