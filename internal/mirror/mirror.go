// Package mirror provides the bulk clone loop over an owner's repositories
package mirror

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gherrors "github.com/Didstopia/repoherd/internal/errors"
	"github.com/Didstopia/repoherd/internal/github"
)

// Cloner is the subset of git operations the mirror loop needs
type Cloner interface {
	// Clone clones a repository into the target directory
	Clone(ctx context.Context, url, targetDir string) error

	// IsCloned checks whether the target directory already exists
	IsCloned(targetDir string) bool
}

// Options configures the mirror operation
type Options struct {
	// Target directory for cloned repositories
	Target string

	// PerPage is the listing page size (max 100)
	PerPage int

	// DryRun simulates the clone without making changes
	DryRun bool

	// Verbose enables verbose output
	Verbose bool

	// OnList is called once the repository list is known, with its size
	OnList func(total int)

	// Progress is called after each processed repository
	Progress func(repo github.Repository)
}

// Result represents the result of a mirror operation
type Result struct {
	// Cloned repositories
	Cloned []string

	// Skipped repositories (target directory already exists)
	Skipped []string

	// Failed repositories with errors
	Failed map[string]error
}

// NewResult creates a new mirror result
func NewResult() *Result {
	return &Result{
		Cloned:  make([]string, 0),
		Skipped: make([]string, 0),
		Failed:  make(map[string]error),
	}
}

// Mirrorer clones every repository of an owner into a local directory
type Mirrorer struct {
	ghClient github.Client
	git      Cloner
	opts     *Options
}

// New creates a new Mirrorer
func New(ghClient github.Client, g Cloner, opts *Options) *Mirrorer {
	return &Mirrorer{
		ghClient: ghClient,
		git:      g,
		opts:     opts,
	}
}

// Run lists the owner's repositories and clones each into a directory
// named after the repository. Existing directories are skipped, never
// overwritten; a single failed clone never aborts the batch.
func (m *Mirrorer) Run(ctx context.Context, owner string) (*Result, error) {
	// Ensure the target directory exists and is writable before any
	// network activity
	if !m.opts.DryRun {
		if err := ensureWritableDir(m.opts.Target); err != nil {
			return nil, err
		}
	}

	listOpts := github.OwnedListOptions()
	if m.opts.PerPage > 0 {
		listOpts.PerPage = m.opts.PerPage
	}

	repos, err := m.ghClient.ListRepositories(ctx, owner, listOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	if m.opts.OnList != nil {
		m.opts.OnList(len(repos))
	}

	return m.cloneRepos(ctx, repos)
}

func (m *Mirrorer) cloneRepos(ctx context.Context, repos []github.Repository) (*Result, error) {
	result := NewResult()

	for _, repo := range repos {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		localPath := filepath.Join(m.opts.Target, repo.Name)

		if m.opts.Verbose {
			fmt.Printf("Processing %s -> %s\n", repo.Name, localPath)
		}

		if m.opts.DryRun {
			if m.git.IsCloned(localPath) {
				fmt.Printf("[DRY RUN] Would skip (exists): %s\n", repo.Name)
				result.Skipped = append(result.Skipped, repo.Name)
			} else {
				fmt.Printf("[DRY RUN] Would clone: %s\n", repo.Name)
				result.Cloned = append(result.Cloned, repo.Name)
			}
			m.progress(repo)
			continue
		}

		if m.git.IsCloned(localPath) {
			result.Skipped = append(result.Skipped, repo.Name)
			if m.opts.Verbose {
				fmt.Printf("Skipped (exists): %s\n", repo.Name)
			}
			m.progress(repo)
			continue
		}

		if err := m.git.Clone(ctx, repo.CloneURL, localPath); err != nil {
			result.Failed[repo.Name] = err
			fmt.Fprintf(os.Stderr, "Failed to clone %s: %v\n", repo.Name, err)
		} else {
			result.Cloned = append(result.Cloned, repo.Name)
			if m.opts.Verbose {
				fmt.Printf("Cloned: %s\n", repo.Name)
			}
		}
		m.progress(repo)
	}

	return result, nil
}

func (m *Mirrorer) progress(repo github.Repository) {
	if m.opts.Progress != nil {
		m.opts.Progress(repo)
	}
}

// ensureWritableDir creates the directory if needed and verifies it can
// be written to
func ensureWritableDir(dir string) error {
	if dir == "" {
		return gherrors.ErrMissingTarget
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return gherrors.NewValidationError("target", fmt.Sprintf("cannot create directory: %v", err))
	}
	probe, err := os.CreateTemp(dir, ".repoherd-*")
	if err != nil {
		return gherrors.NewValidationError("target", fmt.Sprintf("directory is not writable: %v", err))
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return nil
}
