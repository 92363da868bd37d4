// Package git provides Git operations for repository management
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Common errors
var (
	ErrGitNotInstalled = errors.New("git is not installed or not in PATH")
	ErrCloneFailed     = errors.New("git clone failed")
)

// Git provides Git operations
type Git struct {
	// GitPath is the path to the git executable
	GitPath string
	// Quiet suppresses stdout/stderr output
	Quiet bool
	// Token is the authentication token for HTTPS operations
	Token string

	cmd Commander
}

// New creates a new Git instance. It fails before any network activity
// when the git binary is missing.
func New() (*Git, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, ErrGitNotInstalled
	}
	g := &Git{GitPath: gitPath}
	g.cmd = &execCommander{git: g}
	return g, nil
}

// NewWithToken creates a new Git instance with authentication token
func NewWithToken(token string) (*Git, error) {
	g, err := New()
	if err != nil {
		return nil, err
	}
	g.Token = token
	return g, nil
}

// WithCommander replaces the command runner (used for testing)
func (g *Git) WithCommander(cmd Commander) *Git {
	g.cmd = cmd
	return g
}

// Clone clones a repository into the target directory
func (g *Git) Clone(ctx context.Context, url, targetDir string) error {
	// If we have a token and it's an HTTPS URL, embed the token for authentication
	cloneURL := g.authenticateURL(url)

	if err := g.cmd.Run(ctx, "", "clone", cloneURL, targetDir); err != nil {
		return fmt.Errorf("%w: %v", ErrCloneFailed, err)
	}
	return nil
}

// IsCloned checks whether the target directory already exists. Existing
// directories are never overwritten; callers skip them.
func (g *Git) IsCloned(targetDir string) bool {
	info, err := os.Stat(targetDir)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// authenticateURL adds the authentication token to HTTPS URLs
func (g *Git) authenticateURL(url string) string {
	if g.Token == "" {
		return url
	}

	// Only modify HTTPS URLs
	if strings.HasPrefix(url, "https://github.com/") {
		// Transform https://github.com/owner/repo.git to https://TOKEN@github.com/owner/repo.git
		return strings.Replace(url, "https://github.com/", "https://"+g.Token+"@github.com/", 1)
	}

	return url
}

// execCommander runs git commands through os/exec
type execCommander struct {
	git *Git
}

// Run implements Commander.Run
func (c *execCommander) Run(ctx context.Context, dir string, args ...string) error {
	cmd := c.command(ctx, dir, args...)

	if !c.git.Quiet {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	// Always capture stderr for error reporting
	var stderrBuf strings.Builder
	if c.git.Quiet {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderrBuf.String())
		if errMsg != "" {
			return fmt.Errorf("%s: %v", errMsg, err)
		}
		return err
	}
	return nil
}

func (c *execCommander) command(ctx context.Context, dir string, args ...string) *exec.Cmd {
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}
	return exec.CommandContext(ctx, c.git.GitPath, args...)
}
