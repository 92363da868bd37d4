// Package github provides interfaces and implementation for GitHub API operations
package github

import (
	"context"
)

// Pagination limits documented by the GitHub API
const (
	// DefaultPerPage is the page size used when none is configured
	DefaultPerPage = 100

	// MaxPerPage is the maximum page size accepted by the API
	MaxPerPage = 100
)

// Repository is the projection of a GitHub repository used by repoherd
type Repository struct {
	// Name is the repository name, unique per owner
	Name string

	// CloneURL is the HTTPS remote address
	CloneURL string

	// Owner is the login of the owning account
	Owner string

	// Private reports whether the repository is private
	Private bool

	// Fork reports whether the repository is a fork
	Fork bool
}

// Client defines the interface for GitHub API operations
type Client interface {
	// ListRepositories returns every repository of the owner across all
	// pages, in API order. An empty result is success, not an error.
	ListRepositories(ctx context.Context, owner string, opts *ListOptions) ([]Repository, error)

	// DeleteRepository deletes a single repository
	DeleteRepository(ctx context.Context, owner, name string) error

	// GetAuthenticatedUser returns the login of the token's user
	GetAuthenticatedUser(ctx context.Context) (string, error)
}

// ListOptions specifies optional parameters for list operations
type ListOptions struct {
	// Type of repositories to list: all, owner, member
	Type string

	// Sort order: created, updated, pushed, full_name
	Sort string

	// PerPage specifies the number of results per page (max 100).
	// Zero or negative falls back to DefaultPerPage; values above
	// MaxPerPage are rejected as a configuration error.
	PerPage int
}

// OwnedListOptions lists only repositories owned by the account, sorted
// by full name. Used by the clone command.
func OwnedListOptions() *ListOptions {
	return &ListOptions{
		Type:    "owner",
		Sort:    "full_name",
		PerPage: DefaultPerPage,
	}
}

// VisibleListOptions lists every repository visible under the account,
// with no type restriction. Used by the list and purge commands.
func VisibleListOptions() *ListOptions {
	return &ListOptions{
		PerPage: DefaultPerPage,
	}
}
