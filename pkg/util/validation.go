// Package util provides shared utility functions
package util

import (
	"strings"

	gherrors "github.com/Didstopia/repoherd/internal/errors"
)

// maxOwnerLength is the maximum length of a GitHub login
const maxOwnerLength = 39

// ValidateOwner validates a GitHub account name (user or organization).
// Logins are 1-39 characters of letters, digits, and hyphens, and may not
// begin or end with a hyphen or contain consecutive hyphens.
func ValidateOwner(owner string) error {
	if owner == "" {
		return gherrors.ErrMissingOwner
	}

	if len(owner) > maxOwnerLength {
		return gherrors.NewValidationError("owner",
			"account name is too long (max 39 characters)")
	}

	// Catch URLs and owner/repo forms early for a clearer message
	if strings.Contains(owner, "/") || strings.Contains(owner, "github.com") {
		return gherrors.NewValidationError("owner",
			"use the account name only, not a URL or owner/repo (got: "+owner+")")
	}

	if strings.HasPrefix(owner, "-") || strings.HasSuffix(owner, "-") {
		return gherrors.NewValidationError("owner",
			"account name cannot begin or end with a hyphen")
	}

	if strings.Contains(owner, "--") {
		return gherrors.NewValidationError("owner",
			"account name cannot contain consecutive hyphens")
	}

	for _, r := range owner {
		if !isOwnerRune(r) {
			return gherrors.NewValidationError("owner",
				"account name contains invalid characters (got: "+owner+")")
		}
	}

	return nil
}

func isOwnerRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-':
		return true
	}
	return false
}
