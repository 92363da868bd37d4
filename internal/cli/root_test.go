package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gherrors "github.com/Didstopia/repoherd/internal/errors"
)

func TestResolveToken(t *testing.T) {
	// Save and restore the global flag value
	originalToken := token
	defer func() { token = originalToken }()

	t.Run("flag takes priority over environment", func(t *testing.T) {
		token = "flag-token"
		t.Setenv("GITHUB_TOKEN", "env-token")

		result, err := resolveToken()
		require.NoError(t, err)
		assert.Equal(t, "flag-token", result)
	})

	t.Run("falls back to environment", func(t *testing.T) {
		token = ""
		t.Setenv("GITHUB_TOKEN", "env-token")

		result, err := resolveToken()
		require.NoError(t, err)
		assert.Equal(t, "env-token", result)
	})

	t.Run("missing everywhere is an error", func(t *testing.T) {
		token = ""
		t.Setenv("GITHUB_TOKEN", "")

		_, err := resolveToken()
		assert.ErrorIs(t, err, gherrors.ErrMissingToken)
	})
}

func TestRootCommandRegistration(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["list"])
	assert.True(t, names["clone"])
	assert.True(t, names["purge"])
	assert.True(t, names["version"])
}

func TestGlobalFlagAccessors(t *testing.T) {
	originalVerbose := verbose
	originalDryRun := dryRun
	defer func() {
		verbose = originalVerbose
		dryRun = originalDryRun
	}()

	verbose = true
	dryRun = true

	assert.True(t, GetVerbose())
	assert.True(t, GetDryRun())
	assert.NotNil(t, GetLogger())
}
