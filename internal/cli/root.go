// Package cli provides the command-line interface for repoherd
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Didstopia/repoherd/internal/config"
	gherrors "github.com/Didstopia/repoherd/internal/errors"
)

// Version information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	verbose bool
	dryRun  bool
	token   string
)

// Global logger
var log = logrus.New()

// Config loader
var configLoader *config.Loader

// Root command
var rootCmd = &cobra.Command{
	Use:   "repoherd",
	Short: "Bulk operations on a GitHub account's repositories",
	Long:  `A CLI utility for listing, cloning, and deleting the repositories of a GitHub account in bulk.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Inject config file values
		configLoader.InjectToCommand(cmd)

		// Re-read flags after injection
		verbose, _ = cmd.Flags().GetBool("verbose")
		dryRun, _ = cmd.Flags().GetBool("dry-run")
		token, _ = cmd.Flags().GetString("token")

		// Set log level
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.InfoLevel)
		}

		return nil
	},
}

func init() {
	// Initialize config loader
	configLoader = config.NewLoader()
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "D", false, "Simulate running without making changes")
	rootCmd.PersistentFlags().StringVarP(&token, "token", "t", "", "GitHub API token")
}

func initConfig() {
	if err := configLoader.Initialize(); err != nil {
		// Config initialization failure is not fatal for all commands
		log.Debugf("Config initialization: %v", err)
	}

	// Bind the persistent flags so explicit flags shadow file and env values
	flags := rootCmd.PersistentFlags()
	for _, key := range []string{"verbose", "dry-run", "token"} {
		if err := configLoader.BindFlag(key, flags.Lookup(key)); err != nil {
			log.Debugf("Config flag binding for %q: %v", key, err)
		}
	}

	configLoader.SetDefault("verbose", false)
	configLoader.SetDefault("dry-run", false)
	configLoader.SetDefault("token", "")
	configLoader.SetDefault("per-page", config.DefaultPerPage)
}

// Execute runs the root command
func Execute() {
	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// Store context for subcommands
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveToken returns the configured token, checking multiple sources
// Priority: CLI flag > environment variable
func resolveToken() (string, error) {
	if token != "" {
		return token, nil
	}
	if envToken := os.Getenv("GITHUB_TOKEN"); envToken != "" {
		return envToken, nil
	}
	return "", gherrors.ErrMissingToken
}

// GetLogger returns the global logger
func GetLogger() *logrus.Logger {
	return log
}

// GetVerbose returns the verbose flag
func GetVerbose() bool {
	return verbose
}

// GetDryRun returns the dry-run flag
func GetDryRun() bool {
	return dryRun
}
