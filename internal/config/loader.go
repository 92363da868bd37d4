package config

import (
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, so the verbose key reads
// from REPOHERD_VERBOSE and per-page from REPOHERD_PER_PAGE
const envPrefix = "REPOHERD"

// Loader resolves the repoherd settings (verbose, dry-run, token,
// per-page, target) from the config file, the environment, and bound
// command-line flags, with flags winning over the other two.
type Loader struct {
	viper *viper.Viper
}

// NewLoader creates an empty loader; call Initialize before use
func NewLoader() *Loader {
	return &Loader{
		viper: viper.New(),
	}
}

// Initialize ensures the config file exists, reads it from the home or
// current directory, and enables prefixed environment overrides
func (l *Loader) Initialize() error {
	if err := EnsureConfigFile(); err != nil {
		return err
	}

	home, err := homedir.Dir()
	if err != nil {
		return err
	}
	l.viper.AddConfigPath(home)
	l.viper.AddConfigPath(".")

	l.viper.SetConfigName(DefaultConfigFileName)
	l.viper.SetConfigType(DefaultConfigFileType)

	if err := l.viper.ReadInConfig(); err != nil {
		return err
	}

	l.viper.SetEnvPrefix(envPrefix)
	l.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	l.viper.AutomaticEnv()

	return nil
}

// BindFlag ties a settings key to a command-line flag, so an explicit
// flag value shadows the config file and environment
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	return l.viper.BindPFlag(key, flag)
}

// SetDefault sets the fallback value used when no source provides the key
func (l *Loader) SetDefault(key string, value interface{}) {
	l.viper.SetDefault(key, value)
}

// InjectToCommand writes resolved settings into the command's flags,
// skipping any flag the user set explicitly
func (l *Loader) InjectToCommand(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && l.viper.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, l.viper.GetString(f.Name))
		}
	})
}
