package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Extensions accepted for global and local config files, in precedence order
var configExts = []string{"yml", "yaml", "json", "toml"}

// Loader handles configuration loading from various sources
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadForInstall resolves configuration for install operations.
// Precedence, highest first: command flags, the SPARK_HOME environment
// variable, a local .rpack.* file found by walking up from the working
// directory, the global config file, built-in defaults.
func (l *Loader) LoadForInstall(cmd *cobra.Command) (*Config, error) {
	l.setupViperDefaults()
	l.loadGlobalConfig()
	l.loadLocalConfig()
	l.bindEnvironment()
	l.bindCommandFlags(cmd)

	return Load()
}

// setupViperDefaults sets up default values for viper
func (l *Loader) setupViperDefaults() {
	viper.SetDefault("spark_home", "")
	viper.SetDefault("verbose", DefaultVerbose)
	viper.SetDefault("no_cache", DefaultNoCache)
	viper.SetDefault("cache_dir", DefaultCacheDir)
}

// loadGlobalConfig loads global configuration from the user config directory
func (l *Loader) loadGlobalConfig() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return
	}

	globalDir := filepath.Join(configDir, "rpack")

	for _, ext := range configExts {
		globalPath := filepath.Join(globalDir, "config."+ext)

		if _, err := os.Stat(globalPath); err == nil {
			viper.SetConfigFile(globalPath)

			if err := viper.ReadInConfig(); err == nil {
				break
			}
		}
	}
}

// loadLocalConfig loads local configuration from the working directory
func (l *Loader) loadLocalConfig() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	localPath := findLocalConfig(cwd)
	if localPath != "" {
		viper.SetConfigFile(localPath)
		_ = viper.ReadInConfig()
	}
}

// findLocalConfig returns the nearest .rpack config file, walking from
// dir toward the filesystem root.
func findLocalConfig(dir string) string {
	for {
		for _, ext := range configExts {
			candidate := filepath.Join(dir, ".rpack."+ext)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}

		dir = parent
	}
}

// bindEnvironment binds the SPARK_HOME environment variable
func (l *Loader) bindEnvironment() {
	_ = viper.BindEnv("spark_home", "SPARK_HOME")
}

// bindCommandFlags binds command flags to viper
func (l *Loader) bindCommandFlags(cmd *cobra.Command) {
	_ = viper.BindPFlag("spark_home", cmd.Flags().Lookup("spark-home"))
	_ = viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	_ = viper.BindPFlag("no_cache", cmd.Flags().Lookup("no-cache"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
}
