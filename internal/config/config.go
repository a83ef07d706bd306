package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default configuration values
const (
	DefaultVerbose  = false
	DefaultNoCache  = false
	DefaultCacheDir = ".rpack-cache"
)

// Holds the configuration options for rpack
type Config struct {
	// SparkHome is the Spark installation directory; bundled packages
	// install into <SparkHome>/R/lib
	SparkHome string

	// Enable verbose output
	Verbose bool

	// Disable the install-result cache
	NoCache bool

	// Directory holding the install-result cache
	CacheDir string
}

func Load() (*Config, error) {
	cfg := &Config{
		SparkHome: viper.GetString("spark_home"),
		Verbose:   viper.GetBool("verbose"),
		NoCache:   viper.GetBool("no_cache"),
		CacheDir:  viper.GetString("cache_dir"),
	}

	if cfg.CacheDir == "" {
		cfg.CacheDir = DefaultCacheDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	// SparkHome may legitimately be empty here; commands that need it
	// fail with a descriptive error before touching any jar
	if c.SparkHome != "" {
		abs, err := filepath.Abs(c.SparkHome)
		if err != nil {
			return fmt.Errorf("invalid spark home path: %v", err)
		}

		c.SparkHome = abs
	}

	if c.CacheDir != "" {
		abs, err := filepath.Abs(c.CacheDir)
		if err != nil {
			return fmt.Errorf("invalid cache directory path: %v", err)
		}

		c.CacheDir = abs
	}

	return nil
}
