package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/r-infra/rpack/internal/cache"
	"github.com/r-infra/rpack/internal/config"
	"github.com/r-infra/rpack/internal/rpkg"
)

var installCmd = &cobra.Command{
	Use:          "install <jars>",
	Short:        "Install bundled R packages from jars",
	Long:         `Extract and install R package sources from a comma-separated list of jars.`,
	RunE:         runInstall,
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().LoadForInstall(cmd)
	if err != nil {
		return err
	}

	// Resolved once here, never looked up again downstream
	if cfg.SparkHome == "" {
		return fmt.Errorf("SPARK_HOME is not set; set the environment variable or pass --spark-home")
	}

	installer := rpkg.NewInstaller(cfg.SparkHome, cmd.OutOrStdout(), cfg.Verbose)

	if !cfg.NoCache {
		c, err := cache.New(cfg.CacheDir)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: install cache unavailable: %v\n", err)
		} else {
			defer c.Close()
			installer.Cache = c
		}
	}

	return installer.Run(args[0])
}
