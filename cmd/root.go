package cmd

import (
	"fmt"
	"os"

	"github.com/r-infra/rpack/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:          "rpack",
	Short:        "Install R packages bundled in Spark package jars",
	Long:         `Inspect jars for bundled R source code and install it with R CMD INSTALL`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s) %s", version.Version, version.Commit, version.BuildTime)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("spark-home", "", "Spark installation directory (overrides SPARK_HOME)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable the install-result cache")
	rootCmd.PersistentFlags().String("cache-dir", "", "Directory for the install-result cache")
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(cacheCmd)

	viper.SetDefault("spark_home", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("no_cache", false)
}
