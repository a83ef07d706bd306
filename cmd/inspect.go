package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/r-infra/rpack/internal/jar"
	"github.com/r-infra/rpack/internal/rpkg"
)

var inspectCmd = &cobra.Command{
	Use:          "inspect <jars>",
	Short:        "Report which jars bundle R source code",
	Long:         `Check a comma-separated list of jars for the Spark-HasRPackage manifest flag without extracting or installing anything.`,
	RunE:         runInspect,
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
}

func runInspect(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	out := cmd.OutOrStdout()

	for _, path := range strings.Split(args[0], ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		jf, err := jar.Open(path)
		if err != nil {
			fmt.Fprintf(out, "%s: not readable (%v)\n", path, err)
			continue
		}

		if !jf.HasRPackage() {
			fmt.Fprintf(out, "%s: no bundled R package\n", path)
			jf.Close()
			continue
		}

		fmt.Fprintf(out, "%s: bundles an R package\n", path)

		if verbose {
			for _, entry := range jf.Entries() {
				if strings.Contains(entry.Name, rpkg.RJarEntries) {
					fmt.Fprintf(out, "  %s\n", entry.Name)
				}
			}
		}

		jf.Close()
	}

	return nil
}
