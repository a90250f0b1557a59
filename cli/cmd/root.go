package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "toon",
		Short:        "toon",
		SilenceUsage: true,
		Long:         `CLI tool for converting between TOON and JSON/YAML, and for canonicalizing and comparing TOON documents.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	lenient     bool
	indentWidth int
	verbose     bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "tolerate layout problems instead of failing (blank lines in tables, misindentation, count mismatches)")
	rootCmd.PersistentFlags().IntVar(&indentWidth, "indent", 2, "spaces per indentation level")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging, including the decoder trace")
	return rootCmd.Execute()
}
