package main

import (
	"github.com/spf13/cobra"

	"fibercheck/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// exitCode is the process exit status after a successful Execute:
// validate sets 1 when any check failed, 2 when any check could not run.
var exitCode int

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "fibercheck",
	Short: "Validation rule engine for FTTH design exports",
	Long: "Fibercheck runs a catalogue of consistency checks over the shapefile\n" +
		"layers of a Comsof FTTH design export: duplicate identifiers, cluster\n" +
		"overlaps, cable granularity, splice limits and more.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(level, rootFlags.logFormat)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text|json)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(checksCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.Version = version
}
