package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/smykla-labs/lintguard/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "lintguard",
	Short:         "Static analysis with a validated configuration",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, _ []string) {
		checkVersionFlag()
		_ = cmd.Help()
	},
}

// debugRequested enables debug logging.
var debugRequested bool

func init() {
	rootCmd.PersistentFlags().BoolVar(
		&debugRequested,
		"debug",
		false,
		"Enable debug logging",
	)
}

// newLogger builds the process logger honoring the --debug flag.
func newLogger() logger.Logger {
	level := slog.LevelInfo
	if debugRequested {
		level = slog.LevelDebug
	}

	return logger.New(os.Stderr, level)
}
