package main

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-labs/lintguard/internal/config"
	"github.com/smykla-labs/lintguard/internal/reporters"
	"github.com/smykla-labs/lintguard/internal/rules"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: "Load the configuration file, check it against the rule catalog, " +
		"and report every warning it produces.",
	RunE: runValidate,
}

var (
	// configPath is set by the --config flag.
	configPath string

	// enableAllRules is set by the --enable-all-rules flag.
	enableAllRules bool

	// reporterOverride is set by the --reporter flag.
	reporterOverride string
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(
		&configPath,
		"config",
		"c",
		config.DefaultConfigFile,
		"Path to the configuration file",
	)
	validateCmd.Flags().BoolVar(
		&enableAllRules,
		"enable-all-rules",
		false,
		"Activate every rule regardless of the configured lists",
	)
	validateCmd.Flags().StringVar(
		&reporterOverride,
		"reporter",
		"",
		"Reporter to use instead of the configured one",
	)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	log := newLogger()

	overrides := map[string]any{}
	if reporterOverride != "" {
		overrides[config.KeyReporter] = reporterOverride
	}

	loader := config.NewLoader(configPath, log)

	raw, err := loader.Load(overrides)
	if err != nil {
		return err
	}

	catalog := rules.Builtin()

	cfg, warnings, err := config.Validate(raw, catalog, config.Options{
		EnableAll: enableAllRules,
	})
	if err != nil {
		var duplicated *config.DuplicatedRuleConfigError
		if errors.As(err, &duplicated) {
			for _, warning := range warnings {
				log.Warn(warning.Message)
			}
		}

		return err
	}

	if mismatch, ok := pinnedVersionMismatch(cfg); ok {
		log.Warn(mismatch)
	}

	reporter, known := reporters.For(cfg.Reporter)
	if !known {
		log.Warn(
			"unknown reporter; falling back to console",
			"reporter", cfg.Reporter,
		)
	}

	return reporter.Report(cmd.OutOrStdout(), cfg, warnings)
}

// pinnedVersionMismatch compares the configuration's pinned version against
// the running binary. Unparsable pins were already warned about by the
// pipeline.
func pinnedVersionMismatch(cfg *config.Config) (string, bool) {
	if cfg.PinnedVersion == "" || version == "dev" {
		return "", false
	}

	pinned, err := semver.NewVersion(cfg.PinnedVersion)
	if err != nil {
		return "", false
	}

	current, err := semver.NewVersion(version)
	if err != nil {
		return "", false
	}

	if pinned.Equal(current) {
		return "", false
	}

	return fmt.Sprintf(
		"configuration pins lintguard %s but %s is running",
		pinned, current,
	), true
}
