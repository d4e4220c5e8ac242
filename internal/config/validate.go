package config

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-viper/mapstructure/v2"

	"github.com/smykla-labs/lintguard/internal/activation"
	"github.com/smykla-labs/lintguard/internal/rules"
)

// Options adjusts how the raw configuration is validated.
type Options struct {
	// EnableAll activates every rule regardless of the configured
	// disabled/opt-in/only lists. Set from the CLI.
	EnableAll bool
}

// rawGlobals holds the scalar top-level fields decoded from the raw
// configuration. List-valued keys are read tolerantly via RawConfig
// instead.
type rawGlobals struct {
	WarningThreshold *int   `mapstructure:"warning_threshold"`
	Reporter         string `mapstructure:"reporter"`
	CachePath        string `mapstructure:"cache_path"`
	PinnedVersion    string `mapstructure:"lintguard_version"`
}

// Validate runs the validation pipeline over raw using catalog: unknown-key
// detection, deprecation warnings, duplicate-alias resolution, activation
// mode resolution, activation consistency checks, and scalar extraction.
//
// All findings except duplicate rule configuration are non-fatal and are
// returned as an ordered warning list alongside the configuration. Duplicate
// rule configuration aborts assembly with a DuplicatedRuleConfigError; the
// warnings accumulated up to that point are still returned. The pipeline is
// pure: identical inputs yield an identical configuration and warning list.
func Validate(
	raw RawConfig,
	catalog *rules.Catalog,
	opts Options,
) (*Config, []Warning, error) {
	var warnings []Warning

	if unknown := UnknownKeys(raw, catalog); len(unknown) > 0 {
		warnings = append(warnings, warnf(
			"configuration contains unknown keys: %s",
			strings.Join(unknown, ", "),
		))
	}

	disabled := raw.StringSlice(KeyDisabledRules)
	optIn := effectiveOptInRules(raw)
	only := effectiveOnlyRules(raw)
	analyzer := raw.StringSlice(KeyAnalyzerRules)

	warnings = append(
		warnings,
		DeprecationWarnings(raw, disabled, optIn, only, catalog)...,
	)

	ruleConfigs, err := ResolveRuleConfigs(raw, catalog)
	if err != nil {
		return nil, warnings, err
	}

	mode := activation.Resolve(activation.Options{
		Disabled:  disabled,
		OptIn:     optIn,
		Only:      only,
		Analyzer:  analyzer,
		EnableAll: opts.EnableAll,
	})

	warnings = append(warnings, ConsistencyWarnings(raw, catalog, mode)...)

	globals, scalarWarnings := extractGlobals(raw)
	warnings = append(warnings, scalarWarnings...)

	indentation, indentWarnings := extractIndentation(raw)
	warnings = append(warnings, indentWarnings...)

	included := raw.StringSlice(KeyIncluded)
	excluded := raw.StringSlice(KeyExcluded)
	warnings = append(warnings, patternWarnings(KeyIncluded, included)...)
	warnings = append(warnings, patternWarnings(KeyExcluded, excluded)...)
	warnings = append(warnings, versionWarnings(globals.PinnedVersion)...)

	reporter := globals.Reporter
	if reporter == "" {
		reporter = DefaultReporter
	}

	return &Config{
		Mode:             mode,
		Included:         included,
		Excluded:         excluded,
		Indentation:      indentation,
		WarningThreshold: globals.WarningThreshold,
		Reporter:         reporter,
		CachePath:        globals.CachePath,
		PinnedVersion:    globals.PinnedVersion,
		ruleConfigs:      ruleConfigs,
	}, warnings, nil
}

// effectiveOptInRules merges the opt-in list with the deprecated
// enabled_rules list, which keeps working until it is removed.
func effectiveOptInRules(raw RawConfig) []string {
	optIn := raw.StringSlice(KeyOptInRules)

	return append(optIn, raw.StringSlice(KeyEnabledRules)...)
}

// effectiveOnlyRules prefers only_rules and falls back to the deprecated
// whitelist_rules key.
func effectiveOnlyRules(raw RawConfig) []string {
	if only := raw.StringSlice(KeyOnlyRules); len(only) > 0 {
		return only
	}

	return raw.StringSlice(KeyWhitelistRules)
}

// extractGlobals decodes the scalar top-level fields. Malformed values are
// reported as a warning and left at their zero value; extraction never
// fails.
func extractGlobals(raw RawConfig) (rawGlobals, []Warning) {
	var globals rawGlobals

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &globals,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return globals, []Warning{
			warnf("reading configuration values: %v", err),
		}
	}

	if err := decoder.Decode(map[string]any(raw)); err != nil {
		return globals, []Warning{
			warnf("ignoring malformed configuration values: %v", err),
		}
	}

	return globals, nil
}

// extractIndentation applies the fallback-and-warn policy: an absent value
// silently yields the default, an unparsable one yields the default plus
// exactly one warning.
func extractIndentation(raw RawConfig) (IndentationStyle, []Warning) {
	value, ok := raw[KeyIndentation]
	if !ok {
		return DefaultIndentation, nil
	}

	style, ok := ParseIndentation(value)
	if !ok {
		return DefaultIndentation, []Warning{warnf(
			"invalid indentation value %v; falling back to %s",
			value, DefaultIndentation,
		)}
	}

	return style, nil
}

// patternWarnings syntax-checks path glob patterns. Invalid patterns are
// kept verbatim; matching them later simply yields nothing.
func patternWarnings(key string, patterns []string) []Warning {
	var warnings []Warning

	for _, pattern := range patterns {
		if doublestar.ValidatePattern(pattern) {
			continue
		}

		warnings = append(warnings, warnf(
			"invalid glob pattern %q in '%s'", pattern, key,
		))
	}

	return warnings
}

// versionWarnings checks that a pinned tool version is a parsable semantic
// version. The pin itself is enforced by the CLI.
func versionWarnings(pinned string) []Warning {
	if pinned == "" {
		return nil
	}

	if _, err := semver.NewVersion(pinned); err != nil {
		return []Warning{warnf(
			"'%s' value %q is not a valid semantic version",
			KeyPinnedVersion, pinned,
		)}
	}

	return nil
}
