package config

import (
	"github.com/smykla-labs/lintguard/internal/activation"
)

// DefaultReporter is the reporter identifier used when the configuration
// does not name one.
const DefaultReporter = "console"

// Config is the validated configuration the rest of lintguard operates on
// for the remainder of a run. It is immutable once constructed; any change
// in input requires re-running the whole validation pipeline.
type Config struct {
	// Mode is the resolved activation policy.
	Mode activation.Mode

	// Included and Excluded are path glob patterns limiting the analyzed
	// file set. Patterns are syntax-checked here; matching happens in the
	// file resolver.
	Included []string
	Excluded []string

	// Indentation is the indentation style rules should assume.
	Indentation IndentationStyle

	// WarningThreshold, when set, fails the run once this many warnings
	// are produced by rule execution.
	WarningThreshold *int

	// Reporter identifies the output reporter. Never empty.
	Reporter string

	// CachePath is the analysis cache location. Empty means no cache.
	CachePath string

	// PinnedVersion is the lintguard version the configuration was written
	// for, verbatim. Empty means unpinned.
	PinnedVersion string

	// ruleConfigs maps canonical rule identifiers to their raw settings,
	// resolved so each rule appears under exactly one key.
	ruleConfigs map[string]any
}

// RuleConfig returns the resolved raw settings for the rule with the given
// canonical identifier.
func (c *Config) RuleConfig(id string) (any, bool) {
	value, ok := c.ruleConfigs[id]

	return value, ok
}

// ConfiguredRules returns the canonical identifiers of all rules that carry
// settings in this configuration.
func (c *Config) ConfiguredRules() []string {
	identifiers := make([]string, 0, len(c.ruleConfigs))
	for id := range c.ruleConfigs {
		identifiers = append(identifiers, id)
	}

	return identifiers
}
