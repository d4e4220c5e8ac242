// Package config validates lintguard's raw configuration against the rule
// catalog and assembles the typed configuration the rest of the tool runs on.
package config

import (
	"sort"

	"github.com/smykla-labs/lintguard/internal/rules"
)

// Top-level configuration keys understood by lintguard itself. Every other
// key must resolve to a rule identifier or alias.
const (
	KeyDisabledRules    = "disabled_rules"
	KeyOptInRules       = "opt_in_rules"
	KeyOnlyRules        = "only_rules"
	KeyAnalyzerRules    = "analyzer_rules"
	KeyIncluded         = "included"
	KeyExcluded         = "excluded"
	KeyIndentation      = "indentation"
	KeyWarningThreshold = "warning_threshold"
	KeyReporter         = "reporter"
	KeyCachePath        = "cache_path"
	KeyPinnedVersion    = "lintguard_version"
	KeyChildConfig      = "child_config"
	KeyParentConfig     = "parent_config"

	// Deprecated keys, still accepted for lookup.

	// KeyEnabledRules is the legacy name of KeyOptInRules.
	KeyEnabledRules = "enabled_rules"

	// KeyWhitelistRules is the legacy name of KeyOnlyRules.
	KeyWhitelistRules = "whitelist_rules"

	// KeyUseNestedConfigs used to toggle nested configuration discovery.
	// Nested configurations are now always considered; the key is ignored.
	KeyUseNestedConfigs = "use_nested_configs"
)

// globalKeys is the fixed set of keys that never name a rule.
var globalKeys = map[string]struct{}{
	KeyDisabledRules:    {},
	KeyOptInRules:       {},
	KeyOnlyRules:        {},
	KeyAnalyzerRules:    {},
	KeyIncluded:         {},
	KeyExcluded:         {},
	KeyIndentation:      {},
	KeyWarningThreshold: {},
	KeyReporter:         {},
	KeyCachePath:        {},
	KeyPinnedVersion:    {},
	KeyChildConfig:      {},
	KeyParentConfig:     {},
	KeyEnabledRules:     {},
	KeyWhitelistRules:   {},
	KeyUseNestedConfigs: {},
}

// IsGlobalKey reports whether key is one of the fixed top-level keys.
func IsGlobalKey(key string) bool {
	_, ok := globalKeys[key]

	return ok
}

// UnknownKeys returns the raw configuration keys that are neither fixed
// global keys nor rule identifiers/aliases in the catalog, sorted. A key
// matching a deprecated alias is not unknown; the deprecation advisor flags
// it separately.
func UnknownKeys(raw RawConfig, catalog *rules.Catalog) []string {
	var unknown []string

	for key := range raw {
		if IsGlobalKey(key) || catalog.Has(key) {
			continue
		}

		unknown = append(unknown, key)
	}

	sort.Strings(unknown)

	return unknown
}
