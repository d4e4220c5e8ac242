package config

import (
	"github.com/smykla-labs/lintguard/internal/rules"
)

// deprecatedKeys maps each deprecated top-level key to its fixed warning
// text, in the order warnings are emitted.
var deprecatedKeys = []struct {
	key     string
	message string
}{
	{
		key:     KeyEnabledRules,
		message: "'" + KeyEnabledRules + "' has been renamed to '" + KeyOptInRules + "'; update your configuration",
	},
	{
		key:     KeyWhitelistRules,
		message: "'" + KeyWhitelistRules + "' has been renamed to '" + KeyOnlyRules + "'; update your configuration",
	},
	{
		key:     KeyUseNestedConfigs,
		message: "'" + KeyUseNestedConfigs + "' is no longer necessary and is ignored; nested configurations are always considered",
	},
}

// DeprecationWarnings reports usage of deprecated top-level keys and
// deprecated rule aliases, either as raw configuration keys or inside the
// user-supplied disabled/opt-in/only rule lists. Purely diagnostic; each
// (alias, rule) pair warns at most once regardless of how many lists mention
// the alias.
func DeprecationWarnings(
	raw RawConfig,
	disabled []string,
	optIn []string,
	only []string,
	catalog *rules.Catalog,
) []Warning {
	var warnings []Warning

	for _, deprecated := range deprecatedKeys {
		if raw.Has(deprecated.key) {
			warnings = append(warnings, Warning{Message: deprecated.message})
		}
	}

	listed := make(map[string]struct{})

	for _, list := range [][]string{disabled, optIn, only} {
		for _, identifier := range list {
			listed[identifier] = struct{}{}
		}
	}

	for _, descriptor := range catalog.Descriptors() {
		for _, alias := range descriptor.Aliases {
			_, inLists := listed[alias]
			if !raw.Has(alias) && !inLists {
				continue
			}

			warnings = append(warnings, warnf(
				"rule %q has been renamed to %q; update your configuration",
				alias, descriptor.ID,
			))
		}
	}

	return warnings
}
