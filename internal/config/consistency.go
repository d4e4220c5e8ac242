package config

import (
	"github.com/smykla-labs/lintguard/internal/activation"
	"github.com/smykla-labs/lintguard/internal/rules"
)

// ConsistencyWarnings flags rule configuration that has no effect under the
// resolved activation mode. Keys that do not resolve to a rule are skipped
// silently; unknown-key detection already reported them.
func ConsistencyWarnings(
	raw RawConfig,
	catalog *rules.Catalog,
	mode activation.Mode,
) []Warning {
	// Every rule is active when all are enabled; nothing to check.
	if mode.Kind() == activation.KindAllEnabled {
		return nil
	}

	var warnings []Warning

	for _, key := range raw.SortedKeys() {
		if IsGlobalKey(key) {
			continue
		}

		descriptor, ok := catalog.Lookup(key)
		if !ok {
			continue
		}

		if warning, ok := ineffectiveRuleWarning(descriptor, mode); ok {
			warnings = append(warnings, warning)
		}
	}

	return warnings
}

// ineffectiveRuleWarning reports why the configured rule will not run under
// mode, if it will not. In default mode the opt-in check takes precedence
// over the disabled check; only the first applicable warning is reported.
func ineffectiveRuleWarning(
	descriptor rules.Descriptor,
	mode activation.Mode,
) (Warning, bool) {
	identifiers := descriptor.AllIdentifiers()

	switch mode.Kind() {
	case activation.KindOnly:
		if !mode.OnlyIncludesAny(identifiers) {
			return warnf(
				"rule %q is configured but is not present in '%s'; its configuration has no effect",
				descriptor.ID, KeyOnlyRules,
			), true
		}
	case activation.KindDefault:
		if descriptor.OptIn && !mode.OptInIncludesAny(identifiers) {
			return warnf(
				"rule %q is configured but is an opt-in rule that is not enabled in '%s'; its configuration has no effect",
				descriptor.ID, KeyOptInRules,
			), true
		}

		if mode.DisabledIncludesAll(identifiers) {
			return warnf(
				"rule %q is configured but is listed in '%s'; its configuration has no effect",
				descriptor.ID, KeyDisabledRules,
			), true
		}
	case activation.KindAllEnabled:
		// Handled by the caller's short-circuit.
	}

	return Warning{}, false
}
