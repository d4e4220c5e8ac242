package config

import (
	"github.com/smykla-labs/lintguard/internal/rules"
)

// ResolveRuleConfigs maps each configured rule's canonical identifier to the
// value found under exactly one of its accepted keys. If a rule is configured
// under two or more of its keys at once, resolution fails with a
// DuplicatedRuleConfigError for that rule; no partial result is returned.
func ResolveRuleConfigs(raw RawConfig, catalog *rules.Catalog) (map[string]any, error) {
	resolved := make(map[string]any)

	for _, descriptor := range catalog.Descriptors() {
		var present []string

		for _, identifier := range descriptor.AllIdentifiers() {
			if raw.Has(identifier) {
				present = append(present, identifier)
			}
		}

		switch len(present) {
		case 0:
			// Rule not configured.
		case 1:
			resolved[descriptor.ID] = raw[present[0]]
		default:
			return nil, &DuplicatedRuleConfigError{
				ID:      descriptor.ID,
				Aliases: descriptor.Aliases,
			}
		}
	}

	return resolved, nil
}
