// Package rules provides the static catalog of analysis rules known to lintguard.
package rules

// Descriptor describes the identity of one analysis rule.
// Descriptors are immutable once the catalog is built.
type Descriptor struct {
	// ID is the canonical identifier of the rule. Unique within a catalog.
	ID string

	// Aliases lists deprecated identifiers that historically referred to
	// this rule. Kept for backward-compatible lookup only.
	Aliases []string

	// OptIn marks rules that are disabled by default and must be
	// explicitly enabled.
	OptIn bool

	// Analyzer marks rules that require full type information and only
	// run during analyzer passes.
	Analyzer bool
}

// AllIdentifiers returns the canonical identifier followed by every alias.
func (d Descriptor) AllIdentifiers() []string {
	identifiers := make([]string, 0, len(d.Aliases)+1)
	identifiers = append(identifiers, d.ID)
	identifiers = append(identifiers, d.Aliases...)

	return identifiers
}
