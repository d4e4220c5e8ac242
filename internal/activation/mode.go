// Package activation defines which analysis rules run for a configuration.
package activation

// Kind discriminates the three shapes of an activation mode. The set of
// shapes is closed; consumers switch over Kind and handle all three.
type Kind int

const (
	// KindAllEnabled runs every rule in the catalog, opt-in or not.
	KindAllEnabled Kind = iota

	// KindOnly runs exactly the rules named in the only set.
	KindOnly

	// KindDefault runs every non-opt-in rule unless disabled; opt-in rules
	// run only when explicitly opted in.
	KindDefault
)

// String returns the configuration-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAllEnabled:
		return "all-enabled"
	case KindOnly:
		return "only"
	case KindDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Mode is the activation policy in effect for one configuration. Exactly one
// shape is active: the only set is populated for KindOnly, the disabled and
// opt-in sets for KindDefault, and neither for KindAllEnabled.
type Mode struct {
	kind     Kind
	only     map[string]struct{}
	disabled map[string]struct{}
	optIn    map[string]struct{}
}

// AllEnabled returns the mode in which every rule runs.
func AllEnabled() Mode {
	return Mode{kind: KindAllEnabled}
}

// Only returns the mode in which exactly the named rules run.
func Only(identifiers []string) Mode {
	return Mode{
		kind: KindOnly,
		only: toSet(identifiers),
	}
}

// Default returns the default mode with the given disabled and opted-in
// identifier lists.
func Default(disabled, optIn []string) Mode {
	return Mode{
		kind:     KindDefault,
		disabled: toSet(disabled),
		optIn:    toSet(optIn),
	}
}

// Kind returns the shape of the mode.
func (m Mode) Kind() Kind {
	return m.kind
}

// OnlyIncludesAny reports whether any of the identifiers is in the only set.
// Always false for other kinds.
func (m Mode) OnlyIncludesAny(identifiers []string) bool {
	return includesAny(m.only, identifiers)
}

// OptInIncludesAny reports whether any of the identifiers was explicitly
// opted in. Always false for other kinds.
func (m Mode) OptInIncludesAny(identifiers []string) bool {
	return includesAny(m.optIn, identifiers)
}

// DisabledIncludesAll reports whether every identifier is in the disabled
// set. Always false for other kinds and for an empty identifier list.
func (m Mode) DisabledIncludesAll(identifiers []string) bool {
	if len(identifiers) == 0 {
		return false
	}

	for _, identifier := range identifiers {
		if _, ok := m.disabled[identifier]; !ok {
			return false
		}
	}

	return true
}

func toSet(identifiers []string) map[string]struct{} {
	set := make(map[string]struct{}, len(identifiers))
	for _, identifier := range identifiers {
		set[identifier] = struct{}{}
	}

	return set
}

func includesAny(set map[string]struct{}, identifiers []string) bool {
	for _, identifier := range identifiers {
		if _, ok := set[identifier]; ok {
			return true
		}
	}

	return false
}
