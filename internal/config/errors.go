package config

import (
	"fmt"
	"strings"
)

// DuplicatedRuleConfigError reports a rule configured under more than one of
// its accepted keys (canonical identifier plus deprecated aliases). This is
// the only fatal validation failure: silently picking one of two conflicting
// configurations would hide a real user mistake.
type DuplicatedRuleConfigError struct {
	// ID is the canonical identifier of the rule.
	ID string

	// Aliases is the rule's full deprecated-alias list, so callers can
	// name every key that may collide.
	Aliases []string
}

// Error implements the error interface.
func (e *DuplicatedRuleConfigError) Error() string {
	keys := append([]string{e.ID}, e.Aliases...)

	return fmt.Sprintf(
		"rule %q is configured under more than one of its keys (%s); keep exactly one",
		e.ID, strings.Join(keys, ", "),
	)
}
