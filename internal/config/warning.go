package config

import "fmt"

// Warning is a non-fatal finding about the raw configuration. Warnings are
// accumulated in pipeline order and returned alongside the validated
// configuration instead of being written to a shared sink, so validation
// stays pure.
type Warning struct {
	// Message is the human-readable diagnostic text.
	Message string
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return w.Message
}

// warnf builds a Warning from a format string.
func warnf(format string, args ...any) Warning {
	return Warning{Message: fmt.Sprintf(format, args...)}
}

// Messages flattens warnings into their diagnostic text lines.
func Messages(warnings []Warning) []string {
	messages := make([]string, len(warnings))
	for i, warning := range warnings {
		messages[i] = warning.Message
	}

	return messages
}
