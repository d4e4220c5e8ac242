// Package reporters provides output formatting for configuration warnings.
package reporters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/smykla-labs/lintguard/internal/config"
)

// Reporter renders validation warnings for one output format.
type Reporter interface {
	// Report writes the warnings for cfg to w.
	Report(w io.Writer, cfg *config.Config, warnings []config.Warning) error
}

// For selects the reporter for the given identifier. The second return value
// is false for an unknown identifier, in which case the console reporter is
// returned so callers always have something usable.
func For(id string) (Reporter, bool) {
	switch id {
	case "console":
		return &ConsoleReporter{}, true
	case "json":
		return &JSONReporter{}, true
	default:
		return &ConsoleReporter{}, false
	}
}

// ConsoleReporter renders warnings as a human-readable checklist.
type ConsoleReporter struct{}

// Report writes the warnings in a simple text format.
func (*ConsoleReporter) Report(
	w io.Writer,
	cfg *config.Config,
	warnings []config.Warning,
) error {
	if len(warnings) > 0 {
		if _, err := fmt.Fprintf(w, "⚠️  Warnings:\n\n"); err != nil {
			return err
		}

		for _, warning := range warnings {
			if _, err := fmt.Fprintf(w, "  %s\n", warning.Message); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(
		w,
		"Configuration valid: %s mode, %d warning(s)\n",
		cfg.Mode.Kind(), len(warnings),
	)

	return err
}

// JSONReporter renders warnings as a single JSON document, for consumption
// by editor integrations and CI.
type JSONReporter struct{}

// jsonReport is the wire shape of the JSON reporter output.
type jsonReport struct {
	Mode     string   `json:"mode"`
	Reporter string   `json:"reporter"`
	Warnings []string `json:"warnings"`
}

// Report writes the warnings as JSON.
func (*JSONReporter) Report(
	w io.Writer,
	cfg *config.Config,
	warnings []config.Warning,
) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(jsonReport{
		Mode:     cfg.Mode.Kind().String(),
		Reporter: cfg.Reporter,
		Warnings: config.Messages(warnings),
	})
}
