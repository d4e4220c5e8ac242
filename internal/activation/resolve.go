package activation

// Options carries the user-supplied rule lists and flags that determine the
// activation mode.
type Options struct {
	// Disabled lists rules the user switched off.
	Disabled []string

	// OptIn lists opt-in rules the user switched on.
	OptIn []string

	// Only, when non-empty, restricts the run to exactly these rules.
	Only []string

	// Analyzer lists analyzer rules the user switched on. Treated as
	// additional opt-ins.
	Analyzer []string

	// EnableAll runs every rule regardless of the lists above.
	EnableAll bool
}

// Resolve computes the activation mode from the options. A non-empty only
// list takes precedence over everything else, then the enable-all flag, then
// the default disabled/opt-in semantics.
func Resolve(opts Options) Mode {
	if len(opts.Only) > 0 {
		return Only(opts.Only)
	}

	if opts.EnableAll {
		return AllEnabled()
	}

	optIn := make([]string, 0, len(opts.OptIn)+len(opts.Analyzer))
	optIn = append(optIn, opts.OptIn...)
	optIn = append(optIn, opts.Analyzer...)

	return Default(opts.Disabled, optIn)
}
