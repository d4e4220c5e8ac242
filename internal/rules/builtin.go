package rules

// builtinDescriptors is the rule set shipped with lintguard.
var builtinDescriptors = []Descriptor{
	{ID: "cyclomatic_complexity", Aliases: []string{"complexity"}},
	{ID: "duplicate_imports", Aliases: []string{"duplicated_imports"}},
	{ID: "file_length"},
	{ID: "function_length", Aliases: []string{"func_body_length"}},
	{ID: "line_length"},
	{ID: "missing_docs", Aliases: []string{"valid_docs"}, OptIn: true},
	{ID: "nesting_depth", Aliases: []string{"nesting"}},
	{ID: "redundant_else", OptIn: true},
	{ID: "sorted_imports", OptIn: true},
	{ID: "todo_comment", Aliases: []string{"todo", "fixme"}},
	{ID: "trailing_whitespace"},
	{ID: "unused_declaration", OptIn: true, Analyzer: true},
	{ID: "unused_import", Aliases: []string{"dead_import"}, OptIn: true, Analyzer: true},
}

// Builtin returns the catalog of rules shipped with lintguard.
func Builtin() *Catalog {
	catalog, err := NewCatalog(builtinDescriptors)
	if err != nil {
		// The builtin rule set is validated by tests; a collision here is
		// a programming error.
		panic(err)
	}

	return catalog
}
