package config

import (
	"fmt"
	"sort"
)

// RawConfig is the untyped key-to-value mapping produced by the loader.
// Values are strings, integers, lists of strings, or nested mappings. The
// pipeline treats it as read-only input.
type RawConfig map[string]any

// Has reports whether key is present.
func (r RawConfig) Has(key string) bool {
	_, ok := r[key]

	return ok
}

// StringSlice reads the value under key as a list of strings. A bare string
// is treated as a single-element list. Non-string elements are rendered with
// their default formatting rather than dropped.
func (r RawConfig) StringSlice(key string) []string {
	value, ok := r[key]
	if !ok {
		return nil
	}

	switch typed := value.(type) {
	case string:
		return []string{typed}
	case []string:
		return typed
	case []any:
		elements := make([]string, 0, len(typed))
		for _, element := range typed {
			if s, ok := element.(string); ok {
				elements = append(elements, s)
				continue
			}

			elements = append(elements, fmt.Sprintf("%v", element))
		}

		return elements
	default:
		return nil
	}
}

// SortedKeys returns all keys in sorted order, for deterministic iteration.
func (r RawConfig) SortedKeys() []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
