package config

import "fmt"

const defaultIndentWidth = 4

// IndentationStyle describes the indentation unit rules should assume when
// measuring source code.
type IndentationStyle struct {
	// UseTabs indicates one tab per indentation level.
	UseTabs bool

	// Width is the number of spaces per level when UseTabs is false.
	Width int
}

// DefaultIndentation is used when the configuration does not specify an
// indentation style or specifies one that cannot be parsed.
var DefaultIndentation = IndentationStyle{Width: defaultIndentWidth}

// String implements fmt.Stringer.
func (s IndentationStyle) String() string {
	if s.UseTabs {
		return "tabs"
	}

	return fmt.Sprintf("%d spaces", s.Width)
}

// ParseIndentation parses a raw indentation value: the string "tabs" or a
// positive integer number of spaces. It reports false for anything else,
// including non-integral or non-positive numbers.
func ParseIndentation(value any) (IndentationStyle, bool) {
	switch typed := value.(type) {
	case string:
		if typed == "tabs" {
			return IndentationStyle{UseTabs: true}, true
		}
	case int:
		return spacesIndentation(int64(typed))
	case int64:
		return spacesIndentation(typed)
	case float64:
		if typed == float64(int64(typed)) {
			return spacesIndentation(int64(typed))
		}
	}

	return IndentationStyle{}, false
}

func spacesIndentation(width int64) (IndentationStyle, bool) {
	if width <= 0 {
		return IndentationStyle{}, false
	}

	return IndentationStyle{Width: int(width)}, true
}
