package table

import (
	"fmt"
	"strings"
)

// Alignment specifies horizontal text alignment within a column.
type Alignment uint8

const (
	// AlignNone means no explicit alignment; the table default applies.
	AlignNone Alignment = iota
	// AlignLeft left-justifies cell text.
	AlignLeft
	// AlignRight right-justifies cell text.
	AlignRight
	// AlignCenter centers cell text.
	AlignCenter
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler for configuration files.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for configuration files.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAlignment converts a configuration string to an Alignment.
// The empty string maps to AlignNone.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AlignNone, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	default:
		return AlignNone, fmt.Errorf("unknown alignment %q", s)
	}
}
