package style

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorError reports malformed hex color literal.
type ColorError struct {
	Literal string
	Reason  string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("malformed color %q: %s", e.Literal, e.Reason)
}

// ParseHex parses #RRGGBB or #RRGGBBAA (leading # is optional). Alpha is
// fully opaque when omitted.
func ParseHex(literal string) (Color, error) {
	hex := strings.TrimPrefix(literal, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, &ColorError{Literal: literal, Reason: fmt.Sprintf("expected 6 or 8 hex digits, got %d", len(hex))}
	}

	var ch [4]uint8
	ch[3] = 0xff
	for i := 0; i < len(hex); i += 2 {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return Color{}, &ColorError{Literal: literal, Reason: fmt.Sprintf("bad digits %q", hex[i:i+2])}
		}
		ch[i/2] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}
