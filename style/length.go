package style

import (
	"strconv"
	"strings"
)

// ParseLength reads arbitrary length from class suffix: "4px", "2.5rem" or
// bracketed "[4px]". Magnitude is the leading run of digits with at most one
// decimal point, the rest is the unit. Unknown unit or missing magnitude
// yields zero pixels.
func ParseLength(s string) Length {
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}

	end, dot := 0, false
	for end < len(s) {
		c := s[end]
		if c == '.' && !dot {
			dot = true
		} else if c < '0' || c > '9' {
			break
		}
		end++
	}

	v, err := strconv.ParseFloat(s[:end], 32)
	if err != nil {
		return Px(0)
	}
	switch s[end:] {
	case "px":
		return Px(float32(v))
	case "rem":
		return Rems(float32(v))
	default:
		return Px(0)
	}
}
