package style

import (
	"strings"
)

// rule resolves a family of parameterized utility classes. Rule reports
// ok=false when token does not belong to its family.
type rule struct {
	name    string
	resolve func(e *Engine, token string) (m Mutation, ok bool, err error)
}

// dynamicRules are consulted in order after exact-match lookup fails.
var dynamicRules = []rule{
	{"background", colorRule("bg-[", func(c Color) Mutation { return func(s Styler) { s.SetBackground(c) } })},
	{"text-color", colorRule("text-color-[", func(c Color) Mutation { return func(s Styler) { s.SetTextColor(c) } })},
	{"border-color", colorRule("border-[", func(c Color) Mutation { return func(s Styler) { s.SetBorderColor(c) } })},
	{"rounded", roundedRule},
	{"border", borderRule},
}

func colorRule(prefix string, set func(Color) Mutation) func(*Engine, string) (Mutation, bool, error) {
	return func(_ *Engine, token string) (Mutation, bool, error) {
		rest, found := strings.CutPrefix(token, prefix)
		if !found || !strings.HasPrefix(rest, "#") {
			return nil, false, nil
		}
		literal, closed := strings.CutSuffix(rest, "]")
		if !closed {
			return nil, true, &ColorError{Literal: rest, Reason: "missing closing bracket"}
		}
		c, err := ParseHex(literal)
		if err != nil {
			return nil, true, err
		}
		return set(c), true, nil
	}
}

var roundedSides = map[string]Corners{
	"t":  CornersTop,
	"r":  CornersRight,
	"b":  CornersBottom,
	"l":  CornersLeft,
	"tl": CornerTopLeft,
	"tr": CornerTopRight,
	"br": CornerBottomRight,
	"bl": CornerBottomLeft,
}

var borderSides = map[string]Edges{
	"t": EdgeTop,
	"r": EdgeRight,
	"b": EdgeBottom,
	"l": EdgeLeft,
}

// splitSide separates leading side code from the length text. When the first
// dash separated segment is not a known code the whole suffix is the length.
func splitSide[T any](suffix string, sides map[string]T) (side T, length string, ok bool) {
	if code, rest, found := strings.Cut(suffix, "-"); found {
		if side, ok = sides[code]; ok {
			return side, rest, true
		}
	}
	return side, suffix, false
}

func roundedRule(_ *Engine, token string) (Mutation, bool, error) {
	suffix, found := strings.CutPrefix(token, "rounded-")
	if !found {
		return nil, false, nil
	}
	corners, length, ok := splitSide(suffix, roundedSides)
	if !ok {
		corners = CornersAll
	}
	return cornerRadius(corners, ParseLength(length)), true, nil
}

func borderRule(e *Engine, token string) (Mutation, bool, error) {
	suffix, found := strings.CutPrefix(token, "border-")
	if !found {
		return nil, false, nil
	}
	edges, length, ok := splitSide(suffix, borderSides)
	if ok {
		return borderWidth(edges, ParseLength(length)), true, nil
	}
	if e.radiusFallback {
		return cornerRadius(CornersAll, ParseLength(length)), true, nil
	}
	return borderWidth(EdgesAll, ParseLength(length)), true, nil
}
