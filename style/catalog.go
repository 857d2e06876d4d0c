package style

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
)

// Recognized utility class vocabulary. The table is assembled once from the
// ordered list of categories below and only read afterwards.

var (
	spacingSteps   = []string{"0", "1", "2", "3", "4", "5", "6", "8", "10", "12", "16", "20", "24", "32", "40", "48", "56", "64", "72", "80", "96"}
	insetFractions = []string{"1/2", "1/3", "2/3", "1/4", "2/4", "3/4", "1/5", "2/5", "3/5"}
	sizeFractions  = slices.Concat(insetFractions, []string{"4/5", "1/6", "5/6", "1/12"})
	sizeSteps      = slices.Concat([]string{"0", "0.5", "1", "1.5", "2", "2.5", "3", "3.5"}, spacingSteps[4:])
	borderSteps    = []string{"0", "1", "2", "3", "4", "5", "6", "8", "10", "12", "16", "20", "24", "32"}
	auto           = []string{"auto"}
	full           = []string{"full"}
)

var radiusSteps = []struct {
	name  string
	value Length
}{
	{"none", Px(0)},
	{"sm", Rems(0.125)},
	{"md", Rems(0.375)},
	{"lg", Rems(0.5)},
	{"xl", Rems(0.75)},
	{"2xl", Rems(1)},
	{"3xl", Rems(1.5)},
	{"full", Px(9999)},
}

var textSizes = []struct {
	name  string
	value Length
}{
	{"xs", Rems(0.75)},
	{"sm", Rems(0.875)},
	{"base", Rems(1)},
	{"lg", Rems(1.125)},
	{"xl", Rems(1.25)},
	{"2xl", Rems(1.5)},
	{"3xl", Rems(1.875)},
}

var fontWeights = []struct {
	name  string
	value FontWeight
}{
	{"thin", FontWeightThin},
	{"extralight", FontWeightExtraLight},
	{"light", FontWeightLight},
	{"normal", FontWeightNormal},
	{"medium", FontWeightMedium},
	{"semibold", FontWeightSemibold},
	{"bold", FontWeightBold},
	{"extrabold", FontWeightExtraBold},
	{"black", FontWeightBlack},
}

var sideEdges = []struct {
	code  string
	edges Edges
}{
	{"", EdgesAll},
	{"x", EdgesX},
	{"y", EdgesY},
	{"t", EdgeTop},
	{"r", EdgeRight},
	{"b", EdgeBottom},
	{"l", EdgeLeft},
}

var cornerSides = []struct {
	code    string
	corners Corners
}{
	{"", CornersAll},
	{"t", CornersTop},
	{"r", CornersRight},
	{"b", CornersBottom},
	{"l", CornersLeft},
	{"tl", CornerTopLeft},
	{"tr", CornerTopRight},
	{"br", CornerBottomRight},
	{"bl", CornerBottomLeft},
}

type entry struct {
	token    string
	mutation Mutation
}

type category struct {
	name    string
	entries []entry
}

// scaleValue converts step of the spacing scale into length: numeric step n is
// n/4 rem, "a/b" and "full" are fractions of the parent.
func scaleValue(step string) Length {
	switch step {
	case "auto":
		return Auto()
	case "full":
		return Fraction(1)
	}
	if num, den, ok := strings.Cut(step, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 32)
		d, err2 := strconv.ParseFloat(den, 32)
		if err1 != nil || err2 != nil || d == 0 {
			panic(fmt.Sprintf("bad fraction in catalogue: %q", step))
		}
		return Fraction(float32(n / d))
	}
	v, err := strconv.ParseFloat(step, 32)
	if err != nil {
		panic(fmt.Sprintf("bad step in catalogue: %q", step))
	}
	return Rems(float32(v) / 4)
}

func scaled(prefix string, steps []string, set func(Length) Mutation) []entry {
	out := make([]entry, 0, len(steps))
	for _, step := range steps {
		out = append(out, entry{prefix + step, set(scaleValue(step))})
	}
	return out
}

func named[T any](prefix string, values []string, consts []T, set func(T) Mutation) []entry {
	out := make([]entry, 0, len(values))
	for i, v := range values {
		out = append(out, entry{prefix + v, set(consts[i])})
	}
	return out
}

func inset(e Edges) func(Length) Mutation {
	return func(l Length) Mutation { return func(s Styler) { s.SetInset(e, l) } }
}

func margin(e Edges) func(Length) Mutation {
	return func(l Length) Mutation { return func(s Styler) { s.SetMargin(e, l) } }
}

func padding(e Edges) func(Length) Mutation {
	return func(l Length) Mutation { return func(s Styler) { s.SetPadding(e, l) } }
}

func size(d Dimension) func(Length) Mutation {
	return func(l Length) Mutation { return func(s Styler) { s.SetSize(d, l) } }
}

func borderWidth(e Edges, l Length) Mutation {
	return func(s Styler) { s.SetBorderWidth(e, l) }
}

func cornerRadius(c Corners, l Length) Mutation {
	return func(s Styler) { s.SetCornerRadius(c, l) }
}

func display(d Display) Mutation {
	return func(s Styler) { s.SetDisplay(d) }
}

func position(p Position) Mutation {
	return func(s Styler) { s.SetPosition(p) }
}

func alignContent(a Align) Mutation {
	return func(s Styler) { s.SetAlignContent(a) }
}

func alignItems(a Align) Mutation {
	return func(s Styler) { s.SetAlignItems(a) }
}

func justify(a Align) Mutation {
	return func(s Styler) { s.SetJustifyContent(a) }
}

func buildCatalogue() []category {
	var cats []category
	add := func(name string, entries ...[]entry) {
		cats = append(cats, category{name: name, entries: slices.Concat(entries...)})
	}

	add("flex", []entry{
		{"flex", display(DisplayFlex)},
		{"flex-grow", func(s Styler) { s.SetFlexGrow(1) }},
		{"flex-shrink", func(s Styler) { s.SetFlexShrink(1) }},
		{"flex-shrink-0", func(s Styler) { s.SetFlexShrink(0) }},
	})
	add("flex-wrap",
		named("flex-", []string{"wrap", "wrap-reverse", "nowrap"}, []FlexWrap{FlexWrapWrap, FlexWrapWrapReverse, FlexWrapNowrap},
			func(w FlexWrap) Mutation { return func(s Styler) { s.SetFlexWrap(w) } }))
	add("align-content",
		named("content-", []string{"normal", "center", "start", "end", "between", "around", "evenly", "stretch"},
			[]Align{AlignNormal, AlignCenter, AlignStart, AlignEnd, AlignSpaceBetween, AlignSpaceAround, AlignSpaceEvenly, AlignStretch},
			alignContent))
	add("layout", []entry{
		{"block", display(DisplayBlock)},
		{"absolute", position(PositionAbsolute)},
		{"relative", position(PositionRelative)},
		{"visible", func(s Styler) { s.SetVisibility(VisibilityVisible) }},
		{"invisible", func(s Styler) { s.SetVisibility(VisibilityInvisible) }},
		{"overflow-hidden", func(s Styler) { s.SetOverflow(AxisBoth, OverflowHidden) }},
		{"overflow-x-hidden", func(s Styler) { s.SetOverflow(AxisX, OverflowHidden) }},
		{"overflow-y-hidden", func(s Styler) { s.SetOverflow(AxisY, OverflowHidden) }},
	})
	add("align-items",
		named("items-", []string{"start", "end", "center"}, []Align{AlignStart, AlignEnd, AlignCenter}, alignItems))

	insetSteps := slices.Concat(spacingSteps, auto, full, insetFractions)
	add("top", scaled("top-", insetSteps, inset(EdgeTop)))
	add("right", scaled("right-", insetSteps, inset(EdgeRight)))
	add("bottom", scaled("bottom-", insetSteps, inset(EdgeBottom)))
	add("left", scaled("left-", insetSteps, inset(EdgeLeft)))

	cursorNames := CursorNames()
	cursors := make([]Cursor, len(cursorNames))
	for i := range cursors {
		cursors[i] = Cursor(i)
	}
	add("cursor", named("cursor-", cursorNames, cursors,
		func(c Cursor) Mutation { return func(s Styler) { s.SetCursor(c) } }))

	add("justify",
		named("justify-", []string{"center", "between", "around", "start", "end"},
			[]Align{AlignCenter, AlignSpaceBetween, AlignSpaceAround, AlignStart, AlignEnd}, justify))

	direction := func(d FlexDirection) Mutation { return func(s Styler) { s.SetFlexDirection(d) } }
	flex := func(grow, shrink float32, basis Length) Mutation {
		return func(s Styler) { s.SetFlex(grow, shrink, basis) }
	}
	add("flex-direction", []entry{
		{"flex-col", direction(FlexDirectionColumn)},
		{"flex-row", direction(FlexDirectionRow)},
		{"flex-col_reverse", direction(FlexDirectionColumnReverse)},
		{"flex-row_reverse", direction(FlexDirectionRowReverse)},
		{"flex-col-reverse", direction(FlexDirectionColumnReverse)},
		{"flex-row-reverse", direction(FlexDirectionRowReverse)},
		{"flex-1", flex(1, 1, Fraction(0))},
		{"flex-auto", flex(1, 1, Auto())},
		{"flex-initial", flex(0, 1, Auto())},
		{"flex-none", flex(0, 0, Auto())},
	})

	add("shadow", named("shadow-", ShadowNames()[1:], []Shadow{ShadowSm, ShadowMd, ShadowLg, ShadowXl, Shadow2xl},
		func(sh Shadow) Mutation { return func(s Styler) { s.SetShadow(sh) } }))

	boxSteps := slices.Concat(spacingSteps, auto, full, sizeFractions)
	add("height", scaled("h-", boxSteps, size(Height)))
	add("width", scaled("w-", boxSteps, size(Width)))
	add("min-max",
		scaled("min-h-", []string{"0", "full"}, size(MinHeight)),
		scaled("min-w-", []string{"0", "full"}, size(MinWidth)),
		scaled("max-h-", []string{"0", "full"}, size(MaxHeight)),
		scaled("max-w-", []string{"0", "full"}, size(MaxWidth)),
	)

	paddingSteps := slices.Concat(spacingSteps, full, sizeFractions)
	for _, side := range sideEdges {
		add("padding", scaled("p"+side.code+"-", paddingSteps, padding(side.edges)))
	}
	for _, side := range sideEdges {
		add("margin", scaled("m"+side.code+"-", boxSteps, margin(side.edges)))
	}

	borders := func(prefix string, e Edges) []entry {
		out := []entry{{prefix, borderWidth(e, Px(1))}}
		for _, step := range borderSteps {
			v, _ := strconv.ParseFloat(step, 32)
			out = append(out, entry{prefix + "-" + step, borderWidth(e, Px(float32(v)))})
		}
		return out
	}
	add("border", borders("border", EdgesAll))
	for _, side := range sideEdges[3:] {
		add("border-width", borders("border-"+side.code, side.edges))
	}

	for _, side := range cornerSides {
		prefix := "rounded-"
		if side.code != "" {
			prefix += side.code + "-"
		}
		entries := make([]entry, 0, len(radiusSteps))
		for _, step := range radiusSteps {
			entries = append(entries, entry{prefix + step.name, cornerRadius(side.corners, step.value)})
		}
		add("border-radius", entries)
	}

	weights := make([]entry, 0, len(fontWeights))
	for _, fw := range fontWeights {
		weights = append(weights, entry{"font-" + fw.name, func(s Styler) { s.SetFontWeight(fw.value) }})
	}
	add("font", weights)

	texts := make([]entry, 0, len(textSizes))
	for _, ts := range textSizes {
		texts = append(texts, entry{"text-" + ts.name, func(s Styler) { s.SetTextSize(ts.value) }})
	}
	add("text", texts)

	add("size", scaled("size-", slices.Concat(sizeSteps, sizeFractions, full, auto), size(Width|Height)))

	return cats
}

var (
	catalogue  = buildCatalogue()
	exactTable = buildTable(catalogue)
)

func buildTable(cats []category) map[string]Mutation {
	table := make(map[string]Mutation, 1024)
	for _, c := range cats {
		for _, e := range c.entries {
			if _, exists := table[e.token]; exists {
				panic(fmt.Sprintf("duplicate utility class in catalogue: %q", e.token))
			}
			table[e.token] = e.mutation
		}
	}
	return table
}

// Tokens returns every utility class recognized by exact match, in natural
// order. If prefix is not empty only matching classes are returned.
func Tokens(prefix string) []string {
	tokens := make([]string, 0, len(exactTable))
	for token := range exactTable {
		if strings.HasPrefix(token, prefix) {
			tokens = append(tokens, token)
		}
	}
	sort.Sort(natural.StringSlice(tokens))
	return tokens
}
