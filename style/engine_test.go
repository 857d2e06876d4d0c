package style

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"uitree/markup"
)

func classAttr(class string) []markup.Attr {
	return []markup.Attr{{Name: "class", Value: class}}
}

func resolveInto(t *testing.T, e *Engine, token string) *Style {
	t.Helper()
	m, err := e.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve(%q) error = %v", token, err)
	}
	var s Style
	m(&s)
	return &s
}

func TestEngine_ResolveStatic(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))

	tests := []struct {
		token string
		check func(s *Style) bool
	}{
		{"flex", func(s *Style) bool { return s.Display == DisplayFlex }},
		{"flex-col", func(s *Style) bool { return s.FlexDirection == FlexDirectionColumn }},
		{"flex-col_reverse", func(s *Style) bool { return s.FlexDirection == FlexDirectionColumnReverse }},
		{"flex-row-reverse", func(s *Style) bool { return s.FlexDirection == FlexDirectionRowReverse }},
		{"flex-1", func(s *Style) bool { return s.FlexGrow == 1 && s.FlexShrink == 1 && s.FlexBasis == Fraction(0) }},
		{"flex-none", func(s *Style) bool { return s.FlexGrow == 0 && s.FlexShrink == 0 && s.FlexBasis == Auto() }},
		{"flex-shrink-0", func(s *Style) bool { return s.Ops[0].Value == "0" }},
		{"content-between", func(s *Style) bool { return s.AlignContent == AlignSpaceBetween }},
		{"items-center", func(s *Style) bool { return s.AlignItems == AlignCenter }},
		{"justify-end", func(s *Style) bool { return s.JustifyContent == AlignEnd }},
		{"absolute", func(s *Style) bool { return s.Position == PositionAbsolute }},
		{"invisible", func(s *Style) bool { return s.Visibility == VisibilityInvisible }},
		{"overflow-y-hidden", func(s *Style) bool { return s.Overflow == [2]Overflow{OverflowVisible, OverflowHidden} }},
		{"top-4", func(s *Style) bool { return s.Inset[0] == Rems(1) && s.Inset[1] == Length{} }},
		{"left-1/2", func(s *Style) bool { return s.Inset[3] == Fraction(0.5) }},
		{"cursor-w-resize", func(s *Style) bool { return s.Cursor == CursorWResize }},
		{"shadow-2xl", func(s *Style) bool { return s.Shadow == Shadow2xl }},
		{"h-full", func(s *Style) bool { return s.Size[1] == Fraction(1) }},
		{"w-auto", func(s *Style) bool { return s.Size[0] == Auto() }},
		{"max-w-full", func(s *Style) bool { return s.Size[4] == Fraction(1) }},
		{"p-4", func(s *Style) bool { return s.Padding == [4]Length{Rems(1), Rems(1), Rems(1), Rems(1)} }},
		{"px-2", func(s *Style) bool { return s.Padding == [4]Length{{}, Rems(0.5), {}, Rems(0.5)} }},
		{"mt-auto", func(s *Style) bool { return s.Margin[0] == Auto() }},
		{"my-96", func(s *Style) bool { return s.Margin[0] == Rems(24) && s.Margin[2] == Rems(24) }},
		{"border", func(s *Style) bool { return s.BorderWidth == [4]Length{Px(1), Px(1), Px(1), Px(1)} }},
		{"border-l-8", func(s *Style) bool { return s.BorderWidth[3] == Px(8) && s.BorderWidth[0] == Length{} }},
		{"rounded-full", func(s *Style) bool { return s.CornerRadius[2] == Px(9999) }},
		{"rounded-br-md", func(s *Style) bool { return s.CornerRadius == [4]Length{{}, {}, Rems(0.375), {}} }},
		{"font-semibold", func(s *Style) bool { return s.FontWeight == FontWeightSemibold }},
		{"text-3xl", func(s *Style) bool { return s.TextSize == Rems(1.875) }},
		{"size-0.5", func(s *Style) bool { return s.Size[0] == Rems(0.125) && s.Size[1] == Rems(0.125) }},
		{"size-4", func(s *Style) bool { return s.Size[0] == Rems(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			s := resolveInto(t, e, tt.token)
			if len(s.Ops) != 1 {
				t.Fatalf("expected exactly one mutation, got %v", s.Ops)
			}
			if !tt.check(s) {
				t.Errorf("unexpected style after %q: %+v", tt.token, s)
			}
		})
	}
}

func TestEngine_ResolveDynamic(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))

	tests := []struct {
		token string
		check func(s *Style) bool
	}{
		{"bg-[#FF0000]", func(s *Style) bool { return s.Background == Color{255, 0, 0, 255} }},
		{"text-color-[#00FF0080]", func(s *Style) bool { return s.TextColor == Color{0, 255, 0, 128} }},
		{"border-[#000000]", func(s *Style) bool { return s.BorderColor == Color{0, 0, 0, 255} }},
		{"rounded-7px", func(s *Style) bool { return s.CornerRadius == [4]Length{Px(7), Px(7), Px(7), Px(7)} }},
		{"rounded-t-4px", func(s *Style) bool { return s.CornerRadius == [4]Length{Px(4), Px(4), {}, {}} }},
		{"rounded-bl-[1.5rem]", func(s *Style) bool { return s.CornerRadius == [4]Length{{}, {}, {}, Rems(1.5)} }},
		{"rounded-x-4px", func(s *Style) bool { return s.CornerRadius == [4]Length{} && s.Ops[0].Target == "top-left|top-right|bottom-right|bottom-left" }},
		{"border-t-2px", func(s *Style) bool { return s.BorderWidth == [4]Length{Px(2), {}, {}, {}} }},
		{"border-r-[3rem]", func(s *Style) bool { return s.BorderWidth[1] == Rems(3) }},
		{"border-2px", func(s *Style) bool { return s.BorderWidth == [4]Length{Px(2), Px(2), Px(2), Px(2)} }},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			s := resolveInto(t, e, tt.token)
			if len(s.Ops) != 1 {
				t.Fatalf("expected exactly one mutation, got %v", s.Ops)
			}
			if !tt.check(s) {
				t.Errorf("unexpected style after %q: %+v", tt.token, s)
			}
		})
	}
}

func TestEngine_BorderRadiusFallback(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t), WithBorderRadiusFallback(true))

	s := resolveInto(t, e, "border-2px")
	if s.BorderWidth != [4]Length{} {
		t.Errorf("border width changed: %v", s.BorderWidth)
	}
	if s.CornerRadius != [4]Length{Px(2), Px(2), Px(2), Px(2)} {
		t.Errorf("corner radius = %v", s.CornerRadius)
	}

	// side coded form is not affected
	s = resolveInto(t, e, "border-b-2px")
	if s.BorderWidth[2] != Px(2) {
		t.Errorf("border-b width = %v", s.BorderWidth[2])
	}
}

func TestEngine_ResolveErrors(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))

	if _, err := e.Resolve("totally-bogus"); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("Resolve(totally-bogus) error = %v, want ErrUnknownClass", err)
	}

	for _, token := range []string{"bg-[#ZZZZZZ]", "bg-[#FFF]", "text-color-[#FF0000", "border-[#12345]"} {
		_, err := e.Resolve(token)
		var ce *ColorError
		if !errors.As(err, &ce) {
			t.Errorf("Resolve(%q) error = %v, want *ColorError", token, err)
		}
	}
}

func TestEngine_ApplyOrder(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))

	var s Style
	attrs := []markup.Attr{
		{Name: "class", Value: "  flex   flex-col p-4 "},
		{Name: "font", Value: "Inter"},
		{Name: "class", Value: "hidden-second-class"},
	}
	if err := e.Apply(&s, attrs); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	var names []string
	for _, op := range s.Ops {
		names = append(names, op.Name)
	}
	want := []string{"font", "display", "flex-direction", "padding"}
	if !slices.Equal(names, want) {
		t.Errorf("ops = %v, want %v", names, want)
	}
	if s.Font != "Inter" {
		t.Errorf("font = %q", s.Font)
	}
}

func TestEngine_ApplyExactlyOnce(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))

	var s Style
	if err := e.Apply(&s, classAttr("flex-col")); err != nil {
		t.Fatal(err)
	}
	if n := s.Count("flex-direction"); n != 1 {
		t.Errorf("flex-direction applied %d times, want 1", n)
	}
	if len(s.Ops) != 1 {
		t.Errorf("ops = %v", s.Ops)
	}
}

func TestEngine_ApplyUnknownLeavesStyleUnchanged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := NewEngine(zap.New(core))

	var s Style
	if err := e.Apply(&s, classAttr("totally-bogus")); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !reflect.DeepEqual(s, Style{}) {
		t.Errorf("style changed: %+v", s)
	}

	entries := logs.FilterMessage("Unrecognized class").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].LoggerName != "style" {
		t.Errorf("logger name = %q, want style", entries[0].LoggerName)
	}
	if got := entries[0].ContextMap()["class"]; got != "totally-bogus" {
		t.Errorf("logged class = %v", got)
	}
}

func TestEngine_MalformedColor(t *testing.T) {
	t.Run("degrade", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		e := NewEngine(zap.New(core))

		var s Style
		if err := e.Apply(&s, classAttr("bg-[#XYZXYZ] p-1")); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if s.Count("background") != 0 || s.Count("padding") != 1 {
			t.Errorf("ops = %v", s.Ops)
		}
		if logs.FilterMessage("Malformed color, ignoring").Len() != 1 {
			t.Errorf("expected warning about malformed color, got %v", logs.All())
		}
	})

	t.Run("strict", func(t *testing.T) {
		e := NewEngine(zaptest.NewLogger(t), WithStrictColors(true))

		var s Style
		err := e.Apply(&s, classAttr("p-1 bg-[#XYZXYZ] p-2"))
		var ce *ColorError
		if !errors.As(err, &ce) {
			t.Fatalf("Apply() error = %v, want *ColorError", err)
		}
		if s.Count("padding") != 1 {
			t.Errorf("tokens after failure must not be applied, ops = %v", s.Ops)
		}
	})
}

func TestEngine_Aliases(t *testing.T) {
	aliases := map[string][]string{
		"btn":   {"px-4", "py-2", "rounded-md"},
		"outer": {"btn"},
	}
	e := NewEngine(zaptest.NewLogger(t), WithAliases(aliases))
	aliases["btn"][0] = "mutated"

	var s Style
	if err := e.Apply(&s, classAttr("flex btn")); err != nil {
		t.Fatal(err)
	}
	if s.Count("padding") != 2 || s.Count("corner-radius") != 1 || s.Count("display") != 1 {
		t.Errorf("ops = %v", s.Ops)
	}

	// one level only
	s = Style{}
	if err := e.Apply(&s, classAttr("outer")); err != nil {
		t.Fatal(err)
	}
	if len(s.Ops) != 0 {
		t.Errorf("nested alias expanded: %v", s.Ops)
	}

	if _, ok := e.Aliases("btn"); !ok {
		t.Error("Aliases(btn) not found")
	}
	if !slices.Contains(e.Tokens(), "btn") {
		t.Error("Tokens() does not include alias")
	}
}

func TestEngine_NoClassAttribute(t *testing.T) {
	e := NewEngine(nil)
	var s Style
	if err := e.Apply(&s, []markup.Attr{{Name: "id", Value: "x"}}); err != nil {
		t.Fatal(err)
	}
	if len(s.Ops) != 0 {
		t.Errorf("ops = %v", s.Ops)
	}
}
