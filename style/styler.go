package style

import "fmt"

// Styler is the set of style mutations utility classes are translated into.
// Every visual element implements it.
type Styler interface {
	SetBackground(c Color)
	SetTextColor(c Color)
	SetBorderColor(c Color)
	SetCornerRadius(corners Corners, l Length)
	SetBorderWidth(edges Edges, l Length)
	SetFont(name string)
	SetFontWeight(w FontWeight)
	SetTextSize(l Length)
	SetDisplay(d Display)
	SetFlexDirection(d FlexDirection)
	SetFlexWrap(w FlexWrap)
	SetFlex(grow, shrink float32, basis Length)
	SetFlexGrow(grow float32)
	SetFlexShrink(shrink float32)
	SetPosition(p Position)
	SetVisibility(v Visibility)
	SetOverflow(axis Axis, o Overflow)
	SetAlignItems(a Align)
	SetAlignContent(a Align)
	SetJustifyContent(a Align)
	SetInset(edges Edges, l Length)
	SetMargin(edges Edges, l Length)
	SetPadding(edges Edges, l Length)
	SetSize(dims Dimension, l Length)
	SetCursor(c Cursor)
	SetShadow(s Shadow)
}

// Mutation is a single resolved style change.
type Mutation func(Styler)

// Op records applied mutation: operation name, optional target and value.
type Op struct {
	Name   string
	Target string
	Value  string
}

func (o Op) String() string {
	if o.Target == "" {
		return fmt.Sprintf("%s=%s", o.Name, o.Value)
	}
	return fmt.Sprintf("%s(%s)=%s", o.Name, o.Target, o.Value)
}

// Style is the accumulated style state of a single element. Zero value has
// nothing applied. Every mutation is appended to Ops in application order.
type Style struct {
	Background     Color
	TextColor      Color
	BorderColor    Color
	CornerRadius   [4]Length // top-left, top-right, bottom-right, bottom-left
	BorderWidth    [4]Length // top, right, bottom, left
	Font           string
	FontWeight     FontWeight
	TextSize       Length
	Display        Display
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	FlexGrow       float32
	FlexShrink     float32
	FlexBasis      Length
	Position       Position
	Visibility     Visibility
	Overflow       [2]Overflow // x, y
	AlignItems     Align
	AlignContent   Align
	JustifyContent Align
	Inset          [4]Length // top, right, bottom, left
	Margin         [4]Length
	Padding        [4]Length
	Size           [6]Length // indexed as Dimension bits
	Cursor         Cursor
	Shadow         Shadow

	Ops []Op
}

var _ Styler = (*Style)(nil)

func (s *Style) record(name string, target fmt.Stringer, value fmt.Stringer) {
	op := Op{Name: name, Value: value.String()}
	if target != nil {
		op.Target = target.String()
	}
	s.Ops = append(s.Ops, op)
}

// Count returns how many times operation with given name was applied.
func (s *Style) Count(name string) int {
	n := 0
	for _, op := range s.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// setMasked assigns value to every slot selected by mask bits.
func setMasked(dst []Length, mask uint8, l Length) {
	for i := range dst {
		if mask&(1<<i) != 0 {
			dst[i] = l
		}
	}
}

type stringer string

func (s stringer) String() string { return string(s) }

type float float32

func (f float) String() string { return fmt.Sprintf("%g", float32(f)) }

func (s *Style) SetBackground(c Color) {
	s.Background = c
	s.record("background", nil, c)
}

func (s *Style) SetTextColor(c Color) {
	s.TextColor = c
	s.record("text-color", nil, c)
}

func (s *Style) SetBorderColor(c Color) {
	s.BorderColor = c
	s.record("border-color", nil, c)
}

func (s *Style) SetCornerRadius(corners Corners, l Length) {
	setMasked(s.CornerRadius[:], uint8(corners), l)
	s.record("corner-radius", corners, l)
}

func (s *Style) SetBorderWidth(edges Edges, l Length) {
	setMasked(s.BorderWidth[:], uint8(edges), l)
	s.record("border-width", edges, l)
}

func (s *Style) SetFont(name string) {
	s.Font = name
	s.record("font", nil, stringer(name))
}

func (s *Style) SetFontWeight(w FontWeight) {
	s.FontWeight = w
	s.record("font-weight", nil, w)
}

func (s *Style) SetTextSize(l Length) {
	s.TextSize = l
	s.record("text-size", nil, l)
}

func (s *Style) SetDisplay(d Display) {
	s.Display = d
	s.record("display", nil, d)
}

func (s *Style) SetFlexDirection(d FlexDirection) {
	s.FlexDirection = d
	s.record("flex-direction", nil, d)
}

func (s *Style) SetFlexWrap(w FlexWrap) {
	s.FlexWrap = w
	s.record("flex-wrap", nil, w)
}

func (s *Style) SetFlex(grow, shrink float32, basis Length) {
	s.FlexGrow, s.FlexShrink, s.FlexBasis = grow, shrink, basis
	s.record("flex", nil, stringer(fmt.Sprintf("%g %g %s", grow, shrink, basis)))
}

func (s *Style) SetFlexGrow(grow float32) {
	s.FlexGrow = grow
	s.record("flex-grow", nil, float(grow))
}

func (s *Style) SetFlexShrink(shrink float32) {
	s.FlexShrink = shrink
	s.record("flex-shrink", nil, float(shrink))
}

func (s *Style) SetPosition(p Position) {
	s.Position = p
	s.record("position", nil, p)
}

func (s *Style) SetVisibility(v Visibility) {
	s.Visibility = v
	s.record("visibility", nil, v)
}

func (s *Style) SetOverflow(axis Axis, o Overflow) {
	if axis&AxisX != 0 {
		s.Overflow[0] = o
	}
	if axis&AxisY != 0 {
		s.Overflow[1] = o
	}
	s.record("overflow", axis, o)
}

func (s *Style) SetAlignItems(a Align) {
	s.AlignItems = a
	s.record("align-items", nil, a)
}

func (s *Style) SetAlignContent(a Align) {
	s.AlignContent = a
	s.record("align-content", nil, a)
}

func (s *Style) SetJustifyContent(a Align) {
	s.JustifyContent = a
	s.record("justify-content", nil, a)
}

func (s *Style) SetInset(edges Edges, l Length) {
	setMasked(s.Inset[:], uint8(edges), l)
	s.record("inset", edges, l)
}

func (s *Style) SetMargin(edges Edges, l Length) {
	setMasked(s.Margin[:], uint8(edges), l)
	s.record("margin", edges, l)
}

func (s *Style) SetPadding(edges Edges, l Length) {
	setMasked(s.Padding[:], uint8(edges), l)
	s.record("padding", edges, l)
}

func (s *Style) SetSize(dims Dimension, l Length) {
	setMasked(s.Size[:], uint8(dims), l)
	s.record("size", dims, l)
}

func (s *Style) SetCursor(c Cursor) {
	s.Cursor = c
	s.record("cursor", nil, c)
}

func (s *Style) SetShadow(sh Shadow) {
	s.Shadow = sh
	s.record("shadow", nil, sh)
}
