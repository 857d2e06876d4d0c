package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Length is a single dimension value.
type Length struct {
	Value float32
	Unit  Unit
}

func Px(v float32) Length {
	return Length{Value: v, Unit: UnitPx}
}

func Rems(v float32) Length {
	return Length{Value: v, Unit: UnitRem}
}

func Fraction(v float32) Length {
	return Length{Value: v, Unit: UnitFraction}
}

func Auto() Length {
	return Length{Unit: UnitAuto}
}

func (l Length) String() string {
	num := strconv.FormatFloat(float64(l.Value), 'f', -1, 32)
	switch l.Unit {
	case UnitPx:
		return num + "px"
	case UnitRem:
		return num + "rem"
	case UnitFraction:
		return strconv.FormatFloat(float64(l.Value)*100, 'f', -1, 32) + "%"
	case UnitAuto:
		return "auto"
	default:
		return fmt.Sprintf("%s(unit %d)", num, int(l.Unit))
	}
}

// Color is 8 bit per channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// bitmask targets: edges, corners, dimensions and axes

// Edges selects sides of a box.
type Edges uint8

const (
	EdgeTop Edges = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	EdgesX   = EdgeLeft | EdgeRight
	EdgesY   = EdgeTop | EdgeBottom
	EdgesAll = EdgesX | EdgesY
)

var edgeNames = []string{"top", "right", "bottom", "left"}

func (e Edges) String() string {
	return maskString(uint8(e), edgeNames)
}

// Corners selects corners of a box.
type Corners uint8

const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft

	CornersTop    = CornerTopLeft | CornerTopRight
	CornersRight  = CornerTopRight | CornerBottomRight
	CornersBottom = CornerBottomLeft | CornerBottomRight
	CornersLeft   = CornerTopLeft | CornerBottomLeft
	CornersAll    = CornersTop | CornersBottom
)

var cornerNames = []string{"top-left", "top-right", "bottom-right", "bottom-left"}

func (c Corners) String() string {
	return maskString(uint8(c), cornerNames)
}

// Dimension selects size properties.
type Dimension uint8

const (
	Width Dimension = 1 << iota
	Height
	MinWidth
	MinHeight
	MaxWidth
	MaxHeight
)

var dimensionNames = []string{"width", "height", "min-width", "min-height", "max-width", "max-height"}

func (d Dimension) String() string {
	return maskString(uint8(d), dimensionNames)
}

// Axis selects direction of overflow.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY

	AxisBoth = AxisX | AxisY
)

func (a Axis) String() string {
	return maskString(uint8(a), []string{"x", "y"})
}

func maskString(mask uint8, names []string) string {
	var parts []string
	for i, name := range names {
		if mask&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// FontWeight uses CSS numeric weights.
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemibold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

func (w FontWeight) String() string {
	return strconv.Itoa(int(w))
}
