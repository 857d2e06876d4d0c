package style

//go:generate go tool go-enum --names

// Unit of a Length. Fraction is relative to the parent, 1 is 100%, value of
// auto is ignored.
// ENUM(px, rem, fraction, auto)
type Unit int

// ENUM(block, flex)
type Display int

// ENUM(row, column, row-reverse, column-reverse)
type FlexDirection int

// ENUM(nowrap, wrap, wrap-reverse)
type FlexWrap int

// ENUM(relative, absolute)
type Position int

// ENUM(visible, invisible)
type Visibility int

// ENUM(visible, hidden)
type Overflow int

// Align is used for items, content and justify alignment.
// ENUM(normal, start, end, center, space-between, space-around, space-evenly, stretch)
type Align int

// Mouse cursor shown over the element.
// ENUM(default, pointer, text, move, not-allowed, context-menu, crosshair, vertical-text, alias, copy, no-drop, grab, grabbing, col-resize, row-resize, n-resize, e-resize, s-resize, w-resize)
type Cursor int

// Shadow is elevation step.
// ENUM(none, sm, md, lg, xl, 2xl)
type Shadow int
