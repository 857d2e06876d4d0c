// Package element holds visual element tree produced from parsed markup and
// the renderer building it.
package element

import (
	"uitree/style"
)

// Child is anything which could be placed into Container: another Element or
// literal Text.
type Child interface {
	child()
}

// Element is one of *Container, *Image or *Vector. Every element carries its
// own style state and accepts style mutations.
type Element interface {
	Child
	style.Styler
	Kind() string
	Styles() *style.Style
}

// Text is literal text child.
type Text string

func (Text) child() {}

// Container is a box holding ordered children.
type Container struct {
	style.Style
	Children []Child
}

func (*Container) child()                 {}
func (*Container) Kind() string           { return "container" }
func (c *Container) Styles() *style.Style { return &c.Style }

// Append adds children after already present ones.
func (c *Container) Append(children ...Child) {
	c.Children = append(c.Children, children...)
}

// Image is raster image referenced by source.
type Image struct {
	style.Style
	Src string
}

func (*Image) child()                 {}
func (*Image) Kind() string           { return "image" }
func (i *Image) Styles() *style.Style { return &i.Style }

// Vector is vector graphic referenced by path.
type Vector struct {
	style.Style
	Path string
}

func (*Vector) child()                 {}
func (*Vector) Kind() string           { return "vector" }
func (v *Vector) Styles() *style.Style { return &v.Style }

var (
	_ Element = (*Container)(nil)
	_ Element = (*Image)(nil)
	_ Element = (*Vector)(nil)
)

// Count returns number of elements in the tree rooted at e, text children are
// not counted.
func Count(e Element) int {
	n := 1
	if c, ok := e.(*Container); ok {
		for _, ch := range c.Children {
			if el, ok := ch.(Element); ok {
				n += Count(el)
			}
		}
	}
	return n
}
