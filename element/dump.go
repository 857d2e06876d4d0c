package element

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"uitree/utils/debug"
)

// Dump returns readable indented representation of the element tree with
// applied style operations in order.
func Dump(e Element) string {
	tw := debug.NewTreeWriter()
	dumpElement(tw, 0, e)
	return tw.String()
}

func dumpElement(tw *debug.TreeWriter, depth int, e Element) {
	switch el := e.(type) {
	case *Image:
		tw.Line(depth, "%s src=%q", el.Kind(), el.Src)
	case *Vector:
		tw.Line(depth, "%s path=%q", el.Kind(), el.Path)
	default:
		tw.Line(depth, "%s", e.Kind())
	}
	tw.List(depth+1, "style", opStrings(e))

	c, ok := e.(*Container)
	if !ok {
		return
	}
	for _, ch := range c.Children {
		switch v := ch.(type) {
		case Text:
			tw.TextBlock(depth+1, "text", string(v))
		case Element:
			dumpElement(tw, depth+1, v)
		}
	}
}

func opStrings(e Element) []string {
	ops := e.Styles().Ops
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.String())
	}
	return out
}

// ToXML builds XML document for the element tree. Style operations become
// attributes of the element in application order, repeated operation keeps
// the last value.
func ToXML(e Element) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	appendElement(&doc.Element, e)
	return doc
}

// WriteXML writes indented XML representation of the element tree to w.
func WriteXML(w io.Writer, e Element) error {
	doc := ToXML(e)
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write xml: %w", err)
	}
	return nil
}

func appendElement(parent *etree.Element, e Element) {
	x := parent.CreateElement(e.Kind())
	switch el := e.(type) {
	case *Image:
		x.CreateAttr("src", el.Src)
	case *Vector:
		x.CreateAttr("path", el.Path)
	}
	for _, op := range e.Styles().Ops {
		key := op.Name
		if op.Target != "" {
			key += "." + op.Target
		}
		x.CreateAttr(xmlName(key), op.Value)
	}

	c, ok := e.(*Container)
	if !ok {
		return
	}
	for _, ch := range c.Children {
		switch v := ch.(type) {
		case Text:
			x.CreateElement("text").SetText(string(v))
		case Element:
			appendElement(x, v)
		}
	}
}

// xmlName makes attribute name from operation name and target mask.
func xmlName(key string) string {
	b := []byte(key)
	for i, c := range b {
		if c == '|' {
			b[i] = '_'
		}
	}
	return string(b)
}
