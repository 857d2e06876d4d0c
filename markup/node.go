package markup

import "strings"

// ErrorTag is the tag of the sentinel node returned when document produced
// no element at all.
const ErrorTag = "error"

// Node is a single parsed element. Children are kept in document order and
// every node is owned by exactly one parent.
type Node struct {
	Tag      string
	Text     *string
	Attrs    []Attr
	Children []*Node
}

// ErrorNode returns diagnostic placeholder used instead of an empty result.
func ErrorNode() *Node {
	text := ErrorTag
	return &Node{Tag: ErrorTag, Text: &text}
}

func newNode(ev Event) *Node {
	return &Node{Tag: ev.Name, Attrs: ev.Attrs}
}

// IsError reports whether node is the sentinel produced by ErrorNode.
func (n *Node) IsError() bool {
	return n != nil && n.Tag == ErrorTag && len(n.Children) == 0 && n.Text != nil && *n.Text == ErrorTag
}

// Attr returns value of the first attribute with requested name.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Classes splits value of the class attribute into tokens.
func (n *Node) Classes() []string {
	if v, ok := n.Attr("class"); ok {
		return strings.Fields(v)
	}
	return nil
}

// Count returns number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	count := 1
	for _, c := range n.Children {
		count += c.Count()
	}
	return count
}
