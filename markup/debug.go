package markup

import (
	"fmt"
	"strings"

	"uitree/utils/debug"
)

// String returns readable indented representation of the subtree, used for
// debugging and in debug reports.
func (n *Node) String() string {
	if n == nil {
		return "<nil Node>"
	}
	tw := debug.NewTreeWriter()
	dumpNode(tw, 0, n)
	return tw.String()
}

func dumpNode(tw *debug.TreeWriter, depth int, n *Node) {
	var sb strings.Builder
	sb.WriteString(n.Tag)
	for _, a := range n.Attrs {
		fmt.Fprintf(&sb, " %s=%q", a.Name, a.Value)
	}
	tw.Line(depth, "%s", sb.String())
	if n.Text != nil {
		tw.TextBlock(depth+1, "text", *n.Text)
	}
	for _, c := range n.Children {
		dumpNode(tw, depth+1, c)
	}
}
