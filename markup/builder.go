package markup

// EventSource is anything producing structural events, Reader in particular.
type EventSource interface {
	Next() (Event, error)
}

// Parse builds node tree from a complete UTF-8 document.
func Parse(data []byte) (*Node, error) {
	return Build(NewReader(data))
}

// Build consumes events until end of document and returns the root node.
//
// Unfinished elements are kept on a stack, innermost last. Closing an element
// attaches it to its parent, but the last remaining frame is never popped by
// a close event: it becomes the result at the end of the document, so the
// root end tag is optional. A self-closing element seen with an empty stack
// is remembered and becomes the result only if nothing else is left. If there
// is no result at all ErrorNode is returned. Errors from the source abort
// building.
func Build(src EventSource) (*Node, error) {
	var (
		stack     []*Node
		candidate *Node
	)
	for {
		ev, err := src.Next()
		if err != nil {
			return nil, err
		}

		switch ev.Kind {
		case EventStart:
			stack = append(stack, newNode(ev))

		case EventEmpty:
			n := newNode(ev)
			if len(stack) == 0 {
				candidate = n
				continue
			}
			top := stack[len(stack)-1]
			top.Children = append(top.Children, n)

		case EventEnd:
			if len(stack) > 1 {
				n := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				top := stack[len(stack)-1]
				top.Children = append(top.Children, n)
			}

		case EventText:
			if len(stack) > 0 {
				text := ev.Text
				stack[len(stack)-1].Text = &text
			}

		case EventEOF:
			switch {
			case len(stack) > 0:
				return stack[len(stack)-1], nil
			case candidate != nil:
				return candidate, nil
			default:
				return ErrorNode(), nil
			}
		}
	}
}
