package debug

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TreeWriter accumulates an indented, line oriented representation of a
// tree. Used by all debug dumps in the program.
type TreeWriter struct {
	w      *strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w:      &strings.Builder{},
		indent: "  ",
	}
}

// WithIndent changes string used for a single level of nesting.
func (tw *TreeWriter) WithIndent(indent string) *TreeWriter {
	tw.indent = indent
	return tw
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

// WriteTo implements io.WriterTo.
func (tw *TreeWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, tw.w.String())
	return int64(n), err
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes label and quoted value, control characters in value are escaped.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// List writes label followed by space separated items on a single line.
// Nothing is written for empty list.
func (tw *TreeWriter) List(depth int, label string, items []string) {
	if len(items) == 0 {
		return
	}
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": [")
	tw.w.WriteString(strings.Join(items, " "))
	tw.w.WriteString("]\n")
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
