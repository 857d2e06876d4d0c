package debug

import (
	"bytes"
	"testing"
)

func TestNewTreeWriter(t *testing.T) {
	tw := NewTreeWriter()
	if tw == nil {
		t.Fatal("NewTreeWriter() returned nil")
	}
	if tw.w == nil {
		t.Error("TreeWriter builder is nil")
	}
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{
			name:   "no depth",
			depth:  0,
			format: "test",
			want:   "test\n",
		},
		{
			name:   "depth 2",
			depth:  2,
			format: "double indent",
			want:   "    double indent\n",
		},
		{
			name:   "with formatting",
			depth:  1,
			format: "%s children=%d",
			args:   []any{"div", 3},
			want:   "  div children=3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{"empty value", 0, "text", "", "text: \n"},
		{"plain value", 1, "text", "hello", "  text: \"hello\"\n"},
		{"value with quotes", 0, "q", `say "hi"`, "q: \"say \\\"hi\\\"\"\n"},
		{"value with newline", 0, "m", "a\nb", "m: \"a\\nb\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_List(t *testing.T) {
	tw := NewTreeWriter()
	tw.List(1, "ops", []string{"display", "padding"})
	tw.List(1, "empty", nil)

	want := "  ops: [display padding]\n"
	if got := tw.String(); got != want {
		t.Errorf("List() = %q, want %q", got, want)
	}
}

func TestTreeWriter_WithIndent(t *testing.T) {
	tw := NewTreeWriter().WithIndent("\t")
	tw.Line(0, "root")
	tw.Line(2, "leaf")

	want := "root\n\t\tleaf\n"
	if got := tw.String(); got != want {
		t.Errorf("WithIndent() = %q, want %q", got, want)
	}
}

func TestTreeWriter_WriteTo(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "root")
	tw.TextBlock(1, "text", "x")

	var buf bytes.Buffer
	n, err := tw.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d, buffer has %d", n, buf.Len())
	}
	if buf.String() != tw.String() {
		t.Errorf("WriteTo() wrote %q, want %q", buf.String(), tw.String())
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"hello", `"hello"`},
		{"col1\tcol2", `"col1\tcol2"`},
		{`path\to`, `"path\\to"`},
	}

	for _, tt := range tests {
		if got := encodeText(tt.input); got != tt.want {
			t.Errorf("encodeText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
