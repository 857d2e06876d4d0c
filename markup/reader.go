// Package markup turns raw markup documents into a tree of typed nodes.
//
// Parsing is done in two steps: Reader converts bytes into a stream of
// structural events and Build assembles events into a tree using an explicit
// stack of unfinished elements.
package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"golang.org/x/net/html"
)

// EventKind identifies structural event produced by Reader.
type EventKind int

const (
	EventEOF   EventKind = iota // end of document
	EventStart                  // element open: <div ...>
	EventEnd                    // element close: </div>
	EventEmpty                  // self-closing element: <img .../>
	EventText                   // trimmed, non empty text run
)

func (k EventKind) String() string {
	switch k {
	case EventEOF:
		return "eof"
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	case EventEmpty:
		return "empty"
	case EventText:
		return "text"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Attr is a single attribute, value is already unescaped.
type Attr struct {
	Name  string
	Value string
}

// Event is a single structural event. Name and Attrs are set for element
// events, Text for text runs. Offset is byte position in the input.
type Event struct {
	Kind   EventKind
	Name   string
	Attrs  []Attr
	Text   string
	Offset int
}

// SyntaxError reports malformed input. Always fatal for parsing.
type SyntaxError struct {
	Offset int
	Line   int
	Col    int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("markup: %s at line %d, column %d", e.Msg, e.Line, e.Col)
}

// Reader produces structural events from a complete document held in memory.
// Element names are reduced to lower-cased local names, end names are checked
// against currently open elements, whitespace only text is dropped.
type Reader struct {
	data   []byte
	lex    *xml.Lexer
	offset int
	open   []string
	err    error
}

// NewReader returns reader for the document. Document must be UTF-8.
func NewReader(data []byte) *Reader {
	r := &Reader{
		data: data,
		lex:  xml.NewLexer(parse.NewInput(bytes.NewReader(data))),
	}
	if !utf8.Valid(data) {
		r.err = r.syntaxError(invalidUTF8Offset(data), "invalid UTF-8 sequence")
	}
	return r
}

// Next returns next event. After EventEOF or an error all subsequent calls
// return the same result.
func (r *Reader) Next() (Event, error) {
	if r.err != nil {
		return Event{}, r.err
	}
	for {
		start := r.offset
		tt, data := r.lex.Next()
		r.offset += len(data)

		switch tt {
		case xml.ErrorToken:
			if err := r.lex.Err(); err != nil && !errors.Is(err, io.EOF) {
				return r.fail(start, err.Error())
			}
			return Event{Kind: EventEOF, Offset: start}, nil

		case xml.StartTagToken:
			raw := r.lex.Text()
			if !isName(raw) {
				return r.fail(start, fmt.Sprintf("malformed element name %q", raw))
			}
			return r.startTag(start, localName(raw))

		case xml.EndTagToken:
			name := localName(r.lex.Text())
			if len(r.open) == 0 {
				return r.fail(start, fmt.Sprintf("unexpected end tag </%s>", name))
			}
			if expected := r.open[len(r.open)-1]; expected != name {
				return r.fail(start, fmt.Sprintf("expected </%s>, found </%s>", expected, name))
			}
			r.open = r.open[:len(r.open)-1]
			return Event{Kind: EventEnd, Name: name, Offset: start}, nil

		case xml.TextToken:
			if text := strings.TrimSpace(string(data)); len(text) > 0 {
				return Event{Kind: EventText, Text: html.UnescapeString(text), Offset: start}, nil
			}

		case xml.CDATAToken:
			if text := strings.TrimSpace(string(r.lex.Text())); len(text) > 0 {
				return Event{Kind: EventText, Text: text, Offset: start}, nil
			}

		default:
			// comments, doctype, processing instructions and their attributes
		}
	}
}

func (r *Reader) startTag(offset int, name string) (Event, error) {
	ev := Event{Name: name, Offset: offset}
	for {
		tt, data := r.lex.Next()
		r.offset += len(data)

		switch tt {
		case xml.AttributeToken:
			ev.Attrs = append(ev.Attrs, Attr{
				Name:  localName(r.lex.Text()),
				Value: attrValue(r.lex.AttrVal()),
			})
		case xml.StartTagCloseToken:
			ev.Kind = EventStart
			r.open = append(r.open, name)
			return ev, nil
		case xml.StartTagCloseVoidToken:
			ev.Kind = EventEmpty
			return ev, nil
		case xml.ErrorToken:
			if err := r.lex.Err(); err != nil && !errors.Is(err, io.EOF) {
				return r.fail(offset, err.Error())
			}
			return r.fail(offset, fmt.Sprintf("unexpected end of input in tag <%s>", name))
		}
	}
}

func (r *Reader) fail(offset int, msg string) (Event, error) {
	r.err = r.syntaxError(offset, msg)
	return Event{}, r.err
}

func (r *Reader) syntaxError(offset int, msg string) *SyntaxError {
	line, col, _ := parse.Position(bytes.NewReader(r.data), offset)
	return &SyntaxError{Offset: offset, Line: line, Col: col, Msg: msg}
}

// isName reports whether raw is an XML name with non empty local part. Lexer
// accepts anything up to the closing bracket as a name, so stray "<" in text
// shows up here.
func isName(raw []byte) bool {
	name := string(raw)
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	if len(name) == 0 {
		return false
	}
	for i, c := range string(raw) {
		switch {
		case c == '_' || c == ':' || unicode.IsLetter(c):
		case i > 0 && (c == '-' || c == '.' || unicode.IsDigit(c)):
		default:
			return false
		}
	}
	return true
}

// localName drops namespace prefix.
func localName(raw []byte) string {
	name := string(raw)
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}

func attrValue(raw []byte) string {
	if n := len(raw); n >= 2 && (raw[0] == '"' || raw[0] == '\'') && raw[n-1] == raw[0] {
		raw = raw[1 : n-1]
	}
	return html.UnescapeString(string(raw))
}

func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
