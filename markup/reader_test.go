package markup

import (
	"errors"
	"testing"
)

func collect(t *testing.T, doc string) []Event {
	t.Helper()
	r := NewReader([]byte(doc))
	var events []Event
	for {
		ev, err := r.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		events = append(events, ev)
		if ev.Kind == EventEOF {
			return events
		}
	}
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestReader_Events(t *testing.T) {
	events := collect(t, `<div class="a"><img src="x.png"/>hello</div>`)

	want := []EventKind{EventStart, EventEmpty, EventText, EventEnd, EventEOF}
	got := kinds(events)
	if len(got) != len(want) {
		t.Fatalf("got %v events, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if events[0].Name != "div" || len(events[0].Attrs) != 1 || events[0].Attrs[0] != (Attr{Name: "class", Value: "a"}) {
		t.Errorf("unexpected start event: %+v", events[0])
	}
	if events[1].Name != "img" || events[1].Attrs[0].Value != "x.png" {
		t.Errorf("unexpected empty event: %+v", events[1])
	}
	if events[2].Text != "hello" {
		t.Errorf("text = %q, want %q", events[2].Text, "hello")
	}
	if events[3].Name != "div" {
		t.Errorf("end name = %q, want div", events[3].Name)
	}
}

func TestReader_NamesAreLocalAndLowerCase(t *testing.T) {
	events := collect(t, `<UI:Div xlink:Href="a"></UI:Div>`)
	if events[0].Name != "div" {
		t.Errorf("name = %q, want div", events[0].Name)
	}
	if events[0].Attrs[0].Name != "href" {
		t.Errorf("attr name = %q, want href", events[0].Attrs[0].Name)
	}
}

func TestReader_AttributeOrderAndDuplicates(t *testing.T) {
	events := collect(t, `<div b="1" a='2' b="3"/>`)
	want := []Attr{{"b", "1"}, {"a", "2"}, {"b", "3"}}
	got := events[0].Attrs
	if len(got) != len(want) {
		t.Fatalf("attrs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("attr[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReader_Unescape(t *testing.T) {
	events := collect(t, `<div title="a &amp; b &lt;c&gt; &#65;">x &amp; y&nbsp;z</div>`)
	if v := events[0].Attrs[0].Value; v != "a & b <c> A" {
		t.Errorf("attribute = %q", v)
	}
	if txt := events[1].Text; txt != "x & y\u00a0z" {
		t.Errorf("text = %q", txt)
	}
}

func TestReader_SkipsWhitespaceCommentsAndProlog(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<!-- comment -->
<div>
   <![CDATA[ raw <b> ]]>
</div>
`
	events := collect(t, doc)
	want := []EventKind{EventStart, EventText, EventEnd, EventEOF}
	got := kinds(events)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if events[1].Text != "raw <b>" {
		t.Errorf("cdata text = %q", events[1].Text)
	}
}

func TestReader_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"mismatched end", `<div><span></div>`},
		{"end without start", `</div>`},
		{"invalid utf8", "<div>\xff</div>"},
		{"stray less-than in text", `<div>5 < 6</div>`},
		{"tag cut by end tag", `<div>a<b</div>`},
		{"empty local name", `<div><ui: class="a"/></div>`},
		{"name starts with digit", `<div><1a/></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader([]byte(tt.doc))
			var err error
			for range 16 {
				var ev Event
				if ev, err = r.Next(); err != nil || ev.Kind == EventEOF {
					break
				}
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SyntaxError, got %v", err)
			}
			if se.Line < 1 {
				t.Errorf("line = %d, want >= 1", se.Line)
			}
			// error is sticky
			if _, again := r.Next(); again != err {
				t.Errorf("second Next() error = %v, want %v", again, err)
			}
		})
	}
}

func TestReader_UnclosedIsNotError(t *testing.T) {
	events := collect(t, `<div><div>`)
	want := []EventKind{EventStart, EventStart, EventEOF}
	got := kinds(events)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestIsName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"div", true},
		{"ui:div", true},
		{"data-x.y_z1", true},
		{"экран", true},
		{"", false},
		{"ui:", false},
		{"1a", false},
		{"-a", false},
		{"b</div", false},
		{"a b", false},
	}
	for _, tt := range tests {
		if got := isName([]byte(tt.name)); got != tt.want {
			t.Errorf("isName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
