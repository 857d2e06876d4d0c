package element

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap/zaptest"

	"uitree/markup"
	"uitree/style"
)

func render(t *testing.T, doc string, opts ...style.Option) (Element, error) {
	t.Helper()
	root, err := markup.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	log := zaptest.NewLogger(t)
	return NewRenderer(style.NewEngine(log, opts...), log).Render(root)
}

func mustRender(t *testing.T, doc string) Element {
	t.Helper()
	el, err := render(t, doc)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return el
}

const scenario = `<div class="flex flex-col p-4"><img src="a.png" class="w-10 h-10"/>hello</div>`

func TestRender_EndToEnd(t *testing.T) {
	el := mustRender(t, scenario)

	c, ok := el.(*Container)
	if !ok {
		t.Fatalf("root is %T, want *Container", el)
	}
	if c.Display != style.DisplayFlex || c.FlexDirection != style.FlexDirectionColumn {
		t.Errorf("display = %v, direction = %v", c.Display, c.FlexDirection)
	}
	if c.Padding != [4]style.Length{style.Rems(1), style.Rems(1), style.Rems(1), style.Rems(1)} {
		t.Errorf("padding = %v", c.Padding)
	}
	if len(c.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(c.Children))
	}

	img, ok := c.Children[0].(*Image)
	if !ok {
		t.Fatalf("first child is %T, want *Image", c.Children[0])
	}
	if img.Src != "a.png" {
		t.Errorf("src = %q", img.Src)
	}
	if img.Size[0] != style.Rems(2.5) || img.Size[1] != style.Rems(2.5) {
		t.Errorf("image size = %v", img.Size)
	}
	if txt, ok := c.Children[1].(Text); !ok || txt != "hello" {
		t.Errorf("second child = %#v, want Text(hello)", c.Children[1])
	}
}

func TestRender_ChildrenBeforeText(t *testing.T) {
	el := mustRender(t, `<div>first<div/><svg path="p.svg"/>last</div>`)
	c := el.(*Container)
	if len(c.Children) != 3 {
		t.Fatalf("children = %#v", c.Children)
	}
	if _, ok := c.Children[0].(*Container); !ok {
		t.Errorf("child[0] = %T", c.Children[0])
	}
	if v, ok := c.Children[1].(*Vector); !ok || v.Path != "p.svg" {
		t.Errorf("child[1] = %#v", c.Children[1])
	}
	if c.Children[2] != Text("last") {
		t.Errorf("child[2] = %#v", c.Children[2])
	}
}

func TestRender_Idempotent(t *testing.T) {
	root, err := markup.Parse([]byte(scenario))
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(style.NewEngine(zaptest.NewLogger(t)), zaptest.NewLogger(t))

	first, err := r.Render(root)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Render(root)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("renders differ:\n%s\n%s", Dump(first), Dump(second))
	}
}

func TestRender_MissingAttributes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"img without src", `<div><img class="w-4"/></div>`, MissingSrcMessage},
		{"svg without path", `<div><svg src="x.svg"/></div>`, MissingPathMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustRender(t, tt.doc).(*Container)
			diag, ok := root.Children[0].(*Container)
			if !ok {
				t.Fatalf("child is %T, want *Container", root.Children[0])
			}
			if len(diag.Children) != 1 || diag.Children[0] != Text(tt.want) {
				t.Errorf("diagnostic children = %#v", diag.Children)
			}
			if len(diag.Ops) != 0 {
				t.Errorf("diagnostic container must be unstyled, ops = %v", diag.Ops)
			}
		})
	}
}

func TestRender_UnknownTag(t *testing.T) {
	el := mustRender(t, `<section class="p-4"><div/>text</section>`)
	c, ok := el.(*Container)
	if !ok {
		t.Fatalf("got %T", el)
	}
	if len(c.Children) != 0 || len(c.Ops) != 0 {
		t.Errorf("unknown tag must render empty container, got %#v", c)
	}
}

func TestRender_StrictColors(t *testing.T) {
	_, err := render(t, `<div><div><img src="a" class="bg-[#nothex]"/></div></div>`, style.WithStrictColors(true))
	var ce *style.ColorError
	if !errors.As(err, &ce) {
		t.Fatalf("Render() error = %v, want *style.ColorError", err)
	}

	if _, err := render(t, `<div class="bg-[#nothex]"/>`); err != nil {
		t.Errorf("non strict Render() error = %v", err)
	}
}

func TestRender_NodeCountBound(t *testing.T) {
	doc := `<div><div><img src="a"/><img/></div><svg path="x"/><span/>t</div>`
	root, err := markup.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	el, err := NewRenderer(nil, nil).Render(root)
	if err != nil {
		t.Fatal(err)
	}
	if got, limit := Count(el), root.Count(); got > limit {
		t.Errorf("element count %d exceeds node count %d", got, limit)
	}
}

func TestDump(t *testing.T) {
	want := `container
  style: [display=flex flex-direction=column padding(top|right|bottom|left)=1rem]
  image src="a.png"
    style: [size(width)=2.5rem size(height)=2.5rem]
  text: "hello"
`
	if got := Dump(mustRender(t, scenario)); got != want {
		t.Errorf("Dump() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteXML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXML(&buf, mustRender(t, scenario)); err != nil {
		t.Fatalf("WriteXML() error = %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(buf.Bytes()); err != nil {
		t.Fatalf("produced xml does not parse: %v\n%s", err, buf.String())
	}
	root := doc.Root()
	if root == nil || root.Tag != "container" {
		t.Fatalf("root = %v", root)
	}
	if v := root.SelectAttrValue("flex-direction", ""); v != "column" {
		t.Errorf("flex-direction = %q", v)
	}
	if v := root.SelectAttrValue("padding.top_right_bottom_left", ""); v != "1rem" {
		t.Errorf("padding = %q", v)
	}

	img := root.SelectElement("image")
	if img == nil || img.SelectAttrValue("src", "") != "a.png" {
		t.Fatalf("image = %v", img)
	}
	if v := img.SelectAttrValue("size.width", ""); v != "2.5rem" {
		t.Errorf("image width = %q", v)
	}
	if txt := root.SelectElement("text"); txt == nil || txt.Text() != "hello" {
		t.Errorf("text = %v", txt)
	}
}
