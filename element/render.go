package element

import (
	"fmt"

	"go.uber.org/zap"

	"uitree/markup"
	"uitree/style"
)

const (
	MissingSrcMessage  = "Error: img element must have src attribute"
	MissingPathMessage = "Error: svg element must have path attribute"
)

// Renderer maps parsed node tree into element tree. It keeps no state
// between calls, so the same node tree always renders into the same
// element tree.
type Renderer struct {
	engine *style.Engine
	log    *zap.Logger
}

func NewRenderer(engine *style.Engine, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	if engine == nil {
		engine = style.NewEngine(log)
	}
	return &Renderer{engine: engine, log: log.Named("render")}
}

// Render converts subtree rooted at n. Error is only possible when engine
// treats malformed colors as fatal.
func (r *Renderer) Render(n *markup.Node) (Element, error) {
	switch n.Tag {
	case "div":
		c := &Container{}
		for _, child := range n.Children {
			el, err := r.Render(child)
			if err != nil {
				return nil, err
			}
			c.Append(el)
		}
		if n.Text != nil {
			c.Append(Text(*n.Text))
		}
		if err := r.engine.Apply(c, n.Attrs); err != nil {
			return nil, fmt.Errorf("div: %w", err)
		}
		return c, nil

	case "img":
		src, ok := n.Attr("src")
		if !ok {
			r.log.Debug("Image without source", zap.Int("attributes", len(n.Attrs)))
			return diagnostic(MissingSrcMessage), nil
		}
		img := &Image{Src: src}
		if err := r.engine.Apply(img, n.Attrs); err != nil {
			return nil, fmt.Errorf("img: %w", err)
		}
		return img, nil

	case "svg":
		path, ok := n.Attr("path")
		if !ok {
			r.log.Debug("Vector without path", zap.Int("attributes", len(n.Attrs)))
			return diagnostic(MissingPathMessage), nil
		}
		vec := &Vector{Path: path}
		if err := r.engine.Apply(vec, n.Attrs); err != nil {
			return nil, fmt.Errorf("svg: %w", err)
		}
		return vec, nil

	default:
		r.log.Debug("Unexpected tag, rendering empty container", zap.String("tag", n.Tag))
		return &Container{}, nil
	}
}

func diagnostic(msg string) *Container {
	return &Container{Children: []Child{Text(msg)}}
}
