package style

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"uitree/markup"
)

// ErrUnknownClass is returned by Resolve when token matches neither the
// static table nor any of the dynamic rules.
var ErrUnknownClass = errors.New("unrecognized class")

// Engine translates utility class tokens into style mutations. It is
// read-only after construction and safe for concurrent use.
type Engine struct {
	log            *zap.Logger
	strictColors   bool
	radiusFallback bool
	aliases        map[string][]string
}

// Option configures Engine.
type Option func(*Engine)

// WithStrictColors makes malformed hex color literals fatal for Apply.
// Otherwise they are logged and the token is skipped.
func WithStrictColors(strict bool) Option {
	return func(e *Engine) { e.strictColors = strict }
}

// WithBorderRadiusFallback makes "border-<length>" without side code set
// uniform corner radius instead of border width on all edges.
func WithBorderRadiusFallback(fallback bool) Option {
	return func(e *Engine) { e.radiusFallback = fallback }
}

// WithAliases defines composite classes. Alias expands to its tokens before
// resolution, aliases are not expanded recursively.
func WithAliases(aliases map[string][]string) Option {
	return func(e *Engine) {
		e.aliases = make(map[string][]string, len(aliases))
		for name, tokens := range aliases {
			e.aliases[name] = slices.Clone(tokens)
		}
	}
}

// NewEngine creates class resolution engine.
func NewEngine(log *zap.Logger, opts ...Option) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{log: log.Named("style")}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve maps single token to mutation: static table first, then dynamic
// rules in order. Aliases are not considered here.
func (e *Engine) Resolve(token string) (Mutation, error) {
	if m, ok := exactTable[token]; ok {
		return m, nil
	}
	for _, r := range dynamicRules {
		m, ok, err := r.resolve(e, token)
		if !ok {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s rule: %w", r.name, err)
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownClass, token)
}

// Apply applies element attributes to s: "font" attribute first, then every
// token of the "class" attribute left to right. Unknown classes are skipped.
// Error is returned only for malformed colors in strict mode.
func (e *Engine) Apply(s Styler, attrs []markup.Attr) error {
	if font, ok := findAttr(attrs, "font"); ok {
		s.SetFont(font)
	}
	class, ok := findAttr(attrs, "class")
	if !ok {
		return nil
	}
	for _, token := range strings.Fields(class) {
		if expansion, ok := e.aliases[token]; ok {
			for _, t := range expansion {
				if err := e.apply(s, t); err != nil {
					return fmt.Errorf("alias %q: %w", token, err)
				}
			}
			continue
		}
		if err := e.apply(s, token); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) apply(s Styler, token string) error {
	m, err := e.Resolve(token)
	if err == nil {
		m(s)
		return nil
	}

	var ce *ColorError
	switch {
	case errors.As(err, &ce):
		if e.strictColors {
			return fmt.Errorf("class %q: %w", token, err)
		}
		e.log.Warn("Malformed color, ignoring", zap.String("class", token), zap.Error(err))
	case errors.Is(err, ErrUnknownClass):
		e.log.Debug("Unrecognized class", zap.String("class", token))
	default:
		return err
	}
	return nil
}

// Tokens returns static catalogue and configured alias names in natural
// order.
func (e *Engine) Tokens() []string {
	tokens := Tokens("")
	if len(e.aliases) == 0 {
		return tokens
	}
	tokens = slices.AppendSeq(tokens, maps.Keys(e.aliases))
	sort.Sort(natural.StringSlice(tokens))
	return slices.Compact(tokens)
}

// Aliases returns expansion of alias name.
func (e *Engine) Aliases(name string) ([]string, bool) {
	tokens, ok := e.aliases[name]
	return tokens, ok
}

func findAttr(attrs []markup.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
