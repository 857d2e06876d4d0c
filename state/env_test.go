package state

import (
	"context"
	"testing"

	"go.uber.org/zap/zaptest"

	"uitree/config"
	"uitree/element"
	"uitree/markup"
)

func TestContextWithEnv_Defaults(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env.start.IsZero() {
		t.Error("start time not set")
	}
	if env.Format != config.OutputFormatTree || env.Overwrite {
		t.Errorf("Format = %v, Overwrite = %v, want tree and false", env.Format, env.Overwrite)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic when env is not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Engine(t *testing.T) {
	env := &LocalEnv{
		Cfg: &config.Config{Render: config.RenderConfig{
			StrictColors: true,
			Aliases:      map[string][]string{"btn": {"px-4", "py-2"}},
		}},
		Log: zaptest.NewLogger(t),
	}

	eng := env.Engine()
	if eng == nil {
		t.Fatal("Engine() returned nil")
	}
	if env.Engine() != eng {
		t.Error("Engine() should be built once")
	}
	if got, ok := eng.Aliases("btn"); !ok || len(got) != 2 {
		t.Errorf("Aliases(btn) = %v, configured aliases were not applied", got)
	}

	// strict colors come from configuration
	root := &markup.Node{Tag: "div", Attrs: []markup.Attr{{Name: "class", Value: "bg-[#12]"}}}
	if _, err := env.Renderer().Render(root); err == nil {
		t.Error("Render() expected error in strict color mode")
	}
}

func TestLocalEnv_RendererBorderFallback(t *testing.T) {
	node := &markup.Node{Tag: "div", Attrs: []markup.Attr{{Name: "class", Value: "border-2px"}}}

	tests := []struct {
		name     string
		fallback bool
		want     string
	}{
		{"border width", false, "border-width"},
		{"corner radius", true, "corner-radius"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &LocalEnv{
				Cfg: &config.Config{Render: config.RenderConfig{BorderRadiusFallback: tt.fallback}},
				Log: zaptest.NewLogger(t),
			}
			el, err := env.Renderer().Render(node)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if n := el.(*element.Container).Count(tt.want); n != 1 {
				t.Errorf("%s applied %d times, want 1: %v", tt.want, n, el.Styles().Ops)
			}
		})
	}
}

func TestLocalEnv_EngineWithoutConfig(t *testing.T) {
	env := &LocalEnv{}
	if env.Engine() == nil {
		t.Fatal("Engine() returned nil")
	}
	if _, err := env.Renderer().Render(&markup.Node{Tag: "div"}); err != nil {
		t.Errorf("Render() error = %v", err)
	}
}

func TestLocalEnv_Loader(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{"no configuration", nil, false},
		{"forced encoding", &config.Config{Document: config.DocumentConfig{Encoding: "windows-1251", ArchiveCodePage: "cp866"}}, false},
		{"unknown encoding", &config.Config{Document: config.DocumentConfig{Encoding: "no-such-charset"}}, true},
		{"unknown code page", &config.Config{Document: config.DocumentConfig{ArchiveCodePage: "no-such-charset"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &LocalEnv{Cfg: tt.cfg, Log: zaptest.NewLogger(t)}
			l, err := env.Loader()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Loader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && l == nil {
				t.Error("Loader() returned nil")
			}
		})
	}
}
