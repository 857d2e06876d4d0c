// Package state defines shared program state.
package state

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"uitree/config"
	"uitree/document"
	"uitree/element"
	"uitree/style"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by render and watch subcommands
	Overwrite bool
	Format    config.OutputFormat

	engineOnce sync.Once
	engine     *style.Engine

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// Engine returns style engine configured from render section. It is built
// once and shared, engine is read only.
func (e *LocalEnv) Engine() *style.Engine {
	e.engineOnce.Do(func() {
		var opts []style.Option
		if e.Cfg != nil {
			opts = append(opts,
				style.WithStrictColors(e.Cfg.Render.StrictColors),
				style.WithBorderRadiusFallback(e.Cfg.Render.BorderRadiusFallback),
				style.WithAliases(e.Cfg.Render.Aliases))
		}
		e.engine = style.NewEngine(e.Log, opts...)
	})
	return e.engine
}

// Renderer returns new element renderer using shared engine.
func (e *LocalEnv) Renderer() *element.Renderer {
	return element.NewRenderer(e.Engine(), e.Log)
}

// Loader returns document loader configured from document section.
func (e *LocalEnv) Loader() (*document.Loader, error) {
	var cfg config.DocumentConfig
	if e.Cfg != nil {
		cfg = e.Cfg.Document
	}
	return document.NewLoader(&cfg, e.Log)
}
