package preview

import (
	"context"
	"errors"
	"fmt"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"uitree/state"
	"uitree/watch"
)

func Watch(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("preview")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	j, err := newJob(ctx, cmd, log)
	if err != nil {
		return err
	}

	debounce := env.Cfg.Watch.Debounce
	if cmd.IsSet("debounce") {
		debounce = cmd.Duration("debounce")
	}

	log.Info("Watching starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", j.format))
	defer func(start time.Time) {
		log.Info("Watching completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return j.watch(ctx, src, dst, debounce)
}

// watch renders source once and then again every time file it is stored in
// changes, until context is cancelled. Rendering errors after the first
// successful start are logged, the previous output is left in place.
func (j *job) watch(ctx context.Context, src, dst string, debounce time.Duration) error {
	path, _, err := j.loader.Resolve(src)
	if err != nil {
		return err
	}

	w, err := watch.New(path, debounce, j.log)
	if err != nil {
		return err
	}

	j.log.Info("Watching for changes", zap.String("file", w.Target()), zap.Duration("debounce", debounce))

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// destination is rewritten on every change, first render too
	render := func() {
		if _, err := j.renderOne(ctx, src, dst, false, true); err != nil {
			j.log.Error("Unable to render document", zap.String("source", src), zap.Error(err))
		}
	}
	render()

	for {
		select {
		case <-ctx.Done():
			return <-done
		case err := <-done:
			if err != nil {
				return fmt.Errorf("watching stopped: %w", err)
			}
			return nil
		case <-w.Trigger():
			render()
		}
	}
}
