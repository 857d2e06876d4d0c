// Package preview implements command line actions: rendering documents into
// element tree dumps, watching a document for changes and listing utility
// classes.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"uitree/config"
	"uitree/document"
	"uitree/element"
	"uitree/state"
)

// job is everything needed to render one or more sources, independent of
// command line framework.
type job struct {
	loader    *document.Loader
	renderer  *element.Renderer
	rpt       *config.Report
	format    config.OutputFormat
	nodes     bool
	overwrite bool
	preview   int
	stdout    io.Writer
	log       *zap.Logger
}

func newJob(ctx context.Context, cmd *cli.Command, log *zap.Logger) (*job, error) {
	env := state.EnvFromContext(ctx)

	name := cmd.String("format")
	if name == "" {
		name = env.Cfg.Render.Format
	}
	format, err := config.ParseOutputFormat(name)
	if err != nil {
		log.Warn("Unknown output format requested, switching to tree", zap.Error(err))
		format = config.OutputFormatTree
	}
	env.Format = format
	env.Overwrite = cmd.Bool("overwrite") || env.Cfg.Render.Overwrite

	loader, err := env.Loader()
	if err != nil {
		return nil, err
	}
	return &job{
		loader:    loader,
		renderer:  env.Renderer(),
		rpt:       env.Rpt,
		format:    format,
		nodes:     cmd.Bool("nodes"),
		overwrite: env.Overwrite,
		preview:   env.Cfg.Render.PreviewSize,
		stdout:    cmd.Root().Writer,
		log:       log,
	}, nil
}

func Render(ctx context.Context, cmd *cli.Command) error {
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

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", j.format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return j.renderAll(ctx, src, dst)
}

// renderAll expands source and renders every document found. Failure of a
// single document among many is logged and processing continues.
func (j *job) renderAll(ctx context.Context, src, dst string) error {
	sources, err := j.loader.Sources(ctx, src)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no markup documents found (%s)", src)
	}

	many := len(sources) > 1
	if !many {
		_, err := j.renderOne(ctx, sources[0], dst, false, j.overwrite)
		return err
	}

	failed := 0
	for _, s := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := j.renderOne(ctx, s, dst, true, j.overwrite); err != nil {
			failed++
			j.log.Error("Unable to process document", zap.String("source", s), zap.Error(err))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(sources))
	}
	return nil
}

// renderOne loads, renders and outputs single document returning output
// location ("" for stdout).
func (j *job) renderOne(ctx context.Context, src, dst string, many, overwrite bool) (out string, rerr error) {
	doc, err := j.loader.Load(ctx, src)
	if err != nil {
		return "", err
	}

	log := j.log.With(zap.Stringer("id", doc.ID))
	log.Debug("Rendering starting", zap.String("from", src))

	var elements int
	defer func(start time.Time) {
		if rerr == nil {
			log.Info("Rendering completed", zap.String("from", src), zap.String("to", outOrStdout(out)),
				zap.Int("elements", elements), zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	el, err := j.renderer.Render(doc.Root)
	if err != nil {
		return "", fmt.Errorf("unable to render (%s): %w", src, err)
	}
	elements = element.Count(el)

	if bad := inspectVectors(el, doc.ID, j.preview, j.rpt, log); bad > 0 {
		log.Warn("Document has malformed vector paths, they will not be drawn", zap.String("source", src), zap.Int("count", bad))
	}

	var buf bytes.Buffer
	if err := encode(&buf, doc, el, j.format, j.nodes); err != nil {
		return "", fmt.Errorf("unable to encode (%s): %w", src, err)
	}

	if out, err = outputPath(doc, dst, j.format, many); err != nil {
		return "", err
	}
	if out != "" {
		if err := prepareOutput(out, overwrite, log); err != nil {
			return "", err
		}
	}
	if err := writeOutput(out, buf.Bytes(), j.stdout); err != nil {
		return "", fmt.Errorf("unable to write output: %w", err)
	}

	if j.rpt != nil {
		if !doc.InArchive() {
			if err := j.rpt.StoreCopy(fmt.Sprintf("source/%s", doc.Name()), doc.Path); err != nil {
				log.Warn("Unable to store source in report", zap.Error(err))
			}
		}
		j.rpt.StoreData(fmt.Sprintf("nodes/%s.txt", doc.ID), []byte(doc.Root.String()))
		j.rpt.StoreData(fmt.Sprintf("result/%s%s", doc.ID, j.format.Ext()), buf.Bytes())
	}
	return out, nil
}

func outOrStdout(out string) string {
	if out == "" {
		return "STDOUT"
	}
	return out
}
