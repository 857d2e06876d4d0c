package document

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"
)

// Sources expands src into the naturally sorted list of loadable markup
// sources. Directories are walked recursively, archives (including paths
// inside them) are searched for markup entries, plain file is returned as is.
// Entries which cannot be checked are skipped with warning.
func (l *Loader) Sources(ctx context.Context, src string) ([]string, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return nil, err
	}

	if fi, err := os.Stat(abs); err == nil && fi.IsDir() {
		return l.sourcesInDir(ctx, abs)
	}

	path, entry, err := l.Resolve(abs)
	if err != nil {
		return nil, err
	}
	if entry != "" {
		return l.sourcesInArchive(ctx, path, entry)
	}
	isArchive, err := isArchiveFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to check archive type: %w", err)
	}
	if isArchive {
		return l.sourcesInArchive(ctx, path, "")
	}
	return []string{path}, nil
}

func (l *Loader) sourcesInDir(ctx context.Context, dir string) (out []string, err error) {
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			l.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		isArchive, err := isArchiveFile(path)
		if err != nil {
			l.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			inner, err := l.sourcesInArchive(ctx, path, "")
			if err != nil {
				l.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
				return nil
			}
			out = append(out, inner...)
			return nil
		}

		ok, _, err := isMarkupFile(path)
		if err != nil {
			l.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !ok {
			l.log.Debug("Skipping file, not recognized as markup or archive", zap.String("file", path))
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err == nil && len(out) == 0 {
		l.log.Debug("Nothing to process", zap.String("dir", dir))
	}
	sort.Sort(natural.StringSlice(out))
	return out, err
}

func (l *Loader) sourcesInArchive(ctx context.Context, path, prefix string) (out []string, err error) {
	err = l.walker.Walk(path, prefix, func(archive, name string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if prefix != "" && name != prefix && !strings.HasPrefix(name, strings.TrimSuffix(prefix, "/")+"/") {
			return nil
		}
		ok, _, err := isMarkupInArchive(f, name)
		if err != nil {
			l.log.Warn("Skipping file in archive", zap.String("archive", archive), zap.String("path", name), zap.Error(err))
			return nil
		}
		if !ok {
			l.log.Debug("Skipping file, not recognized as markup", zap.String("archive", archive), zap.String("file", name))
			return nil
		}
		out = append(out, filepath.Join(archive, filepath.FromSlash(name)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to process archive: %w", err)
	}
	if len(out) == 0 {
		l.log.Debug("Nothing to process", zap.String("archive", path))
	}
	sort.Sort(natural.StringSlice(out))
	return out, nil
}
