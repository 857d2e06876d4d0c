// Package archive builds Walk abstraction on top of "archive/zip" and uses it
// to locate markup documents stored inside zip archives.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"golang.org/x/text/encoding"
)

var (
	// ErrNotFound is returned when requested entry is not present in archive.
	ErrNotFound = errors.New("entry not found in archive")
	// ErrTooLarge is returned when entry is bigger than Walker.MaxSize.
	ErrTooLarge = errors.New("entry is too large")
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk, name is entry path (decoded when code page was supplied) and file is
// the zip.File structure for entry which satisfies match condition. If an
// error is returned, processing stops.
type WalkFunc func(archive, name string, file *zip.File) error

// Walker visits regular files in zip archives. Archives do not define file
// name encoding, so entries not flagged as UTF-8 could be decoded with forced
// code page. MaxSize limits entries ReadFile would return, 0 means no limit.
type Walker struct {
	CodePage encoding.Encoding
	MaxSize  int64
}

// Walk walks all files in the archive with names starting with prefix,
// calling walkFn for each item. Entries with absolute paths or path
// traversal components ("..") make Walk fail.
func (w Walker) Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := w.EntryName(f)
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, prefix) {
			if err := walkFn(archive, name, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// EntryName returns name of the entry, decoding it with forced code page when
// necessary. Undecodable names are returned as is.
func (w Walker) EntryName(f *zip.File) string {
	if w.CodePage == nil || !f.NonUTF8 {
		return f.Name
	}
	if n, err := w.CodePage.NewDecoder().String(f.Name); err == nil {
		return n
	}
	return f.Name
}

// ReadFile returns content of the single entry with exactly matching name.
func (w Walker) ReadFile(archive, name string) ([]byte, error) {
	name = strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(name, `\`, "/")), "/")

	var data []byte
	found := false
	err := w.Walk(archive, name, func(_, entry string, f *zip.File) error {
		if entry != name {
			return nil
		}
		found = true
		if w.MaxSize > 0 && f.UncompressedSize64 > uint64(w.MaxSize) {
			return fmt.Errorf("%q has %d bytes, limit is %d: %w", entry, f.UncompressedSize64, w.MaxSize, ErrTooLarge)
		}
		r, err := f.Open()
		if err != nil {
			return fmt.Errorf("unable to open %q: %w", entry, err)
		}
		defer r.Close()

		var src io.Reader = r
		if w.MaxSize > 0 {
			// size in header may lie
			src = io.LimitReader(r, w.MaxSize+1)
		}
		if data, err = io.ReadAll(src); err != nil {
			return fmt.Errorf("unable to read %q: %w", entry, err)
		}
		if w.MaxSize > 0 && int64(len(data)) > w.MaxSize {
			return fmt.Errorf("%q is larger than %d bytes: %w", entry, w.MaxSize, ErrTooLarge)
		}
		return errStop
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return data, nil
}

var errStop = errors.New("stop walking")

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
