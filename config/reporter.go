package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.uber.org/multierr"

	"uitree/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates initialized empty report.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	r := &Report{entries: make(map[string]entry)}

	if f, err := os.Create(conf.Destination); err == nil {
		r.file = f
	} else if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err == nil {
		r.file = f
	} else {
		return nil, fmt.Errorf("unable to create report: %w", err)
	}
	return r, nil
}

type entry struct {
	original string
	actual   string
	stamp    time.Time
	data     []byte
	scratch  bool // actual is our private copy, remove when done
}

// Report accumulates files and data for the debug report archive. All
// methods could be called on nil Report, in which case they do nothing: this
// means no report has been requested.
type Report struct {
	mu      sync.Mutex
	entries map[string]entry
	file    *os.File
}

// Close writes the report archive and removes private copies of stored
// files.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.finalize()
	err = multierr.Append(err, r.file.Close())
	for _, e := range r.entries {
		if e.scratch {
			err = multierr.Append(err, os.RemoveAll(filepath.Dir(e.actual)))
		}
	}
	return err
}

// Name returns name of underlying file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// uniqueName versions name if it is already taken. Must be called with lock
// held.
func (r *Report) uniqueName(name string, stamp time.Time) string {
	if _, exists := r.entries[name]; !exists {
		return name
	}
	return fmt.Sprintf("%s-%d", name, stamp.UnixNano())
}

// Store remembers path to the file to be put in the archive when report is
// closed. File content at the time of Close is used.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, exists := r.entries[name]; exists && old.original != path {
		panic(fmt.Sprintf("Attempt to overwrite file in the report for [%s]: was %s, now %s", name, old.original, path))
	}

	e := entry{original: path, actual: path}
	if p, err := filepath.Abs(path); err == nil {
		e.actual = p
	}
	r.entries[name] = e
}

// StoreData saves data to be put in the archive under requested name. Repeated
// names are versioned.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stamp := time.Now()
	r.entries[r.uniqueName(name, stamp)] = entry{data: slices.Clone(data), stamp: stamp}
}

// StoreCopy takes a copy of the file as it is now, so later changes to the
// file do not affect report. Repeated names are versioned.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("unable to copy %s: not a regular file", abs)
	}

	dir, err := os.MkdirTemp("", misc.GetAppName()+"-r-")
	if err != nil {
		return err
	}
	where, err := copyFile(dir, abs, info.ModTime())
	if err != nil {
		return multierr.Append(err, os.RemoveAll(dir))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stamp := time.Now()
	r.entries[r.uniqueName(name, stamp)] = entry{original: path, actual: where, stamp: stamp, scratch: true}
	return nil
}

func copyFile(dir, src string, modTime time.Time) (dst string, err error) {
	dst = filepath.Join(dir, filepath.Base(src))

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(out, in); err == nil {
		err = out.Sync()
	}
	if err = multierr.Append(err, out.Close()); err != nil {
		return "", err
	}
	if err := os.Chtimes(dst, modTime, modTime); err != nil {
		return "", err
	}
	return dst, nil
}

// finalize writes archive with manifest and all stored items. Absent files
// are skipped.
func (r *Report) finalize() (err error) {
	arc := zip.NewWriter(r.file)
	defer func() {
		err = multierr.Append(err, arc.Close())
	}()

	names, manifest := prepareManifest(r.entries)
	if err := saveFile(arc, "MANIFEST", time.Now(), manifest); err != nil {
		return err
	}

	for _, name := range names {
		e := r.entries[name]
		if e.data != nil {
			if err := saveFile(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}
		if err := saveStored(arc, name, e.actual); err != nil {
			return err
		}
	}
	return nil
}

func saveStored(arc *zip.Writer, name, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return saveFile(arc, name, info.ModTime(), f)
}

func prepareManifest(entries map[string]entry) ([]string, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	keys := slices.Sorted(maps.Keys(entries))

	now := time.Now()
	for _, k := range keys {
		e := entries[k]
		if e.stamp.IsZero() {
			e.stamp = now
		}
		source := e.original
		if e.data != nil {
			source = fmt.Sprintf("<%d bytes>", len(e.data))
		}
		fmt.Fprintf(buf, "%s\t%s\t%s : %s\n", e.stamp.UTC().Format(time.UnixDate), k, source, e.actual)
	}
	return keys, buf
}

func saveFile(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
