// Package watch reports changes of a single file. Directory containing the
// file is watched, so editors replacing file on save are handled too.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher turns file system events for the target file into triggers.
// Trigger channel has single slot: while one trigger is pending, others are
// dropped.
type Watcher struct {
	log      *zap.Logger
	fsw      *fsnotify.Watcher
	target   string
	debounce time.Duration
	trigger  chan struct{}
}

// New starts watching path. Debounce delays trigger until there were no
// relevant events for the given duration, zero triggers immediately.
func New(path string, debounce time.Duration, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("unable to watch %s: %w", filepath.Dir(target), err)
	}

	return &Watcher{
		log:      log.Named("watch"),
		fsw:      fsw,
		target:   target,
		debounce: debounce,
		trigger:  make(chan struct{}, 1),
	}, nil
}

// Target returns absolute path of the watched file.
func (w *Watcher) Target() string {
	return w.target
}

// Trigger returns channel signalled when target changes.
func (w *Watcher) Trigger() <-chan struct{} {
	return w.trigger
}

// notify does not block, pending trigger absorbs new ones.
func (w *Watcher) notify() {
	select {
	case w.trigger <- struct{}{}:
	default:
		w.log.Debug("Trigger already pending, dropping")
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.target {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// Run pumps file system events until context is cancelled or watcher is
// closed. Underlying watcher is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var (
		timer   *time.Timer
		expired <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("Change detected", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			if w.debounce <= 0 {
				w.notify()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			expired = timer.C

		case <-expired:
			expired = nil
			w.notify()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				// some events were lost, assume target could have changed
				w.log.Warn("File watcher queue overflow", zap.Error(err))
				w.notify()
				continue
			}
			return fmt.Errorf("file watcher failed: %w", err)
		}
	}
}

// Close stops watching. Run returns after Close.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
