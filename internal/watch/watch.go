// Package watch re-runs a callback whenever a file changes on disk.
//
// It watches the file's parent directory rather than the file itself so
// editors that replace the file by rename (vim, sed -i) keep being
// tracked. Change bursts are debounced into a single callback.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period applied when Options.Debounce is
// zero.
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	Path     string        // file to watch
	Debounce time.Duration // quiet period before OnChange fires
	OnChange func() error  // invoked once at start and after each change burst
}

// Watcher re-runs OnChange when the watched file changes.
type Watcher struct {
	opts Options
	log  zerolog.Logger
}

// New creates a Watcher with the given options.
func New(opts Options, log zerolog.Logger) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	return &Watcher{opts: opts, log: log}
}

// Run invokes OnChange once, then blocks watching the file until the
// context is cancelled or OnChange returns an error.
func (w *Watcher) Run(ctx context.Context) error {
	target, err := filepath.Abs(w.opts.Path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", w.opts.Path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	if err := w.opts.OnChange(); err != nil {
		return err
	}

	// The timer starts drained; events arm it.
	timer := time.NewTimer(w.opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed unexpectedly")
			}
			if !w.relevant(event, target) {
				continue
			}
			w.log.Debug().Str("event", event.Op.String()).Str("path", event.Name).Msg("input changed")
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.opts.Debounce)

		case <-timer.C:
			if err := w.opts.OnChange(); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			w.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

// relevant reports whether the event concerns the watched file and
// describes a content change.
func (w *Watcher) relevant(event fsnotify.Event, target string) bool {
	if event.Name != target {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
