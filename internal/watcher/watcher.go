// Package watcher re-runs a callback whenever a config file changes.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file on save are still noticed.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/budgetplanner/pkg/log"
)

// DefaultDebounce is used when Config.Debounce is not positive.
const DefaultDebounce = 200 * time.Millisecond

// Config holds watcher options.
type Config struct {
	// Path is the file to watch.
	Path string

	// Debounce is how long to wait after the last change before reloading.
	Debounce time.Duration
}

// Watcher watches one file.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   log.Logger
}

// New creates a Watcher. A nil logger discards output.
func New(cfg Config, logger log.Logger) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, errors.New("watcher: path is required")
	}
	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("watcher: resolve %s: %w", cfg.Path, err)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{path: path, debounce: cfg.Debounce, logger: logger}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run calls onChange after each burst of writes to the file and blocks
// until ctx is cancelled. Errors from onChange are logged and watching
// continues. Run returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: create: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watcher: watch %s: %w", filepath.Dir(w.path), err)
	}

	w.logger.Info("watching config file", log.String("path", w.path), log.Duration("debounce", w.debounce))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		// Closing the watcher closes its channels and ends the loop.
		return fsw.Close()
	})
	g.Go(func() error {
		return w.loop(gctx, fsw, onChange)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, onChange func(context.Context) error) error {
	var (
		timer   *time.Timer
		pending <-chan time.Time
		events  int
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return closedErr(ctx)
			}
			if !w.relevant(event) {
				continue
			}
			events++
			w.logger.Debug("config file changed", log.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			n := events
			events = 0
			if err := onChange(ctx); err != nil {
				w.logger.Error("reload failed", log.String("path", w.path), log.Int("events", n), log.Err(err))
				continue
			}
			w.logger.Info("reloaded", log.String("path", w.path), log.Int("events", n))

		case err, ok := <-fsw.Errors:
			if !ok {
				return closedErr(ctx)
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}

// closedErr reports why fsnotify closed its channels. Outside of shutdown a
// non-nil error is needed so the errgroup cancels the closer goroutine.
func closedErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.New("watcher: fsnotify channels closed")
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}
