package discovery

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/turtacn/Ink-Intelligence/internal/config"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/logging"
	"github.com/turtacn/Ink-Intelligence/pkg/errors"
)

// Watcher surfaces sample files as they are created in a directory, feeding
// the ingest loop of the watch command.
type Watcher struct {
	cfg    config.WatchConfig
	prefix string
	log    logging.Logger
}

// NewWatcher constructs a Watcher.  prefix filters created files by name the
// same way the scanner does; an empty prefix accepts every file.
func NewWatcher(cfg config.WatchConfig, prefix string, log logging.Logger) *Watcher {
	return &Watcher{cfg: cfg, prefix: prefix, log: log.Named("discovery")}
}

// Run blocks, invoking handle with the path of every newly created matching
// file until ctx is cancelled.  A short settle delay between the create
// event and the callback lets slow writers finish the file.  Handler errors
// are logged and do not stop the watch — a bad sample must never end the
// session.
func (w *Watcher) Run(ctx context.Context, handle func(path string) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDiscovery, "failed to create filesystem watcher")
	}
	defer fsw.Close()

	if err := fsw.Add(w.cfg.Dir); err != nil {
		return errors.Wrap(err, errors.ErrCodeDiscovery, "failed to watch directory").WithDetail(w.cfg.Dir)
	}

	w.log.Info("watching for samples", logging.String("dir", w.cfg.Dir))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) || !w.accepts(event.Name) {
				continue
			}
			if w.cfg.SettleDelay > 0 {
				select {
				case <-time.After(w.cfg.SettleDelay):
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			if err := handle(event.Name); err != nil {
				w.log.Error("failed to process sample",
					logging.String("path", event.Name),
					logging.Err(err),
				)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", logging.Err(err))
		}
	}
}

func (w *Watcher) accepts(path string) bool {
	if w.prefix == "" {
		return true
	}
	return strings.HasPrefix(filepath.Base(path), w.prefix)
}
