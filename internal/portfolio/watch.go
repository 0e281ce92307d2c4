// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portfolio

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// =============================================================================
// PROFILE WATCHER
// =============================================================================

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 200 * time.Millisecond

// Update is delivered after the profile file changes on disk.
// Exactly one of Profile and Err is set.
type Update struct {
	Profile *Profile
	Err     error
}

// Watcher reloads a profile file when it changes. It watches the parent
// directory so that editors which replace the file on save are handled.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	updates  chan Update
	logger   *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewWatcher starts watching path. Call Close to release it.
func NewWatcher(path string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("watch profile: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "watch profile %s", path)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		debounce: debounce,
		watcher:  fw,
		updates:  make(chan Update, 1),
		logger:   logger.With(zap.String("profile", abs)),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Updates delivers reloaded profiles. It is closed by Close.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.updates)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("profile watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	p, err := Load(w.path)
	update := Update{Profile: p, Err: err}
	if err != nil {
		w.logger.Warn("profile reload failed", zap.Error(err))
	} else {
		w.logger.Info("profile reloaded")
	}

	// Keep only the newest update if the consumer is behind.
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- update:
	case <-w.ctx.Done():
	}
}
