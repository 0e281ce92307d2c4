// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// =============================================================================
// DEFERRED ACTIONS
// =============================================================================

// Scheduler runs confirmed actions after a delay.
type Scheduler interface {
	// Schedule runs fn once after d. It is a no-op after Close.
	Schedule(d time.Duration, fn func())

	// Close cancels every action that has not fired yet.
	Close()
}

// TimerScheduler is a Scheduler backed by time.AfterFunc.
// Timers fire on their own goroutine; actions that need to touch UI state
// should hand off to the UI loop (e.g. tea.Program.Send).
type TimerScheduler struct {
	mu      sync.Mutex
	pending map[*time.Timer]struct{}
	closed  bool
	logger  *zap.Logger
}

// NewTimerScheduler creates a scheduler. A nil logger disables logging.
func NewTimerScheduler(logger *zap.Logger) *TimerScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimerScheduler{
		pending: make(map[*time.Timer]struct{}),
		logger:  logger,
	}
}

// Schedule implements Scheduler.
func (s *TimerScheduler) Schedule(d time.Duration, fn func()) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	// The callback takes the lock before reading t, so it cannot observe
	// the variable before AfterFunc has returned.
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		delete(s.pending, t)
		s.mu.Unlock()

		s.run(fn)
	})
	s.pending[t] = struct{}{}
}

// run invokes fn, containing any panic from an owner that has gone away.
func (s *TimerScheduler) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("deferred action panicked", zap.String("panic", fmt.Sprint(r)))
		}
	}()
	fn()
}

// Pending returns the number of actions waiting to fire.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Close implements Scheduler. Safe to call more than once.
func (s *TimerScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for t := range s.pending {
		t.Stop()
	}
	s.pending = nil
}
