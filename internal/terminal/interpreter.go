// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reserved keywords, checked before the table.
const (
	KeywordClear   = "clear"
	KeywordConfirm = "y"
	KeywordDeny    = "n"
)

// Fixed acknowledgments.
const (
	MsgExecuting = "Executing command..."
	MsgCancelled = "Command cancelled."
)

// DefaultConfirmDelay lets the acknowledgment render before navigation.
const DefaultConfirmDelay = 500 * time.Millisecond

// NotFound formats the response for an unknown command. The raw input is
// echoed as typed.
func NotFound(raw string) string {
	return fmt.Sprintf("Command not found: %s. Type 'help' for available commands.", raw)
}

// =============================================================================
// INTERPRETER
// =============================================================================

// Options configures an Interpreter.
type Options struct {
	// ConfirmDelay is how long a confirmed action waits before running.
	// Zero uses DefaultConfirmDelay.
	ConfirmDelay time.Duration

	// Scheduler runs confirmed actions. Nil uses a TimerScheduler.
	Scheduler Scheduler

	// OnClose is called when a Close control is resolved.
	OnClose func()

	// Logger receives a debug line per submission. Nil disables logging.
	Logger *zap.Logger

	// SessionID tags log lines. Empty generates a new UUID.
	SessionID string
}

// Result is the outcome of one submission.
type Result struct {
	// Command is the raw input, as typed
	Command string

	// Response is what to display
	Response Content

	// Signal tells the caller to clear or close
	Signal Signal

	// Scheduled is true when a confirmed action was scheduled
	Scheduled bool

	// Known is false for "command not found" responses
	Known bool
}

// Interpreter resolves input lines against a table and owns the session's
// history and recall cursor. It is not safe for concurrent use; all calls
// are expected from the UI event loop.
type Interpreter struct {
	table   *Table
	history History
	recall  *Recall

	scheduler Scheduler
	delay     time.Duration
	onClose   func()

	logger    *zap.Logger
	sessionID string
}

// New creates an interpreter for one session over table.
func New(table *Table, opts Options) *Interpreter {
	if opts.ConfirmDelay <= 0 {
		opts.ConfirmDelay = DefaultConfirmDelay
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.New().String()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewTimerScheduler(opts.Logger)
	}

	in := &Interpreter{
		table:     table,
		scheduler: opts.Scheduler,
		delay:     opts.ConfirmDelay,
		onClose:   opts.OnClose,
		sessionID: opts.SessionID,
	}
	in.recall = NewRecall(&in.history)
	in.logger = opts.Logger.With(zap.String("session", in.sessionID))
	return in
}

// Submit resolves one input line and records it in history.
//
// Empty lines change nothing. The clear keyword (or a Clear control)
// empties history instead of recording. Everything else appends exactly one
// record and stops history browsing.
func (in *Interpreter) Submit(raw string) Result {
	key := Normalize(raw)
	if key == "" {
		return Result{Command: raw, Known: true}
	}

	if key == KeywordClear {
		in.clear()
		in.logger.Debug("terminal cleared", zap.String("command", key))
		return Result{Command: raw, Signal: SignalClear, Known: true}
	}

	res := in.resolve(raw, key)
	if res.Signal == SignalClear {
		in.clear()
		in.logger.Debug("terminal cleared", zap.String("command", key))
		return res
	}

	in.history.Append(Record{Command: raw, Response: res.Response, Known: res.Known})
	in.recall.Reset()

	in.logger.Debug("command resolved",
		zap.String("command", key),
		zap.Bool("known", res.Known),
		zap.Stringer("signal", res.Signal),
		zap.Bool("scheduled", res.Scheduled))

	if res.Signal == SignalClose && in.onClose != nil {
		in.onClose()
	}
	return res
}

// resolve applies the confirm/deny keywords and the table lookup.
func (in *Interpreter) resolve(raw, key string) Result {
	switch key {
	case KeywordConfirm:
		if action := in.pendingAction(); action != nil {
			in.scheduler.Schedule(in.delay, action)
			return Result{Command: raw, Response: Text(MsgExecuting), Scheduled: true, Known: true}
		}
		// No pending navigation: ordinary lookup below.
	case KeywordDeny:
		return Result{Command: raw, Response: Text(MsgCancelled), Known: true}
	}

	entry, ok := in.table.Lookup(key)
	if !ok {
		return Result{Command: raw, Response: Text(NotFound(raw))}
	}

	switch e := entry.(type) {
	case WithAction:
		return Result{Command: raw, Response: e.Content, Known: true}
	case Control:
		return Result{Command: raw, Response: e.Content, Signal: e.Signal, Known: true}
	case Plain:
		return Result{Command: raw, Response: e.Content, Known: true}
	default:
		return Result{Command: raw, Response: Text(NotFound(raw))}
	}
}

// pendingAction returns the action of the previous submission when it was
// a WithAction entry.
func (in *Interpreter) pendingAction() func() {
	last, ok := in.history.Last()
	if !ok {
		return nil
	}
	entry, ok := in.table.Lookup(last.Command)
	if !ok {
		return nil
	}
	if wa, ok := entry.(WithAction); ok {
		return wa.Action
	}
	return nil
}

func (in *Interpreter) clear() {
	in.history.Clear()
	in.recall.Reset()
}

// =============================================================================
// RECALL AND COMPLETION
// =============================================================================

// Previous recalls an older command into the input buffer.
func (in *Interpreter) Previous() (string, bool) {
	return in.recall.Previous()
}

// Next recalls a newer command, or clears the buffer past the newest one.
func (in *Interpreter) Next() (string, bool) {
	return in.recall.Next()
}

// Complete returns buffer completed to the unique matching keyword, or
// buffer unchanged.
func (in *Interpreter) Complete(buffer string) string {
	return in.table.Complete(buffer)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// History returns a copy of the session's records, oldest first.
func (in *Interpreter) History() []Record {
	return in.history.Records()
}

// Cursor returns the recall cursor (-1 when not browsing).
func (in *Interpreter) Cursor() int {
	return in.recall.Cursor()
}

// SessionID returns the session identifier used in logs.
func (in *Interpreter) SessionID() string {
	return in.sessionID
}

// Close cancels pending confirmed actions. The interpreter must not be used
// for new confirmations afterwards.
func (in *Interpreter) Close() {
	in.scheduler.Close()
	in.logger.Debug("terminal session closed")
}
