// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal implements the portfolio terminal's command interpreter.
//
// The interpreter maps a free-text input line to a response from a static,
// read-only command table, keeps the session's submission history, and
// provides history recall and tab completion for the input buffer.
//
// # Key Types
//
//   - Table: Read-only mapping from normalized keyword to Entry
//   - Entry: Plain, WithAction or Control (tagged variant)
//   - Interpreter: Resolves input lines and owns history and recall state
//   - Scheduler: Cancellable deferred execution of confirmed actions
//
// # Confirmation
//
// Entries that carry a follow-up action (navigation) never run it when
// looked up. The action is scheduled only when the next submission is the
// confirm keyword "y", and it fires after a short delay so the
// acknowledgment renders first:
//
//	in := terminal.New(table, terminal.Options{ConfirmDelay: 500 * time.Millisecond})
//	in.Submit("about")  // shows the about text and asks (y/n)
//	in.Submit("y")      // "Executing command...", action fires later
//
// Closing the interpreter cancels any action that has not fired yet.
package terminal
