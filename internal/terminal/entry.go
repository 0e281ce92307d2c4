// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

// =============================================================================
// COMMAND ENTRIES
// =============================================================================

// Entry is the response definition stored under a command keyword.
// It is one of Plain, WithAction or Control.
type Entry interface {
	isEntry()
}

// Plain is a response shown verbatim.
type Plain struct {
	Content Content
}

// WithAction is a response paired with a follow-up action. Looking it up
// only shows the content; the action runs after an explicit "y".
type WithAction struct {
	Content Content
	Action  func()
}

// Control is a response the caller interprets as an instruction.
type Control struct {
	Signal  Signal
	Content Content
}

func (Plain) isEntry()      {}
func (WithAction) isEntry() {}
func (Control) isEntry()    {}

// Signal is an instruction for the owner of the interpreter.
type Signal int

const (
	SignalNone  Signal = iota // Display the response
	SignalClear               // History was emptied
	SignalClose               // Close the terminal view
)

// String returns the signal name.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalClear:
		return "clear"
	case SignalClose:
		return "close"
	default:
		return "unknown"
	}
}

// Definition registers an entry in a table.
type Definition struct {
	// Name is the keyword; it is normalized when the table is built
	Name string

	// Description is shown by help listings; empty hides the command
	Description string

	Entry Entry
}
