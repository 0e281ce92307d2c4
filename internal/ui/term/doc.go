// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package term is the Bubble Tea view of a terminal session.
//
// The model owns the input line and the scrollback viewport; all command
// semantics live in the terminal package. The view reacts to the signal of
// each result: Clear redraws an empty scrollback, Close emits CloseMsg for
// the owner to act on.
package term
