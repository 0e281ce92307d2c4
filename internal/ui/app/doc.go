// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model. It shows the portfolio page and
// opens terminal sessions over it.
//
// Each opened terminal is a fresh session: a new command table built from
// the current profile and a new interpreter. Confirmed navigation fires on a
// timer goroutine and reaches the UI loop through a Dispatcher.
package app
