// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the folio command line.
//
// # Commands
//
//   - folio: The portfolio page, with the terminal overlay on "t"
//   - folio term: The full-screen terminal page
//   - folio repl: The terminal in line mode, for pipes and plain terminals
//   - folio ask: Run one terminal command and print the response
//   - folio config: Show, initialize and edit ~/.folio/config.toml
//   - folio version: Print build information
//
// When stdin is not a terminal, folio runs the REPL instead of the TUI.
package cli
