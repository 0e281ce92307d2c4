// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/jeranaias/folio-tui/internal/portfolio"
)

// NavigateMsg moves the page to a section, closing any open terminal.
// A non-zero Session ties it to the terminal session that confirmed it;
// it is dropped once that session is gone.
type NavigateMsg struct {
	Section portfolio.Section
	Session uint64
}

// ProfileMsg carries a profile reload from the watcher.
type ProfileMsg struct {
	Update portfolio.Update
}
