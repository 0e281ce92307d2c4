// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// copyToClipboard writes text to the system clipboard.
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// copyCmd copies text off the UI loop and reports the outcome.
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return CopiedMsg{Err: err}
		}
		return CopiedMsg{Chars: len([]rune(text))}
	}
}
