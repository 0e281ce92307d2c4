// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

// CloseMsg asks the owner to close the terminal view. It is emitted for the
// exit command and the close key.
type CloseMsg struct{}

// CopiedMsg reports the result of copying the last response.
type CopiedMsg struct {
	Chars int
	Err   error
}
