// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/folio-tui/internal/portfolio"
	"github.com/jeranaias/folio-tui/internal/terminal"
)

// Sender delivers messages to a running program. *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}

// Dispatcher forwards messages from background goroutines to the program.
// Messages sent before a program is attached are dropped.
type Dispatcher struct {
	mu     sync.Mutex
	sender Sender
}

// NewDispatcher creates an unattached dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Attach sets the program that receives messages. nil detaches.
func (d *Dispatcher) Attach(s Sender) {
	d.mu.Lock()
	d.sender = s
	d.mu.Unlock()
}

// Send forwards msg and reports whether a program was attached.
// It must not be called from the program's own Update.
func (d *Dispatcher) Send(msg tea.Msg) bool {
	d.mu.Lock()
	s := d.sender
	d.mu.Unlock()
	if s == nil {
		return false
	}
	s.Send(msg)
	return true
}

// Navigate implements terminal.Navigator.
func (d *Dispatcher) Navigate(section portfolio.Section) {
	d.Send(NavigateMsg{Section: section})
}

// ForSession returns a navigator whose messages carry session.
func (d *Dispatcher) ForSession(session uint64) terminal.Navigator {
	return terminal.NavigatorFunc(func(section portfolio.Section) {
		d.Send(NavigateMsg{Section: section, Session: session})
	})
}
