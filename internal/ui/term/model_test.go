// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jeranaias/folio-tui/internal/portfolio"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// manualScheduler holds actions until fire is called.
type manualScheduler struct {
	mu     sync.Mutex
	fns    []func()
	closed bool
}

func (s *manualScheduler) Schedule(_ time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.fns = append(s.fns, fn)
	}
}

func (s *manualScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.fns = nil
}

func (s *manualScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fns)
}

type harness struct {
	model     Model
	sched     *manualScheduler
	navigated []portfolio.Section
	copied    []string
}

func newHarness(t *testing.T, variant terminal.Variant) *harness {
	t.Helper()
	h := &harness{sched: &manualScheduler{}}
	profile := portfolio.Default()
	table := terminal.NewCatalog(profile, terminal.CatalogOptions{
		Variant:   variant,
		Navigator: terminal.NavigatorFunc(func(s portfolio.Section) { h.navigated = append(h.navigated, s) }),
	})
	interp := terminal.New(table, terminal.Options{Scheduler: h.sched})
	theme := styles.NewTheme(styles.Options{NoColor: true, Output: &bytes.Buffer{}})

	h.model = New(interp, profile, theme, Options{
		Variant: variant,
		Welcome: true,
		Clipboard: func(s string) error {
			h.copied = append(h.copied, s)
			return nil
		},
	})
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) run(s string) tea.Cmd {
	h.typeText(s)
	return h.send(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_SubmitRecordsAndClearsInput(t *testing.T) {
	h := newHarness(t, terminal.VariantPage)

	h.typeText("whoami")
	assert.Equal(t, "whoami", h.model.Input())

	cmd := h.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, h.model.Input())

	records := h.model.Interpreter().History()
	require.Len(t, records, 1)
	assert.Equal(t, "whoami", records[0].Command)
	assert.Contains(t, h.model.View(), "whoami")
}

func TestModel_PromptUsesVariantUser(t *testing.T) {
	page := newHarness(t, terminal.VariantPage)
	assert.Contains(t, page.model.View(), "hong@portfolio:~$")

	overlay := newHarness(t, terminal.VariantOverlay)
	assert.Contains(t, overlay.model.View(), "guest@portfolio:~$")
}

func TestModel_TabCompletesUniqueKeyword(t *testing.T) {
	h := newHarness(t, terminal.VariantPage)

	h.typeText("who")
	h.send(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "whoami", h.model.Input())
}

func TestModel_TabLeavesAmbiguousPrefix(t *testing.T) {
	h := newHarness(t, terminal.VariantPage)

	// "c" matches clear, contact and the cat commands.
	h.typeText("c")
	h.send(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "c", h.model.Input())
}

func TestModel_HistoryRecall(t *testing.T) {
	h := newHarness(t, terminal.VariantPage)
	h.run("pwd")
	h.run("ls")

	h.send(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "ls", h.model.Input())
	h.send(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "pwd", h.model.Input())
	h.send(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "pwd", h.model.Input(), "oldest record stays")

	h.send(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "ls", h.model.Input())
	h.send(tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, h.model.Input())
}

func TestModel_ClearDropsBannerAndHistory(t *testing.T) {
	h := newHarness(t, terminal.VariantPage)
	assert.Contains(t, h.model.View(), "Portfolio Terminal")

	h.run("pwd")
	h.run("clear")

	assert.Empty(t, h.model.Interpreter().History())
	assert.NotContains(t, h.model.View(), "Portfolio Terminal")
	assert.NotContains(t, h.model.View(), "/terminal")
}

func TestModel_ConfirmSchedulesNavigation(t *testing.T) {
	h := newHarness(t, terminal.VariantPage)

	h.run("projects")
	assert.Contains(t, h.model.View(), "Go to projects section? (y/n)")

	h.run("y")
	assert.Equal(t, 1, h.sched.pending())
	assert.Empty(t, h.navigated, "navigation is deferred")
	assert.Contains(t, h.model.View(), terminal.MsgExecuting)
}

func TestModel_ExitEmitsClose(t *testing.T) {
	h := newHarness(t, terminal.VariantOverlay)

	cmd := h.run("exit")
	require.NotNil(t, cmd)
	assert.Equal(t, CloseMsg{}, cmd())
}

func TestModel_EscEmitsClose(t *testing.T) {
	h := newHarness(t, terminal.VariantPage)

	cmd := h.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CloseMsg{}, cmd())
}

func TestModel_QuitCancelsPendingAction(t *testing.T) {
	h := newHarness(t, terminal.VariantPage)
	h.run("about")
	h.run("y")
	require.Equal(t, 1, h.sched.pending())

	cmd := h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 0, h.sched.pending())
	assert.True(t, h.model.Closed())
}

func TestModel_CopyLastResponse(t *testing.T) {
	h := newHarness(t, terminal.VariantPage)

	assert.Nil(t, h.send(tea.KeyMsg{Type: tea.KeyCtrlY}))
	assert.Equal(t, "Nothing to copy", h.model.Status())

	h.run("pwd")
	cmd := h.send(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, CopiedMsg{Chars: len("/terminal")}, msg)
	assert.Equal(t, []string{"/terminal"}, h.copied)

	h.send(msg)
	assert.Equal(t, "Copied!", h.model.Status())

	h.send(CopiedMsg{Err: errors.New("no clipboard")})
	assert.Equal(t, "Failed to copy", h.model.Status())
}

func TestModel_ResizeKeepsMinimumViewport(t *testing.T) {
	h := newHarness(t, terminal.VariantPage)

	h.send(tea.WindowSizeMsg{Width: 10, Height: 4})
	assert.Equal(t, 3, h.model.viewport.Height)
	assert.Equal(t, 20, h.model.viewport.Width)
}
