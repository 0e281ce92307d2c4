// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

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
	"github.com/jeranaias/folio-tui/internal/ui/page"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
	"github.com/jeranaias/folio-tui/internal/ui/term"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorder is a Sender that keeps every message.
type recorder struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recorder) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recorder) all() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tea.Msg(nil), r.msgs...)
}

// heldScheduler keeps actions until fire.
type heldScheduler struct {
	mu     sync.Mutex
	fns    []func()
	closed bool
}

func (s *heldScheduler) Schedule(_ time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.fns = append(s.fns, fn)
	}
}

func (s *heldScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.fns = nil
}

func (s *heldScheduler) fire() {
	s.mu.Lock()
	fns := s.fns
	s.fns = nil
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *heldScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fns)
}

type fixture struct {
	model  Model
	sent   *recorder
	scheds []*heldScheduler
}

func newFixture(t *testing.T, mutate func(*Options)) *fixture {
	t.Helper()
	f := &fixture{sent: &recorder{}}
	d := NewDispatcher()
	d.Attach(f.sent)

	opts := Options{
		Theme:      styles.NewTheme(styles.Options{NoColor: true, Output: &bytes.Buffer{}}),
		Dispatcher: d,
		NewScheduler: func() terminal.Scheduler {
			s := &heldScheduler{}
			f.scheds = append(f.scheds, s)
			return s
		},
		Clipboard: func(string) error { return nil },
	}
	if mutate != nil {
		mutate(&opts)
	}
	f.model = New(opts)
	f.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(Model)
	return cmd
}

// sendAll delivers msg and follows the app-level messages its commands
// produce. Cursor blink commands are not run.
func (f *fixture) sendAll(msg tea.Msg) {
	cmd := f.send(msg)
	for cmd != nil {
		out := cmd()
		switch out.(type) {
		case page.OpenTerminalMsg, term.CloseMsg, NavigateMsg:
			cmd = f.send(out)
		default:
			return
		}
	}
}

func (f *fixture) typeText(s string) {
	f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (f *fixture) run(line string) {
	f.typeText(line)
	f.sendAll(tea.KeyMsg{Type: tea.KeyEnter})
}

func (f *fixture) lastScheduler() *heldScheduler {
	return f.scheds[len(f.scheds)-1]
}

func variantPtr(v terminal.Variant) *terminal.Variant {
	return &v
}

func TestDispatcher_DropsWhenDetached(t *testing.T) {
	d := NewDispatcher()
	assert.False(t, d.Send(NavigateMsg{}))

	r := &recorder{}
	d.Attach(r)
	d.Navigate(portfolio.SectionContact)
	assert.Equal(t, []tea.Msg{NavigateMsg{Section: portfolio.SectionContact}}, r.all())

	d.Attach(nil)
	assert.False(t, d.Send(NavigateMsg{}))
}

func TestApp_OpenAndExitOverlay(t *testing.T) {
	f := newFixture(t, nil)
	require.Nil(t, f.model.Terminal())

	f.sendAll(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	require.NotNil(t, f.model.Terminal())
	assert.Equal(t, terminal.VariantOverlay, f.model.Terminal().Variant())
	assert.Contains(t, f.model.View(), "guest@portfolio")

	f.run("exit")
	assert.Nil(t, f.model.Terminal())
	assert.Contains(t, f.model.View(), "홍길동")
}

func TestApp_ConfirmedNavigationReturnsToPage(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.Terminal = variantPtr(terminal.VariantPage) })
	require.NotNil(t, f.model.Terminal())

	f.run("contact")
	f.run("y")
	assert.Empty(t, f.sent.all(), "navigation waits for the timer")

	f.lastScheduler().fire()
	msgs := f.sent.all()
	require.Equal(t, []tea.Msg{NavigateMsg{Section: portfolio.SectionContact, Session: 1}}, msgs)

	f.send(msgs[0])
	assert.Nil(t, f.model.Terminal())
	assert.Equal(t, portfolio.SectionContact, f.model.Page().Active())
}

func TestApp_ClosingTerminalCancelsPendingNavigation(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.Terminal = variantPtr(terminal.VariantPage) })

	f.run("about")
	f.run("y")
	sched := f.lastScheduler()
	require.Equal(t, 1, sched.pending())

	f.sendAll(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, f.model.Terminal())
	assert.Equal(t, 0, sched.pending())
	sched.fire()
	assert.Empty(t, f.sent.all())
}

func TestApp_NavigationFromClosedSessionIsDropped(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.Terminal = variantPtr(terminal.VariantPage) })

	f.run("contact")
	f.run("y")
	// The timer fires before the session closes; its message arrives late.
	f.lastScheduler().fire()
	msgs := f.sent.all()
	require.Len(t, msgs, 1)

	f.sendAll(tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, f.model.Terminal())
	f.send(page.OpenTerminalMsg{Variant: terminal.VariantOverlay})
	require.NotNil(t, f.model.Terminal())

	f.send(msgs[0])
	assert.NotNil(t, f.model.Terminal(), "new session stays open")
	assert.Equal(t, portfolio.SectionHome, f.model.Page().Active())
}

func TestDispatcher_ForSession(t *testing.T) {
	r := &recorder{}
	d := NewDispatcher()
	d.Attach(r)

	d.ForSession(7).Navigate(portfolio.SectionProjects)
	assert.Equal(t, []tea.Msg{NavigateMsg{Section: portfolio.SectionProjects, Session: 7}}, r.all())
}

func TestApp_QuitOnClose(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.Terminal = variantPtr(terminal.VariantOverlay)
		o.QuitOnClose = true
	})

	f.typeText("exit")
	cmd := f.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, term.CloseMsg{}, msg)

	cmd = f.send(msg)
	assert.Nil(t, f.model.Terminal())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_EachOpenIsANewSession(t *testing.T) {
	f := newFixture(t, nil)

	f.send(page.OpenTerminalMsg{Variant: terminal.VariantOverlay})
	f.run("whoami")
	first := f.model.Terminal().Interpreter()
	require.Len(t, first.History(), 1)

	f.send(term.CloseMsg{})
	f.send(page.OpenTerminalMsg{Variant: terminal.VariantOverlay})
	second := f.model.Terminal().Interpreter()

	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.SessionID(), second.SessionID())
	assert.Empty(t, second.History())
}

func TestApp_ProfileReload(t *testing.T) {
	f := newFixture(t, nil)

	p := portfolio.Default()
	p.Name = "Kim"
	p.Role = "Backend Developer"
	f.send(ProfileMsg{Update: portfolio.Update{Profile: p}})
	assert.Same(t, p, f.model.Profile())
	assert.Contains(t, f.model.View(), "Kim")

	f.send(page.OpenTerminalMsg{Variant: terminal.VariantOverlay})
	f.run("whoami")
	hist := f.model.Terminal().Interpreter().History()
	require.Len(t, hist, 1)
	assert.Equal(t, "Kim - Backend Developer", hist[0].Response.String())
}

func TestApp_ProfileReloadError(t *testing.T) {
	f := newFixture(t, nil)
	before := f.model.Profile()

	f.send(ProfileMsg{Update: portfolio.Update{Err: errors.New("bad toml")}})
	assert.Same(t, before, f.model.Profile())
	assert.Contains(t, f.model.View(), "bad toml")
}

func TestWaitForUpdate(t *testing.T) {
	assert.Nil(t, waitForUpdate(nil))

	ch := make(chan portfolio.Update, 1)
	p := portfolio.Default()
	ch <- portfolio.Update{Profile: p}
	msg := waitForUpdate(ch)()
	assert.Equal(t, ProfileMsg{Update: portfolio.Update{Profile: p}}, msg)

	close(ch)
	assert.Nil(t, waitForUpdate(ch)())
}
