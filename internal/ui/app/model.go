// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/portfolio"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/page"
	"github.com/jeranaias/folio-tui/internal/ui/render"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
	"github.com/jeranaias/folio-tui/internal/ui/term"
)

// Options configures the root model.
type Options struct {
	Config   *config.Config
	Profile  *portfolio.Profile
	Theme    *styles.Theme
	Markdown *render.Markdown
	Logger   *zap.Logger

	// Dispatcher routes confirmed navigation back to the program
	Dispatcher *Dispatcher

	// Updates delivers profile reloads; nil disables reloading
	Updates <-chan portfolio.Update

	// Terminal opens a session of this variant at start
	Terminal *terminal.Variant

	// QuitOnClose ends the program when the start session closes
	QuitOnClose bool

	// NewScheduler overrides the confirmation timer (tests)
	NewScheduler func() terminal.Scheduler

	// Clipboard overrides the system clipboard (tests)
	Clipboard func(string) error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the root model: the page, and at most one terminal on top.
type Model struct {
	opts    Options
	profile *portfolio.Profile
	page    page.Model
	term    *term.Model

	// sessions counts opened terminals; termSession is the open one's
	sessions    uint64
	termSession uint64

	quitOnClose bool
	width       int
	height      int
}

// New creates the root model.
func New(opts Options) Model {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Profile == nil {
		opts.Profile = portfolio.Default()
	}
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme(styles.Options{Mode: opts.Config.UI.Theme, NoColor: opts.Config.UI.NoColor})
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = NewDispatcher()
	}

	m := Model{
		opts:    opts,
		profile: opts.Profile,
		page: page.New(opts.Profile, opts.Theme, page.Options{
			Markdown: opts.Markdown,
			WordWrap: opts.Config.UI.WordWrap,
		}),
		width:  80,
		height: 24,
	}
	if opts.Terminal != nil {
		m.openTerminal(*opts.Terminal)
		m.quitOnClose = opts.QuitOnClose
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.page.Init(), waitForUpdate(m.opts.Updates)}
	if m.term != nil {
		cmds = append(cmds, m.term.Init())
	}
	return tea.Batch(cmds...)
}

// Page returns the page view.
func (m Model) Page() page.Model {
	return m.page
}

// Terminal returns the open terminal, or nil.
func (m Model) Terminal() *term.Model {
	return m.term
}

// Profile returns the current profile.
func (m Model) Profile() *portfolio.Profile {
	return m.profile
}

// Close releases the open terminal session, if any.
func (m *Model) Close() {
	m.closeTerminal()
}

// waitForUpdate blocks on the next profile reload.
func waitForUpdate(ch <-chan portfolio.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return ProfileMsg{Update: u}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.page = updatePage(m.page, msg)
		if m.term != nil {
			m.resizeTerminal()
		}
		return m, nil

	case page.OpenTerminalMsg:
		return m, m.openTerminal(msg.Variant)

	case term.CloseMsg:
		m.closeTerminal()
		if m.quitOnClose {
			return m, tea.Quit
		}
		return m, nil

	case NavigateMsg:
		if msg.Session != 0 && (m.term == nil || msg.Session != m.termSession) {
			m.opts.Logger.Debug("stale navigation dropped",
				zap.String("section", string(msg.Section)),
				zap.Uint64("session", msg.Session))
			return m, nil
		}
		m.opts.Logger.Info("navigate", zap.String("section", string(msg.Section)))
		m.closeTerminal()
		m.quitOnClose = false
		m.page.ScrollTo(msg.Section)
		return m, nil

	case ProfileMsg:
		m.applyProfile(msg.Update)
		return m, waitForUpdate(m.opts.Updates)
	}

	if m.term != nil {
		next, cmd := m.term.Update(msg)
		tm := next.(term.Model)
		m.term = &tm
		if tm.Closed() {
			m.term = nil
		}
		return m, cmd
	}

	next, cmd := m.page.Update(msg)
	m.page = next.(page.Model)
	return m, cmd
}

func updatePage(p page.Model, msg tea.Msg) page.Model {
	next, _ := p.Update(msg)
	return next.(page.Model)
}

// openTerminal starts a new session from the current profile, replacing
// any open one.
func (m *Model) openTerminal(v terminal.Variant) tea.Cmd {
	m.closeTerminal()

	m.sessions++
	m.termSession = m.sessions

	cfg := m.opts.Config
	table := terminal.NewCatalog(m.profile, terminal.CatalogOptions{
		Variant:   v,
		Navigator: m.opts.Dispatcher.ForSession(m.termSession),
	})
	var sched terminal.Scheduler
	if m.opts.NewScheduler != nil {
		sched = m.opts.NewScheduler()
	}
	interp := terminal.New(table, terminal.Options{
		ConfirmDelay: cfg.Terminal.ConfirmDelay(),
		Scheduler:    sched,
		Logger:       m.opts.Logger,
	})

	tm := term.New(interp, m.profile, m.opts.Theme, term.Options{
		Variant:   v,
		Host:      cfg.Terminal.Host,
		Welcome:   cfg.Terminal.Welcome,
		CodeStyle: cfg.UI.CodeStyle,
		Clipboard: m.opts.Clipboard,
	})
	m.term = &tm
	m.resizeTerminal()

	m.opts.Logger.Info("terminal opened",
		zap.Stringer("table", v),
		zap.String("session", interp.SessionID()))
	return tm.Init()
}

func (m *Model) closeTerminal() {
	if m.term == nil {
		return
	}
	m.term.Close()
	m.opts.Logger.Info("terminal closed", zap.String("session", m.term.Interpreter().SessionID()))
	m.term = nil
	m.termSession = 0
}

// resizeTerminal fills the screen with the terminal page and insets the
// overlay.
func (m *Model) resizeTerminal() {
	w, h := m.width, m.height
	if m.term.Variant() == terminal.VariantOverlay {
		w, h = w*4/5, h*4/5
	}
	next, _ := m.term.Update(tea.WindowSizeMsg{Width: w, Height: h})
	tm := next.(term.Model)
	m.term = &tm
}

// applyProfile swaps in a reloaded profile. An open session keeps the
// table it was opened with.
func (m *Model) applyProfile(u portfolio.Update) {
	if u.Err != nil {
		m.opts.Logger.Warn("profile reload rejected", zap.Error(u.Err))
		m.page.SetNotice("Profile not reloaded: " + u.Err.Error())
		return
	}
	m.profile = u.Profile
	m.page.SetProfile(u.Profile)
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if m.term == nil {
		return m.page.View()
	}
	if m.term.Variant() == terminal.VariantOverlay {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.term.View())
	}
	return m.term.View()
}
