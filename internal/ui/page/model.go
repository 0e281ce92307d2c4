// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package page

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/portfolio"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/render"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
	"github.com/jeranaias/folio-tui/internal/util"
)

// OpenTerminalMsg asks the owner to open a terminal over the page.
type OpenTerminalMsg struct {
	Variant terminal.Variant
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the portfolio page: a header and one viewport holding every
// section in order.
type Model struct {
	profile  *portfolio.Profile
	theme    *styles.Theme
	md       *render.Markdown
	wrap     int
	header   *Header
	viewport viewport.Model
	help     help.Model
	keys     KeyMap

	// offsets maps each section to its first line in the viewport content
	offsets map[portfolio.Section]int
	active  portfolio.Section
	notice  string

	width  int
	height int
}

// Options configures a page.
type Options struct {
	// Markdown renders sections; nil shows raw markdown
	Markdown *render.Markdown

	// WordWrap fixes the wrap column; 0 follows the window width
	WordWrap int
}

// New creates a page for p.
func New(p *portfolio.Profile, theme *styles.Theme, opts Options) Model {
	h := help.New()
	h.Styles.ShortKey = theme.ShortcutKey
	h.Styles.ShortDesc = theme.ShortcutDesc

	m := Model{
		profile:  p,
		theme:    theme,
		md:       opts.Markdown,
		wrap:     opts.WordWrap,
		header:   NewHeader(theme, p),
		viewport: viewport.New(80, 20),
		help:     h,
		keys:     DefaultKeyMap(),
		offsets:  make(map[portfolio.Section]int, len(portfolio.Sections)),
		active:   portfolio.SectionHome,
		width:    80,
		height:   24,
	}
	m.handleResize(m.width, m.height)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Profile returns the profile being shown.
func (m Model) Profile() *portfolio.Profile {
	return m.profile
}

// Active returns the section at the top of the view.
func (m Model) Active() portfolio.Section {
	return m.active
}

// Offset returns the first content line of a section.
func (m Model) Offset(s portfolio.Section) int {
	return m.offsets[s]
}

// SetProfile replaces the profile and re-renders, keeping the active
// section in view.
func (m *Model) SetProfile(p *portfolio.Profile) {
	m.profile = p
	m.header.SetProfile(p)
	m.renderContent()
	m.ScrollTo(m.active)
}

// SetNotice shows a message in the status line until the next key press.
func (m *Model) SetNotice(s string) {
	m.notice = s
}

// ScrollTo moves a section to the top of the view.
func (m *Model) ScrollTo(s portfolio.Section) {
	m.viewport.SetYOffset(m.offsets[s])
	m.active = s
	m.header.Active = s
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.syncActive()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Overlay):
		return m, openCmd(terminal.VariantOverlay)

	case key.Matches(msg, m.keys.TerminalPage):
		return m, openCmd(terminal.VariantPage)

	case key.Matches(msg, m.keys.Sections):
		idx := int(msg.String()[0] - '1')
		m.ScrollTo(portfolio.Sections[idx])
		return m, nil

	case key.Matches(msg, m.keys.NextSection):
		m.ScrollTo(m.step(1))
		return m, nil

	case key.Matches(msg, m.keys.PrevSection):
		m.ScrollTo(m.step(-1))
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	default:
		return m, nil
	}
	m.syncActive()
	return m, nil
}

func openCmd(v terminal.Variant) tea.Cmd {
	return func() tea.Msg { return OpenTerminalMsg{Variant: v} }
}

// step returns the section delta positions away from the active one,
// clamped to the page.
func (m Model) step(delta int) portfolio.Section {
	idx := 0
	for i, s := range portfolio.Sections {
		if s == m.active {
			idx = i
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(portfolio.Sections) {
		idx = len(portfolio.Sections) - 1
	}
	return portfolio.Sections[idx]
}

// syncActive marks the last section starting at or above the top line.
func (m *Model) syncActive() {
	top := m.viewport.YOffset
	active := portfolio.SectionHome
	for _, s := range portfolio.Sections {
		if m.offsets[s] <= top {
			active = s
		}
	}
	m.active = active
	m.header.Active = active
}

// =============================================================================
// LAYOUT
// =============================================================================

func (m *Model) handleResize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.header.Width = width

	// Header (title + nav + border) and status line
	reserved := lipgloss.Height(m.header.View()) + 1
	vpHeight := height - reserved
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.help.Width = width

	wrap := m.wrap
	if wrap <= 0 {
		wrap = width - 2
	}
	m.md = m.md.Resize(wrap)
	m.renderContent()
	m.ScrollTo(m.active)
}

// renderContent renders every section and records where each starts.
func (m *Model) renderContent() {
	var sb strings.Builder
	line := 0
	for i, s := range portfolio.Sections {
		block := strings.TrimRight(m.md.Render(m.profile.SectionMarkdown(s)), "\n")
		if i > 0 {
			sb.WriteString("\n\n")
			line++
		}
		m.offsets[s] = line
		sb.WriteString(block)
		line += strings.Count(block, "\n") + 1
	}

	footer := util.Center("© "+m.profile.Name, m.width)
	sb.WriteString("\n\n" + m.theme.Muted.Render(footer))
	m.viewport.SetContent(sb.String())
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	status := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.notice != "" {
		status = m.theme.ErrorText.Render(m.notice)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.viewport.View(),
		m.theme.StatusBar.Render(status),
	)
}
