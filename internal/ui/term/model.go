// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/portfolio"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/render"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// DefaultHost is the host shown in the prompt.
const DefaultHost = "portfolio"

// inputLimit bounds a single command line.
const inputLimit = 256

// Options configures a terminal view.
type Options struct {
	Variant terminal.Variant

	// Host is the prompt host; empty uses DefaultHost
	Host string

	// Welcome shows the banner until the first clear
	Welcome bool

	// CodeStyle is the chroma style for cat output
	CodeStyle string

	// Clipboard replaces the system clipboard (tests)
	Clipboard func(string) error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the terminal window: title bar, scrollback and input line.
type Model struct {
	interp  *terminal.Interpreter
	variant terminal.Variant
	theme   *styles.Theme
	render  render.Terminal
	title   string

	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     KeyMap

	welcome     terminal.Content
	showWelcome bool
	statusMsg   string
	clipboard   func(string) error

	width  int
	height int
	closed bool
}

// New creates a terminal view over interp. The profile supplies the prompt
// user and the welcome banner.
func New(interp *terminal.Interpreter, profile *portfolio.Profile, theme *styles.Theme, opts Options) Model {
	host := opts.Host
	if host == "" {
		host = DefaultHost
	}
	if opts.CodeStyle == "" {
		opts.CodeStyle = render.DefaultCodeStyle
	}
	if opts.Clipboard == nil {
		opts.Clipboard = copyToClipboard
	}

	user := terminal.PromptUser(profile, opts.Variant)
	st := theme.Terminal(opts.Variant == terminal.VariantOverlay)

	r := render.Terminal{
		Styles:    st,
		Prompt:    user + "@" + host + ":~$",
		CodeStyle: opts.CodeStyle,
		NoColor:   theme.NoColor(),
	}

	ti := textinput.New()
	ti.Prompt = st.Prompt.Render(r.Prompt) + " "
	ti.TextStyle = st.InputText
	ti.Placeholder = "help"
	ti.CharLimit = inputLimit
	ti.Focus()

	h := help.New()
	h.Styles.ShortKey = theme.ShortcutKey
	h.Styles.ShortDesc = theme.ShortcutDesc
	h.Styles.FullKey = theme.ShortcutKey
	h.Styles.FullDesc = theme.ShortcutDesc

	m := Model{
		interp:      interp,
		variant:     opts.Variant,
		theme:       theme,
		render:      r,
		title:       user + "@" + host + " ~",
		input:       ti,
		viewport:    viewport.New(80, 20),
		help:        h,
		keys:        DefaultKeyMap(),
		welcome:     terminal.Welcome(profile, opts.Variant),
		showWelcome: opts.Welcome,
		clipboard:   opts.Clipboard,
		width:       80,
		height:      24,
	}
	m.handleResize(m.width, m.height)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Interpreter returns the session behind the view.
func (m Model) Interpreter() *terminal.Interpreter {
	return m.interp
}

// Variant returns which command table the view runs.
func (m Model) Variant() terminal.Variant {
	return m.variant
}

// Input returns the current input buffer.
func (m Model) Input() string {
	return m.input.Value()
}

// Status returns the transient status message.
func (m Model) Status() string {
	return m.statusMsg
}

// Closed reports whether the session has been closed.
func (m Model) Closed() bool {
	return m.closed
}

// Close cancels the session's pending actions. Call it when the view is
// dismissed.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.interp.Close()
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

	case CopiedMsg:
		if msg.Err != nil {
			m.statusMsg = "Failed to copy"
		} else {
			m.statusMsg = "Copied!"
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.statusMsg != "" {
		m.statusMsg = ""
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		return m, closeCmd

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Previous):
		if cmd, ok := m.interp.Previous(); ok {
			m.setInput(cmd)
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if cmd, ok := m.interp.Next(); ok {
			m.setInput(cmd)
		}
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		buf := m.input.Value()
		if done := m.interp.Complete(buf); done != buf {
			m.setInput(done)
		}
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		rec, ok := m.lastRecord()
		if !ok {
			m.statusMsg = "Nothing to copy"
			return m, nil
		}
		return m, copyCmd(m.clipboard, rec.Response.String())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	res := m.interp.Submit(line)
	switch res.Signal {
	case terminal.SignalClear:
		m.showWelcome = false
	case terminal.SignalClose:
		m.refresh()
		return m, closeCmd
	}
	m.refresh()
	return m, nil
}

func closeCmd() tea.Msg {
	return CloseMsg{}
}

func (m *Model) setInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

func (m Model) lastRecord() (terminal.Record, bool) {
	records := m.interp.History()
	if len(records) == 0 {
		return terminal.Record{}, false
	}
	return records[len(records)-1], true
}

// =============================================================================
// LAYOUT
// =============================================================================

// handleResize sizes the viewport inside the window chrome.
func (m *Model) handleResize(width, height int) {
	m.width = width
	m.height = height

	// Window border (2) + title bar (2) + input line (1) + status line (1)
	reserved := 6
	vpHeight := height - reserved
	if vpHeight < 3 {
		vpHeight = 3
	}
	innerWidth := width - 4
	if innerWidth < 20 {
		innerWidth = 20
	}

	m.viewport.Width = innerWidth
	m.viewport.Height = vpHeight
	m.input.Width = innerWidth - lipgloss.Width(m.input.Prompt) - 1
	m.render.Width = innerWidth
	m.help.Width = width
	m.refresh()
}

// refresh re-renders the scrollback and keeps the newest line in view.
func (m *Model) refresh() {
	var parts []string
	if m.showWelcome {
		parts = append(parts, m.render.Banner(m.welcome))
	}
	if hist := m.render.History(m.interp.History()); hist != "" {
		parts = append(parts, hist)
	}
	m.viewport.SetContent(strings.Join(parts, "\n\n"))
	m.viewport.GotoBottom()
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	st := m.render.Styles
	innerWidth := m.viewport.Width

	dots := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Dots[0].Render("●"), " ",
		m.theme.Dots[1].Render("●"), " ",
		m.theme.Dots[2].Render("●"),
	)
	titleBar := st.TitleBar.Width(innerWidth).Render(dots + "  " + st.Title.Render(m.title))

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleBar,
		m.viewport.View(),
		m.input.View(),
	)
	window := st.Window.Width(innerWidth + 2).Render(body)

	status := m.statusMsg
	if status == "" {
		status = m.help.ShortHelpView(m.keys.ShortHelp())
	} else {
		status = m.theme.Notice.Render(status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, window, m.theme.StatusBar.Render(status))
}
