// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Options select how a Theme detects the terminal.
type Options struct {
	// Mode is "auto", "dark" or "light"
	Mode string

	// NoColor disables all color output
	NoColor bool

	// Output is the terminal being drawn to. Nil means stdout.
	Output io.Writer
}

// TerminalStyles styles one terminal variant.
type TerminalStyles struct {
	Window     lipgloss.Style
	TitleBar   lipgloss.Style
	Title      lipgloss.Style
	Prompt     lipgloss.Style
	Command    lipgloss.Style
	Response   lipgloss.Style
	Heading    lipgloss.Style
	Item       lipgloss.Style
	Keyword    lipgloss.Style
	CTA        lipgloss.Style
	NotFound   lipgloss.Style
	Banner     lipgloss.Style
	BannerSub  lipgloss.Style
	Divider    lipgloss.Style
	InputText  lipgloss.Style
	Pending    lipgloss.Style
	CodeBorder lipgloss.Style
}

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	renderer *lipgloss.Renderer

	// ==========================================================================
	// TERMINAL STYLES
	// ==========================================================================

	Page    TerminalStyles
	Overlay TerminalStyles

	Dots [3]lipgloss.Style

	// ==========================================================================
	// PROFILE PAGE STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	NavItem        lipgloss.Style
	NavItemActive  lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Notice       lipgloss.Style
	ErrorText    lipgloss.Style
	Muted        lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme(opts Options) *Theme {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	r := lipgloss.NewRenderer(out)

	switch strings.ToLower(opts.Mode) {
	case "dark":
		r.SetHasDarkBackground(true)
	case "light":
		r.SetHasDarkBackground(false)
	}
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}

	t := &Theme{
		IsDark:       r.HasDarkBackground(),
		ColorProfile: r.ColorProfile(),
		renderer:     r,
	}
	t.initStyles()
	return t
}

// Renderer returns the renderer the styles were built with.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// NoColor reports whether color output is disabled.
func (t *Theme) NoColor() bool {
	return t.ColorProfile == termenv.Ascii
}

// Terminal returns the styles for a terminal variant.
func (t *Theme) Terminal(overlay bool) TerminalStyles {
	if overlay {
		return t.Overlay
	}
	return t.Page
}

func (t *Theme) initStyles() {
	s := t.renderer.NewStyle

	base := TerminalStyles{
		Window: s().
			Background(WindowBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(WindowBorder),
		TitleBar: s().
			Background(WindowBar).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(WindowBorder).
			Padding(0, 1),
		Title:      s().Foreground(TextSecondary),
		Command:    s().Foreground(TextPrimary),
		Item:       s().PaddingLeft(2),
		NotFound:   s().Foreground(Rose),
		Divider:    s().Foreground(WindowBorder),
		Pending:    s().Foreground(Amber).Italic(true),
		CodeBorder: s().BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).BorderForeground(WindowBorder).PaddingLeft(1),
	}

	t.Page = base
	t.Page.Prompt = s().Foreground(Emerald).Bold(true)
	t.Page.Response = s().Foreground(EmeraldSoft).PaddingLeft(2)
	t.Page.Heading = s().Foreground(Emerald).Bold(true)
	t.Page.Keyword = s().Foreground(Emerald)
	t.Page.CTA = s().Foreground(Emerald).MarginTop(1)
	t.Page.Banner = s().Foreground(Emerald).Bold(true)
	t.Page.BannerSub = s().Foreground(EmeraldSoft)
	t.Page.InputText = s().Foreground(TextPrimary)

	t.Overlay = base
	t.Overlay.Window = base.Window.BorderForeground(Peach)
	t.Overlay.Prompt = s().Foreground(Peach)
	t.Overlay.Response = s().Foreground(Lavender).PaddingLeft(2)
	t.Overlay.Heading = s().Foreground(Lavender).Bold(true)
	t.Overlay.Keyword = s().Foreground(Peach)
	t.Overlay.CTA = s().Foreground(Peach).MarginTop(1)
	t.Overlay.Banner = s().Foreground(Peach)
	t.Overlay.BannerSub = s().Foreground(Lavender)
	t.Overlay.InputText = s().Foreground(Mint)

	t.Dots = [3]lipgloss.Style{
		s().Foreground(DotClose),
		s().Foreground(DotMin),
		s().Foreground(DotMax),
	}

	t.Header = s().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(WindowBorder).
		Padding(0, 1)
	t.HeaderTitle = s().Bold(true).Foreground(Purple)
	t.HeaderSubtitle = s().Foreground(TextSecondary).Italic(true)
	t.NavItem = s().Foreground(TextSecondary).Padding(0, 1)
	t.NavItemActive = s().Foreground(Purple).Bold(true).Underline(true).Padding(0, 1)

	t.StatusBar = s().Foreground(TextSecondary).Padding(0, 1)
	t.ShortcutKey = s().Foreground(Cyan).Bold(true)
	t.ShortcutDesc = s().Foreground(TextMuted)
	t.Notice = s().Foreground(Emerald)
	t.ErrorText = s().Foreground(Rose)
	t.Muted = s().Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // >= 100 columns
)
