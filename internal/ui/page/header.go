// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package page

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/portfolio"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
	"github.com/jeranaias/folio-tui/internal/util"
)

// =============================================================================
// HEADER
// =============================================================================

// Header is the title line with the section navigation below it.
type Header struct {
	Title    string
	Subtitle string
	Active   portfolio.Section
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a header for a profile.
func NewHeader(theme *styles.Theme, p *portfolio.Profile) *Header {
	h := &Header{Width: 80, Active: portfolio.SectionHome, theme: theme}
	h.SetProfile(p)
	return h
}

// SetProfile updates the title from a profile.
func (h *Header) SetProfile(p *portfolio.Profile) {
	h.Title = p.Name
	h.Subtitle = p.Role
}

// View renders the header. Narrow terminals drop the subtitle and use the
// section numbers alone.
func (h *Header) View() string {
	t := h.theme
	width := h.Width
	if width < 20 {
		width = 20
	}
	compact := t.GetLayoutMode() == styles.LayoutNarrow

	inner := width - 2
	name := util.TruncateWidth(h.Title, inner)
	title := t.HeaderTitle.Render(name)
	if room := inner - util.StringWidth(name) - 2; !compact && h.Subtitle != "" && room > len(util.Ellipsis) {
		title += "  " + t.HeaderSubtitle.Render(util.TruncateWidth(h.Subtitle, room))
	}

	items := make([]string, len(portfolio.Sections))
	for i, s := range portfolio.Sections {
		label := strconv.Itoa(i+1) + " " + strings.ToLower(s.Title())
		if compact {
			label = strconv.Itoa(i + 1)
		}
		if s == h.Active {
			items[i] = t.NavItemActive.Render(label)
		} else {
			items[i] = t.NavItem.Render(label)
		}
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top, items...)

	return t.Header.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, title, nav))
}
