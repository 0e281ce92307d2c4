// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// TERMINAL CONTENT
// =============================================================================

// Terminal renders terminal history with one variant's styles.
type Terminal struct {
	Styles styles.TerminalStyles

	// Prompt is the prompt text, e.g. "hong@portfolio:~$"
	Prompt string

	// CodeStyle is the chroma style for code blocks
	CodeStyle string

	// NoColor disables syntax highlighting
	NoColor bool

	// Width wraps response text; 0 disables wrapping
	Width int
}

// Banner renders the welcome banner with a divider below it.
func (r Terminal) Banner(c terminal.Content) string {
	var lines []string
	if c.Heading != "" {
		lines = append(lines, r.Styles.Banner.Render(c.Heading))
	}
	for _, l := range c.Lines {
		lines = append(lines, r.Styles.BannerSub.Render(l))
	}
	if r.Width > 0 {
		lines = append(lines, r.Styles.Divider.Render(strings.Repeat("─", r.Width)))
	}
	return strings.Join(lines, "\n")
}

// PromptLine renders the prompt followed by typed text.
func (r Terminal) PromptLine(command string) string {
	return r.Styles.Prompt.Render(r.Prompt) + " " + r.Styles.Command.Render(command)
}

// Record renders one history record: the echoed prompt line and the
// indented response.
func (r Terminal) Record(rec terminal.Record) string {
	line := r.PromptLine(rec.Command)
	body := r.Content(rec.Response, !rec.Known)
	if body == "" {
		return line
	}
	return line + "\n" + body
}

// History renders every record, separated by blank lines.
func (r Terminal) History(records []terminal.Record) string {
	parts := make([]string, len(records))
	for i, rec := range records {
		parts[i] = r.Record(rec)
	}
	return strings.Join(parts, "\n\n")
}

// Content renders a response body.
func (r Terminal) Content(c terminal.Content, notFound bool) string {
	if c.IsEmpty() {
		return ""
	}

	text := r.Styles.Response
	if notFound {
		text = text.Foreground(r.Styles.NotFound.GetForeground())
	}
	if r.Width > 4 {
		text = text.Width(r.Width)
	}

	var blocks []string
	if c.Heading != "" {
		blocks = append(blocks, text.Render(r.Styles.Heading.Render(c.Heading)))
	}
	for _, l := range c.Lines {
		blocks = append(blocks, text.Render(l))
	}
	if len(c.Items) > 0 {
		items := make([]string, len(c.Items))
		for i, item := range c.Items {
			items[i] = r.Styles.Item.Render("• " + r.item(item))
		}
		blocks = append(blocks, text.Render(strings.Join(items, "\n")))
	}
	if c.Code != nil {
		code := strings.TrimRight(c.Code.Source, "\n")
		if !r.NoColor {
			code = strings.TrimRight(Highlight(code, c.Code.Lang, r.CodeStyle), "\n")
		}
		blocks = append(blocks, lipgloss.NewStyle().PaddingLeft(2).Render(r.Styles.CodeBorder.Render(code)))
	}
	if c.Prompt != "" {
		blocks = append(blocks, r.Styles.Response.Render(r.Styles.CTA.Render(c.Prompt)))
	}
	return strings.Join(blocks, "\n")
}

// item highlights the keyword of a "keyword - description" help line.
func (r Terminal) item(s string) string {
	name, desc, ok := strings.Cut(s, " - ")
	if !ok || strings.ContainsAny(name, ":") {
		return s
	}
	return r.Styles.Keyword.Render(name) + " - " + desc
}
