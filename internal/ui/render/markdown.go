// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/cockroachdb/errors"
)

// Markdown renders markdown with glamour at a fixed wrap width.
type Markdown struct {
	renderer *glamour.TermRenderer
	style    string
	width    int
}

// NewMarkdown creates a markdown renderer. style is "auto", "dark",
// "light" or "notty" (no color); width is the word-wrap column.
func NewMarkdown(style string, width int) (*Markdown, error) {
	if width <= 0 {
		width = 80
	}

	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	}
	switch strings.ToLower(style) {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(strings.ToLower(style)))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create markdown renderer")
	}
	return &Markdown{renderer: r, style: style, width: width}, nil
}

// Width returns the wrap width.
func (m *Markdown) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

// Resize returns a renderer for a new width, or m itself when the width is
// unchanged.
func (m *Markdown) Resize(width int) *Markdown {
	if m == nil || width == m.width || width <= 0 {
		return m
	}
	next, err := NewMarkdown(m.style, width)
	if err != nil {
		return m
	}
	return next
}

// Render renders md. The source is returned unchanged if rendering fails or
// m is nil.
func (m *Markdown) Render(md string) string {
	if m == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// MarkdownStyle maps the UI theme setting to a glamour style name.
func MarkdownStyle(theme string, noColor bool) string {
	if noColor {
		return "notty"
	}
	switch strings.ToLower(theme) {
	case "dark", "light":
		return strings.ToLower(theme)
	default:
		return "auto"
	}
}
