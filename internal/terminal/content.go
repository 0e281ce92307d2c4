// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"strings"
)

// =============================================================================
// DISPLAY CONTENT
// =============================================================================

// Content is the display value of a command response.
// A response is either a single line of text or structured content with an
// optional heading, body lines, a bullet list, a code block and a trailing
// question shown in the accent color.
type Content struct {
	// Heading is shown first, emphasized
	Heading string

	// Lines are paragraphs of body text
	Lines []string

	// Items are rendered as a bullet list
	Items []string

	// Code is an optional source block (e.g. contact.json)
	Code *Code

	// Prompt is a trailing call to action, e.g. "Go to about section? (y/n)"
	Prompt string
}

// Code is a block of source text with a language hint for highlighting.
type Code struct {
	Lang   string
	Source string
}

// Text returns content holding a single line of text.
func Text(s string) Content {
	if s == "" {
		return Content{}
	}
	return Content{Lines: []string{s}}
}

// IsEmpty reports whether the content has nothing to display.
func (c Content) IsEmpty() bool {
	return c.Heading == "" && len(c.Lines) == 0 && len(c.Items) == 0 &&
		c.Code == nil && c.Prompt == ""
}

// String renders the content as plain text, one element per line.
func (c Content) String() string {
	var sb strings.Builder
	writeLine := func(s string) {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s)
	}

	if c.Heading != "" {
		writeLine(c.Heading)
	}
	for _, line := range c.Lines {
		writeLine(line)
	}
	for _, item := range c.Items {
		writeLine("  - " + item)
	}
	if c.Code != nil {
		for _, line := range strings.Split(strings.TrimRight(c.Code.Source, "\n"), "\n") {
			writeLine(line)
		}
	}
	if c.Prompt != "" {
		writeLine(c.Prompt)
	}
	return sb.String()
}

// Markdown renders the content as a markdown fragment.
func (c Content) Markdown() string {
	var parts []string
	if c.Heading != "" {
		parts = append(parts, "**"+c.Heading+"**")
	}
	if len(c.Lines) > 0 {
		parts = append(parts, strings.Join(c.Lines, "\n\n"))
	}
	if len(c.Items) > 0 {
		items := make([]string, len(c.Items))
		for i, item := range c.Items {
			items[i] = "- " + item
		}
		parts = append(parts, strings.Join(items, "\n"))
	}
	if c.Code != nil {
		parts = append(parts, "```"+c.Code.Lang+"\n"+strings.TrimRight(c.Code.Source, "\n")+"\n```")
	}
	if c.Prompt != "" {
		parts = append(parts, "*"+c.Prompt+"*")
	}
	return strings.Join(parts, "\n\n")
}
