// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

func plainTerminal() Terminal {
	theme := styles.NewTheme(styles.Options{NoColor: true, Output: &bytes.Buffer{}})
	return Terminal{
		Styles:  theme.Page,
		Prompt:  "hong@portfolio:~$",
		NoColor: true,
	}
}

func TestTerminal_Record(t *testing.T) {
	r := plainTerminal()

	out := r.Record(terminal.Record{
		Command:  "whoami",
		Response: terminal.Text("홍길동 - Frontend Developer"),
		Known:    true,
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "hong@portfolio:~$ whoami", lines[0])
	assert.Equal(t, "  홍길동 - Frontend Developer", lines[1])
}

func TestTerminal_EmptyResponse(t *testing.T) {
	r := plainTerminal()
	out := r.Record(terminal.Record{Command: "", Known: true})
	assert.Equal(t, "hong@portfolio:~$ ", out)
}

func TestTerminal_StructuredContent(t *testing.T) {
	r := plainTerminal()

	out := r.Content(terminal.Content{
		Heading: "Available commands:",
		Items:   []string{"about - About me", "clear - Clear terminal"},
		Prompt:  "Go to about section? (y/n)",
	}, false)

	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "• about - About me")
	assert.Contains(t, out, "• clear - Clear terminal")
	assert.Contains(t, out, "Go to about section? (y/n)")
	assert.True(t, strings.Index(out, "Available") < strings.Index(out, "(y/n)"))
}

func TestTerminal_CodeBlock(t *testing.T) {
	r := plainTerminal()

	out := r.Content(terminal.Content{
		Code: &terminal.Code{Lang: "json", Source: "{\n  \"email\": \"a@b.c\"\n}\n"},
	}, false)
	assert.Contains(t, out, `"email": "a@b.c"`)
}

func TestTerminal_History(t *testing.T) {
	r := plainTerminal()
	out := r.History([]terminal.Record{
		{Command: "pwd", Response: terminal.Text("/terminal"), Known: true},
		{Command: "foo", Response: terminal.Text(terminal.NotFound("foo"))},
	})
	assert.Contains(t, out, "hong@portfolio:~$ pwd\n  /terminal\n\nhong@portfolio:~$ foo")
	assert.Contains(t, out, "Command not found: foo.")
}

func TestTerminal_Banner(t *testing.T) {
	r := plainTerminal()
	r.Width = 10
	out := r.Banner(terminal.Content{Heading: "Welcome", Lines: []string{"Type 'help'"}})
	assert.Equal(t, "Welcome\nType 'help'\n"+strings.Repeat("─", 10), out)
}

func TestTerminal_WrapsToWidth(t *testing.T) {
	r := plainTerminal()
	r.Width = 20
	out := r.Content(terminal.Text(strings.Repeat("word ", 12)), false)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 20)
	}
}

func TestHighlight(t *testing.T) {
	src := `{"email": "a@b.c"}`
	out := Highlight(src, "json", "")
	assert.Contains(t, out, "\x1b[")
	assert.Equal(t, src, strings.TrimRight(ansi.Strip(out), "\n"))

	// Unknown language and style still produce the source text.
	assert.Contains(t, ansi.Strip(Highlight("plain words", "no-such-lang", "no-such-style")), "plain words")
}

func TestMarkdown(t *testing.T) {
	md, err := NewMarkdown("notty", 40)
	require.NoError(t, err)
	assert.Equal(t, 40, md.Width())

	out := md.Render("## About Me\n\nHello **there**.")
	assert.Contains(t, out, "About Me")
	assert.Contains(t, out, "there")

	wider := md.Resize(60)
	assert.Equal(t, 60, wider.Width())
	assert.Same(t, wider, wider.Resize(60))

	var nilMD *Markdown
	assert.Equal(t, "raw", nilMD.Render("raw"))
}

func TestMarkdownStyle(t *testing.T) {
	assert.Equal(t, "notty", MarkdownStyle("dark", true))
	assert.Equal(t, "dark", MarkdownStyle("Dark", false))
	assert.Equal(t, "light", MarkdownStyle("light", false))
	assert.Equal(t, "auto", MarkdownStyle("auto", false))
}
