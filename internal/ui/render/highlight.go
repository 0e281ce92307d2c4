// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns terminal responses and profile markdown into styled
// terminal text.
package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// DefaultCodeStyle is the chroma style used when none is configured.
const DefaultCodeStyle = "monokai"

// Highlight applies syntax highlighting to code for a 256-color terminal.
// The language may be empty, in which case it is guessed. On any failure
// the code is returned unchanged.
func Highlight(code, language, style string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	if style == "" {
		style = DefaultCodeStyle
	}
	s := chromaStyles.Get(style)
	if s == nil {
		s = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, s, iterator); err != nil {
		return code
	}
	return buf.String()
}
