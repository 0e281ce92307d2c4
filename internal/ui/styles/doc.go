// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for folio.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

## Terminal Window

The terminal page is styled after a dark code editor: an emerald prompt on
a near-black window with red, yellow and green window dots.

	Emerald      - Prompt, headings and the (y/n) call to action
	EmeraldSoft  - Response text
	WindowBg     - Window background
	WindowBorder - Window frame and separators

## Overlay

The overlay terminal opened over the profile page uses a pastel palette:

	Peach    - Prompt and banner
	Lavender - Responses
	Mint     - Typed input

# Theme (theme.go)

Theme holds every style, built from a lipgloss.Renderer so color output can
be forced off (--no-color, NO_COLOR) or pinned to a light or dark
background:

	theme := styles.NewTheme(styles.Options{Mode: "auto"})
	prompt := theme.Page.Prompt.Render("hong@portfolio:~$")

Terminal styles come in two sets, Page and Overlay, selected by the
terminal variant.
*/
package styles
