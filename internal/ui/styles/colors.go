// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Purple - Page headings, active navigation
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - Links and shortcut keys
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Terminal prompt, headings, call to action
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// EmeraldSoft - Terminal response text
var EmeraldSoft = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#6EE7B7"}

// Rose - Unknown commands
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Pending confirmation
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// OVERLAY PASTELS
// =============================================================================

// Peach - Overlay prompt and banner
var Peach = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FDBA8C"}

// Lavender - Overlay responses
var Lavender = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#DDD6FE"}

// Mint - Overlay input text
var Mint = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#CCFBF1"}

// =============================================================================
// WINDOW COLORS
// =============================================================================

// WindowBg - Terminal window background
var WindowBg = lipgloss.AdaptiveColor{Light: "#F6F8FA", Dark: "#161B22"}

// WindowBar - Title bar above the history
var WindowBar = lipgloss.AdaptiveColor{Light: "#EAEEF2", Dark: "#0D1117"}

// WindowBorder - Window frame and separators
var WindowBorder = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#30363D"}

// Window dots
var (
	DotClose = lipgloss.Color("#EF4444")
	DotMin   = lipgloss.Color("#EAB308")
	DotMax   = lipgloss.Color("#22C55E")
)

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text, typed commands
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F0F6FC"}

// TextSecondary - Labels, window title
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#8B949E"}

// TextMuted - Hints, placeholders
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6E7681"}
