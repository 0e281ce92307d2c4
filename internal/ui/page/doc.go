// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package page renders the portfolio profile as one scrollable page with a
// section navigation header.
package page
