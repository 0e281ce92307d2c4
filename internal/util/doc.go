// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small file and string helpers shared by folio's
// packages.
//
// String helpers measure display width in terminal cells, so Hangul and
// other wide characters count as two columns.
package util
