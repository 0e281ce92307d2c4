// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// NORMALIZATION TESTS
// =============================================================================

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "help", "help"},
		{"upper", "HELP", "help"},
		{"padded", "  help  ", "help"},
		{"tabs and newline", "\thelp\n", "help"},
		{"whitespace only", "   ", ""},
		{"inner space kept", "cat  about.txt", "cat  about.txt"},
		// 한 typed as conjoining jamo composes to the precomposed syllable
		{"hangul jamo", "\u1112\u1161\u11ab", "\ud55c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

// =============================================================================
// TABLE TESTS
// =============================================================================

func TestNewTable_NormalizesAndReplaces(t *testing.T) {
	table := NewTable(
		Definition{Name: "  Help ", Description: "first", Entry: Plain{Content: Text("one")}},
		Definition{Name: "ls", Entry: Plain{Content: Text("files")}},
		Definition{Name: "HELP", Description: "second", Entry: Plain{Content: Text("two")}},
		Definition{Name: "", Entry: Plain{Content: Text("skipped")}},
		Definition{Name: "nil", Entry: nil},
	)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"help", "ls"}, table.Names())

	entry, ok := table.Lookup("help")
	require.True(t, ok)
	assert.Equal(t, Plain{Content: Text("two")}, entry)

	docs := table.Documented()
	require.Len(t, docs, 1)
	assert.Equal(t, "help", docs[0].Name)
	assert.Equal(t, "second", docs[0].Description)
}

func TestTable_LookupNormalizes(t *testing.T) {
	table := testTable(func() {})

	for _, key := range []string{"whoami", "WHOAMI", "  WhoAmI  "} {
		entry, ok := table.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, Plain{Content: Text("guest")}, entry)
	}

	_, ok := table.Lookup("who")
	assert.False(t, ok)
}

func TestTable_NamesIsCopy(t *testing.T) {
	table := testTable(func() {})
	names := table.Names()
	names[0] = "mutated"
	assert.NotEqual(t, "mutated", table.Names()[0])
}

func TestTable_NilSafe(t *testing.T) {
	var table *Table
	_, ok := table.Lookup("help")
	assert.False(t, ok)
	assert.Zero(t, table.Len())
	assert.Nil(t, table.Names())
	assert.Nil(t, table.Documented())
	assert.Equal(t, "he", table.Complete("he"))
}

// =============================================================================
// COMPLETION TESTS
// =============================================================================

func TestTable_Complete(t *testing.T) {
	table := NewTable(
		Definition{Name: "help", Entry: Plain{Content: Text("h")}},
		Definition{Name: "home", Entry: Plain{Content: Text("h")}},
	)

	tests := []struct {
		name   string
		buffer string
		want   string
	}{
		{"unique prefix", "he", "help"},
		{"ambiguous prefix", "h", "h"},
		{"no match", "x", "x"},
		{"exact keyword", "home", "home"},
		{"normalized prefix", "  HO", "home"},
		{"empty buffer matches all", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Complete(tt.buffer))
		})
	}
}

func TestTable_Matches(t *testing.T) {
	table := NewTable(
		Definition{Name: "cat about.txt", Entry: Plain{}},
		Definition{Name: "cat skills.md", Entry: Plain{}},
		Definition{Name: "clear", Entry: Control{Signal: SignalClear}},
	)

	assert.Equal(t, []string{"cat about.txt", "cat skills.md"}, table.Matches("cat"))
	assert.Equal(t, []string{"cat about.txt", "cat skills.md", "clear"}, table.Matches("c"))
	assert.Equal(t, "cat skills.md", table.Complete("cat s"))
	assert.Empty(t, table.Matches("z"))
}
