// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// NORMALIZATION
// =============================================================================

// Normalize trims surrounding whitespace, composes Unicode (so Hangul typed
// as separate jamo matches the precomposed keyword) and lower-cases.
func Normalize(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// =============================================================================
// COMMAND TABLE
// =============================================================================

// Table is a read-only mapping from normalized keyword to Entry.
// It has no mutators; a session that needs different commands builds a new
// table.
type Table struct {
	entries map[string]Entry
	defs    []Definition // registration order, normalized names
	names   []string     // sorted
}

// NewTable builds a table from definitions. Names are normalized; a later
// definition with the same normalized name replaces an earlier one.
func NewTable(defs ...Definition) *Table {
	t := &Table{
		entries: make(map[string]Entry, len(defs)),
	}

	index := make(map[string]int, len(defs))
	for _, def := range defs {
		name := Normalize(def.Name)
		if name == "" || def.Entry == nil {
			continue
		}
		def.Name = name
		if i, ok := index[name]; ok {
			t.defs[i] = def
		} else {
			index[name] = len(t.defs)
			t.defs = append(t.defs, def)
		}
		t.entries[name] = def.Entry
	}

	t.names = make([]string, 0, len(t.entries))
	for name := range t.entries {
		t.names = append(t.names, name)
	}
	sort.Strings(t.names)
	return t
}

// Lookup returns the entry for a keyword. The keyword is normalized first.
func (t *Table) Lookup(keyword string) (Entry, bool) {
	if t == nil {
		return nil, false
	}
	entry, ok := t.entries[Normalize(keyword)]
	return entry, ok
}

// Names returns all keywords in sorted order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of commands.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Documented returns definitions with a description, in registration order.
func (t *Table) Documented() []Definition {
	if t == nil {
		return nil
	}
	var out []Definition
	for _, def := range t.defs {
		if def.Description != "" {
			out = append(out, def)
		}
	}
	return out
}

// =============================================================================
// TAB COMPLETION
// =============================================================================

// Matches returns every keyword starting with the normalized prefix.
func (t *Table) Matches(prefix string) []string {
	if t == nil {
		return nil
	}
	prefix = Normalize(prefix)

	var matches []string
	for _, name := range t.names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

// Complete returns the full keyword when exactly one keyword starts with
// the buffer. With zero or several matches the buffer is returned unchanged.
func (t *Table) Complete(buffer string) string {
	matches := t.Matches(buffer)
	if len(matches) == 1 {
		return matches[0]
	}
	return buffer
}
