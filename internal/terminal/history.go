// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

// =============================================================================
// HISTORY
// =============================================================================

// Record is one submitted line and the response echoed for it.
type Record struct {
	Command  string
	Response Content

	// Known is false when the command was not found
	Known bool
}

// History is the ordered record of a session, most recent last.
// Records are only appended; Clear drops them all.
type History struct {
	records []Record
}

// Append adds a record at the end.
func (h *History) Append(r Record) {
	h.records = append(h.records, r)
}

// Clear empties the history.
func (h *History) Clear() {
	h.records = nil
}

// Len returns the number of records.
func (h *History) Len() int {
	return len(h.records)
}

// At returns the record at index i (0 is the oldest).
func (h *History) At(i int) (Record, bool) {
	if i < 0 || i >= len(h.records) {
		return Record{}, false
	}
	return h.records[i], true
}

// Last returns the most recent record.
func (h *History) Last() (Record, bool) {
	return h.At(len(h.records) - 1)
}

// Records returns a copy of all records, oldest first.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// =============================================================================
// RECALL
// =============================================================================

// Recall walks back through history for the input buffer. The cursor counts
// back from the most recent record; -1 means not browsing.
type Recall struct {
	history *History
	cursor  int
}

// NewRecall creates a recall cursor over h.
func NewRecall(h *History) *Recall {
	return &Recall{history: h, cursor: -1}
}

// Cursor returns the current offset from the most recent record, or -1.
func (r *Recall) Cursor() int {
	return r.cursor
}

// Reset stops browsing.
func (r *Recall) Reset() {
	r.cursor = -1
}

// Previous moves one record further back. It returns the command to place
// in the input buffer and false when there is no older record.
func (r *Recall) Previous() (string, bool) {
	n := r.history.Len()
	if n == 0 || r.cursor+1 >= n {
		return "", false
	}
	r.cursor++
	rec, _ := r.history.At(n - 1 - r.cursor)
	return rec.Command, true
}

// Next moves one record toward the present. Moving past the most recent
// record stops browsing and yields an empty buffer. It returns false when
// not browsing.
func (r *Recall) Next() (string, bool) {
	switch {
	case r.cursor > 0:
		r.cursor--
		rec, _ := r.history.At(r.history.Len() - 1 - r.cursor)
		return rec.Command, true
	case r.cursor == 0:
		r.cursor = -1
		return "", true
	default:
		return "", false
	}
}
