// Package history keeps a bounded, most-recent-first list of submitted lines
// with a recall cursor for up/down navigation.
package history

// DefaultCapacity is used when a store is created with a non-positive capacity.
const DefaultCapacity = 100

const notRecalling = -1

// Store is a fixed-capacity line history. Entry 0 is the newest line.
type Store struct {
	// lines is ordered oldest to newest so eviction drops index 0.
	lines    []string
	capacity int
	cursor   int
}

// New creates a store holding at most capacity lines.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		lines:    make([]string, 0, capacity),
		capacity: capacity,
		cursor:   notRecalling,
	}
}

// Capacity returns the maximum number of entries.
func (s *Store) Capacity() int {
	return s.capacity
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.lines)
}

// Cursor returns the recall position; -1 means not recalling.
func (s *Store) Cursor() int {
	return s.cursor
}

// Entry returns the i-th newest entry.
func (s *Store) Entry(i int) (string, bool) {
	if i < 0 || i >= len(s.lines) {
		return "", false
	}
	return s.lines[len(s.lines)-1-i], true
}

// Entries returns a copy of all entries, newest first.
func (s *Store) Entries() []string {
	out := make([]string, len(s.lines))
	for i := range out {
		out[i] = s.lines[len(s.lines)-1-i]
	}
	return out
}

// Submit records line as the newest entry, evicting the oldest one when full,
// and ends any recall in progress.
func (s *Store) Submit(line string) {
	if len(s.lines) == s.capacity {
		copy(s.lines, s.lines[1:])
		s.lines = s.lines[:len(s.lines)-1]
	}
	s.lines = append(s.lines, line)
	s.cursor = notRecalling
}

// RecallOlder steps one entry toward the oldest and returns it. It reports
// false when already at the oldest entry or when the store is empty; the
// caller must then leave the visible line alone.
func (s *Store) RecallOlder() (string, bool) {
	if s.cursor+1 >= len(s.lines) {
		return "", false
	}
	s.cursor++
	return s.Entry(s.cursor)
}

// RecallNewer steps one entry toward the newest. Stepping past the newest
// entry ends the recall and yields the empty line. It reports false when no
// recall is in progress.
func (s *Store) RecallNewer() (string, bool) {
	if s.cursor == notRecalling {
		return "", false
	}
	s.cursor--
	if s.cursor == notRecalling {
		return "", true
	}
	return s.Entry(s.cursor)
}

// Reset ends any recall in progress without recording a line.
func (s *Store) Reset() {
	s.cursor = notRecalling
}
