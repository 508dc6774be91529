// Package linebuf holds the text of a single editable line and its insertion
// point. All offsets are byte offsets; the insertion point always sits on a
// grapheme cluster boundary.
package linebuf

import (
	"fmt"
	"unicode/utf8"
)

// LineBuffer is the text and cursor of one input line.
type LineBuffer struct {
	text           string
	insertionPoint int
}

// New returns an empty buffer.
func New() *LineBuffer {
	return &LineBuffer{}
}

// String returns the buffer contents.
func (b *LineBuffer) String() string {
	return b.text
}

// Len returns the length of the contents in bytes.
func (b *LineBuffer) Len() int {
	return len(b.text)
}

// IsEmpty reports whether the buffer has no contents.
func (b *LineBuffer) IsEmpty() bool {
	return b.text == ""
}

// InsertionPoint returns the cursor as a byte offset.
func (b *LineBuffer) InsertionPoint() int {
	return b.insertionPoint
}

// SetInsertionPoint moves the cursor to pos, which must be a grapheme boundary.
func (b *LineBuffer) SetInsertionPoint(pos int) error {
	if !isGraphemeBoundary(b.text, pos) {
		return positionError("set insertion point", pos, len(b.text))
	}
	b.insertionPoint = pos
	return nil
}

// SetBuffer replaces the contents. Callers reposition the cursor afterwards;
// a cursor left outside the new contents or off a boundary is pulled to the end.
func (b *LineBuffer) SetBuffer(text string) {
	b.text = text
	if !isGraphemeBoundary(b.text, b.insertionPoint) {
		b.insertionPoint = len(b.text)
	}
}

// MoveToStart puts the cursor at offset 0.
func (b *LineBuffer) MoveToStart() int {
	b.insertionPoint = 0
	return b.insertionPoint
}

// MoveToEnd puts the cursor after the last byte.
func (b *LineBuffer) MoveToEnd() int {
	b.insertionPoint = len(b.text)
	return b.insertionPoint
}

// IncInsertionPoint advances the cursor by one grapheme cluster.
func (b *LineBuffer) IncInsertionPoint() int {
	b.insertionPoint = nextBoundary(b.text, b.insertionPoint)
	return b.insertionPoint
}

// DecInsertionPoint moves the cursor back by one grapheme cluster.
func (b *LineBuffer) DecInsertionPoint() int {
	b.insertionPoint = prevBoundary(b.text, b.insertionPoint)
	return b.insertionPoint
}

// InsertChar inserts r at pos. The cursor keeps its place in the text, so an
// insert before it shifts it forward.
func (b *LineBuffer) InsertChar(pos int, r rune) error {
	if !utf8.ValidRune(r) {
		return fmt.Errorf("insert char %U: %w", r, ErrInvalidRune)
	}
	return b.insert("insert char", pos, string(r))
}

// InsertString inserts s at pos. The cursor moves only as InsertChar does.
func (b *LineBuffer) InsertString(pos int, s string) error {
	return b.insert("insert string", pos, s)
}

func (b *LineBuffer) insert(op string, pos int, s string) error {
	if !isCharBoundary(b.text, pos) {
		return positionError(op, pos, len(b.text))
	}
	b.text = b.text[:pos] + s + b.text[pos:]
	if pos < b.insertionPoint {
		b.insertionPoint += len(s)
	}
	b.clampInsertionPoint()
	return nil
}

// RemoveChar removes and returns the code point starting at pos.
func (b *LineBuffer) RemoveChar(pos int) (rune, error) {
	if pos == len(b.text) || !isCharBoundary(b.text, pos) {
		return utf8.RuneError, positionError("remove char", pos, len(b.text))
	}
	r, size := utf8.DecodeRuneInString(b.text[pos:])
	b.remove(pos, pos+size)
	return r, nil
}

// RemoveGrapheme removes and returns the whole grapheme cluster starting at pos.
func (b *LineBuffer) RemoveGrapheme(pos int) (string, error) {
	if pos == len(b.text) || !isGraphemeBoundary(b.text, pos) {
		return "", positionError("remove grapheme", pos, len(b.text))
	}
	end := nextBoundary(b.text, pos)
	removed := b.text[pos:end]
	b.remove(pos, end)
	return removed, nil
}

// remove cuts [start, end) and carries the cursor with the surrounding text.
// A cursor inside the cut lands on start; a cut that merges clusters around
// the cursor pushes it to the end of the merged cluster.
func (b *LineBuffer) remove(start, end int) {
	b.text = b.text[:start] + b.text[end:]
	switch {
	case b.insertionPoint >= end:
		b.insertionPoint -= end - start
	case b.insertionPoint > start:
		b.insertionPoint = start
	}
	b.clampInsertionPoint()
}

// Pop removes the last grapheme cluster and puts the cursor at the new end.
// It reports false when the buffer was already empty.
func (b *LineBuffer) Pop() (string, bool) {
	if b.text == "" {
		return "", false
	}
	start := prevBoundary(b.text, len(b.text))
	removed := b.text[start:]
	b.text = b.text[:start]
	b.insertionPoint = len(b.text)
	return removed, true
}

// Clear empties the buffer.
func (b *LineBuffer) Clear() {
	b.text = ""
	b.insertionPoint = 0
}

// ClearToEnd deletes everything from the cursor to the end.
func (b *LineBuffer) ClearToEnd() {
	b.text = b.text[:b.insertionPoint]
}

// ClearToInsertionPoint deletes everything before the cursor and moves the
// cursor to the start.
func (b *LineBuffer) ClearToInsertionPoint() {
	b.text = b.text[b.insertionPoint:]
	b.insertionPoint = 0
}

// ClearRange deletes the bytes in [start, end).
func (b *LineBuffer) ClearRange(start, end int) error {
	if err := b.checkRange("clear range", start, end); err != nil {
		return err
	}
	b.remove(start, end)
	return nil
}

// Span returns the text in [start, end) without modifying the buffer.
func (b *LineBuffer) Span(start, end int) (string, error) {
	if err := b.checkRange("span", start, end); err != nil {
		return "", err
	}
	return b.text[start:end], nil
}

func (b *LineBuffer) checkRange(op string, start, end int) error {
	if start > end {
		return positionError(op, start, len(b.text))
	}
	if !isCharBoundary(b.text, start) {
		return positionError(op, start, len(b.text))
	}
	if !isCharBoundary(b.text, end) {
		return positionError(op, end, len(b.text))
	}
	return nil
}

// SnapForward moves the cursor to the nearest grapheme boundary at or after it.
// Edits that merge clusters use this to restore the boundary invariant.
func (b *LineBuffer) SnapForward(pos int) int {
	if pos > len(b.text) {
		pos = len(b.text)
	}
	b.insertionPoint = ceilBoundary(b.text, pos)
	return b.insertionPoint
}

func (b *LineBuffer) clampInsertionPoint() {
	if b.insertionPoint < 0 {
		b.insertionPoint = 0
	}
	if b.insertionPoint > len(b.text) {
		b.insertionPoint = len(b.text)
	}
	if !isGraphemeBoundary(b.text, b.insertionPoint) {
		b.insertionPoint = ceilBoundary(b.text, b.insertionPoint)
	}
}
