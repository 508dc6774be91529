package linebuf

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition indicates a byte offset that is out of range or does not
// fall on a character or grapheme boundary.
var ErrInvalidPosition = errors.New("invalid position")

// ErrInvalidRune indicates a rune that has no UTF-8 encoding.
var ErrInvalidRune = errors.New("invalid rune")

// PositionError describes an operation rejected because of a bad offset.
type PositionError struct {
	Op  string
	Pos int
	Len int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s: invalid position %d (buffer length %d)", e.Op, e.Pos, e.Len)
}

func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

func positionError(op string, pos, length int) error {
	return &PositionError{Op: op, Pos: pos, Len: length}
}
