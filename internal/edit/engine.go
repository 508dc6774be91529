// Package edit applies named edit commands to a line buffer. Which key
// produces which command is left entirely to the front end.
package edit

import (
	"fmt"
	"unicode/utf8"

	"github.com/gamzabox/humble-line/internal/linebuf"
)

// Engine owns one line buffer and applies commands to it.
type Engine struct {
	buf *linebuf.LineBuffer
}

// NewEngine returns an engine with an empty buffer.
func NewEngine() *Engine {
	return &Engine{buf: linebuf.New()}
}

// Run applies cmds in order, each seeing the state left by the previous one.
// It stops at the first command that fails.
func (e *Engine) Run(cmds ...Command) error {
	for _, cmd := range cmds {
		if err := e.apply(cmd); err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
	}
	return nil
}

func (e *Engine) apply(cmd Command) error {
	switch cmd.Kind {
	case MoveToStart:
		e.buf.MoveToStart()
	case MoveToEnd:
		e.buf.MoveToEnd()
	case MoveLeft:
		e.buf.DecInsertionPoint()
	case MoveRight:
		e.buf.IncInsertionPoint()
	case MoveWordLeft:
		e.buf.MoveWordLeft()
	case MoveWordRight:
		e.buf.MoveWordRight()
	case InsertChar:
		pos := e.buf.InsertionPoint()
		if err := e.buf.InsertChar(pos, cmd.Char); err != nil {
			return err
		}
		e.buf.SnapForward(pos + utf8.RuneLen(cmd.Char))
	case Backspace:
		return e.backspace()
	case Delete:
		return e.delete()
	default:
		return fmt.Errorf("unknown edit command %d", int(cmd.Kind))
	}
	return nil
}

// backspace at the end pops the last cluster; inside the buffer it steps left
// and removes the cluster under the cursor. At the start or on an empty
// buffer nothing happens.
func (e *Engine) backspace() error {
	pos := e.buf.InsertionPoint()
	switch {
	case e.buf.IsEmpty():
		return nil
	case pos == e.buf.Len():
		e.buf.Pop()
		return nil
	case pos > 0:
		_, err := e.buf.RemoveGrapheme(e.buf.DecInsertionPoint())
		return err
	}
	return nil
}

// delete removes the cluster under the cursor and never moves it.
func (e *Engine) delete() error {
	pos := e.buf.InsertionPoint()
	if e.buf.IsEmpty() || pos >= e.buf.Len() {
		return nil
	}
	_, err := e.buf.RemoveGrapheme(pos)
	return err
}

// String returns the buffer contents.
func (e *Engine) String() string { return e.buf.String() }

// Len returns the buffer length in bytes.
func (e *Engine) Len() int { return e.buf.Len() }

// IsEmpty reports whether the buffer is empty.
func (e *Engine) IsEmpty() bool { return e.buf.IsEmpty() }

// InsertionPoint returns the cursor byte offset.
func (e *Engine) InsertionPoint() int { return e.buf.InsertionPoint() }

// SetInsertionPoint moves the cursor to a grapheme boundary.
func (e *Engine) SetInsertionPoint(pos int) error { return e.buf.SetInsertionPoint(pos) }

// SetBuffer replaces the contents and moves the cursor to the end.
func (e *Engine) SetBuffer(text string) {
	e.buf.SetBuffer(text)
	e.buf.MoveToEnd()
}

// Clear empties the buffer.
func (e *Engine) Clear() { e.buf.Clear() }

// ClearToEnd deletes from the cursor to the end.
func (e *Engine) ClearToEnd() { e.buf.ClearToEnd() }

// ClearToInsertionPoint deletes from the start to the cursor.
func (e *Engine) ClearToInsertionPoint() { e.buf.ClearToInsertionPoint() }

// ClearRange deletes the bytes in [start, end).
func (e *Engine) ClearRange(start, end int) error { return e.buf.ClearRange(start, end) }

// Span returns the text in [start, end).
func (e *Engine) Span(start, end int) (string, error) { return e.buf.Span(start, end) }

// MoveWordLeft moves to the previous word start and returns the new cursor.
func (e *Engine) MoveWordLeft() int { return e.buf.MoveWordLeft() }

// MoveWordRight moves past the next word end and returns the new cursor.
func (e *Engine) MoveWordRight() int { return e.buf.MoveWordRight() }

// InsertString inserts s at the cursor and moves the cursor past it.
func (e *Engine) InsertString(s string) error {
	pos := e.buf.InsertionPoint()
	if err := e.buf.InsertString(pos, s); err != nil {
		return err
	}
	e.buf.SnapForward(pos + len(s))
	return nil
}
