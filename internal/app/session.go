package app

import (
	"fmt"
	"strings"

	"github.com/gamzabox/humble-line/internal/edit"
	"github.com/gamzabox/humble-line/internal/history"
	"github.com/gamzabox/humble-line/internal/killreg"
	"github.com/gamzabox/humble-line/internal/logging"
)

// Session owns the editable line together with its history and kill
// register. Key decoding drives it; rendering reads it.
type Session struct {
	engine  *edit.Engine
	history *history.Store
	kill    killreg.Register
	logger  *logging.Logger
}

// NewSession creates a session whose history keeps at most capacity lines.
func NewSession(capacity int, logger *logging.Logger) *Session {
	return &Session{
		engine:  edit.NewEngine(),
		history: history.New(capacity),
		logger:  logger,
	}
}

// Text returns the current line.
func (s *Session) Text() string {
	return s.engine.String()
}

// InsertionPoint returns the cursor as a byte offset into Text.
func (s *Session) InsertionPoint() int {
	return s.engine.InsertionPoint()
}

// Kill returns the current kill register contents.
func (s *Session) Kill() string {
	return s.kill.Get()
}

// History returns the session's history store.
func (s *Session) History() *history.Store {
	return s.history
}

// Apply runs edit commands against the line.
func (s *Session) Apply(cmds ...edit.Command) error {
	if err := s.engine.Run(cmds...); err != nil {
		s.logger.Errorf("apply edit commands: %v", err)
		return err
	}
	return nil
}

// KillToEnd cuts from the cursor to the end of the line.
func (s *Session) KillToEnd() error {
	span, err := s.engine.Span(s.engine.InsertionPoint(), s.engine.Len())
	if err != nil {
		return s.fail("kill to end", err)
	}
	s.cut(span)
	s.engine.ClearToEnd()
	return nil
}

// KillToStart cuts from the start of the line to the cursor.
func (s *Session) KillToStart() error {
	span, err := s.engine.Span(0, s.engine.InsertionPoint())
	if err != nil {
		return s.fail("kill to start", err)
	}
	s.cut(span)
	s.engine.ClearToInsertionPoint()
	return nil
}

// KillWordBackward cuts from the previous word start to the cursor and leaves
// the cursor where the cut began.
func (s *Session) KillWordBackward() error {
	end := s.engine.InsertionPoint()
	start := s.engine.MoveWordLeft()
	return s.killRange("kill word backward", start, end)
}

// KillWordForward cuts from the cursor to the end of the next word.
func (s *Session) KillWordForward() error {
	start := s.engine.InsertionPoint()
	end := s.engine.MoveWordRight()
	return s.killRange("kill word forward", start, end)
}

// killRange cuts [start, end). The cursor sits at one end of the span, so the
// buffer leaves it at start, or past the cluster the cut merged into.
func (s *Session) killRange(op string, start, end int) error {
	span, err := s.engine.Span(start, end)
	if err != nil {
		return s.fail(op, err)
	}
	s.cut(span)
	if err := s.engine.ClearRange(start, end); err != nil {
		return s.fail(op, err)
	}
	return nil
}

func (s *Session) cut(span string) {
	if s.kill.Set(span) {
		s.logger.Debugf("kill register set (%d bytes)", len(span))
	}
}

// Yank inserts the kill register at the cursor and moves past it.
func (s *Session) Yank() error {
	text := s.kill.Get()
	if text == "" {
		return nil
	}
	if err := s.engine.InsertString(text); err != nil {
		return s.fail("yank", err)
	}
	s.logger.Debugf("yanked %d bytes", len(text))
	return nil
}

// RecallOlder replaces the line with the next older history entry. It
// reports false and leaves the line untouched when there is none.
func (s *Session) RecallOlder() bool {
	line, ok := s.history.RecallOlder()
	if !ok {
		return false
	}
	s.engine.SetBuffer(line)
	s.logger.Debugf("history recall older (cursor %d)", s.history.Cursor())
	return true
}

// RecallNewer replaces the line with the next newer history entry, or with
// the empty line when stepping past the newest one.
func (s *Session) RecallNewer() bool {
	line, ok := s.history.RecallNewer()
	if !ok {
		return false
	}
	s.engine.SetBuffer(line)
	s.logger.Debugf("history recall newer (cursor %d)", s.history.Cursor())
	return true
}

// Submit returns the current line, records it in history unless blank, and
// starts a fresh line.
func (s *Session) Submit() string {
	line := s.engine.String()
	if strings.TrimSpace(line) != "" {
		s.history.Submit(line)
		s.logger.Debugf("submitted line (%d bytes, %d in history)", len(line), s.history.Len())
	} else {
		s.history.Reset()
	}
	s.engine.Clear()
	return line
}

// Clear drops the current line without recording it.
func (s *Session) Clear() {
	s.engine.Clear()
	s.history.Reset()
}

func (s *Session) fail(op string, err error) error {
	s.logger.Errorf("%s: %v", op, err)
	return fmt.Errorf("%s: %w", op, err)
}
