package app

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// cursorWidth is the screen width of the text before the insertion point.
func cursorWidth(s *Session) int {
	pos := s.InsertionPoint()
	if pos == 0 {
		return 0
	}
	return runewidth.StringWidth(s.Text()[:pos])
}

func contentWidth(s *Session) int {
	text := s.Text()
	if text == "" {
		return 0
	}
	return runewidth.StringWidth(text)
}

func renderLine(w io.Writer, prompt string, s *Session) {
	_, _ = fmt.Fprintf(w, "\r%s%s", prompt, s.Text())
	_, _ = fmt.Fprint(w, "\x1b[K")
	moveLeft := contentWidth(s) - cursorWidth(s)
	if moveLeft > 0 {
		_, _ = fmt.Fprintf(w, "\x1b[%dD", moveLeft)
	}
}
