package edit_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gamzabox/humble-line/internal/edit"
	"github.com/gamzabox/humble-line/internal/linebuf"
)

const flagJP = "\U0001F1EF\U0001F1F5"

func engineWith(t *testing.T, text string) *edit.Engine {
	t.Helper()
	e := edit.NewEngine()
	if err := e.Run(edit.InsertText(text)...); err != nil {
		t.Fatalf("insert %q: %v", text, err)
	}
	return e
}

func repeat(k edit.Kind, n int) []edit.Command {
	cmds := make([]edit.Command, n)
	for i := range cmds {
		cmds[i] = edit.Cmd(k)
	}
	return cmds
}

func TestBackspaceFromEndOfBuffer(t *testing.T) {
	e := engineWith(t, "hello world")
	if got := e.InsertionPoint(); got != 11 {
		t.Fatalf("expected insertion point 11 after typing, got %d", got)
	}

	if err := e.Run(repeat(edit.Backspace, 5)...); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.String(); got != "hello " {
		t.Fatalf("expected %q, got %q", "hello ", got)
	}
	if got := e.InsertionPoint(); got != 6 {
		t.Fatalf("expected insertion point 6, got %d", got)
	}
}

func TestDeleteOnEmptyBufferIsNoop(t *testing.T) {
	e := edit.NewEngine()
	if err := e.Run(edit.Cmd(edit.Delete)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.String(); got != "" {
		t.Fatalf("expected empty buffer, got %q", got)
	}
	if got := e.InsertionPoint(); got != 0 {
		t.Fatalf("expected insertion point 0, got %d", got)
	}
}

func TestEditCommandPolicy(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cmds       []edit.Command
		wantText   string
		wantCursor int
	}{
		{
			name:       "backspace inside buffer",
			text:       "abc",
			cmds:       []edit.Command{edit.Cmd(edit.MoveLeft), edit.Cmd(edit.Backspace)},
			wantText:   "ac",
			wantCursor: 1,
		},
		{
			name:       "backspace at start",
			text:       "abc",
			cmds:       []edit.Command{edit.Cmd(edit.MoveToStart), edit.Cmd(edit.Backspace)},
			wantText:   "abc",
			wantCursor: 0,
		},
		{
			name:       "backspace on empty",
			text:       "",
			cmds:       repeat(edit.Backspace, 3),
			wantText:   "",
			wantCursor: 0,
		},
		{
			name:       "backspace removes whole flag",
			text:       "a" + flagJP + "b",
			cmds:       []edit.Command{edit.Cmd(edit.MoveLeft), edit.Cmd(edit.Backspace)},
			wantText:   "ab",
			wantCursor: 1,
		},
		{
			name:       "backspace pops whole flag at end",
			text:       "a" + flagJP,
			cmds:       []edit.Command{edit.Cmd(edit.Backspace)},
			wantText:   "a",
			wantCursor: 1,
		},
		{
			name:       "delete keeps cursor",
			text:       "abc",
			cmds:       []edit.Command{edit.Cmd(edit.MoveToStart), edit.Cmd(edit.MoveRight), edit.Cmd(edit.Delete)},
			wantText:   "ac",
			wantCursor: 1,
		},
		{
			name:       "delete at end",
			text:       "abc",
			cmds:       []edit.Command{edit.Cmd(edit.Delete)},
			wantText:   "abc",
			wantCursor: 3,
		},
		{
			name:       "delete whole flag",
			text:       flagJP + "z",
			cmds:       []edit.Command{edit.Cmd(edit.MoveToStart), edit.Cmd(edit.Delete)},
			wantText:   "z",
			wantCursor: 0,
		},
		{
			name:       "insert in the middle",
			text:       "hllo",
			cmds:       []edit.Command{edit.Cmd(edit.MoveToStart), edit.Cmd(edit.MoveRight), edit.Insert('e')},
			wantText:   "hello",
			wantCursor: 2,
		},
		{
			name:       "combining mark joins previous cluster",
			text:       "e",
			cmds:       []edit.Command{edit.Insert('\u0301')},
			wantText:   "e\u0301",
			wantCursor: 3,
		},
		{
			name:       "word movement",
			text:       "foo bar baz",
			cmds:       []edit.Command{edit.Cmd(edit.MoveWordLeft), edit.Cmd(edit.MoveWordLeft), edit.Cmd(edit.MoveWordRight)},
			wantText:   "foo bar baz",
			wantCursor: 7,
		},
		{
			name:       "move left and right saturate",
			text:       "ab",
			cmds:       append(repeat(edit.MoveRight, 3), repeat(edit.MoveLeft, 5)...),
			wantText:   "ab",
			wantCursor: 0,
		},
		{
			name:       "move to end",
			text:       "ab",
			cmds:       []edit.Command{edit.Cmd(edit.MoveToStart), edit.Cmd(edit.MoveToEnd)},
			wantText:   "ab",
			wantCursor: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engineWith(t, tt.text)
			if err := e.Run(tt.cmds...); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if got := e.String(); got != tt.wantText {
				t.Fatalf("expected buffer %q, got %q", tt.wantText, got)
			}
			if got := e.InsertionPoint(); got != tt.wantCursor {
				t.Fatalf("expected insertion point %d, got %d", tt.wantCursor, got)
			}
		})
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	e := edit.NewEngine()
	err := e.Run(edit.Insert('a'), edit.Insert(-1), edit.Insert('b'))
	if !errors.Is(err, linebuf.ErrInvalidRune) {
		t.Fatalf("expected ErrInvalidRune, got %v", err)
	}
	if !strings.Contains(err.Error(), "InsertChar") {
		t.Fatalf("expected failing command in error, got %q", err.Error())
	}
	if got := e.String(); got != "a" {
		t.Fatalf("expected later commands skipped, got %q", got)
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	e := edit.NewEngine()
	if err := e.Run(edit.Command{Kind: edit.Kind(99)}); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}

func TestInsertStringAdvancesCursor(t *testing.T) {
	e := engineWith(t, "ad")
	if err := e.SetInsertionPoint(1); err != nil {
		t.Fatal(err)
	}
	if err := e.InsertString("bc"); err != nil {
		t.Fatalf("InsertString: %v", err)
	}
	if got := e.String(); got != "abcd" {
		t.Fatalf("expected %q, got %q", "abcd", got)
	}
	if got := e.InsertionPoint(); got != 3 {
		t.Fatalf("expected insertion point 3, got %d", got)
	}
}

func TestCommandString(t *testing.T) {
	if got := edit.Insert('x').String(); got != `InsertChar('x')` {
		t.Fatalf("unexpected InsertChar string %q", got)
	}
	if got := edit.Cmd(edit.MoveWordLeft).String(); got != "MoveWordLeft" {
		t.Fatalf("unexpected MoveWordLeft string %q", got)
	}
}
