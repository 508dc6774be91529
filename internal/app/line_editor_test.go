package app

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestRenderLineProducesExpectedCursorMovement(t *testing.T) {
	s := NewSession(10, nil)
	if _, err := runEditLine(t, s, "你好!\x02"); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}

	var builder strings.Builder
	renderLine(&builder, "humble> ", s)

	got := builder.String()
	expected := "\rhumble> 你好!\x1b[K\x1b[1D"
	if got != expected {
		t.Fatalf("render output mismatch\nexpected: %q\ngot:      %q", expected, got)
	}
}

func TestRenderLineCountsWideClusters(t *testing.T) {
	s := NewSession(10, nil)
	if _, err := runEditLine(t, s, "한글x\x01\x06"); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if got := cursorWidth(s); got != 2 {
		t.Fatalf("expected cursor width 2, got %d", got)
	}
	if got := contentWidth(s); got != 5 {
		t.Fatalf("expected content width 5, got %d", got)
	}
}

func TestRenderLineEmpty(t *testing.T) {
	var builder strings.Builder
	renderLine(&builder, "> ", NewSession(10, nil))
	if got := builder.String(); got != "\r> \x1b[K" {
		t.Fatalf("expected bare prompt, got %q", got)
	}
}
