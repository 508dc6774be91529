package linebuf

import "testing"

func TestMoveWordLeft(t *testing.T) {
	b := bufferWith("foo bar baz")

	for i, want := range []int{8, 4, 0, 0} {
		if got := b.MoveWordLeft(); got != want {
			t.Fatalf("step %d: expected insertion point %d, got %d", i, want, got)
		}
	}
}

func TestMoveWordRight(t *testing.T) {
	b := bufferWith("foo bar baz")
	b.MoveToStart()

	for i, want := range []int{3, 7, 11, 11} {
		if got := b.MoveWordRight(); got != want {
			t.Fatalf("step %d: expected insertion point %d, got %d", i, want, got)
		}
	}
}

func TestWordMovementFromInsideWord(t *testing.T) {
	b := bufferWith("alpha beta")
	if err := b.SetInsertionPoint(8); err != nil {
		t.Fatal(err)
	}
	if got := b.MoveWordLeft(); got != 6 {
		t.Fatalf("expected start of current word 6, got %d", got)
	}

	if err := b.SetInsertionPoint(2); err != nil {
		t.Fatal(err)
	}
	if got := b.MoveWordRight(); got != 5 {
		t.Fatalf("expected end of current word 5, got %d", got)
	}
}

func TestWordMovementSkipsPunctuationRuns(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start int
		left  bool
		want  int
	}{
		{name: "left over punctuation", text: "foo, -- bar", start: 8, left: true, want: 0},
		{name: "right over punctuation", text: "foo, -- bar", start: 3, left: false, want: 11},
		{name: "left only separators", text: " ... ", start: 5, left: true, want: 0},
		{name: "right only separators", text: " ... ", start: 0, left: false, want: 5},
		{name: "digits are words", text: "v2 42", start: 5, left: true, want: 3},
		{name: "cjk words", text: "한글 단어", start: 13, left: true, want: 7},
		{name: "emoji is a separator", text: "hi" + thumbsUp + "yo", start: 12, left: true, want: 10},
		{name: "combining stays in word", text: "caf" + eAcute + " x", start: 0, left: false, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bufferWith(tt.text)
			if err := b.SetInsertionPoint(tt.start); err != nil {
				t.Fatal(err)
			}
			var got int
			if tt.left {
				got = b.MoveWordLeft()
			} else {
				got = b.MoveWordRight()
			}
			if got != tt.want {
				t.Fatalf("expected insertion point %d, got %d", tt.want, got)
			}
		})
	}
}

func TestWordMovementSaturatesAtExtremes(t *testing.T) {
	texts := []string{"", "one", "  lead and trail  ", "a" + flagUS + "b c", "x_y-z"}
	for _, text := range texts {
		b := bufferWith(text)
		for _, c := range append(clusters(text), cluster{start: len(text)}) {
			if err := b.SetInsertionPoint(c.start); err != nil {
				t.Fatal(err)
			}
			for i := 0; i <= len(text); i++ {
				b.MoveWordLeft()
			}
			if got := b.InsertionPoint(); got != 0 {
				t.Fatalf("text %q from %d: expected to settle at 0, got %d", text, c.start, got)
			}
			if got := b.MoveWordLeft(); got != 0 {
				t.Fatalf("text %q: expected to stay at 0, got %d", text, got)
			}

			for i := 0; i <= len(text); i++ {
				b.MoveWordRight()
			}
			if got := b.InsertionPoint(); got != len(text) {
				t.Fatalf("text %q: expected to settle at %d, got %d", text, len(text), got)
			}
			if got := b.MoveWordRight(); got != len(text) {
				t.Fatalf("text %q: expected to stay at %d, got %d", text, len(text), got)
			}
		}
	}
}
