package linebuf

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// cluster is one grapheme cluster as a byte range of the buffer.
type cluster struct {
	start int
	end   int
	word  bool
}

// clusters segments text into grapheme clusters. Every cursor movement goes
// through this so offsets never land inside a cluster.
func clusters(text string) []cluster {
	if text == "" {
		return nil
	}
	out := make([]cluster, 0, len(text))
	offset := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var c string
		c, rest, _, state = uniseg.StepString(rest, state)
		out = append(out, cluster{
			start: offset,
			end:   offset + len(c),
			word:  isWordCluster(c),
		})
		offset += len(c)
	}
	return out
}

// isWordCluster reports whether the cluster contains a letter or digit.
func isWordCluster(c string) bool {
	for _, r := range c {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// nextBoundary returns the first grapheme boundary strictly after pos,
// saturating at len(text).
func nextBoundary(text string, pos int) int {
	for _, c := range clusters(text) {
		if c.end > pos {
			return c.end
		}
	}
	return len(text)
}

// prevBoundary returns the last grapheme boundary strictly before pos,
// saturating at 0.
func prevBoundary(text string, pos int) int {
	prev := 0
	for _, c := range clusters(text) {
		if c.start >= pos {
			break
		}
		prev = c.start
	}
	return prev
}

// ceilBoundary returns the smallest grapheme boundary >= pos.
func ceilBoundary(text string, pos int) int {
	if pos <= 0 {
		return 0
	}
	for _, c := range clusters(text) {
		if c.end >= pos {
			return c.end
		}
	}
	return len(text)
}

func isGraphemeBoundary(text string, pos int) bool {
	if pos == 0 || pos == len(text) {
		return true
	}
	if pos < 0 || pos > len(text) {
		return false
	}
	for _, c := range clusters(text) {
		if c.end == pos {
			return true
		}
		if c.end > pos {
			return false
		}
	}
	return false
}

func isCharBoundary(text string, pos int) bool {
	if pos < 0 || pos > len(text) {
		return false
	}
	return pos == len(text) || utf8.RuneStart(text[pos])
}
