package linebuf

// MoveWordLeft moves the cursor to the start of the word it is in, or to the
// start of the previous word when it already sits at a word start or on a
// separator. It stops at 0.
func (b *LineBuffer) MoveWordLeft() int {
	cs := clusters(b.text)
	j := -1
	for i, c := range cs {
		if c.end > b.insertionPoint {
			break
		}
		j = i
	}
	for j >= 0 && !cs[j].word {
		j--
	}
	for j >= 0 && cs[j].word {
		j--
	}
	if j < 0 {
		b.insertionPoint = 0
	} else {
		b.insertionPoint = cs[j].end
	}
	return b.insertionPoint
}

// MoveWordRight moves the cursor just past the end of the next word. It stops
// at the end of the buffer.
func (b *LineBuffer) MoveWordRight() int {
	cs := clusters(b.text)
	j := len(cs)
	for i, c := range cs {
		if c.start >= b.insertionPoint {
			j = i
			break
		}
	}
	for j < len(cs) && !cs[j].word {
		j++
	}
	for j < len(cs) && cs[j].word {
		j++
	}
	if j < len(cs) {
		b.insertionPoint = cs[j].start
	} else {
		b.insertionPoint = len(b.text)
	}
	return b.insertionPoint
}
