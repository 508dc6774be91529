package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/gamzabox/humble-line/internal/edit"
)

type lineReader interface {
	ReadLine(prompt string) (string, error)
}

type canonicalLineReader struct {
	reader  *bufio.Reader
	output  io.Writer
	session *Session
}

func newCanonicalLineReader(input io.Reader, output io.Writer, session *Session) *canonicalLineReader {
	return &canonicalLineReader{
		reader:  bufio.NewReader(input),
		output:  output,
		session: session,
	}
}

// ReadLine reads a cooked line and still routes it through the session so it
// lands in history like an interactively edited one.
func (r *canonicalLineReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprint(r.output, prompt); err != nil {
			return "", err
		}
	}
	text, err := r.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && text != "") {
		return "", err
	}
	text = strings.TrimRight(text, "\r\n")
	r.session.Clear()
	if err := r.session.Apply(edit.InsertText(text)...); err != nil {
		return "", err
	}
	return r.session.Submit(), nil
}

type interactiveLineReader struct {
	input       *os.File
	reader      *bufio.Reader
	output      io.Writer
	session     *Session
	onInterrupt func()
}

func newInteractiveLineReader(input *os.File, output io.Writer, session *Session, onInterrupt func()) *interactiveLineReader {
	return &interactiveLineReader{
		input:       input,
		reader:      bufio.NewReader(input),
		output:      output,
		session:     session,
		onInterrupt: onInterrupt,
	}
}

func (r *interactiveLineReader) ReadLine(prompt string) (string, error) {
	fd := int(r.input.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	return editLine(r.reader, r.output, prompt, r.session, r.onInterrupt)
}

// editLine runs one line of interactive editing: decode a key, apply it to
// the session, repaint, until the line is submitted or input ends.
func editLine(reader *bufio.Reader, w io.Writer, prompt string, s *Session, onInterrupt func()) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprint(w, prompt); err != nil {
			return "", err
		}
	}

	for {
		k, err := readKey(reader)
		if err != nil {
			return "", err
		}

		switch k.action {
		case actionNone:
			continue
		case actionSubmit:
			renderLine(w, prompt, s)
			_, _ = fmt.Fprint(w, "\r\n")
			return s.Submit(), nil
		case actionInterrupt:
			if onInterrupt != nil {
				onInterrupt()
			}
			s.Clear()
			_, _ = fmt.Fprint(w, "^C\r\n")
			return "", io.EOF
		case actionDeleteOrEOF:
			if s.Text() == "" {
				_, _ = fmt.Fprint(w, "\r\n")
				return "", io.EOF
			}
			_ = s.Apply(edit.Cmd(edit.Delete))
		case actionEdit:
			_ = s.Apply(k.cmds...)
		case actionKillToEnd:
			_ = s.KillToEnd()
		case actionKillToStart:
			_ = s.KillToStart()
		case actionKillWordBackward:
			_ = s.KillWordBackward()
		case actionKillWordForward:
			_ = s.KillWordForward()
		case actionYank:
			_ = s.Yank()
		case actionHistoryOlder:
			if !s.RecallOlder() {
				continue
			}
		case actionHistoryNewer:
			if !s.RecallNewer() {
				continue
			}
		}
		renderLine(w, prompt, s)
	}
}

type keyAction int

const (
	actionNone keyAction = iota
	actionEdit
	actionSubmit
	actionInterrupt
	actionDeleteOrEOF
	actionKillToEnd
	actionKillToStart
	actionKillWordBackward
	actionKillWordForward
	actionYank
	actionHistoryOlder
	actionHistoryNewer
)

type key struct {
	action keyAction
	cmds   []edit.Command
}

func editKey(kinds ...edit.Kind) key {
	cmds := make([]edit.Command, len(kinds))
	for i, k := range kinds {
		cmds[i] = edit.Cmd(k)
	}
	return key{action: actionEdit, cmds: cmds}
}

var controlKeys = map[byte]key{
	'\r': {action: actionSubmit},
	'\n': {action: actionSubmit},
	0x01: editKey(edit.MoveToStart),        // Ctrl+A
	0x02: editKey(edit.MoveLeft),           // Ctrl+B
	0x03: {action: actionInterrupt},        // Ctrl+C
	0x04: {action: actionDeleteOrEOF},      // Ctrl+D
	0x05: editKey(edit.MoveToEnd),          // Ctrl+E
	0x06: editKey(edit.MoveRight),          // Ctrl+F
	0x08: editKey(edit.Backspace),          // Ctrl+H
	0x0b: {action: actionKillToEnd},        // Ctrl+K
	0x0e: {action: actionHistoryNewer},     // Ctrl+N
	0x10: {action: actionHistoryOlder},     // Ctrl+P
	0x15: {action: actionKillToStart},      // Ctrl+U
	0x17: {action: actionKillWordBackward}, // Ctrl+W
	0x19: {action: actionYank},             // Ctrl+Y
	0x7f: editKey(edit.Backspace),          // Backspace
}

var csiKeys = map[string]key{
	"A":    {action: actionHistoryOlder},
	"B":    {action: actionHistoryNewer},
	"C":    editKey(edit.MoveRight),
	"D":    editKey(edit.MoveLeft),
	"H":    editKey(edit.MoveToStart),
	"1~":   editKey(edit.MoveToStart),
	"7~":   editKey(edit.MoveToStart),
	"F":    editKey(edit.MoveToEnd),
	"4~":   editKey(edit.MoveToEnd),
	"8~":   editKey(edit.MoveToEnd),
	"3~":   editKey(edit.Delete),
	"1;5C": editKey(edit.MoveWordRight),
	"1;5D": editKey(edit.MoveWordLeft),
	"1;3C": editKey(edit.MoveWordRight),
	"1;3D": editKey(edit.MoveWordLeft),
}

var ss3Keys = map[byte]key{
	'A': {action: actionHistoryOlder},
	'B': {action: actionHistoryNewer},
	'C': editKey(edit.MoveRight),
	'D': editKey(edit.MoveLeft),
	'H': editKey(edit.MoveToStart),
	'F': editKey(edit.MoveToEnd),
}

var metaKeys = map[byte]key{
	'b':  editKey(edit.MoveWordLeft),
	'f':  editKey(edit.MoveWordRight),
	'd':  {action: actionKillWordForward},
	0x7f: {action: actionKillWordBackward},
	0x08: {action: actionKillWordBackward},
}

// readKey decodes the next key press. It only classifies input; all state
// changes happen in editLine.
func readKey(reader *bufio.Reader) (key, error) {
	b, err := reader.ReadByte()
	if err != nil {
		return key{}, err
	}

	if b == 0x1b {
		return readEscape(reader)
	}
	if k, ok := controlKeys[b]; ok {
		return k, nil
	}
	if b < 0x20 {
		return key{}, nil
	}
	r, ok := readRune(b, reader)
	if !ok {
		return key{}, nil
	}
	return key{action: actionEdit, cmds: []edit.Command{edit.Insert(r)}}, nil
}

func readRune(first byte, reader *bufio.Reader) (rune, bool) {
	if first < utf8.RuneSelf {
		return rune(first), true
	}

	var buf [utf8.UTFMax]byte
	buf[0] = first
	size := 1
	for size < utf8.UTFMax && !utf8.FullRune(buf[:size]) {
		next, err := reader.ReadByte()
		if err != nil {
			return 0, false
		}
		buf[size] = next
		size++
	}
	runeValue, width := utf8.DecodeRune(buf[:size])
	if runeValue == utf8.RuneError && width == 1 {
		return 0, false
	}
	return runeValue, true
}

func readEscape(reader *bufio.Reader) (key, error) {
	next, err := reader.ReadByte()
	if err != nil {
		return key{}, err
	}

	switch next {
	case '[':
		seq, err := readCSISequence(reader)
		if err != nil {
			return key{}, err
		}
		return csiKeys[seq], nil
	case 'O':
		third, err := reader.ReadByte()
		if err != nil {
			return key{}, err
		}
		return ss3Keys[third], nil
	default:
		return metaKeys[next], nil
	}
}

func readCSISequence(reader *bufio.Reader) (string, error) {
	var seq []byte
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return "", err
		}
		seq = append(seq, b)
		if b == '~' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') {
			break
		}
		if len(seq) > 6 {
			break
		}
	}
	return string(seq), nil
}

func createLineReader(input io.Reader, output io.Writer, session *Session, onInterrupt func()) lineReader {
	if file, ok := input.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return newInteractiveLineReader(file, output, session, onInterrupt)
	}
	return newCanonicalLineReader(input, output, session)
}
