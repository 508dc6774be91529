package edit

import "fmt"

// Kind identifies an edit command.
type Kind int

const (
	MoveToStart Kind = iota + 1
	MoveToEnd
	MoveLeft
	MoveRight
	MoveWordLeft
	MoveWordRight
	InsertChar
	Backspace
	Delete
)

var kindNames = map[Kind]string{
	MoveToStart:   "MoveToStart",
	MoveToEnd:     "MoveToEnd",
	MoveLeft:      "MoveLeft",
	MoveRight:     "MoveRight",
	MoveWordLeft:  "MoveWordLeft",
	MoveWordRight: "MoveWordRight",
	InsertChar:    "InsertChar",
	Backspace:     "Backspace",
	Delete:        "Delete",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is a single edit applied by an Engine. Char is only meaningful for
// InsertChar.
type Command struct {
	Kind Kind
	Char rune
}

// Cmd returns a command of kind k with no payload.
func Cmd(k Kind) Command {
	return Command{Kind: k}
}

// Insert returns an InsertChar command for r.
func Insert(r rune) Command {
	return Command{Kind: InsertChar, Char: r}
}

// InsertText returns one InsertChar command per rune of s.
func InsertText(s string) []Command {
	cmds := make([]Command, 0, len(s))
	for _, r := range s {
		cmds = append(cmds, Insert(r))
	}
	return cmds
}

func (c Command) String() string {
	if c.Kind == InsertChar {
		return fmt.Sprintf("InsertChar(%q)", c.Char)
	}
	return c.Kind.String()
}
