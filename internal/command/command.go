package command

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/minefield/internal/mines"
)

type Kind string

const (
	Get   Kind = "g"
	New   Kind = "n"
	Open  Kind = "o"
	Flag  Kind = "f"
	Reset Kind = "x"
)

// Maps known commands to number of arguments
var commandNargs = map[Kind]int{
	Get:   0,
	New:   1,
	Open:  2,
	Flag:  2,
	Reset: 0,
}

var ErrSyntax = errors.New("invalid command")

type Command struct {
	Kind       Kind
	Row, Col   int
	Difficulty mines.Difficulty
}

func (c Command) String() string {
	switch c.Kind {
	case New:
		return fmt.Sprintf("%s %s", c.Kind, c.Difficulty)
	case Open, Flag:
		return fmt.Sprintf("%s %d %d", c.Kind, c.Row, c.Col)
	default:
		return string(c.Kind)
	}
}

func parseRowCol(args []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("%w: row must be an int", ErrSyntax)
		return
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("%w: column must be an int", ErrSyntax)
		return
	}
	return
}

func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrSyntax)
	}

	kind := Kind(strings.ToLower(parts[0]))
	nargs, ok := commandNargs[kind]
	if !ok {
		return Command{}, fmt.Errorf("%w: unknown command %q", ErrSyntax, parts[0])
	}
	if nargs != len(parts)-1 {
		return Command{}, fmt.Errorf(
			"%w: %s takes %d arguments, got %d", ErrSyntax, kind, nargs, len(parts)-1,
		)
	}

	cmd := Command{Kind: kind}
	switch kind {
	case New:
		d, err := mines.ParseDifficulty(parts[1])
		if err != nil {
			return Command{}, err
		}
		cmd.Difficulty = d
	case Open, Flag:
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return Command{}, err
		}
		cmd.Row, cmd.Col = row, col
	}
	return cmd, nil
}

// Apply runs c against e and returns the events it produced.
func (c Command) Apply(e *mines.Engine) ([]mines.Event, error) {
	switch c.Kind {
	case Get:
		return nil, nil
	case New:
		return e.Start(int(c.Difficulty))
	case Open:
		res, err := e.Reveal(c.Row, c.Col)
		return res.Events, err
	case Flag:
		res, err := e.SetFlag(c.Row, c.Col)
		return res.Events, err
	case Reset:
		return e.Reset(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrSyntax, c.Kind)
}

// Lines yields the non-blank, trimmed lines of s.
func Lines(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, "\n")
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
