package handlers

import (
	"fmt"
	"strings"
)

type GameMove uint8

const (
	Reveal GameMove = iota + 1
	Flag
	lastMove
)

func (m GameMove) String() string {
	switch m {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	default:
		return fmt.Sprintf("GameMove(%d)", m)
	}
}

var ErrBadMove error

func init() {
	var allowedMoves []string
	for i := Reveal; i < lastMove; i++ {
		allowedMoves = append(allowedMoves, "'"+i.String()+"'")
	}
	ErrBadMove = fmt.Errorf("move must be one of %s", strings.Join(allowedMoves, ", "))
}

func ParseGameMove(s string) (move GameMove, err error) {
	switch strings.ToLower(s) {
	case "reveal", "open", "o":
		move = Reveal
	case "flag", "f":
		move = Flag
	default:
		err = ErrBadMove
	}
	return
}
