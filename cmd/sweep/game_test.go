package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minefield/internal/mines"
)

func TestRunWin(t *testing.T) {
	e := mines.NewEngine(mines.Layout{{Row: 0, Col: 0}})
	var out bytes.Buffer

	err := run(strings.NewReader("f 0 0\no 2 2\n"), &out, e, mines.Difficulty(3))
	require.NoError(t, err)

	assert.Equal(t, mines.Won, e.State())
	assert.Contains(t, out.String(), "you win!")
	assert.Contains(t, out.String(), "won mines=1 flags=0\n* 1 0\n1 1 0\n0 0 0\n")
}

func TestRunReportsErrorsAndContinues(t *testing.T) {
	e := mines.NewEngine(mines.Layout{{Row: 0, Col: 0}})
	var out bytes.Buffer

	input := "bogus\no 9 9\nf 1 1\nf 2 2\no 0 0\nq\no 1 1\n"
	err := run(strings.NewReader(input), &out, e, mines.Difficulty(3))
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "unknown command")
	assert.Contains(t, text, "out of bounds")
	assert.Contains(t, text, "no flags left")
	assert.Contains(t, text, "boom at 0:0")
	assert.Contains(t, text, "you lose")
	assert.Equal(t, mines.Lost, e.State(), "input after q is ignored")
}

func TestRunInvalidDifficulty(t *testing.T) {
	e := mines.NewEngine(mines.Layout{})
	err := run(strings.NewReader(""), &bytes.Buffer{}, e, mines.Difficulty(0))
	assert.ErrorIs(t, err, mines.ErrInvalidSize)
}
