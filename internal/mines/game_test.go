package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedEngine(t *testing.T, size int, layout Layout) *Engine {
	t.Helper()
	e := NewEngine(layout)
	events, err := e.Start(size)
	require.NoError(t, err)
	require.Equal(t, []Event{{Kind: EventStarted}}, events)
	return e
}

func revealedSet(s Snapshot) map[Point]bool {
	set := make(map[Point]bool)
	for row := range s.Size {
		for col := range s.Size {
			if s.At(row, col).Revealed {
				set[Point{row, col}] = true
			}
		}
	}
	return set
}

func TestStartInvariants(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for _, d := range Difficulties() {
		for range 50 {
			e := NewEngine(NewBernoulli(r))
			_, err := e.Start(int(d))
			require.NoError(t, err)

			s := e.Snapshot()
			assert.Equal(t, Playing, s.State)
			assert.Equal(t, int(d), s.Size)
			assert.Len(t, s.Cells, int(d)*int(d))
			assert.GreaterOrEqual(t, e.TotalMines(), 1)
			assert.LessOrEqual(t, e.TotalMines(), int(d)*int(d))
			assert.Equal(t, e.TotalMines(), e.RemainingFlags())
			for _, c := range s.Cells {
				assert.Equal(t, CellView{Adjacent: Unset}, c)
			}
		}
	}
}

func TestStartErrors(t *testing.T) {
	e := NewEngine(Layout{})
	_, err := e.Start(0)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Equal(t, Waiting, e.State())

	_, err = e.Start(8)
	require.NoError(t, err)
	_, err = e.Start(8)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRevealCascadeWholeBoard(t *testing.T) {
	e := startedEngine(t, 8, Layout{{0, 0}})

	res, err := e.Reveal(7, 7)
	require.NoError(t, err)
	assert.Len(t, res.Revealed, 63)
	assert.Equal(t, Won, res.State)
	assert.Contains(t, res.Events, Event{Kind: EventWon})

	s := e.Snapshot()
	assert.False(t, s.At(0, 0).Revealed)
	assert.True(t, s.At(0, 0).Mine, "mines are shown once the game is over")
	for _, p := range []Point{{0, 1}, {1, 0}, {1, 1}} {
		assert.True(t, s.At(p.Row, p.Col).Revealed, "border cell %s", p)
		assert.Equal(t, 1, s.At(p.Row, p.Col).Adjacent)
	}
	assert.Equal(t, 0, s.At(7, 7).Adjacent)
}

func TestRevealCascadeStopsAtBorder(t *testing.T) {
	var wall Layout
	for row := range 8 {
		wall = append(wall, Point{row, 4})
	}
	e := startedEngine(t, 8, wall)

	res, err := e.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Playing, res.State)
	assert.Len(t, res.Revealed, 32)

	revealed := revealedSet(e.Snapshot())
	assert.Len(t, revealed, 32)
	for row := range 8 {
		for col := range 8 {
			assert.Equal(t, col <= 3, revealed[Point{row, col}], "cell %d:%d", row, col)
		}
	}

	s := e.Snapshot()
	assert.Equal(t, 0, s.At(4, 2).Adjacent)
	assert.Equal(t, 3, s.At(4, 3).Adjacent)
	assert.Equal(t, 2, s.At(0, 3).Adjacent)
	assert.False(t, s.At(0, 4).Mine, "mines stay hidden while playing")
}

func TestRevealNumberedCellDoesNotCascade(t *testing.T) {
	e := startedEngine(t, 8, Layout{{0, 0}})

	res, err := e.Reveal(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 1}}, res.Revealed)
	assert.Equal(t, Playing, res.State)
	assert.Len(t, revealedSet(e.Snapshot()), 1)
}

func TestRevealMineLoses(t *testing.T) {
	e := startedEngine(t, 8, Layout{{0, 0}})

	res, err := e.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Lost, res.State)
	assert.Equal(t, []Point{{0, 0}}, res.Revealed)
	assert.Equal(t, []Event{
		{Kind: EventExploded, Point: &Point{0, 0}},
		{Kind: EventLost},
	}, res.Events)
	assert.Len(t, revealedSet(e.Snapshot()), 1)

	_, err = e.Reveal(7, 7)
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = e.SetFlag(7, 7)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestWinRequiresEverySafeCell(t *testing.T) {
	e := startedEngine(t, 8, Layout{{0, 0}})

	for _, p := range []Point{{0, 1}, {1, 0}} {
		res, err := e.Reveal(p.Row, p.Col)
		require.NoError(t, err)
		assert.Equal(t, Playing, res.State)
	}

	res, err := e.Reveal(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Playing, res.State)

	res, err = e.Reveal(7, 7)
	require.NoError(t, err)
	assert.Equal(t, Won, res.State)
	assert.Len(t, res.Revealed, 60)
}

func TestOneUnrevealedCellKeepsPlaying(t *testing.T) {
	e := startedEngine(t, 8, Layout{{0, 0}})

	_, err := e.SetFlag(4, 4)
	require.NoError(t, err)

	res, err := e.Reveal(7, 7)
	require.NoError(t, err)
	assert.Equal(t, Playing, res.State)
	assert.Len(t, res.Revealed, 62)

	_, err = e.SetFlag(4, 4)
	require.NoError(t, err)
	res, err = e.Reveal(4, 4)
	require.NoError(t, err)
	assert.Equal(t, []Point{{4, 4}}, res.Revealed)
	assert.Equal(t, Won, res.State)
}

func TestCascadeSkipsFlaggedMine(t *testing.T) {
	e := startedEngine(t, 8, Layout{{3, 3}})

	flag, err := e.SetFlag(3, 3)
	require.NoError(t, err)
	assert.Equal(t, FlagSet, flag.Outcome)

	res, err := e.Reveal(7, 7)
	require.NoError(t, err)
	assert.Len(t, res.Revealed, 63)
	assert.NotContains(t, res.Revealed, Point{3, 3})
	assert.Equal(t, Won, res.State)

	c, err := e.Cell(3, 3)
	require.NoError(t, err)
	assert.False(t, c.Revealed)
	assert.True(t, c.Flagged)
	assert.True(t, c.Mine)
}

func TestCascadeSkipsFlaggedSafeCell(t *testing.T) {
	e := startedEngine(t, 8, Layout{{3, 3}})

	_, err := e.SetFlag(6, 1)
	require.NoError(t, err)

	res, err := e.Reveal(0, 7)
	require.NoError(t, err)
	assert.NotContains(t, res.Revealed, Point{6, 1})
	assert.Equal(t, Playing, res.State)

	c, err := e.Cell(6, 1)
	require.NoError(t, err)
	assert.False(t, c.Revealed)
	assert.Equal(t, Unset, c.Adjacent)
}

func TestRevealFlaggedCellIsNoop(t *testing.T) {
	e := startedEngine(t, 8, Layout{{0, 0}})

	_, err := e.SetFlag(5, 5)
	require.NoError(t, err)
	before := e.Snapshot()

	res, err := e.Reveal(5, 5)
	require.NoError(t, err)
	assert.Empty(t, res.Revealed)
	assert.Empty(t, res.Events)
	assert.Equal(t, before, e.Snapshot())
}

func TestRevealAlreadyRevealedIsNoop(t *testing.T) {
	e := startedEngine(t, 8, Layout{{0, 0}})

	_, err := e.Reveal(1, 1)
	require.NoError(t, err)
	res, err := e.Reveal(1, 1)
	require.NoError(t, err)
	assert.Empty(t, res.Revealed)
	assert.Equal(t, Playing, res.State)
}

func TestFlagRoundTrip(t *testing.T) {
	e := startedEngine(t, 8, Layout{{0, 0}, {5, 5}})
	before := e.Snapshot()

	res, err := e.SetFlag(2, 2)
	require.NoError(t, err)
	assert.Equal(t, FlagSet, res.Outcome)
	assert.Equal(t, 1, res.RemainingFlags)

	res, err = e.SetFlag(2, 2)
	require.NoError(t, err)
	assert.Equal(t, FlagCleared, res.Outcome)
	assert.Equal(t, 2, res.RemainingFlags)

	assert.Equal(t, before, e.Snapshot())
}

func TestFlagExhausted(t *testing.T) {
	e := startedEngine(t, 8, Layout{{0, 0}})

	res, err := e.SetFlag(2, 2)
	require.NoError(t, err)
	require.Equal(t, 0, res.RemainingFlags)
	before := e.Snapshot()

	res, err = e.SetFlag(4, 4)
	require.NoError(t, err)
	assert.Equal(t, FlagRejected, res.Outcome)
	assert.Equal(t, []Event{{Kind: EventNoFlags, Point: &Point{4, 4}}}, res.Events)
	assert.Equal(t, before, e.Snapshot())

	res, err = e.SetFlag(2, 2)
	require.NoError(t, err)
	assert.Equal(t, FlagCleared, res.Outcome, "clearing works at zero remaining")
	assert.Equal(t, 1, res.RemainingFlags)
}

func TestFlagRevealedCellIgnored(t *testing.T) {
	e := startedEngine(t, 8, Layout{{0, 0}})

	_, err := e.Reveal(1, 1)
	require.NoError(t, err)
	res, err := e.SetFlag(1, 1)
	require.NoError(t, err)
	assert.Equal(t, FlagIgnored, res.Outcome)
	assert.Equal(t, 1, res.RemainingFlags)
}

func TestInvalidMoves(t *testing.T) {
	e := NewEngine(Layout{{0, 0}})

	_, err := e.Reveal(0, 0)
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = e.SetFlag(0, 0)
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = e.Cell(0, 0)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = e.Start(8)
	require.NoError(t, err)
	before := e.Snapshot()

	for _, p := range []Point{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		_, err := e.Reveal(p.Row, p.Col)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = e.SetFlag(p.Row, p.Col)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = e.Cell(p.Row, p.Col)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
	assert.Equal(t, before, e.Snapshot())
}

func TestReset(t *testing.T) {
	e := startedEngine(t, 8, Layout{{0, 0}})
	_, err := e.Reveal(0, 0)
	require.NoError(t, err)

	assert.Equal(t, []Event{{Kind: EventReset}}, e.Reset())
	assert.Equal(t, Waiting, e.State())
	assert.Equal(t, 0, e.Size())
	assert.Equal(t, 0, e.TotalMines())
	assert.Equal(t, 0, e.RemainingFlags())
	assert.Empty(t, e.Snapshot().Cells)
	assert.Nil(t, e.Reset(), "reset while waiting does nothing")

	_, err = e.Start(12)
	require.NoError(t, err)
	assert.Equal(t, 12, e.Size())
}

func TestSnapshotString(t *testing.T) {
	e := startedEngine(t, 3, Layout{{0, 0}})
	_, err := e.SetFlag(0, 0)
	require.NoError(t, err)
	_, err = e.Reveal(2, 2)
	require.NoError(t, err)

	assert.Equal(t, "won mines=1 flags=0\n* 1 0\n1 1 0\n0 0 0\n", e.Snapshot().String())
}

func TestStateText(t *testing.T) {
	for _, s := range []State{Waiting, Playing, Won, Lost} {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var back State
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}
	var s State
	assert.Error(t, s.UnmarshalText([]byte("paused")))
}
