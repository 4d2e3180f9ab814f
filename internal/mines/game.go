package mines

import (
	"fmt"
)

// Engine owns one minesweeper grid and its counters. It is not safe for
// concurrent use; callers serialise access.
type Engine struct {
	gen            Generator
	state          State
	grid           *grid
	totalMines     int
	remainingFlags int
}

func NewEngine(gen Generator) *Engine {
	return &Engine{gen: gen, state: Waiting}
}

type RevealResult struct {
	Revealed []Point
	State    State
	Events   []Event
}

type FlagOutcome uint8

const (
	FlagIgnored FlagOutcome = iota
	FlagSet
	FlagCleared
	FlagRejected
)

func (o FlagOutcome) String() string {
	switch o {
	case FlagSet:
		return "set"
	case FlagCleared:
		return "cleared"
	case FlagRejected:
		return "rejected"
	default:
		return "ignored"
	}
}

type FlagResult struct {
	Outcome        FlagOutcome
	RemainingFlags int
	Events         []Event
}

// Start generates a fresh grid and moves the game from Waiting to Playing.
func (e *Engine) Start(size int) ([]Event, error) {
	if e.state != Waiting {
		return nil, fmt.Errorf("start while %s: %w", e.state, ErrInvalidState)
	}
	if err := validateSize(size); err != nil {
		return nil, err
	}

	mines := e.gen.Mines(size)
	if len(mines) != size*size {
		return nil, fmt.Errorf(
			"generator returned %d cells for a %dx%d grid", len(mines), size, size,
		)
	}

	e.grid = newGrid(size, mines)
	e.totalMines = e.grid.mineCount()
	e.remainingFlags = e.totalMines
	e.state = Playing

	return []Event{{Kind: EventStarted}}, nil
}

// Reset discards the grid and counters. It is valid in every state.
func (e *Engine) Reset() []Event {
	if e.state == Waiting {
		return nil
	}
	e.grid = nil
	e.totalMines = 0
	e.remainingFlags = 0
	e.state = Waiting
	return []Event{{Kind: EventReset}}
}

func (e *Engine) checkMove(row, col int) error {
	if e.state != Playing {
		return fmt.Errorf("move while %s: %w", e.state, ErrInvalidState)
	}
	if !e.grid.inBounds(row, col) {
		return fmt.Errorf("%w: %d:%d on %dx%d grid",
			ErrOutOfBounds, row, col, e.grid.size, e.grid.size)
	}
	return nil
}

// Reveal opens the cell at row, col. A zero-count cell floods its connected
// zero region plus the numbered border; flagged cells are never opened,
// neither directly nor by the flood. The whole batch is applied at once and
// the win check runs once afterwards.
func (e *Engine) Reveal(row, col int) (RevealResult, error) {
	if err := e.checkMove(row, col); err != nil {
		return RevealResult{State: e.state}, err
	}

	g := e.grid
	i := g.index(row, col)
	cell := &g.cells[i]
	if cell.Revealed || cell.Flagged {
		return RevealResult{State: e.state}, nil
	}

	if cell.Mine {
		cell.Revealed = true
		cell.Adjacent = g.countAdjacent(i)
		e.state = Lost
		p := g.point(i)
		return RevealResult{
			Revealed: []Point{p},
			State:    e.state,
			Events:   []Event{pointEvent(EventExploded, p), {Kind: EventLost}},
		}, nil
	}

	revealed := g.commit(g.flood(i))
	events := []Event{pointEvent(EventRevealed, Point{Row: row, Col: col})}
	if g.cleared() {
		e.state = Won
		events = append(events, Event{Kind: EventWon})
	}

	return RevealResult{
		Revealed: revealed,
		State:    e.state,
		Events:   events,
	}, nil
}

// SetFlag toggles the flag on an unrevealed cell. Setting a new flag with
// no flags left is rejected without touching the grid; clearing is always
// allowed.
func (e *Engine) SetFlag(row, col int) (FlagResult, error) {
	if err := e.checkMove(row, col); err != nil {
		return FlagResult{RemainingFlags: e.remainingFlags}, err
	}

	p := Point{Row: row, Col: col}
	cell := &e.grid.cells[e.grid.index(row, col)]
	result := FlagResult{}

	switch {
	case cell.Revealed:
		result.Outcome = FlagIgnored
	case cell.Flagged:
		cell.Flagged = false
		e.remainingFlags++
		result.Outcome = FlagCleared
		result.Events = []Event{pointEvent(EventUnflagged, p)}
	case e.remainingFlags <= 0:
		result.Outcome = FlagRejected
		result.Events = []Event{pointEvent(EventNoFlags, p)}
	default:
		cell.Flagged = true
		e.remainingFlags--
		result.Outcome = FlagSet
		result.Events = []Event{pointEvent(EventFlagged, p)}
	}

	result.RemainingFlags = e.remainingFlags
	return result, nil
}

func (e *Engine) State() State {
	return e.state
}

// Size is zero while Waiting.
func (e *Engine) Size() int {
	if e.grid == nil {
		return 0
	}
	return e.grid.size
}

func (e *Engine) TotalMines() int {
	return e.totalMines
}

func (e *Engine) RemainingFlags() int {
	return e.remainingFlags
}

func (e *Engine) Cell(row, col int) (CellView, error) {
	if e.grid == nil {
		return CellView{}, fmt.Errorf("no grid while %s: %w", e.state, ErrInvalidState)
	}
	if !e.grid.inBounds(row, col) {
		return CellView{}, fmt.Errorf("%w: %d:%d", ErrOutOfBounds, row, col)
	}
	return e.view(e.grid.cells[e.grid.index(row, col)]), nil
}

func (e *Engine) view(c Cell) CellView {
	v := CellView{
		Revealed: c.Revealed,
		Flagged:  c.Flagged,
		Adjacent: Unset,
	}
	if c.Revealed {
		v.Adjacent = c.Adjacent
	}
	if c.Revealed || e.state.Over() {
		v.Mine = c.Mine
	}
	return v
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:          e.state,
		Size:           e.Size(),
		TotalMines:     e.totalMines,
		RemainingFlags: e.remainingFlags,
	}
	if e.grid != nil {
		s.Cells = make([]CellView, len(e.grid.cells))
		for i, c := range e.grid.cells {
			s.Cells[i] = e.view(c)
		}
	}
	return s
}
