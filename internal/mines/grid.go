package mines

import (
	"fmt"
	"iter"
)

// Unset is reported as the adjacent mine count of a cell that has not been
// revealed yet.
const Unset = -1

type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

type Cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int
}

// grid is a square arena of cells stored row-major.
type grid struct {
	size  int
	cells []Cell
}

func newGrid(size int, mines []bool) *grid {
	g := &grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for i := range g.cells {
		g.cells[i] = Cell{Mine: mines[i], Adjacent: Unset}
	}
	return g
}

func (g *grid) inBounds(row, col int) bool {
	return 0 <= row && row < g.size && 0 <= col && col < g.size
}

func (g *grid) index(row, col int) int {
	return row*g.size + col
}

func (g *grid) point(i int) Point {
	return Point{Row: i / g.size, Col: i % g.size}
}

// neighbours yields the indices of the up to 8 cells around i. There is no
// wraparound at the edges.
func (g *grid) neighbours(i int) iter.Seq[int] {
	row, col := i/g.size, i%g.size
	return func(yield func(int) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				r, c := row+dr, col+dc
				if !g.inBounds(r, c) {
					continue
				}
				if !yield(g.index(r, c)) {
					return
				}
			}
		}
	}
}

func (g *grid) countAdjacent(i int) (n int) {
	for j := range g.neighbours(i) {
		if g.cells[j].Mine {
			n++
		}
	}
	return
}

func (g *grid) mineCount() (n int) {
	for _, c := range g.cells {
		if c.Mine {
			n++
		}
	}
	return
}

// cleared reports whether every safe cell has been revealed.
func (g *grid) cleared() bool {
	for _, c := range g.cells {
		if !c.Revealed && !c.Mine {
			return false
		}
	}
	return true
}

type opened struct {
	index    int
	adjacent int
}

// flood collects the cells opened by revealing start, without touching the
// grid. Zero-count cells pull in every unrevealed, unflagged neighbour.
func (g *grid) flood(start int) []opened {
	todo := newCelltodo(len(g.cells))
	todo.add(start)

	var batch []opened
	for {
		i, ok := todo.pop()
		if !ok {
			break
		}
		n := g.countAdjacent(i)
		batch = append(batch, opened{index: i, adjacent: n})
		if n != 0 {
			continue
		}
		for j := range g.neighbours(i) {
			if c := g.cells[j]; !c.Revealed && !c.Flagged {
				todo.add(j)
			}
		}
	}
	return batch
}

func (g *grid) commit(batch []opened) []Point {
	points := make([]Point, 0, len(batch))
	for _, o := range batch {
		g.cells[o.index].Revealed = true
		g.cells[o.index].Adjacent = o.adjacent
		points = append(points, g.point(o.index))
	}
	return points
}
