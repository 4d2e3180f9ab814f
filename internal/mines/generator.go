package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// Density is the probability of any single cell holding a mine.
const Density = 0.1

const (
	MinSize = 1
	MaxSize = 64
)

// Difficulty is the side length of a square grid.
type Difficulty int

const (
	Easy   Difficulty = 8
	Medium Difficulty = 12
	Hard   Difficulty = 16
)

func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return strconv.Itoa(int(d))
	}
}

// ParseDifficulty accepts a preset name or a plain grid size.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	size, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is neither a difficulty nor a number", ErrInvalidSize, s)
	}
	if err := validateSize(size); err != nil {
		return 0, err
	}
	return Difficulty(size), nil
}

func validateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSize, size, MinSize, MaxSize)
	}
	return nil
}

// Rand is the subset of *rand.Rand (math/rand/v2) the generators need.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Generator lays out the mines of a size x size grid, row-major.
type Generator interface {
	Mines(size int) []bool
}

// Bernoulli forces one uniformly chosen seed cell to be a mine and then
// makes every cell a mine independently with probability Density.
type Bernoulli struct {
	Rand    Rand
	Density float64
}

func NewBernoulli(r Rand) Bernoulli {
	return Bernoulli{Rand: r, Density: Density}
}

func (b Bernoulli) Mines(size int) []bool {
	mines := make([]bool, size*size)
	seed := b.Rand.IntN(len(mines))
	for i := range mines {
		hit := b.Rand.Float64() < b.Density
		mines[i] = hit || i == seed
	}
	return mines
}

// Layout places mines exactly at the listed points. Points outside the grid
// are dropped.
type Layout []Point

func (l Layout) Mines(size int) []bool {
	mines := make([]bool, size*size)
	for _, p := range l {
		if 0 <= p.Row && p.Row < size && 0 <= p.Col && p.Col < size {
			mines[p.Row*size+p.Col] = true
		}
	}
	return mines
}
