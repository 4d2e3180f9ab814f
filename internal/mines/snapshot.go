package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellView is what a player may know about a cell. Mine is only reported
// for revealed cells or once the game is over, Adjacent only for revealed
// cells.
type CellView struct {
	Revealed bool `json:"revealed"`
	Flagged  bool `json:"flagged"`
	Mine     bool `json:"mine"`
	Adjacent int  `json:"adjacent"`
}

func (v CellView) String() string {
	switch {
	case v.Revealed && v.Mine:
		return "!"
	case v.Revealed:
		return strconv.Itoa(v.Adjacent)
	case v.Flagged:
		return "*"
	case v.Mine:
		return "x"
	default:
		return "-"
	}
}

// Snapshot is a detached copy of an engine's observable state.
type Snapshot struct {
	State          State      `json:"state"`
	Size           int        `json:"size"`
	TotalMines     int        `json:"total_mines"`
	RemainingFlags int        `json:"remaining_flags"`
	Cells          []CellView `json:"cells"` // row-major, empty while waiting
}

func (s Snapshot) At(row, col int) CellView {
	return s.Cells[row*s.Size+col]
}

func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s mines=%d flags=%d\n", s.State, s.TotalMines, s.RemainingFlags)
	for row := range s.Size {
		for col := range s.Size {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s.At(row, col).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
