package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gorilla/schema"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

type DifficultyDTO struct {
	Difficulty string `schema:"difficulty"`
}

// ParseDifficultyDTO defaults to easy when no difficulty is given.
func ParseDifficultyDTO(src map[string][]string) (mines.Difficulty, error) {
	var dto DifficultyDTO
	if err := newDecoder().Decode(&dto, src); err != nil {
		return 0, err
	}
	if dto.Difficulty == "" {
		return mines.Easy, nil
	}
	return mines.ParseDifficulty(dto.Difficulty)
}

type MoveDTO struct {
	Move string `schema:"move,required"`
	Row  int    `schema:"row,required"`
	Col  int    `schema:"col,required"`
}

type Move struct {
	Kind     GameMove
	Row, Col int
}

func ParseMoveDTO(src map[string][]string) (Move, error) {
	var dto MoveDTO
	if err := newDecoder().Decode(&dto, src); err != nil {
		return Move{}, err
	}
	kind, err := ParseGameMove(dto.Move)
	if err != nil {
		return Move{}, err
	}
	return Move{Kind: kind, Row: dto.Row, Col: dto.Col}, nil
}

type DifficultyInfo struct {
	Name       string `json:"name"`
	Size       int    `json:"size"`
	TotalCells int    `json:"total_cells"`
}

func DifficultyInfos() []DifficultyInfo {
	var infos []DifficultyInfo
	for _, d := range mines.Difficulties() {
		infos = append(infos, DifficultyInfo{
			Name:       d.String(),
			Size:       int(d),
			TotalCells: int(d) * int(d),
		})
	}
	return infos
}

type GameSessionDTO struct {
	GameSessionId  string           `json:"game_session_id"`
	State          mines.State      `json:"state"`
	Size           int              `json:"size"`
	TotalMines     int              `json:"total_mines"`
	RemainingFlags int              `json:"remaining_flags"`
	Cells          []mines.CellView `json:"cells"`
	StartedAt      *int64           `json:"started_at,omitempty"`
	EndedAt        *int64           `json:"ended_at,omitempty"`
	Events         []mines.Event    `json:"events,omitempty"`
}

func unixMilli(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func NewGameSessionDTO(info session.Info, events []mines.Event) *GameSessionDTO {
	cells := info.Snapshot.Cells
	if cells == nil {
		cells = []mines.CellView{}
	}
	return &GameSessionDTO{
		GameSessionId:  strconv.FormatInt(info.ID, 10),
		State:          info.Snapshot.State,
		Size:           info.Snapshot.Size,
		TotalMines:     info.Snapshot.TotalMines,
		RemainingFlags: info.Snapshot.RemainingFlags,
		Cells:          cells,
		StartedAt:      unixMilli(info.StartedAt),
		EndedAt:        unixMilli(info.EndedAt),
		Events:         events,
	}
}

func parseSessionId(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadSessionId, s)
	}
	return id, nil
}
