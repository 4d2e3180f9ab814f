package mines

import "fmt"

type State uint8

const (
	Waiting State = iota
	Playing
	Won
	Lost
)

var stateNames = [...]string{
	Waiting: "waiting",
	Playing: "playing",
	Won:     "won",
	Lost:    "lost",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// Over reports whether s is terminal.
func (s State) Over() bool {
	return s == Won || s == Lost
}

// [State] implements [encoding.TextMarshaler]
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown game state %q", text)
}

type EventKind string

// Events mirror the feedback a front end plays after each move.
const (
	EventStarted   EventKind = "started"
	EventRevealed  EventKind = "revealed"
	EventFlagged   EventKind = "flagged"
	EventUnflagged EventKind = "unflagged"
	EventNoFlags   EventKind = "no_flags"
	EventExploded  EventKind = "exploded"
	EventWon       EventKind = "won"
	EventLost      EventKind = "lost"
	EventReset     EventKind = "reset"
)

type Event struct {
	Kind  EventKind `json:"kind"`
	Point *Point    `json:"point,omitempty"`
}

func pointEvent(kind EventKind, p Point) Event {
	return Event{Kind: kind, Point: &p}
}
