package session

import (
	"sync"
	"time"

	"github.com/vancomm/minefield/internal/mines"
)

// Session is one player's engine plus bookkeeping. The engine is only ever
// touched inside Do, which serialises access.
type Session struct {
	ID        int64
	CreatedAt time.Time

	mu        sync.Mutex
	engine    *mines.Engine
	now       func() time.Time
	touchedAt time.Time
	startedAt *time.Time
	endedAt   *time.Time
}

// Info is a consistent view of a session taken right after an operation.
type Info struct {
	ID        int64
	Snapshot  mines.Snapshot
	StartedAt *time.Time
	EndedAt   *time.Time
}

// Do runs fn with exclusive access to the engine and returns the session
// state as fn left it. fn may be nil to only read.
func (s *Session) Do(fn func(e *mines.Engine) error) (Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.engine.State()
	var err error
	if fn != nil {
		err = fn(s.engine)
	}
	after := s.engine.State()

	now := s.now()
	s.touchedAt = now
	if before != mines.Playing && after == mines.Playing {
		s.startedAt, s.endedAt = &now, nil
	}
	if after == mines.Waiting {
		s.startedAt, s.endedAt = nil, nil
	}
	if after.Over() && s.endedAt == nil {
		s.endedAt = &now
	}

	return Info{
		ID:        s.ID,
		Snapshot:  s.engine.Snapshot(),
		StartedAt: s.startedAt,
		EndedAt:   s.endedAt,
	}, err
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}
