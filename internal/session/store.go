package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vancomm/minefield/internal/mines"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrLimit    = errors.New("session limit reached")
)

type Options struct {
	TTL   time.Duration // idle time after which a session is dropped
	Limit int           // max live sessions, 0 means unlimited
}

// Store keeps live sessions in memory. Each session gets its own generator
// because *rand.Rand is not safe for concurrent use.
type Store struct {
	logger       *slog.Logger
	newGenerator func() mines.Generator
	opts         Options
	now          func() time.Time

	mu       sync.Mutex
	sessions map[int64]*Session
	lastID   int64
}

func NewStore(
	logger *slog.Logger, newGenerator func() mines.Generator, opts Options,
) *Store {
	return &Store{
		logger:       logger,
		newGenerator: newGenerator,
		opts:         opts,
		now:          time.Now,
		sessions:     make(map[int64]*Session),
	}
}

func (st *Store) Create() (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.opts.Limit > 0 && len(st.sessions) >= st.opts.Limit {
		return nil, fmt.Errorf("%w (%d)", ErrLimit, st.opts.Limit)
	}

	st.lastID++
	now := st.now()
	s := &Session{
		ID:        st.lastID,
		CreatedAt: now,
		engine:    mines.NewEngine(st.newGenerator()),
		now:       st.now,
		touchedAt: now,
	}
	st.sessions[s.ID] = s

	st.logger.Debug("session created", slog.Int64("id", s.ID))
	return s, nil
}

func (st *Store) Get(id int64) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return s, nil
}

func (st *Store) Delete(id int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Expire drops every session idle for longer than the TTL and returns how
// many were dropped.
func (st *Store) Expire() int {
	if st.opts.TTL <= 0 {
		return 0
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	deadline := st.now().Add(-st.opts.TTL)
	expired := 0
	for id, s := range st.sessions {
		if s.idleSince().Before(deadline) {
			delete(st.sessions, id)
			expired++
		}
	}
	return expired
}

// RunJanitor calls Expire every interval until ctx is done.
func (st *Store) RunJanitor(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := st.Expire(); n > 0 {
				st.logger.Info("expired idle sessions",
					slog.Int("count", n), slog.Int("live", st.Len()))
			}
		}
	}
}
