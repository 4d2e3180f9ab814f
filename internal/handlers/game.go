package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

type GameHandler struct {
	logger  *slog.Logger
	store   *session.Store
	cookies *config.Cookies
	ws      *config.WebSocket
}

func NewGameHandler(
	logger *slog.Logger,
	store *session.Store,
	cookies *config.Cookies,
	ws *config.WebSocket,
) *GameHandler {
	handler := &GameHandler{
		logger:  logger,
		store:   store,
		cookies: cookies,
		ws:      ws,
	}

	return handler
}

func (g GameHandler) Difficulties(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.logger, DifficultyInfos())
}

// NewGame creates a session, starts a game in it and hands the caller the
// cookies that prove ownership.
func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	difficulty, err := ParseDifficultyDTO(r.URL.Query())
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	s, err := g.store.Create()
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	var events []mines.Event
	info, err := s.Do(func(e *mines.Engine) (err error) {
		events, err = e.Start(int(difficulty))
		return
	})
	if err != nil {
		g.store.Delete(s.ID)
		replyError(w, g.logger, err)
		return
	}

	if err := g.cookies.Issue(w, s.ID); err != nil {
		g.store.Delete(s.ID)
		replyError(w, g.logger, err)
		return
	}

	g.logger.Debug("new game",
		slog.Int64("session", s.ID), slog.String("difficulty", difficulty.String()))
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(info, events))
}

// ownedSession resolves the {id} path variable to a session owned by the caller.
func (g GameHandler) ownedSession(r *http.Request) (*session.Session, error) {
	id, err := parseSessionId(mux.Vars(r)["id"])
	if err != nil {
		return nil, err
	}
	claims, ok := middleware.SessionClaims(r.Context())
	if !ok || claims.SessionId != id {
		return nil, fmt.Errorf("%w: %d", ErrUnauthorized, id)
	}
	return g.store.Get(id)
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, err := g.ownedSession(r)
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	info, err := s.Do(nil)
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(info, nil))
}

func (g GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	move, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	s, err := g.ownedSession(r)
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	var events []mines.Event
	info, err := s.Do(func(e *mines.Engine) error {
		switch move.Kind {
		case Reveal:
			res, err := e.Reveal(move.Row, move.Col)
			events = res.Events
			return err
		case Flag:
			res, err := e.SetFlag(move.Row, move.Col)
			events = res.Events
			return err
		}
		return ErrBadMove
	})
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(info, events))
}

func (g GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	difficulty, err := ParseDifficultyDTO(r.URL.Query())
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	s, err := g.ownedSession(r)
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	var events []mines.Event
	info, err := s.Do(func(e *mines.Engine) (err error) {
		events, err = e.Start(int(difficulty))
		return
	})
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(info, events))
}

func (g GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, err := g.ownedSession(r)
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	var events []mines.Event
	info, err := s.Do(func(e *mines.Engine) error {
		events = e.Reset()
		return nil
	})
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(info, events))
}
