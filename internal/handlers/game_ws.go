package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vancomm/minefield/internal/command"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

// execute runs every line of message against the engine. It stops at the
// first failing line or once the game is over.
func execute(e *mines.Engine, message string) (events []mines.Event, err error) {
	for _, line := range command.Lines(message) {
		cmd, err := command.Parse(line)
		if err != nil {
			return events, err
		}
		evs, err := cmd.Apply(e)
		events = append(events, evs...)
		if err != nil {
			return events, fmt.Errorf("%s: %w", cmd, err)
		}
		if e.State().Over() {
			break
		}
	}
	return events, nil
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, err := g.ownedSession(r)
	if err != nil {
		replyError(w, g.logger, err)
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	logger := g.logger.With(slog.Int64("session", s.ID))
	logger.Debug("established WS connection")

	done := make(chan struct{})
	defer close(done)
	go g.keepAlive(conn, done)

	if err := g.wsRunGameLoop(conn, s, logger); err != nil {
		if websocket.IsUnexpectedCloseError(err,
			websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			logger.Warn("abnormal ws break", slog.Any("error", err))
		}
	}
}

func (g GameHandler) keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(g.ws.PingPeriod())
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(g.ws.WriteWait)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

// wsRunGameLoop answers every text message with the session state. A
// failing command is reported as {"error": ...} right before the state and
// the connection stays open.
func (g GameHandler) wsRunGameLoop(
	conn *websocket.Conn, s *session.Session, logger *slog.Logger,
) error {
	conn.SetReadDeadline(time.Now().Add(g.ws.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(g.ws.PongWait))
	})

	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}
		conn.SetReadDeadline(time.Now().Add(g.ws.PongWait))

		message := strings.TrimSpace(string(buf))
		logger.Debug("\t> " + message)

		var events []mines.Event
		info, err := s.Do(func(e *mines.Engine) (err error) {
			events, err = execute(e, message)
			return
		})
		if err != nil {
			logger.Debug("command failed", slog.Any("error", err))
			if err := g.wsWrite(conn, wrapError(err)); err != nil {
				return err
			}
		}

		if err := g.wsWrite(conn, NewGameSessionDTO(info, events)); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func (g GameHandler) wsWrite(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(g.ws.WriteWait))
	return conn.WriteJSON(v)
}
