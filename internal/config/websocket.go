package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader  websocket.Upgrader
	PongWait  time.Duration
	WriteWait time.Duration
}

func NewWebSocket() (*WebSocket, error) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:  upgrader,
		PongWait:  60 * time.Second,
		WriteWait: 10 * time.Second,
	}

	return ws, nil
}

// PingPeriod must stay below PongWait.
func (ws *WebSocket) PingPeriod() time.Duration {
	return ws.PongWait * 9 / 10
}
