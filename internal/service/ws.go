package service

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The SPA connects from its own origin during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// eventsHandler upgrades the connection and streams cart-updated events to
// the client until it disconnects. This is the cross-component badge
// notification: every cart mutation pushes the new badge count.
func (handlers *handlers) eventsHandler(res http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(res, req, nil)
	if err != nil {
		handlers.log.Sugar().Errorf("Websocket upgrade failed: %s", err)
		return
	}

	events, cancel := handlers.bus.Subscribe()
	defer cancel()
	defer conn.Close()

	// Drain reads so close frames are processed; the feed is write-only.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		}
	}
}
