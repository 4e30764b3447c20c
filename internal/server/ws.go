package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"pixelform/internal/session"
)

const (
	wsWriteWait = 10 * time.Second
	wsPongWait  = 60 * time.Second
	wsPingEvery = (wsPongWait * 9) / 10
)

var eventsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type stateEvent struct {
	Type    string      `json:"type"`
	Seq     int64       `json:"seq,omitempty"`
	Session sessionView `json:"session"`
}

// handleEvents streams one state event per reducer transition so the
// viewer can follow busy/transcript/document changes without polling.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	conn, err := eventsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(wsPongWait)); err != nil {
		log.Printf("events ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	notes, cancelSub := sess.Subscribe()
	defer cancelSub()

	writeCh := make(chan stateEvent, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(wsPingEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(ev); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	// initial snapshot, then one event per transition
	writeCh <- stateEvent{Type: "snapshot", Session: toSessionView(sess.ID, sess.Snapshot())}

	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case n, ok := <-notes:
				if !ok {
					return
				}
				select {
				case writeCh <- h.toStateEvent(sess, n):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	// the read loop only services pongs and surfaces disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	cancel()
	<-writerDone
}

func (h *Handler) toStateEvent(sess *session.Session, n session.Notification) stateEvent {
	return stateEvent{
		Type:    "state",
		Seq:     n.Seq,
		Session: toSessionView(sess.ID, n.State),
	}
}
