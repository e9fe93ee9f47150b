package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"nhooyr.io/websocket"

	"github.com/tmcalumni/aclstrainer/internal/engine"
)

// handleWSSession streams session snapshots over a WebSocket, for clients
// that prefer it to SSE. Same payloads, same cadence.
func handleWSSession(logger *slog.Logger, eng *engine.Engine, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Minute)
		defer cancel()

		ch := broker.Subscribe()
		defer broker.Unsubscribe(ch)

		if snap, err := eng.Snapshot(ctx); err == nil {
			data, _ := json.Marshal(snap)
			if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case data := <-ch:
				if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
					logger.Debug("websocket write failed", "error", err)
					return
				}
			}
		}
	}
}
