package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The service fronts a local UI; cross-origin dialing is allowed.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamFrame is one websocket message: the latest simulation point plus
// the latched breakeven. The final frame carries Done and no point.
type StreamFrame struct {
	ID        string   `json:"id,omitempty"`
	T         float64  `json:"t"`
	A         float64  `json:"a"`
	B         float64  `json:"b"`
	Breakeven *float64 `json:"breakeven,omitempty"`
	Done      bool     `json:"done,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// RegisterStream exposes the incremental-display path: the client sends
// one CompareRequest, the server pulls the run and writes one frame per
// sample. The run is abandoned cleanly if the client goes away.
func RegisterStream(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	Handle(mux, rr, "GET /api/compare/stream", "Stream a comparison over websocket",
		`{"territory":"Desert Oasis","team_a":{...},"team_b":{...}}`,
		func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			defer conn.Close()

			var req CompareRequest
			if err := conn.ReadJSON(&req); err != nil {
				_ = conn.WriteJSON(StreamFrame{Error: "invalid request"})
				return
			}

			cmp, err := newComparison(app.Catalog, app.Config, req)
			if err != nil {
				_ = conn.WriteJSON(StreamFrame{Error: err.Error()})
				return
			}

			id := uuid.NewString()
			for {
				s, ok := cmp.run.Next()
				if !ok {
					break
				}
				n := len(s.Timeline) - 1
				frame := StreamFrame{
					ID:        id,
					T:         s.Timeline[n],
					A:         s.AYield[n],
					B:         s.BYield[n],
					Breakeven: s.Breakeven,
				}
				if err := conn.WriteJSON(frame); err != nil {
					return
				}
			}

			final := cmp.run.Collect()
			_ = conn.WriteJSON(StreamFrame{ID: id, Done: true, Breakeven: final.Breakeven})
		})
}
