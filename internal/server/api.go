// Package server wires the comparison service: catalog endpoints, batch
// and streaming comparisons, and the index page.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/BBoyRomano/idleon-spice-optimizer/internal/catalog"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/config"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/format"
)

// App holds what the handlers depend on.
type App struct {
	Catalog *catalog.Catalog
	Config  *config.Config
	Logger  *log.Logger
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	cat := app.Catalog
	cfg := app.Config

	Handle(mux, rr, "GET /healthz", "Service liveness", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"ok":      true,
			"service": "spice-optimizer",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	Handle(mux, rr, "GET /_/routes.json", "List registered routes", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rr.List())
	})

	Handle(mux, rr, "GET /api/territories", "List territories", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cat.Territories())
	})

	Handle(mux, rr, "GET /api/genetics", "List genetics", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cat.Genetics())
	})

	Handle(mux, rr, "GET /api/teams/defaults", "Default team compositions", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cfg.Teams)
	})

	Handle(mux, rr, "POST /api/compare", "Run a full comparison",
		`{"territory":"Desert Oasis","team_a":{"name":"Meta Team","genetics":["Borger","Miasma","Forager","Converter"],"manual_speed":10},"team_b":{"name":"Alchemic Team","genetics":["Alchemic","Alchemic","Alchemic","Converter"],"manual_speed":8}}`,
		func(w http.ResponseWriter, r *http.Request) {
			var req CompareRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid json body", http.StatusBadRequest)
				return
			}

			cmp, err := newComparison(cat, cfg, req)
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}

			final := cmp.run.Collect()
			resp := CompareResponse{
				ID:             uuid.NewString(),
				Territory:      cmp.territory.Name,
				Spice:          cmp.territory.SpiceName(),
				ASpeed:         cmp.teamA.Speed(),
				BSpeed:         cmp.teamB.Speed(),
				Timeline:       final.Timeline,
				AYield:         final.AYield,
				BYield:         final.BYield,
				Breakeven:      final.Breakeven,
				BreakevenLabel: format.BreakevenMessage(cmp.teamA.Name, cmp.teamB.Name, final.Breakeven, cmp.opts.MaxHours),
				AFinal:         format.Number(last(final.AYield)),
				BFinal:         format.Number(last(final.BYield)),
			}
			writeJSON(w, resp)
		})

	RegisterStream(mux, rr, app)
}

func last(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}
