package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBoyRomano/idleon-spice-optimizer/internal/catalog"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/config"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/model"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	mux := http.NewServeMux()
	rr := &RouteRegistry{}
	RegisterAPIRoutes(mux, rr, &App{Catalog: cat, Config: config.Default()})
	RegisterUI(mux, rr)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func fp(v float64) *float64 { return &v }

func TestAPI_Healthz(t *testing.T) {
	rec := doJSON(t, newTestMux(t), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "spice-optimizer", body["service"])
}

func TestAPI_ListCatalogs(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/territories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var territories []model.Territory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &territories))
	assert.NotEmpty(t, territories)

	rec = doJSON(t, mux, http.MethodGet, "/api/genetics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var genetics []model.Genetic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &genetics))
	assert.NotEmpty(t, genetics)
}

func TestAPI_Compare(t *testing.T) {
	req := CompareRequest{
		Territory: "Desert Oasis",
		TeamA: TeamRequest{
			Name:        "Meta Team",
			Genetics:    []string{"Borger", "Miasma", "Forager", "Converter"},
			ManualSpeed: fp(10),
		},
		TeamB: TeamRequest{
			Name:        "Alchemic Team",
			Genetics:    []string{"Alchemic", "Alchemic", "Alchemic", "Converter"},
			ManualSpeed: fp(8),
		},
	}

	rec := doJSON(t, newTestMux(t), http.MethodPost, "/api/compare", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Desert Oasis", resp.Territory)
	assert.Equal(t, "Desert Oasis Spice", resp.Spice)
	assert.Equal(t, 10.0, resp.ASpeed)
	assert.Equal(t, 8.0, resp.BSpeed)

	require.NotNil(t, resp.Breakeven)
	assert.InDelta(t, 12.5, *resp.Breakeven, 1e-9)
	assert.Contains(t, resp.BreakevenLabel, "Alchemic Team surpasses Meta Team")
	assert.Equal(t, len(resp.Timeline), len(resp.AYield))
	assert.Equal(t, len(resp.Timeline), len(resp.BYield))
	assert.Equal(t, 0.0, resp.Timeline[0])
}

func TestAPI_Compare_UnknownTerritoryIs400(t *testing.T) {
	req := CompareRequest{
		Territory: "Atlantis",
		TeamA:     TeamRequest{Name: "A", Genetics: []string{"Forager"}, ManualSpeed: fp(1)},
		TeamB:     TeamRequest{Name: "B", Genetics: []string{"Forager"}, ManualSpeed: fp(1)},
	}

	rec := doJSON(t, newTestMux(t), http.MethodPost, "/api/compare", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no territory named")
}

func TestAPI_Compare_InvalidTeamIs400(t *testing.T) {
	fivePets := []string{"Forager", "Forager", "Forager", "Forager", "Forager"}
	req := CompareRequest{
		Territory: "Grasslands",
		TeamA:     TeamRequest{Name: "overloaded", Genetics: fivePets, ManualSpeed: fp(5)},
		TeamB:     TeamRequest{Name: "B", Genetics: []string{"Forager"}, ManualSpeed: fp(1)},
	}

	rec := doJSON(t, newTestMux(t), http.MethodPost, "/api/compare", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "more than 4 pets")

	// pets without powers and no manual speed
	req.TeamA = TeamRequest{Name: "powerless", Genetics: []string{"Forager"}}
	rec = doJSON(t, newTestMux(t), http.MethodPost, "/api/compare", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no power")
}

func TestAPI_Compare_BadJSONIs400(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/compare", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	newTestMux(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_RoutesJSONAndIndex(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/_/routes.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var docs []RouteDoc
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	assert.NotEmpty(t, docs)

	rec = doJSON(t, mux, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Idleon Spice Optimizer")
}
