package server

import (
	"fmt"

	"github.com/BBoyRomano/idleon-spice-optimizer/internal/catalog"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/config"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/model"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/sim"
)

// TeamRequest describes one team as submitted by a client: genetic names
// in pet order, either per-pet powers or a manual aggregate speed.
type TeamRequest struct {
	Name        string    `json:"name"`
	Genetics    []string  `json:"genetics"`
	Powers      []float64 `json:"powers,omitempty"`
	ManualSpeed *float64  `json:"manual_speed,omitempty"`
}

// CompareRequest is the payload for both the batch and stream endpoints.
type CompareRequest struct {
	Territory       string      `json:"territory"`
	TeamA           TeamRequest `json:"team_a"`
	TeamB           TeamRequest `json:"team_b"`
	MaxHours        float64     `json:"max_hours,omitempty"`
	StopAtBreakeven *bool       `json:"stop_at_breakeven,omitempty"`
}

// CompareResponse carries the full run history plus display-ready labels.
type CompareResponse struct {
	ID             string    `json:"id"`
	Territory      string    `json:"territory"`
	Spice          string    `json:"spice"`
	ASpeed         float64   `json:"a_speed"`
	BSpeed         float64   `json:"b_speed"`
	Timeline       []float64 `json:"timeline"`
	AYield         []float64 `json:"a_yield"`
	BYield         []float64 `json:"b_yield"`
	Breakeven      *float64  `json:"breakeven,omitempty"`
	BreakevenLabel string    `json:"breakeven_label"`
	AFinal         string    `json:"a_final"`
	BFinal         string    `json:"b_final"`
}

func buildTeam(cat *catalog.Catalog, req TeamRequest) (model.Team, error) {
	if len(req.Powers) > 0 && len(req.Powers) != len(req.Genetics) {
		return model.Team{}, fmt.Errorf("team %q: %d powers for %d pets", req.Name, len(req.Powers), len(req.Genetics))
	}
	pets := make([]model.Pet, 0, len(req.Genetics))
	for i, name := range req.Genetics {
		g, err := cat.GeneticByName(name)
		if err != nil {
			return model.Team{}, fmt.Errorf("team %q: %w", req.Name, err)
		}
		var power *float64
		if len(req.Powers) > 0 {
			power = &req.Powers[i]
		}
		pets = append(pets, model.Pet{Genetic: g, Power: power})
	}
	return model.NewTeam(req.Name, pets, req.ManualSpeed)
}

// comparison is a resolved compare request, ready to step.
type comparison struct {
	run          *sim.Run
	territory    model.Territory
	teamA, teamB model.Team
	opts         sim.Options
}

// newComparison resolves a compare request against the catalog and builds
// the simulator. Validation and lookup failures surface here, before any
// stepping happens.
func newComparison(cat *catalog.Catalog, cfg *config.Config, req CompareRequest) (*comparison, error) {
	territory, err := cat.TerritoryByName(req.Territory)
	if err != nil {
		return nil, err
	}
	teamA, err := buildTeam(cat, req.TeamA)
	if err != nil {
		return nil, err
	}
	teamB, err := buildTeam(cat, req.TeamB)
	if err != nil {
		return nil, err
	}

	opts := sim.Options{
		MaxHours:        cfg.Simulation.MaxHours,
		StopAtBreakeven: cfg.Simulation.StopAtBreakeven == nil || *cfg.Simulation.StopAtBreakeven,
	}
	if req.MaxHours > 0 {
		opts.MaxHours = req.MaxHours
	}
	if req.StopAtBreakeven != nil {
		opts.StopAtBreakeven = *req.StopAtBreakeven
	}

	return &comparison{
		run:       sim.New(territory, teamA, teamB, opts),
		territory: territory,
		teamA:     teamA,
		teamB:     teamB,
		opts:      opts,
	}, nil
}
