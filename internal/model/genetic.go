package model

import (
	"path"

	"github.com/BBoyRomano/idleon-spice-optimizer/internal/format"
)

// Asset roots for icon lookups, relative to the web static dir.
const (
	GeneticAssetsPath   = "assets/genetics"
	SpiceAssetsPath     = "assets/spices"
	TerritoryAssetsPath = "assets/territories"
)

// Genetic is a trait that affects pet behavior. Genetics are loaded once
// from the catalog and shared by reference; both ID and Name are unique.
type Genetic struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// IconPath returns the path to this genetic's icon image.
func (g Genetic) IconPath() string {
	return path.Join(GeneticAssetsPath, format.Slugify(g.Name)+".png")
}

// Pet is a foraging unit carrying a genetic and an optional power.
// Power is nil only when the owning team supplies a manual speed.
type Pet struct {
	Genetic Genetic  `json:"genetic"`
	Power   *float64 `json:"power,omitempty"`
}
