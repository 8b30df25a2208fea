package model

import (
	"path"

	"github.com/BBoyRomano/idleon-spice-optimizer/internal/format"
)

// Territory is a spice-producing location. Forage is the base threshold
// for the first fill cycle; Fight is part of the shared record but unused
// by the simulator.
type Territory struct {
	Name   string `json:"name"`
	Forage int    `json:"forage"`
	Fight  int    `json:"fight"`
}

// SpiceName returns the name of this territory's spice.
func (t Territory) SpiceName() string {
	return t.Name + " Spice"
}

// SpiceIconPath returns the path to this territory's spice icon image.
func (t Territory) SpiceIconPath() string {
	return path.Join(SpiceAssetsPath, format.Slugify(t.SpiceName())+".png")
}

// BackgroundPath returns the path to this territory's background image.
func (t Territory) BackgroundPath() string {
	return path.Join(TerritoryAssetsPath, format.Slugify(t.Name)+".png")
}
