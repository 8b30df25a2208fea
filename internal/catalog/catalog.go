// Package catalog loads the static territory and genetic catalogs and
// serves keyed lookups over them.
package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/BBoyRomano/idleon-spice-optimizer/internal/model"
)

const (
	GeneticsFile    = "genetics.json"
	TerritoriesFile = "territories.json"
)

// Catalog is an immutable snapshot of the loaded game data.
type Catalog struct {
	territories []model.Territory
	genetics    []model.Genetic

	geneticsByID      map[int]model.Genetic
	geneticsByName    map[string]model.Genetic
	territoriesByName map[string]model.Territory
}

// Load reads both catalogs from fsys and builds the lookup tables.
// Duplicate identity keys are load errors.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{
		geneticsByID:      map[int]model.Genetic{},
		geneticsByName:    map[string]model.Genetic{},
		territoriesByName: map[string]model.Territory{},
	}

	if err := readJSON(fsys, GeneticsFile, &c.genetics); err != nil {
		return nil, err
	}
	for _, g := range c.genetics {
		if _, ok := c.geneticsByID[g.ID]; ok {
			return nil, fmt.Errorf("catalog %s: duplicate genetic id %d", GeneticsFile, g.ID)
		}
		if _, ok := c.geneticsByName[g.Name]; ok {
			return nil, fmt.Errorf("catalog %s: duplicate genetic name %q", GeneticsFile, g.Name)
		}
		c.geneticsByID[g.ID] = g
		c.geneticsByName[g.Name] = g
	}

	if err := readJSON(fsys, TerritoriesFile, &c.territories); err != nil {
		return nil, err
	}
	for _, t := range c.territories {
		if _, ok := c.territoriesByName[t.Name]; ok {
			return nil, fmt.Errorf("catalog %s: duplicate territory name %q", TerritoriesFile, t.Name)
		}
		c.territoriesByName[t.Name] = t
	}

	return c, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("catalog %s: %w", name, err)
	}
	return nil
}

// Territories returns all territories in catalog order.
func (c *Catalog) Territories() []model.Territory {
	out := make([]model.Territory, len(c.territories))
	copy(out, c.territories)
	return out
}

// Genetics returns all genetics in catalog order.
func (c *Catalog) Genetics() []model.Genetic {
	out := make([]model.Genetic, len(c.genetics))
	copy(out, c.genetics)
	return out
}

func (c *Catalog) GeneticByID(id int) (model.Genetic, error) {
	g, ok := c.geneticsByID[id]
	if !ok {
		return model.Genetic{}, fmt.Errorf("no genetic with id %d", id)
	}
	return g, nil
}

func (c *Catalog) GeneticByName(name string) (model.Genetic, error) {
	g, ok := c.geneticsByName[name]
	if !ok {
		return model.Genetic{}, fmt.Errorf("no genetic named %q", name)
	}
	return g, nil
}

func (c *Catalog) TerritoryByName(name string) (model.Territory, error) {
	t, ok := c.territoriesByName[name]
	if !ok {
		return model.Territory{}, fmt.Errorf("no territory named %q", name)
	}
	return t, nil
}
