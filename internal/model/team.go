package model

import "fmt"

// MaxTeamSize is the most pets a single team can field.
const MaxTeamSize = 4

// Team is a group of pets assigned to a territory. Teams are immutable
// after construction; build them through NewTeam so the invariants hold.
type Team struct {
	Name        string   `json:"name"`
	Pets        []Pet    `json:"pets"`
	Territory   string   `json:"territory,omitempty"`
	ManualSpeed *float64 `json:"manual_speed,omitempty"`
}

// NewTeam validates and builds a team. It fails when the team is larger
// than MaxTeamSize, or when any pet lacks a power while no manual speed
// override is supplied.
func NewTeam(name string, pets []Pet, manualSpeed *float64) (Team, error) {
	if len(pets) > MaxTeamSize {
		return Team{}, fmt.Errorf("team %q: cannot contain more than %d pets (got %d)", name, MaxTeamSize, len(pets))
	}
	if manualSpeed == nil {
		for i, p := range pets {
			if p.Power == nil {
				return Team{}, fmt.Errorf("team %q: pet %d (%s) has no power and no manual speed is set", name, i, p.Genetic.Name)
			}
		}
	}
	return Team{Name: name, Pets: pets, ManualSpeed: manualSpeed}, nil
}

// Size returns the number of pets on the team.
func (t Team) Size() int {
	return len(t.Pets)
}

// Speed returns the team's foraging speed: the manual override when set,
// otherwise the sum of pet powers.
func (t Team) Speed() float64 {
	if t.ManualSpeed != nil {
		return *t.ManualSpeed
	}
	var sum float64
	for _, p := range t.Pets {
		if p.Power != nil {
			sum += *p.Power
		}
	}
	return sum
}

// GeneticsCounts returns the occurrence count of each genetic name
// present on the team.
func (t Team) GeneticsCounts() map[string]int {
	counts := map[string]int{}
	for _, p := range t.Pets {
		counts[p.Genetic.Name]++
	}
	return counts
}

// CountGenetic returns the number of pets carrying the named genetic.
func (t Team) CountGenetic(name string) int {
	n := 0
	for _, p := range t.Pets {
		if p.Genetic.Name == name {
			n++
		}
	}
	return n
}
