package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func petWithPower(name string, power float64) Pet {
	return Pet{Genetic: Genetic{Name: name}, Power: fp(power)}
}

func TestNewTeam_RejectsOversizedTeam(t *testing.T) {
	pets := make([]Pet, MaxTeamSize+1)
	for i := range pets {
		pets[i] = petWithPower("Forager", 1)
	}

	_, err := NewTeam("too big", pets, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "more than 4 pets")
}

func TestNewTeam_RejectsMissingPowerWithoutManualSpeed(t *testing.T) {
	pets := []Pet{
		petWithPower("Forager", 2),
		{Genetic: Genetic{Name: "Borger"}}, // no power
	}

	_, err := NewTeam("incomplete", pets, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no power")
}

func TestNewTeam_ManualSpeedAllowsMissingPowers(t *testing.T) {
	pets := []Pet{
		{Genetic: Genetic{Name: "Alchemic"}},
		{Genetic: Genetic{Name: "Alchemic"}},
	}

	team, err := NewTeam("manual", pets, fp(8))
	require.NoError(t, err)
	assert.Equal(t, 8.0, team.Speed())
	assert.Equal(t, 2, team.Size())
}

func TestTeam_SpeedSumsPowers(t *testing.T) {
	team, err := NewTeam("summed", []Pet{
		petWithPower("Forager", 1.5),
		petWithPower("Borger", 2.5),
		petWithPower("Miasma", 6),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 10.0, team.Speed())
}

func TestTeam_GeneticsCounts(t *testing.T) {
	team, err := NewTeam("counted", []Pet{
		petWithPower("Alchemic", 1),
		petWithPower("Alchemic", 1),
		petWithPower("Converter", 1),
	}, nil)
	require.NoError(t, err)

	counts := team.GeneticsCounts()
	assert.Equal(t, map[string]int{"Alchemic": 2, "Converter": 1}, counts)
	assert.Equal(t, 2, team.CountGenetic("Alchemic"))
	assert.Equal(t, 0, team.CountGenetic("Monolithic"))
}

func TestTerritory_DerivedNames(t *testing.T) {
	terr := Territory{Name: "Desert Oasis", Forage: 100, Fight: 250}

	assert.Equal(t, "Desert Oasis Spice", terr.SpiceName())
	assert.Equal(t, "assets/spices/Desert_Oasis_Spice.png", terr.SpiceIconPath())
	assert.Equal(t, "assets/territories/Desert_Oasis.png", terr.BackgroundPath())
}

func TestGenetic_IconPath(t *testing.T) {
	g := Genetic{ID: 21, Name: "Alchemic"}
	assert.Equal(t, "assets/genetics/Alchemic.png", g.IconPath())
}
