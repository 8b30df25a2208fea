// Command compare runs a single team comparison from the command line and
// prints the breakeven verdict, optionally dumping the full history as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BBoyRomano/idleon-spice-optimizer/internal/catalog"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/config"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/format"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/model"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/sim"
)

func main() {
	var (
		territoryName string
		nameA, nameB  string
		genA, genB    string
		powersA       string
		powersB       string
		speedA        float64
		speedB        float64
		hours         float64
		runFull       bool
		outPath       string
	)
	flag.StringVar(&territoryName, "territory", "Desert Oasis", "territory name")
	flag.StringVar(&nameA, "name-a", config.MetaTeamLabel, "label for team A")
	flag.StringVar(&nameB, "name-b", config.AlchemicTeamLabel, "label for team B")
	flag.StringVar(&genA, "genetics-a", "", "comma-separated genetic names for team A (default config composition)")
	flag.StringVar(&genB, "genetics-b", "", "comma-separated genetic names for team B (default config composition)")
	flag.StringVar(&powersA, "powers-a", "", "comma-separated pet powers for team A")
	flag.StringVar(&powersB, "powers-b", "", "comma-separated pet powers for team B")
	flag.Float64Var(&speedA, "speed-a", 10, "manual speed override for team A (0 = use powers)")
	flag.Float64Var(&speedB, "speed-b", 8, "manual speed override for team B (0 = use powers)")
	flag.Float64Var(&hours, "hours", 0, "time budget in hours (0 = config default)")
	flag.BoolVar(&runFull, "full", false, "keep simulating past breakeven until the budget runs out")
	flag.StringVar(&outPath, "out", "", "write full history JSON to file")
	flag.Parse()

	cfg, err := config.FromEnv()
	if err != nil {
		fatal("load config:", err)
	}
	cat, err := catalog.Default()
	if err != nil {
		fatal("load catalog:", err)
	}
	if hours <= 0 {
		hours = cfg.Simulation.MaxHours
	}

	territory, err := cat.TerritoryByName(territoryName)
	if err != nil {
		fatal("territory:", err)
	}

	teamA, err := buildTeam(cat, cfg, nameA, genA, powersA, speedA)
	if err != nil {
		fatal("team A:", err)
	}
	teamB, err := buildTeam(cat, cfg, nameB, genB, powersB, speedB)
	if err != nil {
		fatal("team B:", err)
	}

	run := sim.New(territory, teamA, teamB, sim.Options{
		MaxHours:        hours,
		StopAtBreakeven: !runFull,
	})
	final := run.Collect()

	fmt.Printf("%s (%s)\n", territory.Name, territory.SpiceName())
	fmt.Printf("%s: speed %s\n", teamA.Name, format.Number(teamA.Speed()))
	fmt.Printf("%s: speed %s\n", teamB.Name, format.Number(teamB.Speed()))
	fmt.Printf("steps: %d, horizon: %s\n", len(final.Timeline)-1, format.Time(hours))
	fmt.Printf("final yield: %s=%s %s=%s\n",
		teamA.Name, format.Number(lastOf(final.AYield)),
		teamB.Name, format.Number(lastOf(final.BYield)))
	fmt.Println(format.BreakevenMessage(teamA.Name, teamB.Name, final.Breakeven, hours))

	if outPath != "" {
		b, err := json.MarshalIndent(final, "", "  ")
		if err != nil {
			fatal("encode:", err)
		}
		if err := os.WriteFile(outPath, b, 0o644); err != nil {
			fatal("write:", err)
		}
	}
}

func buildTeam(cat *catalog.Catalog, cfg *config.Config, name, genetics, powers string, manualSpeed float64) (model.Team, error) {
	names := splitList(genetics)
	if len(names) == 0 {
		names = cfg.Teams[name]
	}
	if len(names) == 0 {
		return model.Team{}, fmt.Errorf("no genetics given and no default composition for %q", name)
	}

	var powerVals []float64
	for _, p := range splitList(powers) {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return model.Team{}, fmt.Errorf("bad power %q: %w", p, err)
		}
		powerVals = append(powerVals, v)
	}
	if len(powerVals) > 0 && len(powerVals) != len(names) {
		return model.Team{}, fmt.Errorf("%d powers for %d pets", len(powerVals), len(names))
	}

	pets := make([]model.Pet, 0, len(names))
	for i, n := range names {
		g, err := cat.GeneticByName(n)
		if err != nil {
			return model.Team{}, err
		}
		var power *float64
		if len(powerVals) > 0 {
			power = &powerVals[i]
		}
		pets = append(pets, model.Pet{Genetic: g, Power: power})
	}

	var speed *float64
	if manualSpeed > 0 {
		speed = &manualSpeed
	}
	return model.NewTeam(name, pets, speed)
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func lastOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}

func fatal(prefix string, err error) {
	fmt.Fprintln(os.Stderr, prefix, err)
	os.Exit(1)
}
