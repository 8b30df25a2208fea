// Package sim advances two competing foraging teams through event time and
// reports when the challenger's cumulative spice overtakes the incumbent's.
package sim

import "math"

// Genetic names the simulator cares about.
const (
	GeneticAlchemic   = "Alchemic"
	GeneticMonolithic = "Monolithic"
)

// ForageRequirement returns the total forage needed to complete the next
// fill cycle. Each completed fill raises both the base term and the
// compounding bonus; Monolithic pets shrink the bonus toward 1, flattening
// the curve, but never push it below 1.
func ForageRequirement(base float64, fills, monolithicCount int) float64 {
	bonus := 1 + 0.02/(float64(monolithicCount)/5+1)
	return (base + float64(fills)) * math.Pow(bonus, float64(fills))
}
