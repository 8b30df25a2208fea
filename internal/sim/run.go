package sim

import (
	"math"

	"github.com/BBoyRomano/idleon-spice-optimizer/internal/model"
)

// Options controls a comparison run.
type Options struct {
	// MaxHours is the event-time budget. Steps that would overshoot it
	// are discarded, not clamped, so the final reported time can sit
	// below the budget.
	MaxHours float64
	// StopAtBreakeven terminates the run on the step where team B first
	// strictly exceeds team A. When false the run keeps emitting until
	// the time budget runs out, carrying the latched breakeven forward.
	StopAtBreakeven bool
}

// Sample is one emission of a run: the full history so far plus the
// breakeven time once detected. Timeline[i] pairs positionally with
// AYield[i] and BYield[i]. The slices are append-only views owned by the
// run; callers must not mutate them.
type Sample struct {
	Timeline  []float64 `json:"timeline"`
	AYield    []float64 `json:"a_yield"`
	BYield    []float64 `json:"b_yield"`
	Breakeven *float64  `json:"breakeven,omitempty"`
}

// teamState is the private accumulator for one team. Speed and the
// genetic counts are captured at run entry and never change.
type teamState struct {
	spice      float64
	fills      int
	progress   float64
	speed      float64
	alchemic   int
	monolithic int
}

func newTeamState(t model.Team) teamState {
	return teamState{
		speed:      t.Speed(),
		alchemic:   t.CountGenetic(GeneticAlchemic),
		monolithic: t.CountGenetic(GeneticMonolithic),
	}
}

// nextFillTime returns the event time until this team completes its
// current cycle, or +Inf when the team makes no progress.
func (s *teamState) nextFillTime(base float64) float64 {
	if s.speed <= 0 {
		return math.Inf(1)
	}
	req := ForageRequirement(base, s.fills, s.monolithic)
	return (req - s.progress) / s.speed
}

// advance accrues dt worth of foraging and completes at most one cycle.
// dt is always the minimum time to the next single fill across both
// teams, so no step can cross two fill boundaries for the same team.
func (s *teamState) advance(base, dt float64) {
	s.progress += s.speed * dt
	req := ForageRequirement(base, s.fills, s.monolithic)
	if s.progress >= req {
		s.fills++
		s.spice += 1 + 0.5*float64(s.alchemic)
		s.progress = 0
	}
}

// Run is a forward-only, non-restartable comparison of two teams on one
// territory. Each Next call produces the following sample on demand; the
// run is safe to abandon at any point. A finished run keeps reporting
// completion.
type Run struct {
	base      float64
	opts      Options
	a, b      teamState
	t         float64
	timeline  []float64
	aYield    []float64
	bYield    []float64
	breakeven *float64
	started   bool
	done      bool
}

// New builds a run for two teams on a territory. Both teams are assumed
// to have passed model validation; degenerate speeds degrade to a
// zero-progress run rather than an error.
func New(territory model.Territory, teamA, teamB model.Team, opts Options) *Run {
	return &Run{
		base:     float64(territory.Forage),
		opts:     opts,
		a:        newTeamState(teamA),
		b:        newTeamState(teamB),
		timeline: []float64{0},
		aYield:   []float64{0},
		bYield:   []float64{0},
	}
}

func (r *Run) sample() Sample {
	return Sample{
		Timeline:  r.timeline,
		AYield:    r.aYield,
		BYield:    r.bYield,
		Breakeven: r.breakeven,
	}
}

// Next produces the next sample, or reports completion. The first sample
// of every run is the zero snapshot at t=0 with no breakeven.
func (r *Run) Next() (Sample, bool) {
	if !r.started {
		r.started = true
		return r.sample(), true
	}
	if r.done {
		return Sample{}, false
	}

	dt := math.Min(r.a.nextFillTime(r.base), r.b.nextFillTime(r.base))
	if math.IsInf(dt, 1) {
		// Neither team ever fills; no event will occur.
		r.done = true
		return Sample{}, false
	}

	r.t += dt
	if r.t > r.opts.MaxHours {
		// Overshoot step is discarded, never clamped to the budget.
		r.done = true
		return Sample{}, false
	}

	r.a.advance(r.base, dt)
	r.b.advance(r.base, dt)

	r.timeline = append(r.timeline, r.t)
	r.aYield = append(r.aYield, r.a.spice)
	r.bYield = append(r.bYield, r.b.spice)

	if r.breakeven == nil && r.b.spice > r.a.spice {
		be := r.t
		r.breakeven = &be
		if r.opts.StopAtBreakeven {
			r.done = true
		}
	}

	return r.sample(), true
}

// Collect drains the run and returns the final sample. For a fresh run
// this is the batch "compare all" mode; it also works from any point of
// a partially consumed run.
func (r *Run) Collect() Sample {
	last := r.sample()
	for {
		s, ok := r.Next()
		if !ok {
			return last
		}
		last = s
	}
}
