package trail

import (
	"github.com/HC-Build/Hustle-Trail/internal/config"
	"github.com/HC-Build/Hustle-Trail/internal/core"
)

// Stats holds the resources of a run. All mutation goes through the
// Add/Set methods so clamping happens in exactly one place.
type Stats struct {
	runway   float64 // months of cash, 0..100
	equity   float64 // founder stake percent, 0..100
	traction float64 // growth score, never negative
	distance float64 // miles toward the goal, 0..goal
	goal     float64
}

func newStats(start config.StartConfig, goal float64) Stats {
	s := Stats{goal: goal}
	s.SetRunway(start.Runway)
	s.SetEquity(start.Equity)
	s.AddTraction(start.Traction)
	return s
}

// Runway returns months of cash remaining.
func (s *Stats) Runway() float64 { return s.runway }

// Equity returns the founder stake percent.
func (s *Stats) Equity() float64 { return s.equity }

// Traction returns the growth score.
func (s *Stats) Traction() float64 { return s.traction }

// Distance returns miles traveled toward the goal.
func (s *Stats) Distance() float64 { return s.distance }

// Goal returns the winning distance.
func (s *Stats) Goal() float64 { return s.goal }

// AddRunway adjusts runway, clamped to [0, 100].
func (s *Stats) AddRunway(delta float64) {
	s.runway = core.ClampF(s.runway+delta, 0, 100)
}

// SetRunway sets runway directly, clamped to [0, 100].
func (s *Stats) SetRunway(v float64) {
	s.runway = core.ClampF(v, 0, 100)
}

// AddEquity adjusts equity, clamped to [0, 100].
func (s *Stats) AddEquity(delta float64) {
	s.equity = core.ClampF(s.equity+delta, 0, 100)
}

// SetEquity sets equity directly, clamped to [0, 100].
func (s *Stats) SetEquity(v float64) {
	s.equity = core.ClampF(v, 0, 100)
}

// AddTraction adjusts traction, floored at zero. Traction has no ceiling.
func (s *Stats) AddTraction(delta float64) {
	s.traction += delta
	if s.traction < 0 {
		s.traction = 0
	}
}

// AddDistance advances the trail, clamped to [0, goal].
func (s *Stats) AddDistance(delta float64) {
	s.distance = core.ClampF(s.distance+delta, 0, s.goal)
}

// Segment divides the trail into three risk zones.
type Segment int

const (
	SegmentEarly Segment = iota
	SegmentMid
	SegmentLate
)

// String returns the segment name shown in the HUD.
func (s Segment) String() string {
	switch s {
	case SegmentEarly:
		return "EARLY"
	case SegmentMid:
		return "MID"
	default:
		return "LATE"
	}
}

// segmentFor maps a distance to its trail segment. Boundaries belong to
// the later segment: distance exactly at MidAt is already MID.
func segmentFor(distance float64, j config.JourneyConfig) Segment {
	switch {
	case distance < j.MidAt:
		return SegmentEarly
	case distance < j.LateAt:
		return SegmentMid
	default:
		return SegmentLate
	}
}

// riskFor returns the base failure risk for a segment.
func riskFor(seg Segment, j config.JourneyConfig) float64 {
	switch seg {
	case SegmentEarly:
		return j.RiskEarly
	case SegmentMid:
		return j.RiskMid
	default:
		return j.RiskLate
	}
}

// Pace indexes into the configured pace table.
type Pace int

const (
	PaceSteady Pace = iota
	PaceStrenuous
	PaceGrueling
)

// paceRow returns the config row for a pace, falling back to the first
// row when the table is shorter than expected.
func paceRow(p Pace, paces []config.PaceConfig) config.PaceConfig {
	if len(paces) == 0 {
		return config.PaceConfig{Name: "Steady", Distance: 0.5, Drain: 0.02}
	}
	i := int(p)
	if i < 0 || i >= len(paces) {
		i = 0
	}
	return paces[i]
}
