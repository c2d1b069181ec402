package trail

import (
	"math/rand"

	"github.com/HC-Build/Hustle-Trail/internal/config"
)

// EventKind identifies a trail event family.
type EventKind int

const (
	EventRiver EventKind = iota
	EventBreakdown
	EventSickness
	EventDecision
	EventDilemma
	EventLottery
	EventTweet
	EventWindfall
	EventRant
	EventQuiz
	EventPact
)

// String returns the config identifier for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRiver:
		return "river"
	case EventBreakdown:
		return "breakdown"
	case EventSickness:
		return "sickness"
	case EventDecision:
		return "decision"
	case EventDilemma:
		return "dilemma"
	case EventLottery:
		return "lottery"
	case EventTweet:
		return "tweet"
	case EventWindfall:
		return "windfall"
	case EventRant:
		return "rant"
	case EventQuiz:
		return "quiz"
	case EventPact:
		return "pact"
	default:
		panic("trail: unknown event kind")
	}
}

// parseEventKind maps a config identifier to its kind.
func parseEventKind(s string) (EventKind, bool) {
	switch s {
	case "river":
		return EventRiver, true
	case "breakdown":
		return EventBreakdown, true
	case "sickness":
		return EventSickness, true
	case "decision":
		return EventDecision, true
	case "dilemma":
		return EventDilemma, true
	case "lottery":
		return EventLottery, true
	case "tweet":
		return EventTweet, true
	case "windfall":
		return EventWindfall, true
	case "rant":
		return EventRant, true
	case "quiz":
		return EventQuiz, true
	case "pact":
		return EventPact, true
	}
	return 0, false
}

// weightedEvent is one row of a compiled selection table.
type weightedEvent struct {
	kind   EventKind
	weight int
}

// buildWeightTable compiles config rows into a selection table. Unknown
// kinds and non-positive weights are skipped so a hand-edited config
// cannot break selection.
func buildWeightTable(rows []config.EventWeight) []weightedEvent {
	var table []weightedEvent
	for _, row := range rows {
		kind, ok := parseEventKind(row.Kind)
		if !ok || row.Weight <= 0 {
			continue
		}
		table = append(table, weightedEvent{kind: kind, weight: row.Weight})
	}
	return table
}

// buildSegmentTables compiles the per-segment tables used at trigger time.
func buildSegmentTables(w config.SegmentWeights) [3][]weightedEvent {
	return [3][]weightedEvent{
		SegmentEarly: buildWeightTable(w.Early),
		SegmentMid:   buildWeightTable(w.Mid),
		SegmentLate:  buildWeightTable(w.Late),
	}
}

// pickEvent rolls on a weight table. The roll walks rows in declared
// order, so two runs with the same seed and table pick the same kind.
// An empty table falls back to a plain decision.
func pickEvent(rng *rand.Rand, table []weightedEvent) EventKind {
	total := 0
	for _, row := range table {
		total += row.weight
	}
	if total <= 0 {
		return EventDecision
	}
	r := rng.Intn(total) + 1
	cumulative := 0
	for _, row := range table {
		cumulative += row.weight
		if r <= cumulative {
			return row.kind
		}
	}
	return EventDecision
}

// nextEventGap rolls the tick gap until the next event.
func nextEventGap(rng *rand.Rand, cfg config.EventsConfig) int {
	lo, hi := cfg.MinGap, cfg.MaxGap
	if hi < lo {
		hi = lo
	}
	return lo + rng.Intn(hi-lo+1)
}
