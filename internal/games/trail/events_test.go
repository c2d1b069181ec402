package trail

import (
	"math/rand"
	"testing"

	"github.com/HC-Build/Hustle-Trail/internal/config"
)

func TestParseEventKindRoundTrip(t *testing.T) {
	kinds := []EventKind{
		EventRiver, EventBreakdown, EventSickness, EventDecision,
		EventDilemma, EventLottery, EventTweet, EventWindfall,
		EventRant, EventQuiz, EventPact,
	}
	for _, k := range kinds {
		got, ok := parseEventKind(k.String())
		if !ok {
			t.Errorf("parseEventKind(%q) not recognized", k.String())
		}
		if got != k {
			t.Errorf("parseEventKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, ok := parseEventKind("ufo"); ok {
		t.Error("parseEventKind should reject unknown identifiers")
	}
}

func TestBuildWeightTableSkipsBadRows(t *testing.T) {
	rows := []config.EventWeight{
		{Kind: "river", Weight: 10},
		{Kind: "ufo", Weight: 50},
		{Kind: "tweet", Weight: 0},
		{Kind: "quiz", Weight: -3},
		{Kind: "pact", Weight: 8},
	}
	table := buildWeightTable(rows)
	if len(table) != 2 {
		t.Fatalf("table length = %d, want 2 (unknown kinds and non-positive weights skipped)", len(table))
	}
	if table[0].kind != EventRiver || table[0].weight != 10 {
		t.Errorf("row 0 = %+v, want river/10", table[0])
	}
	if table[1].kind != EventPact || table[1].weight != 8 {
		t.Errorf("row 1 = %+v, want pact/8", table[1])
	}
}

func TestPickEventDeterministic(t *testing.T) {
	table := buildWeightTable(config.DefaultTrailConfig().Events.Weights.Early)
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 200; i++ {
		k1 := pickEvent(rng1, table)
		k2 := pickEvent(rng2, table)
		if k1 != k2 {
			t.Fatalf("pick %d diverged: %v vs %v", i, k1, k2)
		}
	}
}

func TestPickEventCoversTable(t *testing.T) {
	table := buildWeightTable(config.DefaultTrailConfig().Events.Weights.Early)
	rng := rand.New(rand.NewSource(12345))
	seen := make(map[EventKind]int)
	for i := 0; i < 10000; i++ {
		seen[pickEvent(rng, table)]++
	}
	for _, row := range table {
		if seen[row.kind] == 0 {
			t.Errorf("kind %v never picked in 10000 draws", row.kind)
		}
	}
}

func TestPickEventFrequency(t *testing.T) {
	table := []weightedEvent{
		{kind: EventRiver, weight: 10},
		{kind: EventWindfall, weight: 90},
	}
	rng := rand.New(rand.NewSource(42))
	windfalls := 0
	for i := 0; i < 10000; i++ {
		if pickEvent(rng, table) == EventWindfall {
			windfalls++
		}
	}
	if windfalls < 8700 || windfalls > 9300 {
		t.Errorf("windfall picked %d/10000 times, want about 9000", windfalls)
	}
}

func TestPickEventEmptyTable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if k := pickEvent(rng, nil); k != EventDecision {
		t.Errorf("empty table should fall back to decision, got %v", k)
	}
	zeroed := []weightedEvent{{kind: EventRiver, weight: 0}}
	if k := pickEvent(rng, zeroed); k != EventDecision {
		t.Errorf("zero-weight table should fall back to decision, got %v", k)
	}
}

func TestNextEventGapBounds(t *testing.T) {
	cfg := config.EventsConfig{MinGap: 800, MaxGap: 1500}
	rng := rand.New(rand.NewSource(999))
	for i := 0; i < 1000; i++ {
		gap := nextEventGap(rng, cfg)
		if gap < 800 || gap > 1500 {
			t.Fatalf("gap %d outside [800, 1500]", gap)
		}
	}

	inverted := config.EventsConfig{MinGap: 100, MaxGap: 50}
	for i := 0; i < 100; i++ {
		if gap := nextEventGap(rng, inverted); gap != 100 {
			t.Fatalf("inverted bounds should pin gap to MinGap, got %d", gap)
		}
	}
}

func TestBuildSegmentTables(t *testing.T) {
	tables := buildSegmentTables(config.DefaultTrailConfig().Events.Weights)
	if len(tables[SegmentEarly]) != 11 {
		t.Errorf("early table has %d rows, want 11", len(tables[SegmentEarly]))
	}
	if len(tables[SegmentLate]) != 11 {
		t.Errorf("late table has %d rows, want 11", len(tables[SegmentLate]))
	}

	classic := buildSegmentTables(config.DefaultClassicConfig().Events.Weights)
	if len(classic[SegmentEarly]) != 5 {
		t.Errorf("classic early table has %d rows, want 5", len(classic[SegmentEarly]))
	}
}
