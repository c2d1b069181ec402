// Package config provides YAML-based game configuration loading and
// difficulty presets for the Hustle Trail variants.
package config

// TrailConfig contains all tunables for a trail run. Both registered
// variants share this shape; they differ only in their default values
// (most visibly the event weight tables).
type TrailConfig struct {
	Start    StartConfig    `yaml:"start"`
	Journey  JourneyConfig  `yaml:"journey"`
	Paces    []PaceConfig   `yaml:"paces"`
	Events   EventsConfig   `yaml:"events"`
	Recovery RecoveryConfig `yaml:"recovery"`
	Breaks   BreaksConfig   `yaml:"breaks"`
}

// StartConfig defines the resources a run begins with.
type StartConfig struct {
	Runway   float64 `yaml:"runway"`
	Equity   float64 `yaml:"equity"`
	Traction float64 `yaml:"traction"`
	TeamSize int     `yaml:"team_size"`
}

// JourneyConfig defines distance milestones and per-segment risk.
type JourneyConfig struct {
	WinDistance float64 `yaml:"win_distance"`
	MidAt       float64 `yaml:"mid_at"`  // distance where the middle segment begins
	LateAt      float64 `yaml:"late_at"` // distance where the late segment begins
	RiskEarly   float64 `yaml:"risk_early"`
	RiskMid     float64 `yaml:"risk_mid"`
	RiskLate    float64 `yaml:"risk_late"`
	QuoteChance float64 `yaml:"quote_chance"` // per-tick chance of an ambient quote
	QuoteTicks  int     `yaml:"quote_ticks"`  // how long a quote stays on screen
	// FixedSegment pins weight tables and risk to the opening segment
	// for the whole run. Set by the "fixed" difficulty preset.
	FixedSegment bool `yaml:"fixed_segment"`
}

// PaceConfig defines one selectable travel pace.
type PaceConfig struct {
	Name     string  `yaml:"name"`
	Distance float64 `yaml:"distance"` // distance gained per tick
	Drain    float64 `yaml:"drain"`    // runway burned per tick
}

// EventsConfig defines event timing and the per-segment weight tables.
type EventsConfig struct {
	MinGap  int            `yaml:"min_gap"` // ticks, lower bound of the re-randomized countdown
	MaxGap  int            `yaml:"max_gap"` // ticks, upper bound
	Weights SegmentWeights `yaml:"weights"`
}

// SegmentWeights carries one ordered weight table per journey segment.
type SegmentWeights struct {
	Early []EventWeight `yaml:"early"`
	Mid   []EventWeight `yaml:"mid"`
	Late  []EventWeight `yaml:"late"`
}

// EventWeight is one row of a weight table. Row order matters: selection
// walks the table in declared order, so reordering rows changes which
// event a given roll lands on.
type EventWeight struct {
	Kind   string `yaml:"kind"`
	Weight int    `yaml:"weight"`
}

// RecoveryConfig defines the burnout interlude trigger.
type RecoveryConfig struct {
	Threshold float64 `yaml:"threshold"` // equity at or below this forces recovery
}

// BreaksConfig defines hustle-break (end-of-trail minigame) timing.
type BreaksConfig struct {
	MinSeconds int `yaml:"min_seconds"`
	MaxSeconds int `yaml:"max_seconds"`
	MaxScore   int `yaml:"max_score"`
}

// QuizConfig is the item pool for the "is it a hot dog" quiz event.
// Loaded from an optional YAML file so players can bring their own pool.
type QuizConfig struct {
	Items []QuizItem `yaml:"items"`
}

// QuizItem is one quiz entry. Verdict is the line shown after the answer.
type QuizItem struct {
	Name    string `yaml:"name"`
	HotDog  bool   `yaml:"hot_dog"`
	Verdict string `yaml:"verdict"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
