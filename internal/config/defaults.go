package config

import (
	_ "embed"
)

//go:embed defaults/trail.yaml
var defaultTrailYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

// fullWeights returns the full-variant weight tables. Row order is part
// of the selection contract and must match the embedded YAML.
func fullWeights() SegmentWeights {
	base := []EventWeight{
		{Kind: "river", Weight: 10},
		{Kind: "breakdown", Weight: 8},
		{Kind: "sickness", Weight: 6},
		{Kind: "decision", Weight: 8},
		{Kind: "dilemma", Weight: 18},
		{Kind: "lottery", Weight: 5},
		{Kind: "tweet", Weight: 10},
		{Kind: "windfall", Weight: 7},
		{Kind: "rant", Weight: 10},
		{Kind: "quiz", Weight: 10},
		{Kind: "pact", Weight: 8},
	}
	late := []EventWeight{
		{Kind: "river", Weight: 8},
		{Kind: "breakdown", Weight: 8},
		{Kind: "sickness", Weight: 10},
		{Kind: "decision", Weight: 6},
		{Kind: "dilemma", Weight: 18},
		{Kind: "lottery", Weight: 8},
		{Kind: "tweet", Weight: 8},
		{Kind: "windfall", Weight: 7},
		{Kind: "rant", Weight: 10},
		{Kind: "quiz", Weight: 8},
		{Kind: "pact", Weight: 9},
	}
	return SegmentWeights{Early: base, Mid: base, Late: late}
}

// classicWeights returns the classic five-event weight tables.
func classicWeights() SegmentWeights {
	base := []EventWeight{
		{Kind: "river", Weight: 30},
		{Kind: "breakdown", Weight: 20},
		{Kind: "sickness", Weight: 15},
		{Kind: "decision", Weight: 25},
		{Kind: "windfall", Weight: 10},
	}
	late := []EventWeight{
		{Kind: "river", Weight: 25},
		{Kind: "breakdown", Weight: 20},
		{Kind: "sickness", Weight: 25},
		{Kind: "decision", Weight: 20},
		{Kind: "windfall", Weight: 10},
	}
	return SegmentWeights{Early: base, Mid: base, Late: late}
}

// baseTrailConfig returns everything the two variants share.
func baseTrailConfig() TrailConfig {
	return TrailConfig{
		Start: StartConfig{
			Runway:   100,
			Equity:   100,
			Traction: 0,
			TeamSize: 3,
		},
		Journey: JourneyConfig{
			WinDistance: 2000,
			MidAt:       700,
			LateAt:      1400,
			RiskEarly:   0.15,
			RiskMid:     0.25,
			RiskLate:    0.35,
			QuoteChance: 0.002,
			QuoteTicks:  150,
		},
		Paces: []PaceConfig{
			{Name: "Steady", Distance: 0.5, Drain: 0.02},
			{Name: "Strenuous", Distance: 0.75, Drain: 0.035},
			{Name: "Grueling", Distance: 1.0, Drain: 0.05},
		},
		Events: EventsConfig{
			MinGap: 800,
			MaxGap: 1500,
		},
		Recovery: RecoveryConfig{
			Threshold: 30,
		},
		Breaks: BreaksConfig{
			MinSeconds: 60,
			MaxSeconds: 90,
			MaxScore:   100,
		},
	}
}

// DefaultTrailConfig returns the default full-variant configuration.
func DefaultTrailConfig() TrailConfig {
	cfg := baseTrailConfig()
	cfg.Events.Weights = fullWeights()
	return cfg
}

// DefaultClassicConfig returns the default classic-variant configuration.
func DefaultClassicConfig() TrailConfig {
	cfg := baseTrailConfig()
	cfg.Events.Weights = classicWeights()
	return cfg
}

// DefaultQuizConfig returns the built-in quiz item pool.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		Items: []QuizItem{
			{Name: "A actual hot dog", HotDog: true, Verdict: "Hot dog."},
			{Name: "A bratwurst in a bun", HotDog: true, Verdict: "Technically... hot dog."},
			{Name: "A corn dog", HotDog: true, Verdict: "Hot dog. Corn style."},
			{Name: "A Chicago-style dog", HotDog: true, Verdict: "Hot dog. Very Chicago."},
			{Name: "A slim jim", HotDog: true, Verdict: "...hot dog. Slim version."},
			{Name: "Your SaaS dashboard", HotDog: false, Verdict: "Not hot dog."},
			{Name: "A series A term sheet", HotDog: false, Verdict: "Not hot dog. Paper only."},
			{Name: "A Kubernetes cluster", HotDog: false, Verdict: "Not hot dog. Is yaml."},
			{Name: "Gavin Belson's ego", HotDog: false, Verdict: "Not hot dog. Is nightmare."},
			{Name: "A product roadmap", HotDog: false, Verdict: "Not hot dog. Is wishful thinking."},
			{Name: "An NFT of a hot dog", HotDog: false, Verdict: "Not hot dog. Is screenshot."},
			{Name: "A pivot strategy", HotDog: false, Verdict: "Not hot dog. Is desperation."},
			{Name: "Erlich's vape pen", HotDog: false, Verdict: "Not hot dog. Is health hazard."},
			{Name: "Your burn rate chart", HotDog: false, Verdict: "Not hot dog. Is scary."},
			{Name: "A WeWork membership", HotDog: false, Verdict: "Not hot dog. Is overpriced couch."},
			{Name: "A foot-long sub", HotDog: true, Verdict: "Hot dog. Big version."},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game variant.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "trail":
		return defaultTrailYAML
	case "trail_classic":
		return defaultClassicYAML
	case "quiz":
		return defaultQuizYAML
	default:
		return nil
	}
}
