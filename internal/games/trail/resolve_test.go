package trail

import (
	"math"
	"strings"
	"testing"

	"github.com/HC-Build/Hustle-Trail/internal/config"
	"github.com/HC-Build/Hustle-Trail/internal/core"
)

func TestRiverFailureChancePerks(t *testing.T) {
	cases := []struct {
		choice  int
		profile Profile
		want    float64
	}{
		{1, Profile{}, 0.40},
		{1, Profile{WarmIntro: true}, 0.30},
		{1, Profile{WarmIntro: true, EliteCollege: true}, 0.25},
		{2, Profile{EliteCollege: true}, 0.20},
		{3, Profile{WarmIntro: true, EliteCollege: true}, 0},
		{4, Profile{}, 0},
		{4, Profile{WarmIntro: true, EliteCollege: true}, 0},
	}
	for _, c := range cases {
		got := riverFailureChance(c.choice, c.profile)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("riverFailureChance(%d, %+v) = %f, want %f", c.choice, c.profile, got, c.want)
		}
	}
}

func TestRiverFerryAlwaysSafe(t *testing.T) {
	g := newTestRun(12345)
	g.mode = ModeEvent
	g.event = &activeEvent{kind: EventRiver, options: numberOptions(riverOptions...)}

	f := core.NewInputFrame()
	f.Set(core.ActionOption4)
	g.Step(f)

	if g.mode != ModeTrail {
		t.Fatalf("mode = %s after the ferry, want TRAIL", g.mode)
	}
	if g.stats.Runway() != 85 {
		t.Errorf("runway = %f after the ferry, want 85", g.stats.Runway())
	}
	if g.stats.Traction() != 5 {
		t.Errorf("traction = %f after the ferry, want 5", g.stats.Traction())
	}
	if g.resultTicks != 240 {
		t.Errorf("result holds %d ticks, want 240", g.resultTicks)
	}
	if !strings.Contains(g.resultText, "ferry") {
		t.Errorf("result %q should mention the ferry", g.resultText)
	}
}

func TestBreakdownSafeChoice(t *testing.T) {
	g := newTestRun(42)
	g.mode = ModeEvent
	tmpl := &breakdownTemplates[0]
	g.event = &activeEvent{
		kind:      EventBreakdown,
		breakdown: tmpl,
		options:   numberOptions(tmpl.safe.label, tmpl.gamble),
	}

	f := core.NewInputFrame()
	f.Set(core.ActionOption1)
	g.Step(f)

	if g.stats.Runway() != 80 {
		t.Errorf("runway = %f after the refactor, want 80", g.stats.Runway())
	}
	if g.stats.Equity() != 100 {
		t.Errorf("equity = %f, the safe fix should not touch it", g.stats.Equity())
	}
	if g.resultText != tmpl.safeText {
		t.Errorf("result = %q, want the safe outcome text", g.resultText)
	}

	// The migrate template pays equity back.
	g.stats.equity = 50
	g.mode = ModeEvent
	tmpl = &breakdownTemplates[2]
	g.event = &activeEvent{
		kind:      EventBreakdown,
		breakdown: tmpl,
		options:   numberOptions(tmpl.safe.label, tmpl.gamble),
	}
	g.Step(f)

	if g.stats.Runway() != 55 {
		t.Errorf("runway = %f after the migration, want 55", g.stats.Runway())
	}
	if g.stats.Equity() != 60 {
		t.Errorf("equity = %f after the migration, want 60", g.stats.Equity())
	}
}

func TestSicknessChoices(t *testing.T) {
	g := newTestRun(42)
	g.mode = ModeEvent
	g.event = &activeEvent{kind: EventSickness, victim: 0, options: numberOptions(sicknessOptions...)}
	name := g.party[0].Name

	f := core.NewInputFrame()
	f.Set(core.ActionOption1)
	g.Step(f)

	if g.stats.Runway() != 75 {
		t.Errorf("runway = %f after paid rest, want 75", g.stats.Runway())
	}
	if !g.party[0].Alive {
		t.Error("paid rest should keep the victim aboard")
	}
	if !strings.Contains(g.resultText, name) {
		t.Errorf("result %q should name the recovered founder", g.resultText)
	}

	g.mode = ModeEvent
	g.event = &activeEvent{kind: EventSickness, victim: 1, options: numberOptions(sicknessOptions...)}
	f.Clear()
	f.Set(core.ActionOption3)
	g.stats.equity = 50
	g.Step(f)

	if g.stats.Runway() != 60 {
		t.Errorf("runway = %f after the retreat, want 60", g.stats.Runway())
	}
	if g.stats.Equity() != 60 {
		t.Errorf("equity = %f after the retreat, want 60", g.stats.Equity())
	}
}

func TestSicknessPushThrough(t *testing.T) {
	g := newTestRun(999)
	g.mode = ModeEvent
	g.event = &activeEvent{kind: EventSickness, victim: 0, options: numberOptions(sicknessOptions...)}

	f := core.NewInputFrame()
	f.Set(core.ActionOption2)
	res := g.Step(f)

	// Pushing through rolls a 30% burnout. Either the victim is gone and
	// the lose cue fired, or hustle paid 5 traction.
	if g.party[0].Alive {
		if g.stats.Traction() != 5 {
			t.Errorf("traction = %f after pushing through, want 5", g.stats.Traction())
		}
	} else {
		if !hasCue(res.Cues, core.CueLose) {
			t.Error("losing a founder should emit the lose cue")
		}
		if !strings.Contains(g.resultText, g.party[0].Name) {
			t.Errorf("result %q should name the lost founder", g.resultText)
		}
	}
	if g.mode != ModeTrail {
		t.Errorf("mode = %s after resolution, want TRAIL", g.mode)
	}
}

func TestDecisionAppliesPayoff(t *testing.T) {
	g := newTestRun(42)
	g.mode = ModeEvent
	tmpl := &decisionTemplate{
		text: "Board seat for cash?",
		options: [2]eventOption{
			{label: "Take it", payoff: Payoff{Runway: -10, Traction: 15}},
			{label: "Walk", payoff: Payoff{Equity: -5}},
		},
	}
	g.event = &activeEvent{
		kind:     EventDecision,
		decision: tmpl,
		options:  numberOptions(tmpl.options[0].label, tmpl.options[1].label),
	}

	f := core.NewInputFrame()
	f.Set(core.ActionOption1)
	g.Step(f)

	if g.stats.Runway() != 90 {
		t.Errorf("runway = %f, want 90", g.stats.Runway())
	}
	if g.stats.Traction() != 15 {
		t.Errorf("traction = %f, want 15", g.stats.Traction())
	}
	if !strings.Contains(g.resultText, "Take it") {
		t.Errorf("result %q should echo the chosen label", g.resultText)
	}
}

func TestDilemmaRolls(t *testing.T) {
	option1 := core.NewInputFrame()
	option1.Set(core.ActionOption1)

	// No worse chance, no good chance: the base runway is all that lands.
	g := newTestRun(42)
	g.mode = ModeEvent
	tmpl := &dilemmaTemplate{text: "d", choices: []dilemmaChoice{
		{text: "flat", rating: "Safe", baseRunway: -10},
	}}
	g.event = &activeEvent{kind: EventDilemma, dilemma: tmpl, options: numberOptions("flat")}
	res := g.Step(option1)
	if g.stats.Runway() != 90 {
		t.Errorf("runway = %f on the flat path, want 90", g.stats.Runway())
	}
	if hasCue(res.Cues, core.CueDamage) || hasCue(res.Cues, core.CueWin) {
		t.Error("flat path should emit neither damage nor win")
	}

	// A certain worse roll stacks its extra on the base.
	g = newTestRun(42)
	g.mode = ModeEvent
	tmpl = &dilemmaTemplate{text: "d", choices: []dilemmaChoice{
		{text: "doomed", rating: "Safe", baseRunway: -10, worseChance: 100, worseExtra: -5, worseEffect: "it got worse"},
	}}
	g.event = &activeEvent{kind: EventDilemma, dilemma: tmpl, options: numberOptions("doomed")}
	res = g.Step(option1)
	if g.stats.Runway() != 85 {
		t.Errorf("runway = %f on the doomed path, want 85", g.stats.Runway())
	}
	if !hasCue(res.Cues, core.CueDamage) {
		t.Error("worse roll should emit the damage cue")
	}
	if aliveCount(g.party) != 3 {
		t.Error("a safe-rated choice must never cost a founder")
	}

	// A certain good roll pays its bonus when the worse roll cannot fire.
	g = newTestRun(42)
	g.mode = ModeEvent
	tmpl = &dilemmaTemplate{text: "d", choices: []dilemmaChoice{
		{text: "blessed", rating: "Safe", baseRunway: -30, goodChance: 100, goodExtra: 15},
	}}
	g.event = &activeEvent{kind: EventDilemma, dilemma: tmpl, options: numberOptions("blessed")}
	res = g.Step(option1)
	if g.stats.Runway() != 85 {
		t.Errorf("runway = %f on the blessed path, want 85", g.stats.Runway())
	}
	if !hasCue(res.Cues, core.CueWin) {
		t.Error("good roll should emit the win cue")
	}
}

func TestLotteryKeepBuilding(t *testing.T) {
	g := newTestRun(42)
	g.mode = ModeEvent
	g.event = &activeEvent{kind: EventLottery, options: numberOptions(lotteryOptions...)}

	f := core.NewInputFrame()
	f.Set(core.ActionOption2)
	g.Step(f)

	if g.stats.Runway() != 95 {
		t.Errorf("runway = %f after building instead, want 95", g.stats.Runway())
	}
	if g.stats.Traction() != 10 {
		t.Errorf("traction = %f after building instead, want 10", g.stats.Traction())
	}
	if g.resultText != lotteryBuildText {
		t.Errorf("result = %q, want the keep-building text", g.resultText)
	}
}

func TestQuizVerdicts(t *testing.T) {
	g := newTestRun(42)
	g.stats.runway = 50
	g.mode = ModeEvent
	item := config.QuizItem{Name: "A actual hot dog", HotDog: true, Verdict: "Hot dog."}
	g.event = &activeEvent{kind: EventQuiz, quiz: item, options: numberOptions(quizOptions...)}

	f := core.NewInputFrame()
	f.Set(core.ActionOption1)
	res := g.Step(f)

	if r := g.stats.Runway(); r < 58 || r > 65 {
		t.Errorf("runway = %f after a correct call, want 58-65", r)
	}
	if g.stats.Traction() != 5 {
		t.Errorf("traction = %f after a correct call, want 5", g.stats.Traction())
	}
	if !hasCue(res.Cues, core.CueWin) {
		t.Error("correct call should emit the win cue")
	}
	if !strings.Contains(g.resultText, "CORRECT") {
		t.Errorf("result %q should celebrate", g.resultText)
	}

	g = newTestRun(42)
	g.mode = ModeEvent
	g.event = &activeEvent{kind: EventQuiz, quiz: item, options: numberOptions(quizOptions...)}
	f.Clear()
	f.Set(core.ActionOption2)
	res = g.Step(f)

	if g.stats.Runway() != 95 {
		t.Errorf("runway = %f after a wrong call, want 95", g.stats.Runway())
	}
	if g.stats.Traction() != 0 {
		t.Errorf("traction = %f after a wrong call, want 0 (floored)", g.stats.Traction())
	}
	if !hasCue(res.Cues, core.CueDamage) {
		t.Error("wrong call should emit the damage cue")
	}
}

func TestPactFlatAndDecline(t *testing.T) {
	g := newTestRun(42)
	g.stats.runway = 50
	g.mode = ModeEvent
	tmpl := &pactTemplates[0]
	labels := make([]string, len(tmpl.choices))
	for i, c := range tmpl.choices {
		labels[i] = c.text
	}
	g.event = &activeEvent{kind: EventPact, pact: tmpl, options: numberOptions(labels...)}

	f := core.NewInputFrame()
	f.Set(core.ActionOption1)
	res := g.Step(f)

	if g.stats.Equity() != 85 {
		t.Errorf("equity = %f after the blood pact, want 85", g.stats.Equity())
	}
	if g.stats.Runway() != 75 {
		t.Errorf("runway = %f after the blood pact, want 75", g.stats.Runway())
	}
	if !hasCue(res.Cues, core.CueWin) {
		t.Error("a paying pact should emit the win cue")
	}
	if !strings.Contains(g.resultText, "Gilfoyle: ") {
		t.Errorf("result %q should carry Gilfoyle's line", g.resultText)
	}
	if g.resultTicks != 300 {
		t.Errorf("result holds %d ticks, want 300", g.resultTicks)
	}

	g = newTestRun(42)
	g.mode = ModeEvent
	g.event = &activeEvent{kind: EventPact, pact: tmpl, options: numberOptions(labels...)}
	f.Clear()
	f.Set(core.ActionOption3)
	res = g.Step(f)

	if g.stats.Traction() != 5 {
		t.Errorf("traction = %f after declining, want 5", g.stats.Traction())
	}
	if g.stats.Runway() != 100 || g.stats.Equity() != 100 {
		t.Errorf("declining should leave runway/equity alone, got %f/%f", g.stats.Runway(), g.stats.Equity())
	}
	if hasCue(res.Cues, core.CueWin) || hasCue(res.Cues, core.CueDamage) {
		t.Error("declining with no runway swing should emit neither cue")
	}
}

func TestPactGambleOutcomes(t *testing.T) {
	g := newTestRun(12345)
	g.stats.runway = 50
	g.mode = ModeEvent
	tmpl := &pactTemplates[0]
	labels := make([]string, len(tmpl.choices))
	for i, c := range tmpl.choices {
		labels[i] = c.text
	}
	g.event = &activeEvent{kind: EventPact, pact: tmpl, options: numberOptions(labels...)}

	f := core.NewInputFrame()
	f.Set(core.ActionOption2)
	g.Step(f)

	if g.stats.Equity() != 90 {
		t.Errorf("equity = %f after the soul lease, want 90", g.stats.Equity())
	}
	r := g.stats.Runway()
	if r != 85 && r != 50 {
		t.Errorf("runway = %f after the gamble, want 85 (lucky) or 50 (cursed)", r)
	}
	if !strings.Contains(g.resultText, "Gilfoyle: ") {
		t.Errorf("result %q should carry Gilfoyle's line", g.resultText)
	}
}

func TestTweetTimeout(t *testing.T) {
	g := newTestRun(42)
	g.mode = ModeEvent
	g.event = &activeEvent{
		kind:         EventTweet,
		options:      numberOptions("a", "b", "c"),
		tweetCorrect: 0,
		tweetMangled: "distrubt the paradogm",
		tweetTimer:   3,
	}

	empty := core.NewInputFrame()
	g.Step(empty)
	g.Step(empty)
	if g.mode != ModeEvent {
		t.Fatalf("mode = %s with time still on the clock, want EVENT", g.mode)
	}
	res := g.Step(empty)

	if g.mode != ModeTrail {
		t.Fatalf("mode = %s after the deadline, want TRAIL", g.mode)
	}
	if g.stats.Runway() != 92 {
		t.Errorf("runway = %f after the deadline, want 92", g.stats.Runway())
	}
	if !strings.Contains(g.resultText, "TIME'S UP") {
		t.Errorf("result %q should call the deadline", g.resultText)
	}
	if !hasCue(res.Cues, core.CueDamage) {
		t.Error("deadline should emit the damage cue")
	}
}

func TestTweetWrongPick(t *testing.T) {
	g := newTestRun(42)
	g.mode = ModeEvent
	g.event = &activeEvent{
		kind:         EventTweet,
		options:      numberOptions("a", "b", "c"),
		tweetCorrect: 0,
		tweetMangled: "m",
		tweetTimer:   1000,
	}

	f := core.NewInputFrame()
	f.Set(core.ActionOption2)
	res := g.Step(f)

	if g.stats.Runway() != 95 {
		t.Errorf("runway = %f after the wrong tweet, want 95", g.stats.Runway())
	}
	if !hasCue(res.Cues, core.CueDamage) {
		t.Error("wrong tweet should emit the damage cue")
	}
}

func TestTweetCorrectPick(t *testing.T) {
	g := newTestRun(42)
	g.stats.runway = 50
	g.mode = ModeEvent
	g.event = &activeEvent{
		kind:         EventTweet,
		options:      numberOptions("a", "b", "c"),
		tweetCorrect: 1,
		tweetMangled: "m",
		tweetTimer:   1000,
	}

	f := core.NewInputFrame()
	f.Set(core.ActionOption2)
	g.Step(f)

	// The right pick still rolls a 30% auto-correct.
	r, tr := g.stats.Runway(), g.stats.Traction()
	clean := r == 55 && tr == 20
	mangled := r == 45 && tr == 5
	if !clean && !mangled {
		t.Errorf("runway/traction = %f/%f, want 55/20 (clean) or 45/5 (auto-corrected)", r, tr)
	}
}

func TestRantBranches(t *testing.T) {
	g := newTestRun(42)
	g.mode = ModeEvent
	tmpl := &rantTemplates[0]
	g.event = &activeEvent{kind: EventRant, rant: tmpl, options: numberOptions(rantOptions...)}

	f := core.NewInputFrame()
	f.Set(core.ActionOption1)
	res := g.Step(f)

	if g.stats.Traction() != 8 {
		t.Errorf("traction = %f after sitting through it, want 8", g.stats.Traction())
	}
	if g.stats.Runway() != 95 {
		t.Errorf("runway = %f after sitting through it, want 95", g.stats.Runway())
	}
	if !strings.Contains(g.resultText, tmpl.exitLine) {
		t.Errorf("result %q should end on Erlich's exit line", g.resultText)
	}
	if !hasCue(res.Cues, core.CueWin) {
		t.Error("sitting through the rant should emit the win cue")
	}

	g = newTestRun(42)
	g.mode = ModeEvent
	g.event = &activeEvent{kind: EventRant, rant: tmpl, options: numberOptions(rantOptions...)}
	f.Clear()
	f.Set(core.ActionOption2)
	res = g.Step(f)

	if g.stats.Equity() != 97 {
		t.Errorf("equity = %f after cutting him off, want 97", g.stats.Equity())
	}
	if g.stats.Runway() != 100 {
		t.Errorf("runway = %f after cutting him off, want 100 (capped)", g.stats.Runway())
	}
	if !hasCue(res.Cues, core.CueDamage) {
		t.Error("cutting him off should emit the damage cue")
	}
}

func TestWindfallAutoResolves(t *testing.T) {
	g := newTestRun(12345)
	g.stats.runway = 50
	g.stats.equity = 50

	g.triggerWindfall()

	if g.mode != ModeTrail {
		t.Fatalf("mode = %s after a windfall, want TRAIL (no menu)", g.mode)
	}
	if g.resultTicks != 180 {
		t.Errorf("result holds %d ticks, want 180", g.resultTicks)
	}
	if !strings.HasPrefix(g.resultText, "🎉") {
		t.Errorf("result %q should read as good news", g.resultText)
	}
	if !hasCue(g.cues, core.CuePowerup) {
		t.Error("windfall should emit the powerup cue")
	}
}

func TestEventIgnoresOutOfRangeChoice(t *testing.T) {
	g := newTestRun(42)
	g.mode = ModeEvent
	item := config.QuizItem{Name: "x", HotDog: true, Verdict: "Hot dog."}
	g.event = &activeEvent{kind: EventQuiz, quiz: item, options: numberOptions(quizOptions...)}

	f := core.NewInputFrame()
	f.Set(core.ActionOption5)
	g.Step(f)

	if g.mode != ModeEvent {
		t.Fatalf("mode = %s after an out-of-range digit, want EVENT still waiting", g.mode)
	}
	if g.stats.Runway() != 100 || g.stats.Traction() != 0 {
		t.Error("out-of-range digit should not move any stat")
	}

	f.Clear()
	f.Set(core.ActionOption2)
	g.Step(f)
	if g.mode != ModeTrail {
		t.Errorf("mode = %s after a valid digit, want TRAIL", g.mode)
	}
}
