// Package trail implements Hustle Trail, a startup-satire take on the
// classic westward trail game. The wagon rolls on its own; the player
// sets the pace, answers random events, patches up morale and survives
// to the first customer.
package trail

import (
	"fmt"
	"math/rand"

	"github.com/HC-Build/Hustle-Trail/internal/config"
	"github.com/HC-Build/Hustle-Trail/internal/core"
	"github.com/HC-Build/Hustle-Trail/internal/registry"
)

const (
	logKeep = 5

	// pauseLimit caps how long a pause can hold the run. Hustle waits
	// for no one.
	pauseLimit = 1500
)

// Profile is the founder identity collected during onboarding. The two
// perks shave failure risk off river crossings.
type Profile struct {
	Company      string
	Problem      string
	Solution     string
	WarmIntro    bool // -10% river failure risk
	EliteCollege bool // -5% river failure risk
}

// activeEvent holds the event currently awaiting a player choice.
type activeEvent struct {
	kind    EventKind
	text    string
	options []string

	victim    int // sickness: index into the party
	breakdown *breakdownTemplate
	decision  *decisionTemplate
	dilemma   *dilemmaTemplate
	rant      *rantTemplate
	pact      *pactTemplate
	quiz      config.QuizItem

	tweetTarget  string
	tweetMangled string
	tweetCorrect int // index into options
	tweetTimer   int
}

// Game implements the Hustle Trail run.
type Game struct {
	classic  bool
	rng      *rand.Rand
	tick     uint64
	tickRate int
	cfg      config.TrailConfig
	quiz     config.QuizConfig

	mode  Mode
	stats Stats
	party []Founder
	pace  Pace

	profile    Profile
	hasProfile bool

	// Compiled per-segment selection tables
	weights [3][]weightedEvent

	// Trail state
	eventIn     int // ticks until the next event roll
	quote       string
	quoteTicks  int
	resultText  string
	resultTicks int
	logLines    []string

	event *activeEvent

	// Recovery state
	restTicks int
	remedy    string

	bonus bonusRound

	// Terminal state
	endQuote string
	secret   bool // bootstrap true ending
	won      bool

	screenW     int
	screenH     int
	paused      bool
	pausedTicks int
	cues        []core.Cue
}

// Package-level variables for config/difficulty (like snake pattern)
var (
	configPath       string
	difficultyPreset string
	quizPath         string
	seededProfile    *Profile
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetQuizPath sets a custom quiz pool file.
func SetQuizPath(path string) {
	quizPath = path
}

// SetProfile seeds a saved founder profile so runs skip onboarding.
func SetProfile(p Profile) {
	seededProfile = &p
}

// New creates the full Hustle Trail game.
func New() *Game {
	return &Game{}
}

// NewClassic creates the classic five-event variant.
func NewClassic() *Game {
	return &Game{classic: true}
}

func init() {
	registry.Register("trail", func() registry.Game {
		return New()
	})
	registry.Register("trail_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.classic {
		return "trail_classic"
	}
	return "trail"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.classic {
		return "Hustle Trail (Classic)"
	}
	return "Hustle Trail"
}

// Reset initializes/restarts the run. A profile that was seeded or
// submitted earlier survives the reset, so restarts skip onboarding.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.tickRate = rt.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	cfg, err := g.loadConfig()
	if err != nil {
		if g.classic {
			cfg = config.DefaultClassicConfig()
		} else {
			cfg = config.DefaultTrailConfig()
		}
	}
	if difficultyPreset != "" {
		config.ApplyTrailPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg

	quiz, err := config.LoadQuiz(quizPath)
	if err != nil {
		quiz = config.DefaultQuizConfig()
	}
	g.quiz = quiz

	g.weights = buildSegmentTables(cfg.Events.Weights)
	g.stats = newStats(cfg.Start, cfg.Journey.WinDistance)
	g.party = newParty(g.rng, cfg.Start.TeamSize)
	g.pace = PaceSteady
	g.eventIn = nextEventGap(g.rng, cfg.Events)

	g.event = nil
	g.quote = ""
	g.quoteTicks = 0
	g.resultText = ""
	g.resultTicks = 0
	g.logLines = nil
	g.restTicks = 0
	g.remedy = ""
	g.bonus = bonusRound{}
	g.endQuote = ""
	g.secret = false
	g.won = false
	g.paused = false
	g.pausedTicks = 0
	g.cues = nil

	if seededProfile != nil {
		g.profile = *seededProfile
		g.hasProfile = true
	}
	if g.hasProfile {
		g.mode = ModeTitle
	} else {
		g.mode = ModeOnboarding
	}
}

func (g *Game) loadConfig() (config.TrailConfig, error) {
	if g.classic {
		return config.LoadClassic(configPath)
	}
	return config.LoadTrail(configPath)
}

// NeedsProfile reports whether onboarding must finish before the trail.
func (g *Game) NeedsProfile() bool {
	return g.mode == ModeOnboarding
}

// SubmitProfile installs the founder profile collected during
// onboarding. Taking the bootstrap path skips the trail entirely and
// lands on the secret ending.
func (g *Game) SubmitProfile(p Profile, bootstrap bool) {
	if p.Company == "" {
		p.Company = "Unnamed Startup"
	}
	if p.Problem == "" {
		p.Problem = "Everything is broken"
	}
	if p.Solution == "" {
		p.Solution = "AI-powered solution"
	}
	g.profile = p
	g.hasProfile = true
	if bootstrap {
		g.mode = ModeLose
		g.endQuote = bootstrapEndingQuote
		g.secret = true
		return
	}
	g.beginRun()
}

// beginRun leaves the title screen and starts the wagon rolling.
func (g *Game) beginRun() {
	g.mode = ModeTrail
	g.logf("🚀 %s begins the Hustle Trail!", g.profile.Company)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.cues = nil
	g.tick++

	if input.Has(core.ActionRestart) && (g.mode == ModeWin || g.mode == ModeLose) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return g.stepResult()
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
		g.pausedTicks = 0
	}
	if g.paused {
		g.pausedTicks++
		if g.pausedTicks < pauseLimit {
			return g.stepResult()
		}
		g.paused = false
		g.pausedTicks = 0
	}

	switch g.mode {
	case ModeOnboarding:
		// Waiting for SubmitProfile from the host.
	case ModeTitle:
		if input.Has(core.ActionConfirm) || input.Has(core.ActionPrimary) {
			g.beginRun()
		}
	case ModeTrail:
		g.stepTrail(input)
	case ModeEvent:
		g.stepEvent(input)
	case ModeRecovery:
		g.stepRecovery(input)
	case ModeBonus:
		g.stepBonus(input)
	case ModeWin, ModeLose:
		// Terminal. Restart is handled above.
	default:
		panic("trail: unknown mode")
	}

	return g.stepResult()
}

func (g *Game) stepResult() core.StepResult {
	return core.StepResult{State: g.State(), Cues: g.cues}
}

// stepTrail is one tick of open-trail travel.
func (g *Game) stepTrail(input core.InputFrame) {
	g.handlePace(input)

	// An outcome banner holds the wagon until it clears.
	if g.resultTicks > 0 {
		g.resultTicks--
		if g.resultTicks == 0 {
			g.resultText = ""
		}
		return
	}

	// A run already past a terminal threshold ends here; a remedy can
	// burn the last of the runway during the rest.
	if g.checkTerminal() {
		return
	}

	// Critical equity forces the remedy menu before the wagon rolls
	// another mile.
	if g.stats.Equity() <= g.cfg.Recovery.Threshold {
		g.enterRecovery()
		return
	}

	row := paceRow(g.pace, g.cfg.Paces)
	g.stats.AddDistance(row.Distance)
	g.stats.AddRunway(-row.Drain)

	if g.rng.Float64() < g.cfg.Journey.QuoteChance {
		g.quote = svQuotes[g.rng.Intn(len(svQuotes))]
		g.quoteTicks = g.cfg.Journey.QuoteTicks
	}
	if g.quoteTicks > 0 {
		g.quoteTicks--
		if g.quoteTicks == 0 {
			g.quote = ""
		}
	}

	g.eventIn--
	if g.eventIn <= 0 {
		g.eventIn = nextEventGap(g.rng, g.cfg.Events)
		g.triggerEvent()
		if g.mode != ModeTrail {
			return
		}
	}

	g.checkTerminal()
}

// stepEvent waits for a menu choice. The tweet deadline keeps ticking
// whether or not the player does anything.
func (g *Game) stepEvent(input core.InputFrame) {
	if g.event.kind == EventTweet {
		g.event.tweetTimer--
		if g.event.tweetTimer <= 0 {
			g.resolveTweet(0, true)
			return
		}
	}
	choice := input.Option()
	if choice == 0 {
		return
	}
	g.resolveEvent(choice)
}

// stepRecovery runs the remedy menu, then the rest that follows it.
func (g *Game) stepRecovery(input core.InputFrame) {
	if g.restTicks > 0 {
		g.restTicks--
		if g.restTicks == 0 {
			g.remedy = ""
			g.mode = ModeTrail
		}
		return
	}
	choice := input.Option()
	if choice < 1 || choice > len(remedyOptions) {
		return
	}
	g.applyRemedy(choice)
}

// handlePace applies pace intents. Pace changes are free and instant.
func (g *Game) handlePace(input core.InputFrame) {
	switch {
	case input.Has(core.ActionPaceSteady):
		g.pace = PaceSteady
	case input.Has(core.ActionPaceStrenuous):
		g.pace = PaceStrenuous
	case input.Has(core.ActionPaceGrueling):
		g.pace = PaceGrueling
	}
}

// segment returns the current trail segment. The fixed preset pins it
// to EARLY so practice runs keep flat odds.
func (g *Game) segment() Segment {
	if g.cfg.Journey.FixedSegment {
		return SegmentEarly
	}
	return segmentFor(g.stats.Distance(), g.cfg.Journey)
}

// segmentRisk returns the base failure risk for the current segment.
func (g *Game) segmentRisk() float64 {
	return riskFor(g.segment(), g.cfg.Journey)
}

// checkTerminal ends the run when a resource hits bottom or the goal is
// reached. Losses win ties, checked runway, equity, then team; only
// then does arrival count.
func (g *Game) checkTerminal() bool {
	switch {
	case g.stats.Runway() <= 0:
		g.lose(runwayDeathQuotes[g.rng.Intn(len(runwayDeathQuotes))])
	case g.stats.Equity() <= 0:
		g.lose(equityDeathQuotes[g.rng.Intn(len(equityDeathQuotes))])
	case aliveCount(g.party) == 0:
		g.lose(teamDeathQuote)
	case g.stats.Distance() >= g.stats.Goal():
		g.logf("🎯 Trail complete! Final bonus time!")
		g.startBonus()
	default:
		return false
	}
	return true
}

// lose ends the run with a death quote.
func (g *Game) lose(quote string) {
	g.mode = ModeLose
	g.endQuote = quote
	g.emit(core.CueLose)
}

// enterRecovery opens the remedy menu when equity runs critical.
func (g *Game) enterRecovery() {
	g.mode = ModeRecovery
	g.restTicks = 0
	g.remedy = ""
	g.emit(core.CueRemedy)
	g.logf("💔 Equity low! Time for self-care, founder.")
}

// emit queues a sound cue for this tick's StepResult.
func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
}

// logf appends a line to the scrolling run log.
func (g *Game) logf(format string, args ...any) {
	g.logLines = append(g.logLines, fmt.Sprintf(format, args...))
	if len(g.logLines) > logKeep {
		g.logLines = g.logLines[len(g.logLines)-logKeep:]
	}
}

// showResult posts an outcome banner that holds the trail for a while.
func (g *Game) showResult(text string, ticks int) {
	g.resultText = text
	g.resultTicks = ticks
}

// State returns the current game state. Score is traction, floored.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.stats.Traction()),
		GameOver: g.mode == ModeWin || g.mode == ModeLose,
		Paused:   g.paused,
	}
}
