package trail

import "github.com/HC-Build/Hustle-Trail/internal/core"

// bonusKind is the flavor of the arcade break that closes a finished
// trail. The break is abstract: points on a cooldown, a hazard that
// chips equity, and a payout when the clock runs out.
type bonusKind int

const (
	bonusBlitz bonusKind = iota
	bonusHop
	bonusDodge
)

// bonusNames titles the break per kind.
var bonusNames = [3]string{
	bonusBlitz: "SHOOT THE REJECTIONS!",
	bonusHop:   "PLATFORM PIVOT!",
	bonusDodge: "DODGE THE COMPETITION!",
}

// bonusCadence sets how fast points come and how mean the hazard is.
type bonusCadence struct {
	points   int
	cooldown int
	hazard   float64
	cost     float64
}

var bonusCadences = [3]bonusCadence{
	bonusBlitz: {points: 5, cooldown: 30, hazard: 0.002, cost: 2},
	bonusHop:   {points: 4, cooldown: 20, hazard: 0.003, cost: 2},
	bonusDodge: {points: 3, cooldown: 15, hazard: 0.004, cost: 1},
}

// bonusRound is the live state of the arcade break.
type bonusRound struct {
	kind      bonusKind
	ticksLeft int
	score     int
	maxScore  int
	cooldown  int
}

// startBonus rolls the break that closes a finished trail.
func (g *Game) startBonus() {
	lo, hi := g.cfg.Breaks.MinSeconds, g.cfg.Breaks.MaxSeconds
	if hi < lo {
		hi = lo
	}
	secs := lo + g.rng.Intn(hi-lo+1)
	g.bonus = bonusRound{
		kind:      bonusKind(g.rng.Intn(len(bonusNames))),
		ticksLeft: secs * g.tickRate,
		maxScore:  g.cfg.Breaks.MaxScore,
	}
	g.mode = ModeBonus
	g.emit(core.CueEvent)
	g.logf("🎮 FINAL BONUS: %s", bonusNames[g.bonus.kind])
}

// stepBonus is one tick of the arcade break.
func (g *Game) stepBonus(input core.InputFrame) {
	b := &g.bonus
	b.ticksLeft--
	if b.cooldown > 0 {
		b.cooldown--
	}

	cad := bonusCadences[b.kind]
	if input.Has(core.ActionPrimary) && b.cooldown == 0 && b.score < b.maxScore {
		b.score += cad.points
		if b.score > b.maxScore {
			b.score = b.maxScore
		}
		b.cooldown = cad.cooldown
		g.emit(core.CueScore)
	}

	if g.rng.Float64() < cad.hazard {
		g.stats.AddEquity(-cad.cost)
		g.emit(core.CueDamage)
	}

	if b.ticksLeft <= 0 || g.stats.Equity() <= 0 {
		g.endBonus()
	}
}

// endBonus banks the payout and rolls straight into the win. The run
// cannot die here: arrival already happened.
func (g *Game) endBonus() {
	b := &g.bonus

	runwayBonus := 20 + b.score*5
	if runwayBonus > 100 {
		runwayBonus = 100
	}
	if float64(b.score) >= float64(b.maxScore)*0.7 {
		highTier := 50 + g.rng.Intn(31)
		runwayBonus += highTier
		g.logf("🏆 HIGH SCORE TIER! +%d bonus runway!", highTier)
	}
	if runwayBonus > 150 {
		runwayBonus = 150
	}
	g.stats.AddRunway(float64(runwayBonus))
	g.stats.AddTraction(float64(b.score * 2))
	g.stats.AddEquity(10)

	if float64(b.score) >= float64(b.maxScore)*0.5 &&
		len(deadIndices(g.party)) > 0 && g.rng.Float64() < 0.3 {
		if name, ok := reviveRandomFounder(g.rng, g.party); ok {
			g.logf("🎉 %s rejoined the team!", name)
		}
	}

	g.logf("🎮 Bonus complete! +%d runway, +%d traction", runwayBonus, b.score*2)
	g.won = true
	g.mode = ModeWin
	g.emit(core.CueWin)
}
