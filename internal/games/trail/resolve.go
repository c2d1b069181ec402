package trail

import (
	"fmt"
	"strings"

	"github.com/HC-Build/Hustle-Trail/internal/config"
	"github.com/HC-Build/Hustle-Trail/internal/core"
)

// triggerEvent rolls the current segment's table and opens the event.
func (g *Game) triggerEvent() {
	kind := pickEvent(g.rng, g.weights[g.segment()])
	switch kind {
	case EventRiver:
		g.triggerRiver()
	case EventBreakdown:
		g.triggerBreakdown()
	case EventSickness:
		g.triggerSickness()
	case EventDecision:
		g.triggerDecision()
	case EventDilemma:
		g.triggerDilemma()
	case EventLottery:
		g.triggerLottery()
	case EventTweet:
		g.triggerTweet()
	case EventWindfall:
		g.triggerWindfall()
	case EventRant:
		g.triggerRant()
	case EventQuiz:
		g.triggerQuiz()
	case EventPact:
		g.triggerPact()
	default:
		panic("trail: unknown event kind")
	}
}

// openEvent switches into the event menu.
func (g *Game) openEvent(ev *activeEvent, cue core.Cue) {
	g.event = ev
	g.mode = ModeEvent
	g.emit(cue)
}

func (g *Game) triggerRiver() {
	name := riverNames[g.rng.Intn(len(riverNames))]
	g.openEvent(&activeEvent{
		kind:    EventRiver,
		text:    fmt.Sprintf("You've reached the %s!", name),
		options: numberOptions(riverOptions...),
	}, core.CueEvent)
	g.logf("🌊 River crossing ahead!")
}

func (g *Game) triggerBreakdown() {
	t := &breakdownTemplates[g.rng.Intn(len(breakdownTemplates))]
	g.openEvent(&activeEvent{
		kind:      EventBreakdown,
		text:      t.text,
		options:   numberOptions(t.safe.label, t.gamble),
		breakdown: t,
	}, core.CueEvent)
	g.logf("⚠️ Breakdown: %s...", clip(t.text, 40))
}

// triggerSickness needs a living victim; with nobody left to burn out
// it degrades to a plain decision.
func (g *Game) triggerSickness() {
	alive := aliveIndices(g.party)
	if len(alive) == 0 {
		g.triggerDecision()
		return
	}
	victim := alive[g.rng.Intn(len(alive))]
	name := g.party[victim].Name
	g.openEvent(&activeEvent{
		kind:    EventSickness,
		text:    fmt.Sprintf(sicknessTexts[g.rng.Intn(len(sicknessTexts))], name),
		options: numberOptions(sicknessOptions...),
		victim:  victim,
	}, core.CueEvent)
	g.logf("😰 %s needs attention!", name)
}

func (g *Game) triggerDecision() {
	t := &decisionTemplates[g.rng.Intn(len(decisionTemplates))]
	g.openEvent(&activeEvent{
		kind:     EventDecision,
		text:     t.text,
		options:  numberOptions(t.options[0].label, t.options[1].label),
		decision: t,
	}, core.CueDecision)
	g.logf("💼 Decision time: %s...", clip(t.text, 30))
}

func (g *Game) triggerDilemma() {
	t := &dilemmaTemplates[g.rng.Intn(len(dilemmaTemplates))]
	labels := make([]string, len(t.choices))
	for i, c := range t.choices {
		labels[i] = fmt.Sprintf("%s [%s]", c.text, c.rating)
	}
	g.openEvent(&activeEvent{
		kind:    EventDilemma,
		text:    t.text,
		options: numberOptions(labels...),
		dilemma: t,
	}, core.CueDecision)
	g.logf("SV DILEMMA: %s...", clip(t.text, 40))
}

func (g *Game) triggerLottery() {
	g.openEvent(&activeEvent{
		kind:    EventLottery,
		text:    lotteryText,
		options: numberOptions(lotteryOptions...),
	}, core.CueEvent)
	g.logf("YC APPLICATION SUBMITTED!")
}

// triggerTweet builds a three-way pick: the intended tweet, its
// auto-correct mangling and a decoy mangling from another prompt.
func (g *Game) triggerTweet() {
	pair := tweetPrompts[g.rng.Intn(len(tweetPrompts))]
	decoy := "lorem ipsum startup"
	var others []tweetPrompt
	for _, p := range tweetPrompts {
		if p.target != pair.target {
			others = append(others, p)
		}
	}
	if len(others) > 0 {
		decoy = others[g.rng.Intn(len(others))].mangled
	}

	choices := []string{pair.target, pair.mangled, decoy}
	g.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	correct := 0
	for i, c := range choices {
		if c == pair.target {
			correct = i
			break
		}
	}

	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = fmt.Sprintf("\"%s\"", c)
	}
	g.openEvent(&activeEvent{
		kind:         EventTweet,
		text:         "TWEET FOR TRACTION!\nWhich tweet is correct?",
		options:      numberOptions(labels...),
		tweetTarget:  pair.target,
		tweetMangled: pair.mangled,
		tweetCorrect: correct,
		tweetTimer:   5 * g.tickRate,
	}, core.CueEvent)
	g.logf("Tweet time! Type fast, founder!")
}

// triggerWindfall is pure good luck and resolves on the spot.
func (g *Game) triggerWindfall() {
	w := windfallTemplates[g.rng.Intn(len(windfallTemplates))]
	w.payoff.apply(&g.stats)
	g.showResult("🎉 "+w.text, 180)
	g.emit(core.CuePowerup)
	g.logf("🎉 Windfall: %s", w.text)
}

func (g *Game) triggerRant() {
	r := &rantTemplates[g.rng.Intn(len(rantTemplates))]
	g.openEvent(&activeEvent{
		kind:    EventRant,
		text:    fmt.Sprintf("%s\n\n\"%s...\"", r.intro, clip(r.rant, 120)),
		options: numberOptions(rantOptions...),
		rant:    r,
	}, core.CueEvent)
	g.logf("ERLICH BACHMANN: %s...", clip(r.intro, 40))
}

func (g *Game) triggerQuiz() {
	if len(g.quiz.Items) == 0 {
		g.quiz = config.DefaultQuizConfig()
	}
	item := g.quiz.Items[g.rng.Intn(len(g.quiz.Items))]
	g.openEvent(&activeEvent{
		kind: EventQuiz,
		text: fmt.Sprintf("Jian-Yang appears on your screen.\n\"I make app. Very good app.\"\n\nHe holds up: %s\n\n\"What is this?\"",
			item.Name),
		options: numberOptions(quizOptions...),
		quiz:    item,
	}, core.CueEvent)
	g.logf("JIAN-YANG: Hot dog or not? (%s)", item.Name)
}

func (g *Game) triggerPact() {
	p := &pactTemplates[g.rng.Intn(len(pactTemplates))]
	labels := make([]string, len(p.choices))
	for i, c := range p.choices {
		labels[i] = c.text
	}
	g.openEvent(&activeEvent{
		kind:    EventPact,
		text:    p.setup + "\n\n" + p.offer,
		options: numberOptions(labels...),
		pact:    p,
	}, core.CueDecision)
	g.logf("GILFOYLE: %s...", clip(p.offer, 40))
}

// resolveEvent routes a menu choice to its resolver. Choices past the
// end of the menu are ignored.
func (g *Game) resolveEvent(choice int) {
	ev := g.event
	if choice > len(ev.options) {
		return
	}
	switch ev.kind {
	case EventRiver:
		g.resolveRiver(choice)
	case EventBreakdown:
		g.resolveBreakdown(choice)
	case EventSickness:
		g.resolveSickness(choice)
	case EventDecision:
		g.resolveDecision(choice)
	case EventDilemma:
		g.resolveDilemma(choice)
	case EventLottery:
		g.resolveLottery(choice)
	case EventTweet:
		g.resolveTweet(choice, false)
	case EventRant:
		g.resolveRant(choice)
	case EventQuiz:
		g.resolveQuiz(choice)
	case EventPact:
		g.resolvePact(choice)
	default:
		panic("trail: unknown event kind")
	}
}

// riverFailureChance is the effective failure chance for a crossing
// choice after profile perks. Never negative.
func riverFailureChance(choice int, p Profile) float64 {
	chance := riverFailChance[choice-1]
	if p.WarmIntro {
		chance -= 0.10
	}
	if p.EliteCollege {
		chance -= 0.05
	}
	if chance < 0 {
		chance = 0
	}
	return chance
}

// resolveRiver rolls the crossing. Perks shave the failure chance; a
// failed crossing can also cost a co-founder, with odds rising by
// segment.
func (g *Game) resolveRiver(choice int) {
	failChance := riverFailureChance(choice, g.profile)

	roll := g.rng.Float64()
	failed := roll < failChance

	var result string
	switch {
	case choice == 4:
		g.stats.AddRunway(-15)
		g.stats.AddTraction(5)
		result = "💰 Paid for ferry. Safe crossing! -15 runway"
	case failed:
		equityLoss := 15 + g.rng.Intn(16)
		runwayLoss := 5 + g.rng.Intn(11)
		g.stats.AddEquity(float64(-equityLoss))
		g.stats.AddRunway(float64(-runwayLoss))
		result = fmt.Sprintf("💀 DISASTER! Lost %d equity, %d runway!", equityLoss, runwayLoss)
		if g.rng.Float64() < g.segmentRisk() {
			if name, ok := loseRandomFounder(g.rng, g.party); ok {
				reason := deathReasons[g.rng.Intn(len(deathReasons))]
				result += fmt.Sprintf("\n💀 %s %s!", name, reason)
				g.emit(core.CueLose)
			}
		}
	default:
		g.stats.AddTraction(10)
		result = "🎉 Crossed successfully! +10 traction"
		if choice == 3 {
			g.stats.AddRunway(-5)
			result += " (-5 runway for waiting)"
		}
	}
	g.finishEvent(result, 240)
}

func (g *Game) resolveBreakdown(choice int) {
	t := g.event.breakdown
	var result string
	if choice == 1 {
		t.safe.payoff.apply(&g.stats)
		result = t.safeText
	} else if g.rng.Float64() < t.failChance {
		t.fail.apply(&g.stats)
		result = t.failText
	} else {
		g.stats.AddTraction(5)
		result = "Quick fix worked! Shipped it."
	}
	g.finishEvent(result, 180)
}

func (g *Game) resolveSickness(choice int) {
	victim := g.event.victim
	name := g.party[victim].Name
	var result string
	switch choice {
	case 1:
		g.stats.AddRunway(-25)
		result = fmt.Sprintf("%s recovered! -25 runway", name)
	case 2:
		if g.rng.Float64() < 0.30 {
			g.party[victim].Alive = false
			reason := deathReasons[g.rng.Intn(len(deathReasons))]
			result = fmt.Sprintf("💀 %s %s!", name, reason)
			g.emit(core.CueLose)
		} else {
			g.stats.AddTraction(5)
			result = "Pushed through! Hustle mentality."
		}
	case 3:
		g.stats.AddRunway(-15)
		g.stats.AddEquity(10)
		result = "Team retreat helped! -15 runway, +10 equity"
	}
	g.finishEvent(result, 180)
}

func (g *Game) resolveDecision(choice int) {
	opt := g.event.decision.options[choice-1]
	opt.payoff.apply(&g.stats)
	g.finishEvent(fmt.Sprintf("Decision made: %s...", clip(opt.label, 50)), 150)
}

// resolveDilemma applies the base runway, then a worse roll and, when
// that misses, a good roll. Bad rolls on risky choices can also cost a
// co-founder.
func (g *Game) resolveDilemma(choice int) {
	c := g.event.dilemma.choices[choice-1]
	g.stats.AddRunway(c.baseRunway)
	parts := []string{fmt.Sprintf("%s: %+d runway", c.text, int(c.baseRunway))}

	worse := g.rng.Intn(100) + 1
	if worse <= c.worseChance {
		g.stats.AddRunway(c.worseExtra)
		parts = append(parts, fmt.Sprintf("BAD LUCK: %s (%+d)", c.worseEffect, int(c.worseExtra)))
		g.emit(core.CueDamage)
		if c.risky() && g.rng.Float64() < 0.2 {
			if name, ok := loseRandomFounder(g.rng, g.party); ok {
				reason := deathReasons[g.rng.Intn(len(deathReasons))]
				parts = append(parts, fmt.Sprintf("%s %s!", name, reason))
				g.emit(core.CueLose)
			}
		}
	} else {
		good := g.rng.Intn(100) + 1
		if good <= c.goodChance {
			g.stats.AddRunway(c.goodExtra)
			parts = append(parts, fmt.Sprintf("JACKPOT! +%d bonus runway!", int(c.goodExtra)))
			g.emit(core.CueWin)
		}
	}

	g.finishEvent(strings.Join(parts, "\n"), 240)
}

func (g *Game) resolveLottery(choice int) {
	var result string
	if choice == 1 {
		roll := g.rng.Intn(100) + 1
		if roll <= 1 {
			g.stats.SetRunway(100)
			g.stats.AddEquity(20)
			g.stats.AddTraction(50)
			result = lotteryJackpotText
			g.emit(core.CueWin)
		} else {
			g.stats.AddRunway(-10)
			result = lotteryRejectQuotes[g.rng.Intn(len(lotteryRejectQuotes))] + "\n-10 runway"
			g.emit(core.CueDamage)
		}
	} else {
		g.stats.AddRunway(-5)
		g.stats.AddTraction(10)
		result = lotteryBuildText
		g.emit(core.CueEvent)
	}
	g.finishEvent(result, 240)
}

// resolveTweet scores the pick, or the deadline. Even the right tweet
// carries a 30% auto-correct risk.
func (g *Game) resolveTweet(choice int, timedOut bool) {
	ev := g.event
	var result string
	switch {
	case timedOut:
		g.stats.AddRunway(-8)
		result = fmt.Sprintf("TIME'S UP! Auto-correct: \"%s\"\nVCs ghosted. -8 runway\nBahn: Skill issue.", ev.tweetMangled)
		g.emit(core.CueDamage)
	case choice-1 == ev.tweetCorrect:
		if g.rng.Float64() < 0.30 {
			g.stats.AddRunway(-5)
			g.stats.AddTraction(5)
			result = fmt.Sprintf("Auto-correct struck! Sent: \"%s\"\nWent viral for wrong reasons. -5 runway, +5 traction", ev.tweetMangled)
			g.emit(core.CueDamage)
		} else {
			g.stats.AddTraction(20)
			g.stats.AddRunway(5)
			result = "Tweet nailed! Viral boost!\n+20 traction, +5 runway"
			g.emit(core.CuePowerup)
		}
	default:
		g.stats.AddRunway(-5)
		result = "Wrong tweet! Sent the mangled version.\nVCs confused. -5 runway"
		g.emit(core.CueDamage)
	}
	g.finishEvent(result, 240)
}

func (g *Game) resolveRant(choice int) {
	r := g.event.rant
	var result string
	switch choice {
	case 1:
		g.stats.AddTraction(8)
		g.stats.AddRunway(-5)
		result = fmt.Sprintf("You sat through the whole thing.\n+8 traction (hype energy), -5 runway (time is money)\nErlich: \"%s\"", r.exitLine)
		g.emit(core.CueWin)
	case 2:
		g.stats.AddEquity(-3)
		g.stats.AddRunway(3)
		result = "You cut him off mid-sentence.\nErlich: \"Did you just... interrupt ME?\"\n-3 equity (burned bridge), +3 runway (time saved)\nHe slams the door. Vape cloud lingers for hours."
		g.emit(core.CueDamage)
	case 3:
		if g.rng.Float64() < 0.5 {
			g.stats.AddRunway(15)
			g.stats.AddTraction(10)
			result = "VIRAL THREAD! Everyone loves dunking on Erlich.\n+15 runway, +10 traction\nErlich: \"No such thing as bad press, baby!\""
			g.emit(core.CueWin)
		} else {
			g.stats.AddRunway(-10)
			g.stats.AddEquity(-5)
			result = "RATIO'D. Erlich's reply went mega-viral instead.\n-10 runway, -5 equity\nErlich: \"You came at the king. You missed.\""
			g.emit(core.CueDamage)
		}
	}
	g.finishEvent(result, 240)
}

func (g *Game) resolveQuiz(choice int) {
	item := g.event.quiz
	correct := (choice == 1 && item.HotDog) || (choice == 2 && !item.HotDog)
	var result string
	if correct {
		gain := 8 + g.rng.Intn(8)
		g.stats.AddRunway(float64(gain))
		g.stats.AddTraction(5)
		result = fmt.Sprintf("Jian-Yang: \"%s\"\nCORRECT! +%d runway, +5 traction\nJian-Yang: \"See? App work. Very good.\"", item.Verdict, gain)
		g.emit(core.CueWin)
	} else {
		g.stats.AddTraction(-10)
		g.stats.AddRunway(-5)
		result = fmt.Sprintf("Jian-Yang: \"%s\"\nWRONG! -5 runway, -10 traction\n%s", item.Verdict, quizFailLines[g.rng.Intn(len(quizFailLines))])
		g.emit(core.CueDamage)
	}
	g.finishEvent(result, 240)
}

// resolvePact applies the equity cost and traction first, then the
// runway, gambled or flat.
func (g *Game) resolvePact(choice int) {
	c := g.event.pact.choices[choice-1]
	var parts []string

	if c.equityCost > 0 {
		g.stats.AddEquity(-c.equityCost)
		parts = append(parts, fmt.Sprintf("-%d equity", int(c.equityCost)))
	}
	if c.tractionGain > 0 {
		g.stats.AddTraction(c.tractionGain)
		parts = append(parts, fmt.Sprintf("+%d traction", int(c.tractionGain)))
	}

	if c.gamble {
		if g.rng.Float64() < 0.5 {
			g.stats.AddRunway(c.runwayGood)
			parts = append(parts, fmt.Sprintf("+%d runway (LUCKY!)", int(c.runwayGood)))
			parts = append(parts, "Gilfoyle: "+c.resultGood)
			g.emit(core.CueWin)
		} else {
			g.stats.AddRunway(c.runwayBad)
			if c.runwayBad != 0 {
				parts = append(parts, fmt.Sprintf("%+d runway (CURSED)", int(c.runwayBad)))
			} else {
				parts = append(parts, "0 runway gained. The void stares back.")
			}
			parts = append(parts, "Gilfoyle: "+c.resultBad)
			g.emit(core.CueDamage)
		}
	} else {
		g.stats.AddRunway(c.runway)
		if c.runway != 0 {
			parts = append(parts, fmt.Sprintf("%+d runway", int(c.runway)))
		}
		parts = append(parts, "Gilfoyle: "+c.result)
		switch {
		case c.runway > 0:
			g.emit(core.CueWin)
		case c.runway < 0:
			g.emit(core.CueDamage)
		}
	}

	g.finishEvent(strings.Join(parts, "\n"), 300)
}

// finishEvent clears the menu, posts the outcome and returns to the
// trail. The first outcome line lands in the run log. Resolutions can
// bankrupt the run, so the terminal check runs here too.
func (g *Game) finishEvent(result string, ticks int) {
	g.showResult(result, ticks)
	g.event = nil
	g.mode = ModeTrail
	g.logf("%s", clip(firstLine(result), 50))
	g.checkTerminal()
}

// numberOptions prefixes menu labels with their choice digit.
func numberOptions(labels ...string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = fmt.Sprintf("%d: %s", i+1, l)
	}
	return out
}

// firstLine returns everything before the first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// clip truncates a string to at most n runes.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
