package trail

import (
	"fmt"
	"strings"

	"github.com/HC-Build/Hustle-Trail/internal/core"
)

// Render draws the run to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.mode {
	case ModeOnboarding:
		g.renderOnboarding(dst)
	case ModeTitle:
		g.renderTitle(dst)
	case ModeWin:
		g.renderWin(dst)
	case ModeLose:
		g.renderLose(dst)
	case ModeBonus:
		g.renderHUD(dst)
		g.renderBonus(dst)
	default:
		g.renderHUD(dst)
		g.renderScene(dst)
		switch {
		case g.mode == ModeEvent:
			g.renderEventBox(dst)
		case g.mode == ModeRecovery:
			g.renderRecoveryBox(dst)
		case g.resultTicks > 0:
			g.renderResultBox(dst)
		}
		g.renderLog(dst)
		g.renderQuote(dst)
	}

	if g.paused {
		g.renderCenteredBox(dst, []string{"PAUSED", "Press P to continue"}, core.ColorYellow)
	}
}

// renderOnboarding is a placeholder frame; the host collects the actual
// form input while NeedsProfile is true.
func (g *Game) renderOnboarding(dst *core.Screen) {
	dst.DrawTextCenteredWithColor(dst.Height()/2-1, "FOUNDER ONBOARDING", core.ColorYellow)
	dst.DrawTextCentered(dst.Height()/2+1, "Answer the questions to found your company")
}

func (g *Game) renderTitle(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCenteredWithColor(h/4, "HUSTLE TRAIL", core.ColorYellow)
	dst.DrawTextCenteredWithColor(h/4+2, "Oregon Trail × Tech Startup × Silicon Valley", core.ColorOrange)
	dst.DrawTextCentered(h/4+4, "0 to 1: Survive the trail. Find your first customer.")
	dst.DrawTextCenteredWithColor(h/4+5, "There are a lot of rules. Good luck figuring them out. :)", core.ColorMagenta)
	if g.profile.Company != "" {
		dst.DrawTextCenteredWithColor(h/4+7, fmt.Sprintf("Welcome back, %s!", g.profile.Company), core.ColorCyan)
	}
	dst.DrawTextCenteredWithColor(h/4+9, "SPACE to start", core.ColorGreen)
}

// renderHUD draws the two status lines and the pace line.
func (g *Game) renderHUD(dst *core.Screen) {
	seg := g.segment().String()
	dist := fmt.Sprintf(" Distance: %d/%d", int(g.stats.Distance()), int(g.stats.Goal()))
	dst.DrawText(0, 0, dist)

	// Progress bar fills the space between distance and segment label.
	barX := len(dist) + 2
	barW := dst.Width() - barX - len(seg) - 3
	if barW > 4 {
		progress := 0.0
		if g.stats.Goal() > 0 {
			progress = g.stats.Distance() / g.stats.Goal()
		}
		filled := int(progress * float64(barW))
		dst.Set(barX, 0, '[')
		for i := 0; i < barW; i++ {
			if i < filled {
				dst.SetWithColor(barX+1+i, 0, '=', core.ColorGreen)
			} else {
				dst.Set(barX+1+i, 0, ' ')
			}
		}
		dst.Set(barX+barW+1, 0, ']')
	}
	dst.DrawTextWithColor(dst.Width()-len(seg)-1, 0, seg, core.ColorYellow)

	runwayColor := core.ColorWhite
	if g.stats.Runway() <= 20 {
		runwayColor = core.ColorRed
	}
	equityColor := core.ColorWhite
	if g.stats.Equity() <= 20 {
		equityColor = core.ColorRed
	}
	mood := ":("
	if g.stats.Equity() >= 90 {
		mood = ":)"
	}
	x := 1
	x = drawStat(dst, x, fmt.Sprintf("Runway: %d%%", int(g.stats.Runway())), runwayColor)
	x = drawStat(dst, x, fmt.Sprintf("Stake: %d%% %s", int(g.stats.Equity()), mood), equityColor)
	x = drawStat(dst, x, fmt.Sprintf("Traction: %d", int(g.stats.Traction())), core.ColorWhite)
	teamColor := core.ColorWhite
	if aliveCount(g.party) <= 1 {
		teamColor = core.ColorRed
	}
	drawStat(dst, x, fmt.Sprintf("Team: %d/%d", aliveCount(g.party), len(g.party)), teamColor)

	pace := paceRow(g.pace, g.cfg.Paces)
	dst.DrawTextWithColor(1, 2, fmt.Sprintf("Pace: %s [Z/X/C to change]", pace.Name), core.ColorOrange)
	dst.DrawHLine(0, 3, dst.Width(), '─')
}

func drawStat(dst *core.Screen, x int, text string, c core.Color) int {
	dst.DrawTextWithColor(x, 1, text, c)
	return x + len([]rune(text)) + 3
}

// renderScene draws the rolling wagon. The wagon creeps across a short
// span so motion reads even at a steady pace.
func (g *Game) renderScene(dst *core.Screen) {
	groundY := dst.Height() - 6
	if groundY < 6 {
		return
	}
	dst.DrawHLine(0, groundY+1, dst.Width(), '─')

	wagonX := 4 + int(g.stats.Distance())%24
	alive := aliveCount(g.party)
	riders := strings.Repeat("o", alive)
	dst.DrawTextWithColor(wagonX+2, groundY-2, riders, core.ColorCyan)
	dst.DrawText(wagonX, groundY-1, "┌──────┐")
	dst.DrawText(wagonX, groundY, "O──────O")

	// Mountains scroll slower than the wagon.
	for i := 0; i < dst.Width()/16+2; i++ {
		mx := i*16 - int(g.stats.Distance()/4)%16
		dst.DrawTextWithColor(mx, groundY-4, "/\\", core.ColorGray)
	}
}

// renderEventBox draws the active event menu.
func (g *Game) renderEventBox(dst *core.Screen) {
	ev := g.event
	lines := []string{fmt.Sprintf("⚡ %s EVENT", strings.ToUpper(ev.kind.String()))}
	lines = append(lines, "")
	lines = append(lines, strings.Split(ev.text, "\n")...)
	lines = append(lines, "")
	lines = append(lines, ev.options...)
	if ev.kind == EventTweet && g.tickRate > 0 {
		lines = append(lines, "", fmt.Sprintf("Secs left: %d", ev.tweetTimer/g.tickRate))
	}
	lines = append(lines, "", fmt.Sprintf("Press 1-%d to choose", len(ev.options)))
	g.renderCenteredBox(dst, lines, core.ColorYellow)
}

// renderRecoveryBox draws the remedy menu, or the rest countdown after
// a remedy was picked.
func (g *Game) renderRecoveryBox(dst *core.Screen) {
	if g.restTicks > 0 {
		g.renderCenteredBox(dst, []string{
			"💔 RESTING",
			"",
			fmt.Sprintf("%s remedy in progress... %d", g.remedy, g.restTicks),
		}, core.ColorMagenta)
		return
	}
	lines := []string{"💔 FIVE REMEDIES", "", remedyPrompt, ""}
	lines = append(lines, numberOptions(remedyOptions...)...)
	g.renderCenteredBox(dst, lines, core.ColorMagenta)
}

// renderResultBox shows the latest outcome while the wagon holds.
func (g *Game) renderResultBox(dst *core.Screen) {
	g.renderCenteredBox(dst, strings.Split(g.resultText, "\n"), core.ColorYellow)
}

func (g *Game) renderBonus(dst *core.Screen) {
	b := &g.bonus
	secs := 0
	if g.tickRate > 0 {
		secs = b.ticksLeft / g.tickRate
	}
	g.renderCenteredBox(dst, []string{
		fmt.Sprintf("🎮 FINAL BONUS: %s", bonusNames[b.kind]),
		"",
		fmt.Sprintf("Score: %d/%d", b.score, b.maxScore),
		fmt.Sprintf("Time left: %ds", secs),
		"",
		"SPACE to score. Watch your equity!",
	}, core.ColorCyan)
}

func (g *Game) renderWin(dst *core.Screen) {
	var team []string
	for _, f := range g.party {
		if f.Alive {
			team = append(team, f.Name)
		}
	}
	g.renderCenteredBox(dst, []string{
		"🎉 FIRST CUSTOMER!",
		"0 → 1 ACHIEVED",
		"",
		fmt.Sprintf("Company: %s", g.profile.Company),
		fmt.Sprintf("Distance: %d miles", int(g.stats.Distance())),
		fmt.Sprintf("Runway: %d%% | Equity: %d%%", int(g.stats.Runway()), int(g.stats.Equity())),
		fmt.Sprintf("Traction: %d", int(g.stats.Traction())),
		fmt.Sprintf("Surviving team (%d/%d): %s", aliveCount(g.party), len(g.party), strings.Join(team, ", ")),
		"",
		"R to play again",
	}, core.ColorGreen)
}

func (g *Game) renderLose(dst *core.Screen) {
	title := "💀 GAME OVER"
	color := core.ColorRed
	if g.secret {
		title = "🏆 SECRET ENDING"
		color = core.ColorGreen
	}
	lines := []string{title, ""}
	lines = append(lines, strings.Split(g.endQuote, "\n")...)
	lines = append(lines, "", fmt.Sprintf("Distance traveled: %d miles", int(g.stats.Distance())), "R to try again")
	g.renderCenteredBox(dst, lines, color)
}

// renderLog shows the last three log lines above the quote bar.
func (g *Game) renderLog(dst *core.Screen) {
	start := 0
	if len(g.logLines) > 3 {
		start = len(g.logLines) - 3
	}
	y := dst.Height() - 4
	for _, msg := range g.logLines[start:] {
		dst.DrawTextWithColor(1, y, clip(msg, dst.Width()-2), core.ColorCyan)
		y++
	}
}

// renderQuote flashes the ambient one-liner at the bottom.
func (g *Game) renderQuote(dst *core.Screen) {
	if g.quote == "" || g.quoteTicks <= 0 {
		return
	}
	dst.DrawTextWithColor(1, dst.Height()-1, clip(g.quote, dst.Width()-2), core.ColorYellow)
}

// renderCenteredBox draws a bordered box around the given lines,
// centered on screen. Lines longer than the screen are clipped.
func (g *Game) renderCenteredBox(dst *core.Screen, lines []string, border core.Color) {
	w, h := dst.Width(), dst.Height()
	maxLen := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > maxLen {
			maxLen = n
		}
	}
	boxW := core.Min(maxLen+4, w)
	boxH := core.Min(len(lines)+2, h)
	x := (w - boxW) / 2
	y := (h - boxH) / 2

	rect := core.NewRect(x, y, boxW, boxH)
	dst.DrawRect(core.NewRect(x+1, y+1, boxW-2, boxH-2), ' ')
	dst.DrawBox(rect)
	// Recolor the border.
	for bx := x; bx < x+boxW; bx++ {
		dst.SetWithColor(bx, y, dst.Get(bx, y), border)
		dst.SetWithColor(bx, y+boxH-1, dst.Get(bx, y+boxH-1), border)
	}
	for by := y; by < y+boxH; by++ {
		dst.SetWithColor(x, by, dst.Get(x, by), border)
		dst.SetWithColor(x+boxW-1, by, dst.Get(x+boxW-1, by), border)
	}

	for i, l := range lines {
		if y+1+i >= y+boxH-1 {
			break
		}
		dst.DrawText(x+2, y+1+i, clip(l, boxW-4))
	}
}
