package trail

// applyRemedy applies the chosen remedy and starts the rest that
// follows it. Stats land right away; the rest only holds the wagon.
func (g *Game) applyRemedy(choice int) {
	g.remedy = remedyNames[choice-1]
	switch choice {
	case 1:
		g.stats.AddEquity(20)
		g.stats.AddTraction(-5)
		g.restTicks = 180
	case 2:
		g.stats.AddEquity(15)
		g.stats.AddRunway(-10)
		g.restTicks = 240
	case 3:
		g.stats.AddEquity(25)
		g.stats.AddTraction(5)
		g.restTicks = 360
	case 4:
		boost := 10 + g.rng.Intn(21)
		g.stats.AddEquity(float64(boost))
		g.restTicks = 120
	case 5:
		g.stats.AddEquity(20)
		g.stats.AddRunway(15)
		g.restTicks = 240
	}
	g.logf("🧘 %s remedy started.", g.remedy)
}
