package trail

// Snapshot captures the run state for determinism testing, replay and
// run records.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Company    string
	Runway     float64
	Equity     float64
	Traction   float64
	Distance   float64
	Segment    string
	Pace       string
	Alive      int
	Event      string // active event kind, empty when none
	EventIn    int
	RestTicks  int
	BonusScore int
	Won        bool
	Secret     bool
}

// Snapshot returns the current run snapshot for determinism checks.
func (g *Game) Snapshot() Snapshot {
	event := ""
	if g.event != nil {
		event = g.event.kind.String()
	}
	return Snapshot{
		Tick:       g.tick,
		Mode:       g.mode.String(),
		Company:    g.profile.Company,
		Runway:     g.stats.Runway(),
		Equity:     g.stats.Equity(),
		Traction:   g.stats.Traction(),
		Distance:   g.stats.Distance(),
		Segment:    g.segment().String(),
		Pace:       paceRow(g.pace, g.cfg.Paces).Name,
		Alive:      aliveCount(g.party),
		Event:      event,
		EventIn:    g.eventIn,
		RestTicks:  g.restTicks,
		BonusScore: g.bonus.score,
		Won:        g.won,
		Secret:     g.secret,
	}
}
