package trail

// Payoff is a structured stat delta. Outcome tables declare payoffs up
// front instead of encoding them in display strings, so resolution never
// parses text.
type Payoff struct {
	Runway   float64
	Equity   float64
	Traction float64
}

// apply adds the payoff to the stats with clamping.
func (p Payoff) apply(s *Stats) {
	s.AddRunway(p.Runway)
	s.AddEquity(p.Equity)
	s.AddTraction(p.Traction)
}
