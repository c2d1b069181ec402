package trail

// dilemmaChoice is one way through a dilemma. The base runway applies
// outright. Then a worse roll (percent chance) may fire; if it does not,
// a good roll may pay a bonus on the choices that carry one.
type dilemmaChoice struct {
	text        string
	rating      string
	baseRunway  float64
	worseChance int // percent
	worseExtra  float64
	worseEffect string
	goodChance  int // percent
	goodExtra   float64
}

// risky reports whether a bad roll can also cost a co-founder.
func (c dilemmaChoice) risky() bool {
	return c.rating == "Risky" || c.rating == "Aggressive"
}

// dilemmaTemplate is a multi-way founder dilemma.
type dilemmaTemplate struct {
	text    string
	choices []dilemmaChoice
}

var dilemmaTemplates = []dilemmaTemplate{
	{
		text: "Runway 2 months -- Bahn: 'Dodgy ARR won't save you.'",
		choices: []dilemmaChoice{
			{text: "Lay off 50% (Safe)", rating: "Safe", baseRunway: 10, worseChance: 20, worseExtra: -15, worseEffect: "Co-founder to Bali quit"},
			{text: "Shutdown (Balanced)", rating: "Balanced", baseRunway: -20, worseChance: 30, worseExtra: -10, worseEffect: "Full team scatter"},
			{text: "Down round (Risky)", rating: "Risky", baseRunway: -30, worseChance: 50, worseExtra: -20, worseEffect: "Heavy dilution roast"},
			{text: "Pivot AI (Aggressive)", rating: "Aggressive", baseRunway: -40, worseChance: 40, worseExtra: -20, worseEffect: "Hype crash", goodChance: 30, goodExtra: 50},
		},
	},
	{
		text: "CTO drama -- Gilfoyle: 'Hell anyway.'",
		choices: []dilemmaChoice{
			{text: "Fire CTO (Safe)", rating: "Safe", baseRunway: 5, worseChance: 20, worseExtra: -15, worseEffect: "Morale dip"},
			{text: "Keep CTO (Balanced)", rating: "Balanced", baseRunway: -10, worseChance: 30, worseExtra: -10, worseEffect: "Ongoing drag"},
			{text: "Demote CTO (Risky)", rating: "Risky", baseRunway: -20, worseChance: 40, worseExtra: -20, worseEffect: "Plumber gig quit"},
			{text: "Erlich mediate (Aggressive)", rating: "Aggressive", baseRunway: -15, worseChance: 30, worseExtra: -20, worseEffect: "Aviato rant waste", goodChance: 30, goodExtra: 30},
		},
	},
	{
		text: "VC terms suck -- Bahn: 'What does this company do?'",
		choices: []dilemmaChoice{
			{text: "Accept terms (Safe)", rating: "Safe", baseRunway: 15, worseChance: 20, worseExtra: -20, worseEffect: "Dilution hit"},
			{text: "Reject offer (Balanced)", rating: "Balanced", baseRunway: -15, worseChance: 30, worseExtra: -10, worseEffect: "Search longer"},
			{text: "Negotiate (Risky)", rating: "Risky", baseRunway: -25, worseChance: 50, worseExtra: -20, worseEffect: "Ghosted log off"},
			{text: "Counter YOLO (Aggressive)", rating: "Aggressive", baseRunway: -35, worseChance: 40, worseExtra: -20, worseEffect: "Karma loss", goodChance: 40, goodExtra: 45},
		},
	},
	{
		text: "PMF not clicking -- Richard: 'Not natural when good.'",
		choices: []dilemmaChoice{
			{text: "Pivot (Safe)", rating: "Safe", baseRunway: 10, worseChance: 20, worseExtra: -15, worseEffect: "Traction reset"},
			{text: "Persevere (Balanced)", rating: "Balanced", baseRunway: -10, worseChance: 30, worseExtra: -10, worseEffect: "Burn continues"},
			{text: "Fake metrics (Risky)", rating: "Risky", baseRunway: -20, worseChance: 50, worseExtra: -30, worseEffect: "Bahn roast crash"},
			{text: "Seek advice (Aggressive)", rating: "Aggressive", baseRunway: -25, worseChance: 30, worseExtra: -20, worseEffect: "Jian-Yang Octopus confusion", goodChance: 30, goodExtra: 40},
		},
	},
	{
		text: "Market down -- Erlich: 'Crazy person walk away?'",
		choices: []dilemmaChoice{
			{text: "Down round (Safe)", rating: "Safe", baseRunway: 10, worseChance: 20, worseExtra: -25, worseEffect: "Equity ego hit"},
			{text: "Bridge loan (Balanced)", rating: "Balanced", baseRunway: -15, worseChance: 30, worseExtra: -15, worseEffect: "Debt crush"},
			{text: "Cut costs (Risky)", rating: "Risky", baseRunway: -20, worseChance: 40, worseExtra: -20, worseEffect: "Layoff morale"},
			{text: "Wait it out (Passive)", rating: "Passive", baseRunway: -20, worseChance: 20, worseExtra: -10, worseEffect: "Stall risk"},
		},
	},
	{
		text: "Co-founder wants out -- Jian-Yang: 'Not my baby.'",
		choices: []dilemmaChoice{
			{text: "Let go (Safe)", rating: "Safe", baseRunway: 5, worseChance: 20, worseExtra: -20, worseEffect: "Co-founder loss"},
			{text: "Buy out (Balanced)", rating: "Balanced", baseRunway: -20, worseChance: 30, worseExtra: -10, worseEffect: "Cash drain"},
			{text: "Convince stay (Risky)", rating: "Risky", baseRunway: -15, worseChance: 40, worseExtra: -20, worseEffect: "Drama explosion"},
			{text: "Ignore (Aggressive)", rating: "Aggressive", baseRunway: -30, worseChance: 30, worseExtra: -20, worseEffect: "Gilfoyle shrug fail", goodChance: 30, goodExtra: 20},
		},
	},
	{
		text: "Media hype fades -- Erlich: 'Aviato forever!'",
		choices: []dilemmaChoice{
			{text: "Double marketing (Safe)", rating: "Safe", baseRunway: -10, worseChance: 20, worseExtra: -10, worseEffect: "Traction fade"},
			{text: "Cut hype (Balanced)", rating: "Balanced", baseRunway: -10, worseChance: 30, worseExtra: -10, worseEffect: "Visibility drop"},
			{text: "New feature rush (Risky)", rating: "Risky", baseRunway: -25, worseChance: 50, worseExtra: -20, worseEffect: "Bug crash"},
			{text: "Blame market (Aggressive)", rating: "Aggressive", baseRunway: -20, worseChance: 30, worseExtra: -20, worseEffect: "Karma loss", goodChance: 30, goodExtra: 30},
		},
	},
	{
		text: "Bad vendor contract -- Bahn ghosting.",
		choices: []dilemmaChoice{
			{text: "Pay more (Safe)", rating: "Safe", baseRunway: -5, worseChance: 20, worseExtra: -10, worseEffect: "Ongoing cost"},
			{text: "Switch vendor (Balanced)", rating: "Balanced", baseRunway: -15, worseChance: 30, worseExtra: -15, worseEffect: "Downtime"},
			{text: "Sue vendor (Risky)", rating: "Risky", baseRunway: -30, worseChance: 50, worseExtra: -20, worseEffect: "Legal drain"},
			{text: "Hack around (Aggressive)", rating: "Aggressive", baseRunway: -25, worseChance: 40, worseExtra: -20, worseEffect: "Gilfoyle hell", goodChance: 30, goodExtra: 30},
		},
	},
	{
		text: "Big pitch tomorrow -- Richard: 'Tabernacle!'",
		choices: []dilemmaChoice{
			{text: "Wing it (Safe)", rating: "Safe", baseRunway: 5, worseChance: 20, worseExtra: -15, worseEffect: "Awkward fail"},
			{text: "Overprep (Balanced)", rating: "Balanced", baseRunway: -10, worseChance: 30, worseExtra: -10, worseEffect: "Burnout"},
			{text: "Cancel pitch (Risky)", rating: "Risky", baseRunway: -20, worseChance: 40, worseExtra: -20, worseEffect: "Opportunity loss"},
			{text: "Thirst trap post (Aggressive)", rating: "Aggressive", baseRunway: -15, worseChance: 30, worseExtra: -20, worseEffect: "Bahn troll", goodChance: 30, goodExtra: 30},
		},
	},
	{
		text: "Bank wobbles -- Dinesh panic.",
		choices: []dilemmaChoice{
			{text: "Move banks (Safe)", rating: "Safe", baseRunway: -10, worseChance: 20, worseExtra: -10, worseEffect: "Fees"},
			{text: "Withdraw all (Balanced)", rating: "Balanced", baseRunway: -15, worseChance: 30, worseExtra: -15, worseEffect: "Panic tax"},
			{text: "Wait it out (Risky)", rating: "Risky", baseRunway: -25, worseChance: 50, worseExtra: -20, worseEffect: "Possible loss"},
			{text: "Diversify late (Aggressive)", rating: "Aggressive", baseRunway: -20, worseChance: 30, worseExtra: -20, worseEffect: "Too slow", goodChance: 30, goodExtra: 20},
		},
	},
	{
		text: "MVP launch bombs -- network melts under load.",
		choices: []dilemmaChoice{
			{text: "Hotfix quick (Safe)", rating: "Safe", baseRunway: 10, worseChance: 20, worseExtra: -15, worseEffect: "Traction dip"},
			{text: "Ignore feedback (Balanced)", rating: "Balanced", baseRunway: -10, worseChance: 30, worseExtra: -10, worseEffect: "Churn rise"},
			{text: "Full rewrite (Risky)", rating: "Risky", baseRunway: -30, worseChance: 50, worseExtra: -20, worseEffect: "Delay crash"},
			{text: "Blame users (Aggressive)", rating: "Aggressive", baseRunway: -20, worseChance: 30, worseExtra: -20, worseEffect: "Backlash", goodChance: 30, goodExtra: 30},
		},
	},
	{
		text: "Copycat competitor launches -- Erlich crazy person.",
		choices: []dilemmaChoice{
			{text: "Sue them (Safe)", rating: "Safe", baseRunway: -5, worseChance: 20, worseExtra: -15, worseEffect: "Legal slow"},
			{text: "Differentiate (Balanced)", rating: "Balanced", baseRunway: -15, worseChance: 30, worseExtra: -10, worseEffect: "Feature rush"},
			{text: "Copy back (Risky)", rating: "Risky", baseRunway: -25, worseChance: 50, worseExtra: -20, worseEffect: "Ethics roast"},
			{text: "Partner with them (Aggressive)", rating: "Aggressive", baseRunway: -30, worseChance: 40, worseExtra: -20, worseEffect: "Betrayal risk", goodChance: 30, goodExtra: 40},
		},
	},
}
