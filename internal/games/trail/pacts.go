package trail

// pactChoice is one term of a pact. Gambling choices roll 50/50 between
// the good and bad runway outcomes no matter what odds the label claims.
type pactChoice struct {
	text         string
	equityCost   float64
	runway       float64
	tractionGain float64
	gamble       bool
	runwayGood   float64
	runwayBad    float64
	result       string
	resultGood   string
	resultBad    string
}

// pactTemplate is a bargain with a setup, an offer and three terms.
type pactTemplate struct {
	setup   string
	offer   string
	choices []pactChoice
}

var pactTemplates = []pactTemplate{
	{
		setup: "Server room catches fire. Everything's down.\n" +
			"Gilfoyle appears in the smoke, unfazed.\n" +
			"\"Welcome to hell. I've been here a while.\"",
		offer: "Sacrifice equity to the dark lord of uptime?",
		choices: []pactChoice{
			{
				text:       "Blood pact: Trade 15 equity for 25 runway",
				equityCost: 15, runway: 25,
				result: "\"Smart. The singularity will remember you were cooperative.\"",
			},
			{
				text:       "Soul lease: Trade 10 equity, 50/50 for 35 or 0 runway",
				equityCost: 10, gamble: true, runwayGood: 35, runwayBad: 0,
				resultGood: "\"Lucifer smiles upon your deployment.\"",
				resultBad:  "\"The dark lord giveth, the dark lord keepeth. Hell anyway.\"",
			},
			{
				text:         "Decline the pact. Keep your soul.",
				tractionGain: 5,
				result:       "\"Your loss. I'll be in the server room. Praying. To Satan.\"",
			},
		},
	},
	{
		setup: "Database corrupted. 48 hours of data gone.\n" +
			"Gilfoyle, typing furiously:\n" +
			"\"I can fix this. But my services aren't free. Or moral.\"",
		offer: "Let Gilfoyle perform the forbidden git force push?",
		choices: []pactChoice{
			{
				text:       "Force push: -12 equity, +20 runway, restore data",
				equityCost: 12, runway: 20,
				result: "\"Done. Don't look at the commit messages. They're in Latin.\"",
			},
			{
				text:       "Forbidden merge: -8 equity, 60/40 for 30 or -5 runway",
				equityCost: 8, gamble: true, runwayGood: 30, runwayBad: -5,
				resultGood: "\"The merge succeeded. Even I'm surprised.\"",
				resultBad:  "\"Merge conflict. With your soul. And production.\"",
			},
			{
				text:         "Do it the right way. No dark arts.",
				tractionGain: 8,
				result:       "\"Fine. Be ethical. See where that gets you.\" *shrugs*",
			},
		},
	},
	{
		setup: "Competitor launches your exact product. Morale tanked.\n" +
			"Gilfoyle, deadpan: \"They copied us. Want me to\n" +
			"make their servers... have an accident?\"",
		offer: "Unleash Gilfoyle's 'competitive intelligence'?",
		choices: []pactChoice{
			{
				text:       "Deploy the bots: -10 equity, +20 runway, +15 traction",
				equityCost: 10, runway: 20, tractionGain: 15,
				result: "\"Their Glassdoor reviews are now... interesting.\"",
			},
			{
				text:       "Subtle sabotage: -7 equity, 50/50 for +25 or -8 runway",
				equityCost: 7, gamble: true, runwayGood: 25, runwayBad: -8,
				resultGood: "\"Oops. Their DNS just pointed to a cat video. Weird.\"",
				resultBad:  "\"They traced it back. Time to update your LinkedIn.\"",
			},
			{
				text:         "Take the high road. Out-build them.",
				tractionGain: 10,
				result:       "\"Boring. But I respect the stoicism. Barely.\"",
			},
		},
	},
	{
		setup: "3 AM. Pager goes off. Production is on fire.\n" +
			"Gilfoyle hasn't slept in 3 days. Or blinked.\n" +
			"\"I can end this. But there's a cost. There's always a cost.\"",
		offer: "Accept Gilfoyle's 3 AM bargain?",
		choices: []pactChoice{
			{
				text:       "Full ritual: -15 equity, +30 runway",
				equityCost: 15, runway: 30,
				result: "\"Fixed. I added a pentagram to the loading screen. Don't remove it.\"",
			},
			{
				text:       "Half ritual: -5 equity, 40/60 for +20 or -10 runway",
				equityCost: 5, gamble: true, runwayGood: 20, runwayBad: -10,
				resultGood: "\"The half-measure worked. Satan is feeling generous tonight.\"",
				resultBad:  "\"Should've gone full ritual. Now production AND staging are down.\"",
			},
			{
				text:   "Call the on-call engineer instead",
				runway: -3, tractionGain: 5,
				result: "\"The on-call engineer is me. I'm already here. This is my life.\"",
			},
		},
	},
}
