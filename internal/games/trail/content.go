package trail

// Static satire content. Event kinds stay generic; the flavor lives in
// these pools so swapping a line never touches resolution logic.

// founderPool is the co-founder name pool. A new party shuffles it and
// takes the first TeamSize names.
var founderPool = []string{"Jane", "Alex", "Sam", "Taylor", "Jordan", "Riley", "Casey"}

// deathReasons explain why a co-founder left the wagon.
var deathReasons = []string{
	"left to become a plumber in Phoenix",
	"moved to Bali for 'spiritual alignment'",
	"went full stripper at a crypto conference",
	"got poached by a Series D company",
	"had a breakdown and joined a cult",
	"became a TikTok influencer instead",
	"ghosted the team for a solo project",
	"went back to consulting at McKinsey",
	"had an existential crisis about TAM",
	"took a sabbatical that never ended",
}

// svQuotes flash over the trail at random.
var svQuotes = []string{
	"We booked $1000 in the past hour → $9M ARR now! 🚀",
	"What does this company even do? 🤔",
	"Karma can protect you... sometimes.",
	"Wait 10 min, then log off. Ghosted.",
	"I generally don't like to brag, but... my resume is insane.",
	"Your TAM slide is giving delusion.",
	"Hustle Fund passed. Skill issue.",
	"Oculus? Octopus. It is a water animal.",
	"Hot dog. Not hot dog.",
	"You blew it, mister. We could have run this town.",
	"How likely? VERY? SOMEWHAT? NOT AT ALL?!",
	"If oil company wants house, there IS oil beneath house.",
	"We're pre-revenue but post-vibe.",
	"Pivoting to AI because VCs stopped calling back.",
	"Our moat is vibes. Unassailable vibes.",
	"Our middle-out compression just shattered every benchmark.",
	"It's weird. I actually don't know what to do when things are going well. It is not natural.",
	"I just want to build something beautiful. Is that so wrong?",
	"Look, guys, for thousands of years, guys like us have gotten the s*** kicked out of us.",
	"Jobs was a poser. He didn't even write code.",
	"Whoa, it is, like, 500 degrees in here.",
	"We now have 20 grand we would have otherwise lost if I had listened to you delicate little snowflakes and settled.",
	"Tabernacle!",
	"I don't want to live in a world where someone else makes the world a better place better than we do.",
	"The true resonance takes place not inside the ear, but inside the heart.",
	"I believe in a thing called love.",
	"It's not about the money. It's about the money.",
	"I'm not a sociopath, Nelson. I'm autistic.",
	"The less people know about how sausages are made, the better.",
	"I don't have friends. I have people who tolerate me.",
	"I'm making history tonight.",
	"I am not a pirate.",
	"This is the most fun I've had in years.",
	"I think we should call it Pied Piper.",
	"I don't like the way you look at me.",
}

// riverNames label the crossing in the prompt.
var riverNames = []string{
	"Series Seed Chasm", "VC Valley Creek", "Dilution River",
	"Cap Table Canyon", "Fundraise Falls", "Equity Rapids",
}

// riverOptions are the four crossing strategies. Fail chances live in
// riverFailChance, indexed by choice.
var riverOptions = []string{
	"Ford the river (YOLO) - 40% fail risk",
	"Caulk wagon & float - 25% fail risk",
	"Wait for conditions - 10% fail, costs time",
	"Pay for ferry - Safe, -15 runway",
}

// riverFailChance is the base failure probability per crossing choice.
var riverFailChance = [4]float64{0.40, 0.25, 0.10, 0.00}

// eventOption is a labeled payoff shown in an event menu.
type eventOption struct {
	label  string
	payoff Payoff
}

// breakdownTemplate pairs a breakdown prompt with a safe fix and a
// gamble. The gamble fails with the stated chance; success always pays
// +5 traction.
type breakdownTemplate struct {
	text       string
	safe       eventOption
	safeText   string
	gamble     string
	failChance float64
	fail       Payoff
	failText   string
}

var breakdownTemplates = []breakdownTemplate{
	{
		text:       "Codebase has spaghetti. Refactor or ship broken?",
		safe:       eventOption{label: "Refactor (-20 runway, safe)", payoff: Payoff{Runway: -20}},
		safeText:   "Fixed properly. -20 runway, but stable!",
		gamble:     "Ship it (30% -15 equity)",
		failChance: 0.30,
		fail:       Payoff{Equity: -15},
		failText:   "Quick fix failed! -15 equity",
	},
	{
		text:       "Server crashed at 2AM. Fix now or sleep?",
		safe:       eventOption{label: "Fix now (-15 runway)", payoff: Payoff{Runway: -15}},
		safeText:   "Fixed at 2AM. -15 runway, crisis averted.",
		gamble:     "Sleep (25% lose traction)",
		failChance: 0.25,
		fail:       Payoff{Traction: -15},
		failText:   "Slept through an outage. -15 traction",
	},
	{
		text:       "Dependency deprecated. Migrate or hack?",
		safe:       eventOption{label: "Migrate (-25 runway, +10 equity)", payoff: Payoff{Runway: -25, Equity: 10}},
		safeText:   "Migrated cleanly. -25 runway, +10 equity.",
		gamble:     "Hack (40% -20 equity)",
		failChance: 0.40,
		fail:       Payoff{Equity: -20},
		failText:   "Quick fix failed! -20 equity",
	},
	{
		text:       "Investor deck corrupted. Rebuild or wing it?",
		safe:       eventOption{label: "Rebuild (-10 runway)", payoff: Payoff{Runway: -10}},
		safeText:   "Deck rebuilt from scratch. -10 runway.",
		gamble:     "Wing it (35% -25 traction)",
		failChance: 0.35,
		fail:       Payoff{Traction: -25},
		failText:   "Winged it. The room noticed. -25 traction",
	},
}

// decisionTemplate is a two-way startup decision with flat payoffs.
type decisionTemplate struct {
	text    string
	options [2]eventOption
}

var decisionTemplates = []decisionTemplate{
	{
		text: "VC wants board seat for $500K.",
		options: [2]eventOption{
			{label: "Accept (+30 runway, -20 equity)", payoff: Payoff{Runway: 30, Equity: -20}},
			{label: "Counter (-10 runway, +10 traction)", payoff: Payoff{Runway: -10, Traction: 10}},
		},
	},
	{
		text: "Competitor launched same feature!",
		options: [2]eventOption{
			{label: "Pivot fast (-20 runway, +15 traction)", payoff: Payoff{Runway: -20, Traction: 15}},
			{label: "Double down (+10 equity)", payoff: Payoff{Equity: 10}},
		},
	},
	{
		text: "TechCrunch wants interview.",
		options: [2]eventOption{
			{label: "Do it (+20 traction, -10 runway)", payoff: Payoff{Runway: -10, Traction: 20}},
			{label: "Focus on product (+10 equity)", payoff: Payoff{Equity: 10}},
		},
	},
	{
		text: "Engineer wants 4-day work week.",
		options: [2]eventOption{
			{label: "Allow (+15 equity, -10 runway)", payoff: Payoff{Runway: -10, Equity: 15}},
			{label: "Deny (-20 equity, +10 runway)", payoff: Payoff{Runway: 10, Equity: -20}},
		},
	},
	{
		text: "User growth flat. Pivot to AI?",
		options: [2]eventOption{
			{label: "Pivot to AI (-15 equity, +25 traction)", payoff: Payoff{Equity: -15, Traction: 25}},
			{label: "Stay course (+10 equity)", payoff: Payoff{Equity: 10}},
		},
	},
	{
		text: "YC or Hustle Fund?",
		options: [2]eventOption{
			{label: "YC (+20 traction, -15 equity)", payoff: Payoff{Equity: -15, Traction: 20}},
			{label: "Hustle Fund (+15 equity, +10 traction)", payoff: Payoff{Equity: 15, Traction: 10}},
		},
	},
	{
		text: "Thirst trap for engagement?",
		options: [2]eventOption{
			{label: "Post it (+20 traction, -10 equity)", payoff: Payoff{Equity: -10, Traction: 20}},
			{label: "Stay professional (+5 equity)", payoff: Payoff{Equity: 5}},
		},
	},
	{
		text: "$50K OpenAI bill arrived.",
		options: [2]eventOption{
			{label: "Pay it (-30 runway)", payoff: Payoff{Runway: -30}},
			{label: "Build in-house (-15 equity, +10 traction)", payoff: Payoff{Equity: -15, Traction: 10}},
		},
	},
}

// sicknessTexts format the burnout prompt around the victim's name.
var sicknessTexts = []string{
	"%s has startup burnout!",
	"%s is questioning life choices!",
	"%s got a competing offer!",
	"%s is having founder existential crisis!",
}

// sicknessOptions are the three responses. Option 2's departure chance
// and payoffs are fixed in the resolver.
var sicknessOptions = []string{
	"Rest & recover (-25 runway, safe)",
	"Push through (30% they leave)",
	"Team retreat (-15 runway, +10 equity)",
}

// windfallTemplate is pure good luck, applied without a menu.
type windfallTemplate struct {
	text   string
	payoff Payoff
}

var windfallTemplates = []windfallTemplate{
	{text: "Angel investor dropped $25K!", payoff: Payoff{Runway: 25}},
	{text: "Viral tweet! +30 traction!", payoff: Payoff{Traction: 30}},
	{text: "Product Hunt feature!", payoff: Payoff{Runway: 10, Equity: 10, Traction: 15}},
	{text: "Eric Bahn retweeted you!", payoff: Payoff{Equity: 5, Traction: 25}},
	{text: "Customer paid annual upfront!", payoff: Payoff{Runway: 20, Equity: 5, Traction: 10}},
}

// lottery prompt, options and outcomes.
const (
	lotteryText        = "YC app submitted! Results in 3... 2... 1..."
	lotteryJackpotText = "YC ACCEPTED! Full runway refill!\n+20 equity, +50 traction!\nPaul Graham: 'Make something people want.'"
	lotteryBuildText   = "Smart. Kept building. -5 runway, +10 traction."
)

var lotteryOptions = []string{
	"Check inbox (1% JACKPOT, 99% rejection)",
	"Don't look, keep building (-5 runway, +10 traction)",
}

var lotteryRejectQuotes = []string{
	"Rejected. 'Skill issue.' - Eric Bahn",
	"Rejected. 'What does this company even do?'",
	"Rejected. 'We'll pass, keep us updated!' (never)",
	"Rejected. 'Your TAM slide is giving delusion.'",
	"Rejected. 'Hot dog. Not hot dog.' - Jian-Yang",
}

// rantTemplate is an uninvited monologue with three ways out.
type rantTemplate struct {
	intro    string
	rant     string
	exitLine string
}

var rantTemplates = []rantTemplate{
	{
		intro: "Erlich Bachmann storms in, vape cloud trailing...",
		rant: "AVIATO! You know what Aviato is? I'll tell you what Aviato is. " +
			"It's the Rolls Royce of cloud-based travel platforms. " +
			"I built it in THIS GARAGE. All great companies start in garages!",
		exitLine: "You're gonna walk away from that money? Crazy person!",
	},
	{
		intro: "Erlich kicks down the door uninvited...",
		rant: "Let me tell you something. I once turned a $500 investment " +
			"into a $5 MILLION exit. Granted, most of that was luck and a " +
			"judge who didn't understand equity dilution, but STILL.",
		exitLine: "This is my incubator. I decide who disrupts and who doesn't.",
	},
	{
		intro: "Erlich appears with a kimono and a smoothie...",
		rant: "You're thinking too small! Your TAM? GARBAGE. " +
			"My TAM for Aviato was literally everyone who has ever traveled. " +
			"That's 7 billion people. You want to know what 7 billion times $1 is?",
		exitLine: "I've been known to give away a lot of free advice. Here's another: you're welcome.",
	},
	{
		intro: "Erlich commandeers your pitch meeting...",
		rant: "Listen, I've seen a THOUSAND startups. You know what separates " +
			"the unicorns from the deadpool? ME. I am the X factor. " +
			"I am the incubator. I am... Bachmanity.",
		exitLine: "BACHMANITY INSANITY! That's the name. Write it down.",
	},
	{
		intro: "Erlich stumbles out of an Uber Black...",
		rant: "I once pitched Gavin Belson himself. To his FACE. " +
			"He said no. You know what I said? I said Gavin, " +
			"you just passed on the next Google. Then I keyed his Tesla.",
		exitLine: "If you're not pissing someone off, you're not disrupting hard enough.",
	},
	{
		intro: "Erlich emerges from a failed ayahuasca retreat...",
		rant: "I have SEEN things. In the jungle. A vision told me " +
			"to invest in blockchain NFT AI. Then I woke up and realized " +
			"I'd already done that. Twice. And it worked ZERO times.",
		exitLine: "The universe has plans for me. Mostly legal trouble, but PLANS.",
	},
}

var rantOptions = []string{
	"Listen to the whole rant (+8 traction hype, -5 runway wasted)",
	"Interrupt him (-3 equity awkward, +3 runway saved)",
	"Quote-tweet his rant (50/50: +15 viral or -10 roasted)",
}

// tweetPrompt pairs the intended tweet with its auto-correct mangling.
type tweetPrompt struct {
	target  string
	mangled string
}

var tweetPrompts = []tweetPrompt{
	{"pivot to AI", "pirate to AI"},
	{"raise seed round", "raise weed round"},
	{"product market fit", "product market fist"},
	{"disrupt the market", "disrupt the muppet"},
	{"scale to millions", "scale to minions"},
	{"ship the MVP", "ship the MV-Pee"},
	{"close Series A", "close Serious A"},
	{"iterate quickly", "irritate quickly"},
	{"growth hacking", "growth whacking"},
	{"exit strategy", "exit tragedy"},
	{"burn rate is fine", "burn rate is fire"},
	{"10x engineer", "10x endanger"},
}

// quizFailLines accompany a wrong hot dog verdict.
var quizFailLines = []string{
	"Jian-Yang: \"Wrong. You are like Erlich. Stupid.\"",
	"Jian-Yang: \"No. We go to Taco Bell instead.\"",
	"Jian-Yang: \"You fail. Like octopus app.\"",
	"Jian-Yang: \"Wrong answer. I put fish in your server.\"",
	"Jian-Yang: \"Incorrect. Special occasion... for you to leave.\"",
}

var quizOptions = []string{"HOT DOG", "NOT HOT DOG"}

// remedy menu shown when equity runs critical.
const remedyPrompt = "⚠️ EQUITY CRITICAL! Choose a remedy:"

var remedyNames = []string{"Pleasure", "Tears", "Contemplating Truth", "Friends", "Bath & Nap"}

var remedyOptions = []string{
	"Pleasure (+equity, -traction) - Touch grass, founder",
	"Tears (+equity, -runway) - Let it out, it's okay",
	"Contemplating Truth (+equity, +traction, longer) - Jian-Yang wisdom",
	"Friends (+equity, random boost) - Call your cofounder",
	"Bath & Nap (+equity, +runway) - Self-care is founder-care",
}

// end-of-run quotes, picked per terminal cause.
var runwayDeathQuotes = []string{
	"Out of runway. Out of luck.\nEric Bahn: Hustle Fund passed. Skill issue.",
	"Burned through it all.\nJian-Yang: You blew it, mister.",
	"The money's gone.\nVC: Let me intro you to my partner. JK passing.",
}

var equityDeathQuotes = []string{
	"Diluted to zero.\nYou own nothing. Congrats, employee #47.",
	"Equity evaporated.\nWired Founder: HOW LIKELY to succeed? NOT AT ALL!",
}

const teamDeathQuote = "All co-founders gone.\nSolo founder life isn't for everyone.\nJian-Yang: I am your mom. You are not my baby startup."

const bootstrapEndingQuote = "You bootstrapped quietly.\n" +
	"Hit $9M ARR in 18 months. Zero dilution.\n" +
	"No one knows your name. You retired to Phoenix.\n" +
	"\nTRUE ENDING: Quiet Wealth\n" +
	"Eric Bahn: Skill issue? Nah... respect."
