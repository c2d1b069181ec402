package core

// Cue identifies a sound moment emitted by a game tick. Games attach cues to
// StepResult; how (and whether) a cue becomes audible is up to the platform.
type Cue int

const (
	CueNone     Cue = iota
	CueEvent        // a random event fired
	CueDecision     // a choice menu opened or a decision landed
	CueDamage       // resources took a hit
	CuePowerup      // a windfall or bonus reward
	CueRemedy       // a recovery action was applied
	CueScore        // points scored during a hustle break
	CueWin          // the run ended in victory
	CueLose         // the run ended in failure
)

// String returns the cue's identifier, usable as a log field.
func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CueEvent:
		return "event"
	case CueDecision:
		return "decision"
	case CueDamage:
		return "damage"
	case CuePowerup:
		return "powerup"
	case CueRemedy:
		return "remedy"
	case CueScore:
		return "score"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}
