package trail

// Mode represents the current phase of a run.
type Mode int

const (
	ModeOnboarding Mode = iota
	ModeTitle
	ModeTrail
	ModeEvent
	ModeRecovery
	ModeBonus
	ModeWin
	ModeLose
)

// String returns the mode name for snapshots and logs.
func (m Mode) String() string {
	switch m {
	case ModeOnboarding:
		return "onboarding"
	case ModeTitle:
		return "title"
	case ModeTrail:
		return "trail"
	case ModeEvent:
		return "event"
	case ModeRecovery:
		return "recovery"
	case ModeBonus:
		return "bonus"
	case ModeWin:
		return "win"
	case ModeLose:
		return "lose"
	default:
		panic("trail: unknown mode")
	}
}
