package system

// Intent is something the character did during a tick.
// CharacterSystem returns them so scenes can log, record, or play feedback.
type Intent interface {
	isIntent()
}

// JumpIntent reports a jump impulse
type JumpIntent struct {
	Impulse float64
}

func (JumpIntent) isIntent() {}

// JumpReleaseIntent reports the jump input being let go
type JumpReleaseIntent struct{}

func (JumpReleaseIntent) isIntent() {}

// DashIntent reports a dash starting
type DashIntent struct {
	Direction int // -1 for left, 1 for right
}

func (DashIntent) isIntent() {}

// DashEndIntent reports a dash running out
type DashEndIntent struct{}

func (DashEndIntent) isIntent() {}

// LandIntent reports the ground probe starting to hit
type LandIntent struct{}

func (LandIntent) isIntent() {}

// LeaveGroundIntent reports the ground probe stopping to hit
type LeaveGroundIntent struct{}

func (LeaveGroundIntent) isIntent() {}

// IntentName returns a short name for logs and the HUD
func IntentName(i Intent) string {
	switch i.(type) {
	case JumpIntent:
		return "jump"
	case JumpReleaseIntent:
		return "jump_release"
	case DashIntent:
		return "dash"
	case DashEndIntent:
		return "dash_end"
	case LandIntent:
		return "land"
	case LeaveGroundIntent:
		return "leave_ground"
	default:
		return "unknown"
	}
}
