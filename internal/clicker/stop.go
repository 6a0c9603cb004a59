package clicker

// StopReason records why the last run ended
type StopReason int32

const (
	StopNone StopReason = iota
	// StopManual means Stop, Toggle or a cancelled context ended the run
	StopManual
	// StopRegionExit means the pointer left the configured region
	StopRegionExit
	// StopRepeatDone means the repeat bound was reached
	StopRepeatDone
)

func (r StopReason) String() string {
	switch r {
	case StopManual:
		return "manual"
	case StopRegionExit:
		return "region exit"
	case StopRepeatDone:
		return "repeat done"
	default:
		return "none"
	}
}
