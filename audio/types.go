package audio

import "time"

// SoundType represents different sound effects
type SoundType int

const (
	SoundTick    SoundType = iota // Pointer crosses a segment boundary
	SoundFanfare                  // Winner announced
	SoundReject                   // Spin request refused
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundTick:
		return "tick"
	case SoundFanfare:
		return "fanfare"
	case SoundReject:
		return "reject"
	default:
		return "unknown"
	}
}

// Sound timing
const (
	// MinTickGap keeps a fast wheel from stacking clicks into a drone
	MinTickGap = 30 * time.Millisecond

	TickSoundDuration = 18 * time.Millisecond
	TickSoundAttack   = 1 * time.Millisecond
	TickSoundRelease  = 12 * time.Millisecond

	FanfareNoteDuration = 140 * time.Millisecond
	FanfareLastDuration = 520 * time.Millisecond
	FanfareAttack       = 5 * time.Millisecond
	FanfareNoteRelease  = 60 * time.Millisecond
	FanfareLastRelease  = 400 * time.Millisecond

	RejectSoundDuration = 90 * time.Millisecond
	RejectSoundAttack   = 5 * time.Millisecond
	RejectSoundRelease  = 30 * time.Millisecond
)
