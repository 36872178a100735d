package spin

import (
	"time"

	"github.com/google/uuid"
)

// State is the spin engine state
type State int

const (
	Idle State = iota
	Spinning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	default:
		return "unknown"
	}
}

// Decision reports what happened to a spin request
// Rejections are silent no-ops for the engine; callers use the reason for feedback and counters
type Decision int

const (
	Accepted Decision = iota
	RejectedBusy
	RejectedEmpty
)

func (d Decision) String() string {
	switch d {
	case Accepted:
		return "accepted"
	case RejectedBusy:
		return "busy"
	case RejectedEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Outcome is the result of one completed spin, reported once and then discarded
type Outcome struct {
	ID            uuid.UUID
	FinalRotation float64 // degrees, non-negative
	WinningIndex  int
	WinningLabel  string
	StartedAt     time.Time
	Duration      time.Duration
}

// WinnerFunc receives the outcome of every completed spin, exactly once per spin
type WinnerFunc func(Outcome)

// RNG abstracts random number generation for deterministic testing
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}
