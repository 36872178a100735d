package spin

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/name-wheel/engine"
	"github.com/lixenwraith/name-wheel/wheel"
)

// Engine animates a wheel spin and resolves the winner when the animation completes
//
// The winner is pre-selected uniformly at spin start and turned into a target rotation that lands
// the pointer on the middle of its segment; at completion the winner is re-derived from the final
// angle with wheel.ResolveIndex, which agrees with the pre-selection by construction.
//
// Engine is owned by a single loop goroutine: Spin and Update must not be called concurrently.
type Engine struct {
	cfg      Config
	clock    engine.TimeProvider
	rng      RNG
	onWinner WinnerFunc

	state     State
	rotation  float64
	target    float64
	startedAt time.Time
	labels    []string
	id        uuid.UUID
}

// NewEngine creates an idle engine; nil clock and rng fall back to real time and math/rand
func NewEngine(cfg Config, clock engine.TimeProvider, rng RNG, onWinner WinnerFunc) *Engine {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	if rng == nil {
		rng = StdRNG{}
	}
	return &Engine{
		cfg:      cfg.withDefaults(),
		clock:    clock,
		rng:      rng,
		onWinner: onWinner,
	}
}

// Spin starts a spin over labels with a uniformly random winner
func (e *Engine) Spin(labels []string) Decision {
	if d := e.admit(labels); d != Accepted {
		return d
	}
	return e.start(labels, e.rng.Intn(len(labels)))
}

// SpinTo starts a spin that lands on index, taken modulo len(labels)
func (e *Engine) SpinTo(labels []string, index int) Decision {
	if d := e.admit(labels); d != Accepted {
		return d
	}
	n := len(labels)
	return e.start(labels, ((index%n)+n)%n)
}

func (e *Engine) admit(labels []string) Decision {
	if e.state == Spinning {
		return RejectedBusy
	}
	if len(labels) == 0 {
		return RejectedEmpty
	}
	return Accepted
}

func (e *Engine) start(labels []string, index int) Decision {
	// Snapshot: the caller may edit its list while the wheel turns
	e.labels = append([]string(nil), labels...)
	e.target = wheel.TargetRotation(index, len(e.labels), e.cfg.BaseSpins, e.cfg.PointerOffset)
	e.rotation = 0
	e.startedAt = e.clock.Now()
	e.id = uuid.New()
	e.state = Spinning
	return Accepted
}

// Update advances the animation to the clock's current time
// On the update that completes the spin it returns the outcome and true, after invoking the callback
func (e *Engine) Update() (Outcome, bool) {
	if e.state != Spinning {
		return Outcome{}, false
	}

	elapsed := e.clock.Now().Sub(e.startedAt)
	if elapsed < e.cfg.Duration {
		t := float64(elapsed) / float64(e.cfg.Duration)
		e.rotation = e.target * e.cfg.Ease(t)
		return Outcome{}, false
	}

	e.rotation = e.target
	idx := wheel.ResolveIndex(e.rotation, len(e.labels), e.cfg.PointerOffset)
	outcome := Outcome{
		ID:            e.id,
		FinalRotation: e.rotation,
		WinningIndex:  idx,
		WinningLabel:  e.labels[idx],
		StartedAt:     e.startedAt,
		Duration:      elapsed,
	}

	// Idle before the callback so a callback may start the next spin
	e.state = Idle
	if e.onWinner != nil {
		e.onWinner(outcome)
	}
	return outcome, true
}

// State returns Idle or Spinning
func (e *Engine) State() State { return e.state }

// Spinning reports whether a spin is in flight
func (e *Engine) Spinning() bool { return e.state == Spinning }

// Rotation returns the current wheel rotation in degrees; it stays at the last target when idle
func (e *Engine) Rotation() float64 { return e.rotation }

// Labels returns a copy of the labels the current or last spin runs over
func (e *Engine) Labels() []string {
	return append([]string(nil), e.labels...)
}

// Target returns the rotation the current or last spin stops at
func (e *Engine) Target() float64 { return e.target }

// Progress returns linear animation progress in [0,1], 0 when idle before any spin
func (e *Engine) Progress() float64 {
	if e.state != Spinning {
		if e.target > 0 {
			return 1
		}
		return 0
	}
	if e.cfg.Duration <= 0 {
		return 1
	}
	p := float64(e.clock.Now().Sub(e.startedAt)) / float64(e.cfg.Duration)
	if p > 1 {
		p = 1
	}
	return p
}

// PointedIndex returns the segment under the pointer for a wheel of n labels at the current rotation
func (e *Engine) PointedIndex(n int) int {
	return wheel.ResolveIndex(e.rotation, n, e.cfg.PointerOffset)
}

// Config returns the effective configuration
func (e *Engine) Config() Config { return e.cfg }
