package spin

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/name-wheel/engine"
	"github.com/lixenwraith/name-wheel/vmath"
	"github.com/lixenwraith/name-wheel/wheel"
)

type recorder struct {
	outcomes []Outcome
}

func (r *recorder) onWinner(o Outcome) { r.outcomes = append(r.outcomes, o) }

func newTestEngine(rng RNG) (*Engine, *engine.MockTimeProvider, *recorder) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	rec := &recorder{}
	return NewEngine(DefaultConfig(), clock, rng, rec.onWinner), clock, rec
}

func TestSpinToPreselectedWinner(t *testing.T) {
	e, clock, rec := newTestEngine(nil)
	labels := []string{"Alice", "Bob", "Carol"}

	require.Equal(t, Accepted, e.SpinTo(labels, 1))
	assert.Equal(t, Spinning, e.State())
	assert.Equal(t, 0.0, e.Rotation(), "rotation resets to 0 at spin start")

	clock.Advance(DefaultDuration)
	out, done := e.Update()
	require.True(t, done)

	require.Len(t, rec.outcomes, 1)
	assert.Equal(t, "Bob", rec.outcomes[0].WinningLabel)
	assert.Equal(t, 1, rec.outcomes[0].WinningIndex)
	assert.Equal(t, out, rec.outcomes[0])
	assert.InDelta(t, 2250.0, out.FinalRotation, 1e-9)
	assert.NotEqual(t, uuid.Nil, out.ID)
	assert.Equal(t, Idle, e.State())

	// further updates never fire again
	clock.Advance(time.Hour)
	_, done = e.Update()
	assert.False(t, done)
	assert.Len(t, rec.outcomes, 1)
}

func TestSpinUsesRNGPick(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e"}
	for pick := 0; pick < len(labels); pick++ {
		e, clock, rec := newTestEngine(FixedRNG{Value: pick})
		require.Equal(t, Accepted, e.Spin(labels))
		clock.Advance(DefaultDuration + time.Millisecond)
		e.Update()
		require.Len(t, rec.outcomes, 1)
		assert.Equal(t, labels[pick], rec.outcomes[0].WinningLabel)
	}
}

func TestSpinWhileSpinningIsNoop(t *testing.T) {
	e, clock, rec := newTestEngine(FixedRNG{Value: 0})
	labels := []string{"Alice", "Bob", "Carol"}

	require.Equal(t, Accepted, e.SpinTo(labels, 2))
	clock.Advance(time.Second)
	e.Update()
	rotation, target := e.Rotation(), e.Target()

	assert.Equal(t, RejectedBusy, e.Spin(labels))
	assert.Equal(t, RejectedBusy, e.SpinTo([]string{"other"}, 0))
	assert.Equal(t, Spinning, e.State())
	assert.Equal(t, rotation, e.Rotation())
	assert.Equal(t, target, e.Target())

	clock.Advance(DefaultDuration)
	e.Update()
	require.Len(t, rec.outcomes, 1, "no second callback from the dropped request")
	assert.Equal(t, "Carol", rec.outcomes[0].WinningLabel)
}

func TestSpinEmptyIsRejected(t *testing.T) {
	e, clock, rec := newTestEngine(nil)

	assert.Equal(t, RejectedEmpty, e.Spin(nil))
	assert.Equal(t, RejectedEmpty, e.SpinTo([]string{}, 0))
	assert.Equal(t, Idle, e.State())

	clock.Advance(time.Minute)
	_, done := e.Update()
	assert.False(t, done)
	assert.Empty(t, rec.outcomes)
}

func TestAnimationEasesOutTowardTarget(t *testing.T) {
	e, clock, _ := newTestEngine(nil)
	require.Equal(t, Accepted, e.SpinTo([]string{"x", "y"}, 0))
	target := e.Target()

	var prev, prevStep float64 = 0, target
	for i := 1; i < 50; i++ {
		clock.Advance(DefaultDuration / 50)
		_, done := e.Update()
		require.False(t, done, "step %d", i)

		r := e.Rotation()
		step := r - prev
		assert.Greater(t, step, 0.0)
		assert.LessOrEqual(t, step, prevStep+1e-9, "ease-out must decelerate")
		assert.Less(t, r, target)
		prev, prevStep = r, step
	}

	progress := e.Progress()
	assert.InDelta(t, 49.0/50, progress, 1e-9)
	assert.InDelta(t, target*vmath.EaseOutCubic(progress), e.Rotation(), 1e-9)
}

func TestCallbackCanStartNextSpin(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	labels := []string{"a", "b"}
	var e *Engine
	count := 0
	e = NewEngine(DefaultConfig(), clock, FixedRNG{Value: 1}, func(o Outcome) {
		count++
		if count == 1 {
			assert.Equal(t, Accepted, e.Spin(labels))
		}
	})

	require.Equal(t, Accepted, e.Spin(labels))
	clock.Advance(DefaultDuration)
	e.Update()
	assert.Equal(t, Spinning, e.State())

	clock.Advance(DefaultDuration)
	e.Update()
	assert.Equal(t, 2, count)
	assert.Equal(t, Idle, e.State())
}

func TestLabelsAreSnapshotted(t *testing.T) {
	e, clock, rec := newTestEngine(nil)
	labels := []string{"Alice", "Bob", "Carol"}
	require.Equal(t, Accepted, e.SpinTo(labels, 0))

	labels[0] = "Mallory"
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, e.Labels())
	clock.Advance(DefaultDuration)
	e.Update()
	require.Len(t, rec.outcomes, 1)
	assert.Equal(t, "Alice", rec.outcomes[0].WinningLabel)
}

func TestPointedIndexTracksRotation(t *testing.T) {
	e, clock, _ := newTestEngine(nil)
	labels := []string{"a", "b", "c", "d"}
	require.Equal(t, Accepted, e.SpinTo(labels, 3))

	assert.Equal(t, wheel.ResolveIndex(0, 4, wheel.PointerTop), e.PointedIndex(4))
	clock.Advance(DefaultDuration)
	e.Update()
	assert.Equal(t, 3, e.PointedIndex(4))
	assert.Equal(t, 1.0, e.Progress())
}

func TestZeroDurationCompletesOnFirstUpdate(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	cfg := DefaultConfig()
	cfg.Duration = 0
	var got []string
	e := NewEngine(cfg, clock, FixedRNG{}, func(o Outcome) { got = append(got, o.WinningLabel) })

	require.Equal(t, Accepted, e.Spin([]string{"solo"}))
	_, done := e.Update()
	assert.True(t, done)
	assert.Equal(t, []string{"solo"}, got)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "spinning", Spinning.String())
	assert.Equal(t, "busy", RejectedBusy.String())
	assert.Equal(t, "empty", RejectedEmpty.String())
	assert.Equal(t, "accepted", Accepted.String())
}

func TestFixedRNG(t *testing.T) {
	assert.Equal(t, 2, FixedRNG{Value: 7}.Intn(5))
	assert.Equal(t, 4, FixedRNG{Value: -1}.Intn(5))
	for i := 0; i < 100; i++ {
		v := StdRNG{}.Intn(3)
		assert.True(t, v >= 0 && v < 3)
	}
}
