package app

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/name-wheel/engine"
	"github.com/lixenwraith/name-wheel/spin"
	"github.com/lixenwraith/name-wheel/wheel"
)

type memStore struct {
	names  []string
	winner string
	saves  int
}

func (m *memStore) Load() ([]string, string) { return append([]string(nil), m.names...), m.winner }
func (m *memStore) Save(names []string, winner string) {
	m.names = append([]string(nil), names...)
	m.winner = winner
	m.saves++
}

type countingSounds struct {
	ticks, fanfares, rejects int
}

func (c *countingSounds) PlayTick()    { c.ticks++ }
func (c *countingSounds) PlayFanfare() { c.fanfares++ }
func (c *countingSounds) PlayReject()  { c.rejects++ }

type countingMetrics struct {
	spins    []int
	rejected []string
	names    int
}

func (c *countingMetrics) ObserveSpin(i int, _ time.Duration) { c.spins = append(c.spins, i) }
func (c *countingMetrics) IncRejected(reason string)          { c.rejected = append(c.rejected, reason) }
func (c *countingMetrics) SetNames(n int)                     { c.names = n }

type fixture struct {
	app     *App
	screen  tcell.SimulationScreen
	clock   *engine.MockTimeProvider
	store   *memStore
	sounds  *countingSounds
	metrics *countingMetrics
}

func newFixture(t *testing.T, names []string, pick int) *fixture {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)

	f := &fixture{
		screen:  s,
		clock:   engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		store:   &memStore{names: names},
		sounds:  &countingSounds{},
		metrics: &countingMetrics{},
	}
	f.app = New(Options{
		Screen:        s,
		Spin:          spin.DefaultConfig(),
		Clock:         f.clock,
		RNG:           spin.FixedRNG{Value: pick},
		Store:         f.store,
		Sounds:        f.sounds,
		Metrics:       f.metrics,
		FrameInterval: 16 * time.Millisecond,
		LabelRatio:    2.0 / 3.0,
	})
	return f
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func char(r rune) *tcell.EventKey     { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func (f *fixture) typeText(text string) {
	for _, r := range text {
		f.app.HandleEvent(char(r))
	}
}

func TestLoadsPersistedRoster(t *testing.T) {
	f := newFixture(t, []string{"Alice", "Bob"}, 0)
	assert.Equal(t, []string{"Alice", "Bob"}, f.app.Names())
	assert.Equal(t, 2, f.metrics.names)
}

func TestInsertModeAddsName(t *testing.T) {
	f := newFixture(t, nil, 0)

	f.app.HandleEvent(char('i'))
	require.Equal(t, ModeInsert, f.app.Mode())

	f.typeText("  Alice ")
	f.app.HandleEvent(key(tcell.KeyEnter))

	assert.Equal(t, []string{"Alice"}, f.app.Names())
	assert.Equal(t, []string{"Alice"}, f.store.names)
	assert.Equal(t, "", f.app.Input())
	assert.Equal(t, ModeInsert, f.app.Mode(), "stays in insert mode for the next name")

	f.app.HandleEvent(key(tcell.KeyEscape))
	assert.Equal(t, ModeNormal, f.app.Mode())
}

func TestInsertCommaListSplits(t *testing.T) {
	f := newFixture(t, nil, 0)
	f.app.HandleEvent(char('a'))
	f.typeText("Ann, Ben,,Cy")
	f.app.HandleEvent(key(tcell.KeyEnter))

	assert.Equal(t, []string{"Ann", "Ben", "Cy"}, f.app.Names())
	assert.Equal(t, 2, f.app.Selected())
	assert.Equal(t, "added 3 names", f.app.Message())
}

func TestBackspaceEditsInput(t *testing.T) {
	f := newFixture(t, nil, 0)
	f.app.HandleEvent(char('i'))
	f.typeText("Bobx")
	f.app.HandleEvent(key(tcell.KeyBackspace2))
	assert.Equal(t, "Bob", f.app.Input())
}

func TestBracketedPasteSplitsLines(t *testing.T) {
	f := newFixture(t, nil, 0)

	f.app.HandleEvent(tcell.NewEventPaste(true))
	f.typeText("Alice")
	f.app.HandleEvent(key(tcell.KeyEnter))
	f.typeText("Bob")
	f.app.HandleEvent(key(tcell.KeyEnter))
	f.app.HandleEvent(tcell.NewEventPaste(false))

	assert.Equal(t, []string{"Alice", "Bob"}, f.app.Names())
	assert.Equal(t, ModeInsert, f.app.Mode())
}

func TestSingleWordPasteJoinsInput(t *testing.T) {
	f := newFixture(t, nil, 0)
	f.app.HandleEvent(char('i'))
	f.typeText("Jo")

	f.app.HandleEvent(tcell.NewEventPaste(true))
	f.typeText("anna")
	f.app.HandleEvent(tcell.NewEventPaste(false))

	assert.Equal(t, "Joanna", f.app.Input())
	assert.Empty(t, f.app.Names())
}

func TestSpinEmptyIsRejected(t *testing.T) {
	f := newFixture(t, nil, 0)

	f.app.HandleEvent(char(' '))

	assert.False(t, f.app.Spinner().Spinning())
	assert.Equal(t, 1, f.sounds.rejects)
	assert.Equal(t, []string{"empty"}, f.metrics.rejected)
	assert.Equal(t, "add some names first", f.app.Message())
}

func TestSpinResolvesWinner(t *testing.T) {
	f := newFixture(t, []string{"Alice", "Bob", "Carol"}, 1)

	f.app.HandleEvent(key(tcell.KeyEnter))
	require.True(t, f.app.Spinner().Spinning())

	// busy spin requests are ignored
	f.app.HandleEvent(char(' '))
	assert.Equal(t, []string{"busy"}, f.metrics.rejected)

	for i := 0; i < 10; i++ {
		f.clock.Advance(400 * time.Millisecond)
		f.app.Tick()
	}
	require.True(t, f.app.Spinner().Spinning())
	assert.Greater(t, f.sounds.ticks, 0)

	f.clock.Advance(time.Second)
	f.app.Tick()

	require.False(t, f.app.Spinner().Spinning())
	assert.Equal(t, "Bob", f.app.Winner())
	assert.Equal(t, "Bob", f.store.winner)
	assert.Equal(t, 1, f.sounds.fanfares)
	assert.Equal(t, []int{1}, f.metrics.spins)
	assert.Equal(t, "winner: Bob", f.app.Message())
	assert.Equal(t, 1, wheel.ResolveIndex(f.app.Spinner().Rotation(), 3, wheel.PointerTop))
}

func TestEditsDuringSpinDoNotChangeOutcome(t *testing.T) {
	f := newFixture(t, []string{"Alice", "Bob", "Carol"}, 0)
	f.app.HandleEvent(char(' '))

	// remove Alice while the wheel turns
	f.app.HandleEvent(char('x'))
	assert.Equal(t, []string{"Bob", "Carol"}, f.app.Names())

	f.clock.Advance(spin.DefaultDuration)
	f.app.Tick()
	assert.Equal(t, "Alice", f.app.Winner())
}

func TestDeleteAndClear(t *testing.T) {
	f := newFixture(t, []string{"Alice", "Bob", "Carol"}, 0)

	f.app.HandleEvent(char('j'))
	f.app.HandleEvent(char('j'))
	f.app.HandleEvent(char('j'))
	assert.Equal(t, 2, f.app.Selected(), "selection clamps at the end")

	f.app.HandleEvent(char('d'))
	assert.Equal(t, []string{"Alice", "Bob"}, f.app.Names())
	assert.Equal(t, 1, f.app.Selected())
	assert.Equal(t, []string{"Alice", "Bob"}, f.store.names)

	f.app.HandleEvent(char('k'))
	assert.Equal(t, 0, f.app.Selected())

	f.app.HandleEvent(char('D'))
	assert.Empty(t, f.app.Names())
	assert.Empty(t, f.store.names)
	assert.Equal(t, 0, f.metrics.names)

	f.app.HandleEvent(char('x'))
	assert.Equal(t, "nothing to delete", f.app.Message())
}

func TestQuitKeys(t *testing.T) {
	f := newFixture(t, nil, 0)
	assert.False(t, f.app.HandleEvent(char('q')))
	assert.False(t, f.app.HandleEvent(key(tcell.KeyEscape)))
	assert.False(t, f.app.HandleEvent(key(tcell.KeyCtrlC)))

	f.app.HandleEvent(char('i'))
	assert.True(t, f.app.HandleEvent(char('q')), "q is text in insert mode")
	assert.False(t, f.app.HandleEvent(key(tcell.KeyCtrlC)))
}

func TestRunQuitsOnKey(t *testing.T) {
	f := newFixture(t, []string{"Alice"}, 0)

	done := make(chan error, 1)
	go func() { done <- f.app.Run(context.Background()) }()

	f.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f := newFixture(t, nil, 0)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- f.app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
