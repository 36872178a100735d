// Package app runs the interactive wheel: one goroutine owns the roster,
// the spin engine and the screen; tcell events and frame ticks are fed to
// it over channels.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/name-wheel/core"
	"github.com/lixenwraith/name-wheel/engine"
	"github.com/lixenwraith/name-wheel/render"
	"github.com/lixenwraith/name-wheel/roster"
	"github.com/lixenwraith/name-wheel/spin"
)

// Mode is the input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	if m == ModeInsert {
		return "insert"
	}
	return "normal"
}

// Store is the best-effort persistence capability
type Store interface {
	Load() ([]string, string)
	Save(names []string, winner string)
}

// Sounds plays wheel effects
type Sounds interface {
	PlayTick()
	PlayFanfare()
	PlayReject()
}

// Metrics observes spin activity
type Metrics interface {
	ObserveSpin(winningIndex int, duration time.Duration)
	IncRejected(reason string)
	SetNames(n int)
}

// Options wires the app; nil Sounds, Metrics and Store are replaced by no-ops
type Options struct {
	Screen        tcell.Screen
	Spin          spin.Config
	Clock         engine.TimeProvider
	RNG           spin.RNG
	Store         Store
	Sounds        Sounds
	Metrics       Metrics
	FrameInterval time.Duration
	LabelRatio    float64
}

// App is the interactive wheel
type App struct {
	screen   tcell.Screen
	renderer *render.Renderer
	roster   *roster.Roster
	spinner  *spin.Engine
	store    Store
	sounds   Sounds
	metrics  Metrics
	interval time.Duration

	mode     Mode
	input    []rune
	selected int
	message  string
	isError  bool

	pasting     bool
	pasteBuf    []rune
	lastPointed int
}

// New builds the app and loads the persisted roster
func New(opts Options) *App {
	a := &App{
		screen:      opts.Screen,
		renderer:    render.NewRenderer(opts.Screen, opts.LabelRatio),
		store:       opts.Store,
		sounds:      opts.Sounds,
		metrics:     opts.Metrics,
		interval:    opts.FrameInterval,
		lastPointed: -1,
	}
	if a.store == nil {
		a.store = nopStore{}
	}
	if a.sounds == nil {
		a.sounds = nopSounds{}
	}
	if a.metrics == nil {
		a.metrics = nopMetrics{}
	}

	names, winner := a.store.Load()
	a.roster = roster.New(names, winner)
	a.metrics.SetNames(a.roster.Len())
	a.spinner = spin.NewEngine(opts.Spin, opts.Clock, opts.RNG, a.onWinner)

	a.message = "space to spin"
	if winner != "" {
		a.message = fmt.Sprintf("last winner: %s", winner)
	}
	log.Printf("Loaded %d names", a.roster.Len())
	return a
}

// Run drives the loop until quit or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	a.screen.EnablePaste()
	defer a.screen.DisablePaste()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	clock := engine.NewFrameClock(a.interval)
	clock.Start()
	defer clock.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				return nil
			}
			a.Draw()

		case <-clock.Frames():
			a.Tick()
		}
	}
}

// Tick advances the spin animation one frame and redraws
func (a *App) Tick() {
	if a.spinner.Spinning() {
		a.spinner.Update()
		if a.spinner.Spinning() {
			idx := a.spinner.PointedIndex(len(a.spinner.Labels()))
			if idx != a.lastPointed {
				a.lastPointed = idx
				a.sounds.PlayTick()
			}
		}
	}
	a.Draw()
}

// Draw renders the current state
func (a *App) Draw() {
	names := a.roster.Names()
	if a.spinner.Spinning() {
		names = a.spinner.Labels()
	}

	mode := render.ModeTextNormal
	switch {
	case a.mode == ModeInsert:
		mode = render.ModeTextInsert
	case a.spinner.Spinning():
		mode = render.ModeTextSpin
	}

	a.renderer.Draw(render.Frame{
		Names:         names,
		Selected:      a.selected,
		Winner:        a.roster.Winner(),
		Rotation:      a.spinner.Rotation(),
		PointerOffset: a.spinner.Config().PointerOffset,
		Mode:          mode,
		Input:         string(a.input),
		Message:       a.message,
		IsError:       a.isError,
	})
}

// RequestSpin asks the engine for a spin over the current roster
func (a *App) RequestSpin() spin.Decision {
	d := a.spinner.Spin(a.roster.Names())
	switch d {
	case spin.Accepted:
		a.lastPointed = -1
		a.setMessage("spinning...", false)
		log.Printf("Spin started over %d names", a.roster.Len())
	case spin.RejectedEmpty:
		a.metrics.IncRejected(d.String())
		a.sounds.PlayReject()
		a.setMessage("add some names first", true)
	case spin.RejectedBusy:
		// the wheel keeps turning; nothing to show
		a.metrics.IncRejected(d.String())
	}
	return d
}

// onWinner runs on the loop goroutine from inside spin.Engine.Update
func (a *App) onWinner(o spin.Outcome) {
	a.roster.SetWinner(o.WinningLabel)
	a.store.Save(a.roster.Names(), o.WinningLabel)
	a.sounds.PlayFanfare()
	a.metrics.ObserveSpin(o.WinningIndex, o.Duration)
	a.setMessage(fmt.Sprintf("winner: %s", o.WinningLabel), false)
	log.Printf("Spin %s won by %q (index %d, rotation %.1f)", o.ID, o.WinningLabel, o.WinningIndex, o.FinalRotation)
}

func (a *App) setMessage(msg string, isError bool) {
	a.message = msg
	a.isError = isError
}

func (a *App) persist() {
	a.store.Save(a.roster.Names(), a.roster.Winner())
	a.metrics.SetNames(a.roster.Len())
}

// clampSelection keeps the cursor on a valid row
func (a *App) clampSelection() {
	if a.selected >= a.roster.Len() {
		a.selected = a.roster.Len() - 1
	}
	if a.selected < 0 {
		a.selected = 0
	}
}

// Mode returns the input mode
func (a *App) Mode() Mode { return a.mode }

// Names returns the current roster
func (a *App) Names() []string { return a.roster.Names() }

// Winner returns the last winner
func (a *App) Winner() string { return a.roster.Winner() }

// Selected returns the highlighted row
func (a *App) Selected() int { return a.selected }

// Input returns the pending insert-mode text
func (a *App) Input() string { return string(a.input) }

// Message returns the status line text
func (a *App) Message() string { return a.message }

// Spinner exposes the spin engine
func (a *App) Spinner() *spin.Engine { return a.spinner }

type nopStore struct{}

func (nopStore) Load() ([]string, string) { return nil, "" }
func (nopStore) Save([]string, string)    {}

type nopSounds struct{}

func (nopSounds) PlayTick()    {}
func (nopSounds) PlayFanfare() {}
func (nopSounds) PlayReject()  {}

type nopMetrics struct{}

func (nopMetrics) ObserveSpin(int, time.Duration) {}
func (nopMetrics) IncRejected(string)             {}
func (nopMetrics) SetNames(int)                   {}
