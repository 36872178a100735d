package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/name-wheel/core"
)

// FrameClock paces rendering and animation updates on a fixed interval
// Frames are delivered on a channel so the consumer loop stays the single owner of UI state
// A frame the consumer has not picked up yet is dropped, never queued
type FrameClock struct {
	interval time.Duration
	frames   chan time.Time

	// Tick counter for debugging
	frameCount atomic.Uint64
	dropped    atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFrameClock creates a frame clock, non-positive intervals fall back to ~60 FPS
func NewFrameClock(interval time.Duration) *FrameClock {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &FrameClock{
		interval: interval,
		frames:   make(chan time.Time, 1),
		stopChan: make(chan struct{}),
	}
}

// Interval returns the configured frame interval
func (fc *FrameClock) Interval() time.Duration { return fc.interval }

// Frames returns the receive side of the frame channel
func (fc *FrameClock) Frames() <-chan time.Time { return fc.frames }

// FrameCount returns frames delivered so far
func (fc *FrameClock) FrameCount() uint64 { return fc.frameCount.Load() }

// Dropped returns frames skipped because the consumer was busy
func (fc *FrameClock) Dropped() uint64 { return fc.dropped.Load() }

// Start begins the frame loop, repeated calls are no-ops
func (fc *FrameClock) Start() {
	if fc.running.CompareAndSwap(false, true) {
		fc.wg.Add(1)
		core.Go(fc.loop)
	}
}

// Stop halts the frame loop and waits for it to exit
func (fc *FrameClock) Stop() {
	fc.stopOnce.Do(func() {
		if fc.running.CompareAndSwap(true, false) {
			close(fc.stopChan)
			fc.wg.Wait()
		}
	})
}

// loop runs deadline-based scheduling with drift correction
func (fc *FrameClock) loop() {
	defer fc.wg.Done()

	nextDeadline := time.Now().Add(fc.interval)
	timer := time.NewTimer(fc.interval)
	defer timer.Stop()

	for {
		select {
		case <-fc.stopChan:
			return

		case now := <-timer.C:
			select {
			case fc.frames <- now:
				fc.frameCount.Add(1)
			default:
				fc.dropped.Add(1)
			}

			nextDeadline = nextDeadline.Add(fc.interval)

			// Too far behind: re-anchor instead of bursting catch-up frames
			maxBehind := fc.interval * 2
			if now.Sub(nextDeadline) > maxBehind {
				nextDeadline = now.Add(fc.interval)
			}

			sleepDuration := time.Until(nextDeadline)
			if sleepDuration < 0 {
				sleepDuration = 0
			}
			timer.Reset(sleepDuration)
		}
	}
}
