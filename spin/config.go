package spin

import (
	"time"

	"github.com/lixenwraith/name-wheel/vmath"
	"github.com/lixenwraith/name-wheel/wheel"
)

// DefaultDuration is the length of one spin animation
const DefaultDuration = 5 * time.Second

// Config tunes the spin animation
type Config struct {
	Duration      time.Duration
	BaseSpins     int
	PointerOffset float64 // screen angle of the pointer in degrees
	Ease          vmath.EaseFunc
}

// DefaultConfig returns a 5s ease-out-cubic spin with 5 base turns and the pointer at 12 o'clock
func DefaultConfig() Config {
	return Config{
		Duration:      DefaultDuration,
		BaseSpins:     wheel.DefaultBaseSpins,
		PointerOffset: wheel.PointerTop,
		Ease:          vmath.EaseOutCubic,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Duration < 0 {
		c.Duration = 0
	}
	if c.BaseSpins < 0 {
		c.BaseSpins = d.BaseSpins
	}
	if c.Ease == nil {
		c.Ease = d.Ease
	}
	return c
}
