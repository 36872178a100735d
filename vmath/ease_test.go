package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEaseEndpoints(t *testing.T) {
	for name, fn := range map[string]EaseFunc{
		"linear": Linear,
		"quad":   EaseOutQuad,
		"cubic":  EaseOutCubic,
	} {
		assert.Equal(t, 0.0, fn(0), name)
		assert.Equal(t, 1.0, fn(1), name)
		assert.Equal(t, 0.0, fn(-3), name)
		assert.Equal(t, 1.0, fn(7), name)
	}
}

func TestEaseOutIsMonotonicAndDecelerating(t *testing.T) {
	prev, prevStep := 0.0, 2.0
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		step := v - prev
		assert.Greater(t, step, 0.0, "step %d", i)
		assert.LessOrEqual(t, step, prevStep+1e-12, "step %d should not accelerate", i)
		prev, prevStep = v, step
	}
}

func TestEaseByName(t *testing.T) {
	assert.Equal(t, EaseOutQuad(0.3), EaseByName("quadratic")(0.3))
	assert.Equal(t, Linear(0.3), EaseByName("linear")(0.3))
	assert.Equal(t, EaseOutCubic(0.3), EaseByName("cubic")(0.3))
	assert.Equal(t, EaseOutCubic(0.3), EaseByName("bogus")(0.3))
}
