package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetRotationRoundTrip(t *testing.T) {
	for n := 0; n <= 50; n++ {
		count := SegmentCount(n)
		for r := 0; r < count; r++ {
			for _, pointer := range []float64{0, 90, PointerTop} {
				target := TargetRotation(r, n, DefaultBaseSpins, pointer)
				assert.GreaterOrEqual(t, target, 0.0)
				assert.Equal(t, r, ResolveIndex(target, n, pointer), "n=%d r=%d pointer=%v", n, r, pointer)
				// reducing the rotation mod 360 lands on the same segment
				assert.Equal(t, r, ResolveIndex(math.Mod(target, 360), n, pointer))
			}
		}
	}
}

func TestTargetRotationMatchesReferenceFormula(t *testing.T) {
	// 3 labels, 120° each, index 1: 5*360 + (360 - 120 - 60 + 270)
	assert.InDelta(t, 2250.0, TargetRotation(1, 3, 5, PointerTop), 1e-9)
	// out of range index wraps
	assert.Equal(t, TargetRotation(1, 3, 5, PointerTop), TargetRotation(4, 3, 5, PointerTop))
}

func TestResolveIndexDeriveAfterSpinConvention(t *testing.T) {
	// pointer at 0 gives floor(((360 - t mod 360) / seg) mod count)
	reference := func(target float64, count int) int {
		seg := 360 / float64(count)
		return int(math.Floor(math.Mod((360-math.Mod(target, 360))/seg, float64(count))))
	}
	for target := 3600.1; target < 3960; target += 0.37 {
		for _, n := range []int{1, 2, 3, 5, 7, 12} {
			got := ResolveIndex(target, n, 0)
			assert.Equal(t, reference(target, n), got, "target=%v n=%d", target, n)
			// idempotent
			assert.Equal(t, got, ResolveIndex(target, n, 0))
		}
	}
}

func TestResolveIndexAlwaysInRange(t *testing.T) {
	for _, rot := range []float64{-1e9, -720.5, -0.0001, 0, 1e-12, 359.9999999999, 360, 1e12} {
		for n := 0; n < 10; n++ {
			idx := ResolveIndex(rot, n, PointerTop)
			assert.True(t, idx >= 0 && idx < SegmentCount(n), "rot=%v n=%d idx=%d", rot, n, idx)
		}
	}
}

func TestResolveLabel(t *testing.T) {
	labels := []string{"Alice", "Bob", "Carol"}
	assert.Equal(t, "Bob", ResolveLabel(labels, TargetRotation(1, 3, 5, PointerTop), PointerTop))
	assert.Equal(t, "Student 4", ResolveLabel(nil, TargetRotation(3, 0, 5, PointerTop), PointerTop))
}

func TestResolveAgreesWithLayout(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e"}
	segs := Layout(labels, 100)
	for rot := 0.0; rot < 720; rot += 3.3 {
		idx := ResolveIndex(rot, len(labels), PointerTop)
		// the wheel angle under the pointer belongs to the resolved segment
		assert.True(t, segs[idx].Contains(PointerTop-rot), "rot=%v idx=%d", rot, idx)
	}
}
