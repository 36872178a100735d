package wheel

import (
	"math"

	"github.com/lixenwraith/name-wheel/vmath"
)

// Pointer and spin defaults
const (
	// PointerTop is the screen angle of a pointer at 12 o'clock
	PointerTop = 270.0

	// DefaultBaseSpins is the number of full turns added before the landing offset
	DefaultBaseSpins = 5
)

// TargetRotation returns the rotation that lands the middle of segment index under the pointer,
// after baseSpins full turns
// index is taken modulo the effective segment count for n labels
func TargetRotation(index, n, baseSpins int, pointerOffset float64) float64 {
	count := SegmentCount(n)
	index = ((index % count) + count) % count
	seg := vmath.FullTurn / float64(count)
	if baseSpins < 0 {
		baseSpins = 0
	}
	return float64(baseSpins)*vmath.FullTurn + (vmath.FullTurn - float64(index)*seg - seg/2 + pointerOffset)
}

// ResolveIndex returns the segment index under the pointer for a wheel rotated by rotation degrees
// Result is always in [0, SegmentCount(n))
// With pointerOffset 0 this reduces to floor(((360 - rotation mod 360) / segmentAngle) mod count)
func ResolveIndex(rotation float64, n int, pointerOffset float64) int {
	count := SegmentCount(n)
	seg := vmath.FullTurn / float64(count)
	wheelAngle := vmath.NormalizeDeg(pointerOffset - rotation)
	idx := int(math.Floor(wheelAngle/seg)) % count
	if idx < 0 {
		idx += count
	}
	return idx
}

// ResolveLabel returns the label under the pointer, using placeholders for an empty list
func ResolveLabel(labels []string, rotation, pointerOffset float64) string {
	idx := ResolveIndex(rotation, len(labels), pointerOffset)
	if idx < len(labels) {
		return labels[idx]
	}
	return PlaceholderLabel(idx)
}
