package vmath

// EaseFunc maps linear progress t in [0,1] to eased progress in [0,1]
type EaseFunc func(t float64) float64

// Clamp01 limits t to [0,1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Linear is the identity curve
func Linear(t float64) float64 { return Clamp01(t) }

// EaseOutQuad decelerates quadratically: 1-(1-t)^2
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	inv := 1 - t
	return 1 - inv*inv
}

// EaseOutCubic decelerates cubically: 1-(1-t)^3
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// EaseByName resolves a curve name, falling back to cubic for unknown names
func EaseByName(name string) EaseFunc {
	switch name {
	case "linear":
		return Linear
	case "quad", "quadratic":
		return EaseOutQuad
	default:
		return EaseOutCubic
	}
}
