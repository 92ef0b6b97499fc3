// Package math provides scalar helpers shared by the scene and UI code.
package math

// Float is the set of floating point types the helpers accept.
type Float interface {
	~float32 | ~float64
}

// Lerp returns a + (b-a)*t. t is not clamped.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// InverseLerp returns where v sits between a and b (0 at a, 1 at b).
// Returns 0 when a == b.
func InverseLerp[T Float](a, b, v T) T {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Clamp limits v to [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01[T Float](v T) T {
	return Clamp(v, 0, 1)
}
