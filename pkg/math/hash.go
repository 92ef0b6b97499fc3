package math

// PCGHash is a 32-bit integer hash (PCG output permutation).
// The grass vertex shader carries the same function, so CPU and GPU
// derive identical per-instance values from an instance id.
func PCGHash(v uint32) uint32 {
	state := v*747796405 + 2891336453
	word := ((state >> ((state >> 28) + 4)) ^ state) * 277803737
	return (word >> 22) ^ word
}

// HashUnit maps an id to [0, 1) through PCGHash.
// Only the top 24 bits are used so the result is exact in float32.
func HashUnit(v uint32) float32 {
	return unit(PCGHash(v))
}

// HashUnitN returns the n-th decorrelated unit value for an id.
// Each channel rehashes the previous one.
func HashUnitN(v uint32, n int) float32 {
	h := PCGHash(v)
	for i := 0; i < n; i++ {
		h = PCGHash(h)
	}
	return unit(h)
}

func unit(h uint32) float32 {
	return float32(h>>8) / 16777216.0
}
