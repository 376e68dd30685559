package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// FloorDiv returns floor(v / size) as a grid index.
func FloorDiv(v, size float64) int {
	return int(math.Floor(v / size))
}

// CeilDiv returns ceil(v / size) as a grid index.
func CeilDiv(v, size float64) int {
	return int(math.Ceil(v / size))
}
