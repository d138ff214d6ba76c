package spark

import "math/rand/v2"

// RandInt returns a uniformly distributed integer in [min, max], inclusive
// of both bounds. Arguments may be given in either order; the larger one is
// treated as the true maximum.
func RandInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + rand.IntN(max-min+1)
}

// RandFloat returns a uniformly distributed float64 in [min, max].
// Arguments may be given in either order.
func RandFloat(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	if min == max {
		return min
	}
	return min + rand.Float64()*(max-min)
}

// RandPick returns a uniformly chosen element of items.
// items must be non-empty.
func RandPick[T any](items []T) T {
	return items[RandInt(0, len(items)-1)]
}
