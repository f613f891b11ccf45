package basisfactor

import "golang.org/x/exp/constraints"

// min and max mirror the teacher's generic helpers (sparse.go), used
// here for the handful of ordered comparisons the kernel and pivot
// search need without pulling in package-specific numeric types.
func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
