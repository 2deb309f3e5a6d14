package tsp

import "fmt"

// ValidateTour enforces closed-cycle invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each vertex v in [0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return fmt.Errorf("%w: empty vertex set", ErrInvalidTour)
	}
	if len(tour) != n+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(tour), n+1)
	}
	if start < 0 || start >= n {
		return fmt.Errorf("%w: start %d out of range", ErrInvalidTour, start)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%w: must start and end at %d", ErrInvalidTour, start)
	}

	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: vertex %d out of range", ErrInvalidTour, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %d repeated", ErrInvalidTour, v)
		}
		seen[v] = true
	}

	return nil
}
