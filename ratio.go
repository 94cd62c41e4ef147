package chaos

import (
	"fmt"
	"math"
)

// OptimalRatio returns the jump ratio that makes the chaos game on a regular
// n-gon produce its maximally self-similar fractal (the "kissing" ratio at
// which neighboring copies of the attractor just touch).
//
// The closed form is
//
//	r = (1 + 2a) / (2 + 2a)
//	a = Σ_{i=1}^{⌊n/4⌋} cos(i·(π − θ))
//	θ = (n − 2)π/n (the interior angle of the polygon)
//
// For a triangle this gives the familiar 0.5 of the Sierpinski triangle, and
// 2/3 for a hexagon. The result is deterministic and always lies in (0, 1).
// Returns ErrInvalidInput when n < 3.
func OptimalRatio(n int) (float64, error) {
	if n < 3 {
		return 0, fmt.Errorf("optimal ratio needs at least 3 vertices, got %d: %w", n, ErrInvalidInput)
	}

	theta := float64(n-2) * math.Pi / float64(n)

	var a float64
	for i := 1; i <= n/4; i++ {
		a += math.Cos(float64(i) * (math.Pi - theta))
	}

	return (1 + 2*a) / (2 + 2*a), nil
}
