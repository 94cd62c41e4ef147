package chaos

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jbeda/geom"
)

// SelectionPolicy controls which vertices are eligible targets on each step
// of the chaos game. Uniform selection is the classic rule; the restricted
// variants produce different attractors for the same polygon and ratio.
type SelectionPolicy int

const (
	// SelectUniform draws every vertex with equal probability.
	SelectUniform SelectionPolicy = iota
	// SelectNoRepeat never draws the same vertex twice in a row.
	SelectNoRepeat
	// SelectNonAdjacent draws uniformly, except that after the same vertex
	// has been drawn twice in a row the neighbors of that vertex are
	// excluded. Has no effect on triangles.
	SelectNonAdjacent
)

// IteratorOption configures a new Iterator.
type IteratorOption func(*Iterator)

// WithSelection sets the vertex-selection policy. Default is SelectUniform.
func WithSelection(policy SelectionPolicy) IteratorOption {
	return func(it *Iterator) {
		it.policy = policy
	}
}

// WithJitter adds a uniformly random perturbation in [0, j) to the jump
// ratio on every step. Small jitters blur the attractor, which is useful
// when several point streams are layered into one image. j must be finite
// and non-negative.
func WithJitter(j float64) IteratorOption {
	return func(it *Iterator) {
		it.jitter = j
	}
}

// Iterator is a pull-based cursor over the infinite chaos-game point
// sequence. Each call to Next jumps the current point a fraction of the way
// toward a randomly chosen vertex and returns the new point.
//
// An Iterator owns its current-point cursor and random source and is not
// safe for concurrent use. Restarting a sequence means constructing a new
// Iterator, with the same seed for an identical replay or a fresh one for a
// different orbit.
type Iterator struct {
	poly   Polygon
	ratio  float64
	jitter float64
	policy SelectionPolicy
	rng    *rand.Rand

	cur  geom.Coord
	last int // vertex index of the most recent draw, -1 before the first step
	prev int // vertex index of the draw before that, -1 until two draws happened
}

// NewIterator builds an iterator over poly starting at start. ratio is the
// fraction of the distance jumped toward the chosen vertex each step; values
// outside (0, 1) are legal and simply yield degenerate or divergent
// sequences, but the ratio must be a finite number. rng may be nil, in which
// case a fixed-seed deterministic source is used.
//
// Returns ErrInvalidInput when poly has fewer than 3 vertices, ratio is NaN
// or infinite, or a jitter option is negative or non-finite.
func NewIterator(poly Polygon, ratio float64, start geom.Coord, rng *rand.Rand, opts ...IteratorOption) (*Iterator, error) {
	if poly.Len() < 3 {
		return nil, fmt.Errorf("iterator needs a polygon with at least 3 vertices, got %d: %w", poly.Len(), ErrInvalidInput)
	}
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return nil, fmt.Errorf("iterator ratio must be finite, got %v: %w", ratio, ErrInvalidInput)
	}

	it := &Iterator{
		poly:  poly,
		ratio: ratio,
		rng:   rng,
		cur:   start,
		last:  -1,
		prev:  -1,
	}
	for _, opt := range opts {
		opt(it)
	}
	if it.jitter < 0 || math.IsNaN(it.jitter) || math.IsInf(it.jitter, 0) {
		return nil, fmt.Errorf("iterator jitter must be finite and non-negative, got %v: %w", it.jitter, ErrInvalidInput)
	}
	if it.rng == nil {
		it.rng = rngFromSeed(0)
	}

	return it, nil
}

// Next advances the iterator one step and returns the new current point.
func (it *Iterator) Next() geom.Coord {
	k := it.pick()
	r := it.ratio
	if it.jitter > 0 {
		r += it.rng.Float64() * it.jitter
	}
	v := it.poly.Vertex(k)
	it.cur = it.cur.Plus(v.Minus(it.cur).Times(r))
	it.prev = it.last
	it.last = k
	return it.cur
}

// Current returns the current point without advancing.
func (it *Iterator) Current() geom.Coord {
	return it.cur
}

// LastIndex returns the vertex index chosen by the most recent Next call,
// or -1 if Next has not been called yet.
func (it *Iterator) LastIndex() int {
	return it.last
}

// pick draws the next target vertex index according to the policy.
func (it *Iterator) pick() int {
	n := it.poly.Len()
	switch it.policy {
	case SelectNoRepeat:
		if it.last < 0 {
			return it.rng.Intn(n)
		}
		// Draw from the n-1 other vertices.
		k := it.rng.Intn(n - 1)
		if k >= it.last {
			k++
		}
		return k

	case SelectNonAdjacent:
		if n <= 3 || it.last < 0 || it.last != it.prev {
			return it.rng.Intn(n)
		}
		for {
			k := it.rng.Intn(n)
			d := k - it.last
			if d < 0 {
				d = -d
			}
			if d == 1 || d == n-1 {
				continue
			}
			return k
		}

	default:
		return it.rng.Intn(n)
	}
}
