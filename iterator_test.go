package chaos_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chaos "github.com/DuroCodes/chaos-game"
)

func triangle(t *testing.T) chaos.Polygon {
	t.Helper()
	poly, err := chaos.NewPolygon(3, geom.Coord{}, 1)
	require.NoError(t, err)
	return poly
}

func TestIteratorZeroRatioStaysPut(t *testing.T) {
	start := geom.Coord{X: 0.25, Y: -0.1}
	it, err := chaos.NewIterator(triangle(t), 0, start, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.Equal(t, start, it.Next())
	}
}

func TestIteratorUnitRatioLandsOnVertices(t *testing.T) {
	poly := triangle(t)
	it, err := chaos.NewIterator(poly, 1, geom.Coord{}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		p := it.Next()
		v := poly.Vertex(it.LastIndex())
		assert.InDelta(t, v.X, p.X, 1e-12)
		assert.InDelta(t, v.Y, p.Y, 1e-12)
	}
}

func TestIteratorFirstStepHalfway(t *testing.T) {
	// From the origin with ratio 0.5 the first point is exactly half the
	// drawn vertex.
	poly := triangle(t)
	it, err := chaos.NewIterator(poly, 0.5, geom.Coord{}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	p := it.Next()
	require.Equal(t, poly.Vertex(it.LastIndex()).Times(0.5), p)
}

func TestIteratorReproducible(t *testing.T) {
	poly := triangle(t)
	run := func(seed int64) []geom.Coord {
		it, err := chaos.NewIterator(poly, 0.7, geom.Coord{X: 0.1}, rand.New(rand.NewSource(seed)),
			chaos.WithJitter(0.05))
		require.NoError(t, err)
		out := make([]geom.Coord, 200)
		for i := range out {
			out[i] = it.Next()
		}
		return out
	}

	require.Equal(t, run(42), run(42))
	require.NotEqual(t, run(42), run(43))
}

func TestIteratorNilRNGIsDeterministic(t *testing.T) {
	poly := triangle(t)
	run := func() []geom.Coord {
		it, err := chaos.NewIterator(poly, 0.5, geom.Coord{}, nil)
		require.NoError(t, err)
		out := make([]geom.Coord, 100)
		for i := range out {
			out[i] = it.Next()
		}
		return out
	}
	require.Equal(t, run(), run())
}

func TestIteratorStaysInsideHull(t *testing.T) {
	// With the optimal ratio and a start inside the polygon, the orbit never
	// leaves the convex hull.
	poly := triangle(t)
	ratio, err := chaos.OptimalRatio(3)
	require.NoError(t, err)

	it, err := chaos.NewIterator(poly, ratio, geom.Coord{}, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	for i := 0; i < 20000; i++ {
		p := it.Next()
		require.True(t, poly.Contains(p), "point %v escaped the hull at step %d", p, i)
	}
}

func TestIteratorNoRepeatPolicy(t *testing.T) {
	poly, err := chaos.NewPolygon(4, geom.Coord{}, 1)
	require.NoError(t, err)

	it, err := chaos.NewIterator(poly, 0.5, geom.Coord{}, rand.New(rand.NewSource(5)),
		chaos.WithSelection(chaos.SelectNoRepeat))
	require.NoError(t, err)

	prev := -1
	for i := 0; i < 2000; i++ {
		it.Next()
		k := it.LastIndex()
		require.GreaterOrEqual(t, k, 0)
		require.Less(t, k, poly.Len())
		require.NotEqual(t, prev, k, "repeated vertex at step %d", i)
		prev = k
	}
}

func TestIteratorNonAdjacentPolicy(t *testing.T) {
	poly, err := chaos.NewPolygon(6, geom.Coord{}, 1)
	require.NoError(t, err)

	it, err := chaos.NewIterator(poly, 0.5, geom.Coord{}, rand.New(rand.NewSource(9)),
		chaos.WithSelection(chaos.SelectNonAdjacent))
	require.NoError(t, err)

	n := poly.Len()
	prev, prev2 := -1, -1
	for i := 0; i < 5000; i++ {
		it.Next()
		k := it.LastIndex()
		if prev >= 0 && prev == prev2 {
			d := k - prev
			if d < 0 {
				d = -d
			}
			require.NotEqual(t, 1, d, "adjacent vertex after a double at step %d", i)
			require.NotEqual(t, n-1, d, "adjacent vertex after a double at step %d", i)
		}
		prev2 = prev
		prev = k
	}
}

func TestIteratorCurrent(t *testing.T) {
	start := geom.Coord{X: 0.2, Y: 0.3}
	it, err := chaos.NewIterator(triangle(t), 0.5, start, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.Equal(t, start, it.Current())
	require.Equal(t, -1, it.LastIndex())

	p := it.Next()
	require.Equal(t, p, it.Current())
}

func TestNewIteratorInvalid(t *testing.T) {
	poly := triangle(t)
	rng := rand.New(rand.NewSource(1))

	cases := []struct {
		name string
		err  error
	}{
		{"NaNRatio", func() error {
			_, err := chaos.NewIterator(poly, math.NaN(), geom.Coord{}, rng)
			return err
		}()},
		{"InfRatio", func() error {
			_, err := chaos.NewIterator(poly, math.Inf(1), geom.Coord{}, rng)
			return err
		}()},
		{"EmptyPolygon", func() error {
			_, err := chaos.NewIterator(chaos.Polygon{}, 0.5, geom.Coord{}, rng)
			return err
		}()},
		{"NegativeJitter", func() error {
			_, err := chaos.NewIterator(poly, 0.5, geom.Coord{}, rng, chaos.WithJitter(-0.1))
			return err
		}()},
		{"NaNJitter", func() error {
			_, err := chaos.NewIterator(poly, 0.5, geom.Coord{}, rng, chaos.WithJitter(math.NaN()))
			return err
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.err, chaos.ErrInvalidInput)
		})
	}
}

func TestNewIteratorRatioOutsideUnitIntervalIsLegal(t *testing.T) {
	// Out-of-range ratios make degenerate or divergent patterns, not errors.
	for _, r := range []float64{-0.5, 1.5, 10} {
		_, err := chaos.NewIterator(triangle(t), r, geom.Coord{}, nil)
		require.NoError(t, err, "ratio %v", r)
	}
}
