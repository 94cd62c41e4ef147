package chaos

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Polygon holds the fixed jump targets for one chaos-game run: the vertices
// of a regular n-gon, ordered counter-clockwise. A Polygon is read-only once
// built; changing the vertex count means building a new one.
type Polygon struct {
	vertices []geom.Coord
	center   geom.Coord
	radius   float64
}

// PolygonOption tweaks vertex placement in NewPolygon.
type PolygonOption func(*polygonConfig)

type polygonConfig struct {
	phase float64
}

// WithPhase rotates every vertex by the given angle in radians. The default
// phase is zero, which puts vertex 0 on the positive x axis. Screen-oriented
// sketches typically pass -math.Pi/2 so vertex 0 sits at the top (or at the
// bottom once y grows downward).
func WithPhase(rad float64) PolygonOption {
	return func(cfg *polygonConfig) {
		cfg.phase = rad
	}
}

// NewPolygon returns the n vertices of a regular polygon spaced 2π/n apart
// on a circle of the given radius around center. n must be at least 3 and
// radius must be positive and finite, otherwise ErrInvalidInput is returned.
func NewPolygon(n int, center geom.Coord, radius float64, opts ...PolygonOption) (Polygon, error) {
	if n < 3 {
		return Polygon{}, fmt.Errorf("polygon needs at least 3 vertices, got %d: %w", n, ErrInvalidInput)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Polygon{}, fmt.Errorf("polygon radius must be positive and finite, got %v: %w", radius, ErrInvalidInput)
	}
	cfg := polygonConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	delta := 2 * math.Pi / float64(n)
	verts := make([]geom.Coord, n)
	for k := 0; k < n; k++ {
		a := cfg.phase + float64(k)*delta
		verts[k] = geom.Coord{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}

	return Polygon{vertices: verts, center: center, radius: radius}, nil
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.vertices)
}

// Vertex returns vertex k. k must be in [0, Len()).
func (p Polygon) Vertex(k int) geom.Coord {
	return p.vertices[k]
}

// Vertices returns a copy of the vertex slice so callers cannot mutate the
// polygon behind an iterator's back.
func (p Polygon) Vertices() []geom.Coord {
	out := make([]geom.Coord, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Center returns the circumcircle center.
func (p Polygon) Center() geom.Coord {
	return p.center
}

// Radius returns the circumcircle radius.
func (p Polygon) Radius() float64 {
	return p.radius
}

// Bounds returns the axis-aligned bounding rectangle of the vertices.
func (p Polygon) Bounds() geom.Rect {
	r := geom.Rect{Min: p.vertices[0], Max: p.vertices[0]}
	for _, v := range p.vertices[1:] {
		r.Min.X = math.Min(r.Min.X, v.X)
		r.Min.Y = math.Min(r.Min.Y, v.Y)
		r.Max.X = math.Max(r.Max.X, v.X)
		r.Max.Y = math.Max(r.Max.Y, v.Y)
	}
	return r
}
