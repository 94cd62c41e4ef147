package chaos

import (
	"testing"

	"github.com/jbeda/geom"
)

func TestOrientation(t *testing.T) {
	tests := []struct {
		p, q, r geom.Coord
		want    int
	}{
		{geom.Coord{X: 0, Y: 0}, geom.Coord{X: 1, Y: 0}, geom.Coord{X: 2, Y: 0}, 0},
		{geom.Coord{X: 0, Y: 0}, geom.Coord{X: 1, Y: 1}, geom.Coord{X: 2, Y: 2}, 0},
		{geom.Coord{X: 0, Y: 0}, geom.Coord{X: 1, Y: 0}, geom.Coord{X: 1, Y: -1}, 1},
		{geom.Coord{X: 0, Y: 0}, geom.Coord{X: 1, Y: 0}, geom.Coord{X: 1, Y: 1}, 2},
	}

	for _, tt := range tests {
		if got := orientation(tt.p, tt.q, tt.r); got != tt.want {
			t.Errorf("orientation(%v, %v, %v) = %d, want %d", tt.p, tt.q, tt.r, got, tt.want)
		}
	}
}

func TestPolygonContains(t *testing.T) {
	// A diamond: vertices at (1,0), (0,1), (-1,0), (0,-1).
	diamond, err := NewPolygon(4, geom.Coord{}, 1)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}

	tests := []struct {
		pt   geom.Coord
		want bool
	}{
		{geom.Coord{X: 0, Y: 0}, true},
		{geom.Coord{X: 0.9, Y: 0}, true},
		{geom.Coord{X: 1, Y: 0}, true},      // vertex
		{geom.Coord{X: 0.5, Y: 0.5}, true},  // on an edge
		{geom.Coord{X: 0.6, Y: 0.6}, false}, // just past the edge
		{geom.Coord{X: -2, Y: 0}, false},
		{geom.Coord{X: 0, Y: -1.0001}, false},
	}

	for _, tt := range tests {
		if got := diamond.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}

	if (Polygon{}).Contains(geom.Coord{}) {
		t.Error("zero-value polygon should contain nothing")
	}
}
