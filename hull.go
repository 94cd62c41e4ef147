package chaos

import (
	"math"

	"github.com/jbeda/geom"
)

// hullEpsilon absorbs floating-point noise when a point sits exactly on a
// polygon edge, which happens a lot at ratio 1 where every step lands on a
// vertex.
const hullEpsilon = 1e-9

// orientation reports the turn direction of the ordered triplet (p, q, r):
// 0 --> colinear (within hullEpsilon)
// 1 --> clockwise
// 2 --> counterclockwise
func orientation(p, q, r geom.Coord) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if math.Abs(val) <= hullEpsilon {
		return 0 // colinear
	}
	if val > 0 {
		return 1 // clockwise
	}
	return 2 // counterclock wise
}

// Contains reports whether pt lies inside the polygon's convex hull, edges
// included. Works for either winding since regular polygons are convex: pt
// is inside iff it is on the same side of every edge.
func (p Polygon) Contains(pt geom.Coord) bool {
	n := len(p.vertices)
	if n < 3 {
		return false
	}

	side := 0
	for i := 0; i < n; i++ {
		o := orientation(p.vertices[i], p.vertices[(i+1)%n], pt)
		if o == 0 {
			continue // on the edge (or its extension, caught by other edges)
		}
		if side == 0 {
			side = o
		} else if o != side {
			return false
		}
	}
	return true
}
