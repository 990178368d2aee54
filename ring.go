/*
Copyright © 2026 the geom authors.
This file is part of geom.

geom is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

geom is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with geom.  If not, see <http://www.gnu.org/licenses/>.
*/

package geom

import (
	"fmt"
	"math"

	"github.com/spatialmodel/geom/robust"
)

// A Ring is a closed sequence of at least 4 points where the first and
// last points coincide, outlining a simple (non-self-intersecting)
// polygon boundary. Whether a ring is an outer boundary or a hole is
// determined by its position within a Polygon, not by its winding order;
// operations normalize winding internally.
type Ring []Point

// Bounds gives the rectangular extents of the ring.
func (r Ring) Bounds() *Bounds {
	b := NewBounds()
	b.extendPoints(r)
	return b
}

// Closed returns whether the first and last points of r coincide.
func (r Ring) Closed() bool {
	if len(r) < 2 {
		return false
	}
	return r[0].Equals(r[len(r)-1])
}

// SignedArea returns the area of r, positive if the ring winds
// counterclockwise and negative if it winds clockwise.
// See http://www.mathopenref.com/coordpolygonarea2.html.
func (r Ring) SignedArea() float64 {
	if len(r) < 3 {
		return 0
	}
	highI := len(r) - 1
	a := (r[highI].X + r[0].X) * (r[0].Y - r[highI].Y)
	for i := 0; i < highI; i++ {
		a += (r[i].X + r[i+1].X) * (r[i+1].Y - r[i].Y)
	}
	return a / 2.
}

// Area returns the area enclosed by r regardless of winding order.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// Clockwise returns whether the points in r wind clockwise.
func (r Ring) Clockwise() bool {
	return r.SignedArea() < 0
}

// Reverse returns a copy of r with the winding order inverted.
func (r Ring) Reverse() Ring {
	o := make(Ring, len(r))
	for i, p := range r {
		o[len(r)-1-i] = p
	}
	return o
}

// Length returns the perimeter of r.
func (r Ring) Length() float64 {
	l := 0.
	for i := 0; i < len(r)-1; i++ {
		l += math.Hypot(r[i+1].X-r[i].X, r[i+1].Y-r[i].Y)
	}
	return l
}

// Centroid calculates the centroid of the region enclosed by r, from
// wikipedia: http://en.wikipedia.org/wiki/Centroid#Centroid_of_polygon.
// It returns an EmptyGeometryError if r encloses no area.
func (r Ring) Centroid() (Point, error) {
	a := r.SignedArea()
	if a == 0 {
		return Point{}, EmptyGeometryError{Op: "centroid"}
	}
	var cx, cy float64
	for i := 0; i < len(r)-1; i++ {
		f := r[i].X*r[i+1].Y - r[i+1].X*r[i].Y
		cx += (r[i].X + r[i+1].X) * f
		cy += (r[i].Y + r[i+1].Y) * f
	}
	return Point{X: cx / (6 * a), Y: cy / (6 * a)}, nil
}

// Validate checks that r is a well-formed simple ring: at least 4
// points, closed, finite, without repeated vertices, spikes, or
// self-intersections. It returns an InvalidRingError describing the
// first violation found, or nil if the ring is valid.
func (r Ring) Validate() error {
	if len(r) < 4 {
		return InvalidRingError{Reason: fmt.Sprintf("a closed ring requires at least 4 points, have %d", len(r))}
	}
	for i, p := range r {
		if !p.finite() {
			return InvalidRingError{Reason: fmt.Sprintf("non-finite coordinate at point %d", i)}
		}
	}
	tol := r.Bounds().Tolerance()
	if !r[0].WithinDistance(r[len(r)-1], tol) {
		return InvalidRingError{Reason: "ring is not closed"}
	}
	for i := 0; i < len(r)-1; i++ {
		if r[i].WithinDistance(r[i+1], tol) {
			return InvalidRingError{Reason: fmt.Sprintf("repeated point at index %d", i+1)}
		}
	}

	// Spikes: three consecutive collinear points that reverse direction.
	n := len(r) - 1 // number of segments
	for i := 0; i < n; i++ {
		p := r[i]
		m := r[(i+1)%n]
		q := r[(i+2)%n]
		if robust.Orient(p.X, p.Y, m.X, m.Y, q.X, q.Y) == 0 {
			if (m.X-p.X)*(q.X-m.X)+(m.Y-p.Y)*(q.Y-m.Y) < 0 {
				return InvalidRingError{Reason: fmt.Sprintf("spike at point %d", (i+1)%n)}
			}
		}
	}

	// Crossings between non-adjacent segments.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			kind, _, _ := robust.SegmentIntersection(
				r[i].X, r[i].Y, r[i+1].X, r[i+1].Y,
				r[j].X, r[j].Y, r[j+1].X, r[j+1].Y)
			if kind != robust.SegNone {
				return InvalidRingError{Reason: fmt.Sprintf("segments %d and %d intersect", i, j)}
			}
		}
	}
	return nil
}
