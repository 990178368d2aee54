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

import "github.com/spatialmodel/geom/robust"

// Simplify removes points from r whose perpendicular distance to the
// surrounding boundary is at most tolerance, using Douglas-Peucker
// simplification. If simplification would collapse the ring below 4
// points, a copy of the original ring is returned instead. Simplifying
// with a suitable tolerance is the recommended repair step for inputs
// rejected by Validate because of spikes or repeated points.
func (r Ring) Simplify(tolerance float64) Ring {
	if len(r) < 5 {
		return closeRing(r)
	}
	open := r[:len(r)-1]

	// Anchor the ring at its first point and the point farthest from it,
	// then simplify the two chains between the anchors.
	far := 1
	farDist := 0.
	for i := 1; i < len(open); i++ {
		d := (open[i].X-open[0].X)*(open[i].X-open[0].X) +
			(open[i].Y-open[0].Y)*(open[i].Y-open[0].Y)
		if d > farDist {
			farDist = d
			far = i
		}
	}
	first := douglasPeucker(open[:far+1], tolerance)
	second := douglasPeucker(open[far:], tolerance)

	out := make(Ring, 0, len(first)+len(second))
	out = append(out, first...)
	out = append(out, second[1:]...)
	out = append(out, open[0])
	if len(out) < 4 {
		return closeRing(r)
	}
	return out
}

// Simplify simplifies the rings of p, dropping holes that collapse to
// nothing. If the outer ring collapses, a copy of p is returned
// unchanged.
func (p Polygon) Simplify(tolerance float64) Polygon {
	out := Polygon{Outer: p.Outer.Simplify(tolerance)}
	for _, h := range p.Holes {
		hs := h.Simplify(tolerance)
		if hs.Area() > 0 {
			out.Holes = append(out.Holes, hs)
		}
	}
	return out
}

// Simplify simplifies every member of mp.
func (mp MultiPolygon) Simplify(tolerance float64) MultiPolygon {
	out := make(MultiPolygon, len(mp))
	for i, p := range mp {
		out[i] = p.Simplify(tolerance)
	}
	return out
}

// douglasPeucker simplifies the open polyline pts, keeping its first and
// last points.
func douglasPeucker(pts []Point, tol float64) []Point {
	if len(pts) < 3 {
		out := make([]Point, len(pts))
		copy(out, pts)
		return out
	}
	a, b := pts[0], pts[len(pts)-1]
	maxDist := 0.
	maxI := 0
	for i := 1; i < len(pts)-1; i++ {
		d := robust.DistPointSegment(pts[i].X, pts[i].Y, a.X, a.Y, b.X, b.Y)
		if d > maxDist {
			maxDist = d
			maxI = i
		}
	}
	if maxDist <= tol {
		return []Point{a, b}
	}
	left := douglasPeucker(pts[:maxI+1], tol)
	right := douglasPeucker(pts[maxI:], tol)
	return append(left[:len(left)-1], right...)
}
