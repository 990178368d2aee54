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

// Package relate classifies the topological relationship between
// geometries: point against polygon and polygon against polygon.
// Boundary points are classified with a tolerance scaled to the
// bounding box diagonal of the inputs (geom.DefaultTolerance).
package relate

import (
	"github.com/spatialmodel/geom"
	"github.com/spatialmodel/geom/robust"
)

// WithinStatus gives the position of a point relative to a polygonal
// geometry: inside it, outside it, or on its boundary.
type WithinStatus int

const (
	Outside WithinStatus = iota
	Inside
	OnEdge
)

func (s WithinStatus) String() string {
	switch s {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case OnEdge:
		return "on edge"
	}
	return "unknown"
}

// PointIn determines whether pt is inside pg, outside pg, or on its
// boundary. A point inside a hole is outside the polygon. Boundary
// membership is decided within the default tolerance for pg's extent.
func PointIn(pt geom.Point, pg geom.Polygonal) WithinStatus {
	b := pg.Bounds()
	b.Extend(pt.Bounds())
	return pointIn(pt, pg.Polygons(), b.Tolerance())
}

// PointInTol is like PointIn but with an explicit absolute tolerance
// for boundary membership.
func PointInTol(pt geom.Point, pg geom.Polygonal, tol float64) WithinStatus {
	return pointIn(pt, pg.Polygons(), tol)
}

func pointIn(pt geom.Point, polys geom.MultiPolygon, tol float64) WithinStatus {
	// Member polygons of a valid MultiPolygon do not overlap in area, so
	// the first polygon claiming the point decides.
	for _, poly := range polys {
		if st := pointInPolygon(pt, poly, tol); st != Outside {
			return st
		}
	}
	return Outside
}

func pointInPolygon(pt geom.Point, poly geom.Polygon, tol float64) WithinStatus {
	st := pointInRing(pt, poly.Outer, tol)
	if st != Inside {
		return st
	}
	for _, h := range poly.Holes {
		switch pointInRing(pt, h, tol) {
		case OnEdge:
			return OnEdge
		case Inside:
			return Outside
		}
	}
	return Inside
}

// pointInRing ray-casts pt against a single ring.
// Adapted from https://rosettacode.org/wiki/Ray-casting_algorithm#Go.
func pointInRing(pt geom.Point, r geom.Ring, tol float64) WithinStatus {
	for i := 0; i < len(r)-1; i++ {
		if robust.OnSegment(pt.X, pt.Y, r[i].X, r[i].Y, r[i+1].X, r[i+1].Y, tol) {
			return OnEdge
		}
	}
	in := false
	for i := 0; i < len(r)-1; i++ {
		if rayIntersectsSegment(pt, r[i], r[i+1]) {
			in = !in
		}
	}
	if in {
		return Inside
	}
	return Outside
}

func rayIntersectsSegment(p, a, b geom.Point) bool {
	if a.Y > b.Y {
		a, b = b, a
	}
	for p.Y == a.Y || p.Y == b.Y {
		p.Y = nextAfter(p.Y)
	}
	if p.Y < a.Y || p.Y > b.Y {
		return false
	}
	// A ray in +X from p crosses the segment exactly when p lies strictly
	// to the left of the segment directed from its lower to its upper
	// endpoint.
	return robust.Orient(a.X, a.Y, b.X, b.Y, p.X, p.Y) > 0
}
