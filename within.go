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
	"math"

	"github.com/spatialmodel/geom/robust"
)

// Ring membership states used by validation. The public point-in-polygon
// predicate lives in the relate subpackage.
const (
	ringOutside = iota
	ringInside
	ringOnEdge
)

// pointInRing determines whether pt is inside r, outside r, or within
// tol of its boundary, by ray casting.
// Adapted from https://rosettacode.org/wiki/Ray-casting_algorithm#Go.
func pointInRing(pt Point, r Ring, tol float64) int {
	for i := 0; i < len(r)-1; i++ {
		if robust.OnSegment(pt.X, pt.Y, r[i].X, r[i].Y, r[i+1].X, r[i+1].Y, tol) {
			return ringOnEdge
		}
	}
	in := false
	for i := 0; i < len(r)-1; i++ {
		if rayIntersectsSegment(pt, r[i], r[i+1]) {
			in = !in
		}
	}
	if in {
		return ringInside
	}
	return ringOutside
}

func rayIntersectsSegment(p, a, b Point) bool {
	if a.Y > b.Y {
		a, b = b, a
	}
	for p.Y == a.Y || p.Y == b.Y {
		p.Y = math.Nextafter(p.Y, math.Inf(1))
	}
	if p.Y < a.Y || p.Y > b.Y {
		return false
	}
	// A ray in +X from p crosses the segment exactly when p lies strictly
	// to the left of the segment directed from its lower to its upper
	// endpoint.
	return robust.Orient(a.X, a.Y, b.X, b.Y, p.X, p.Y) > 0
}
