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

// Package robust holds the low-level geometric predicates that the rest
// of the library is built on: orientation tests, segment intersection,
// and point-to-segment distance. All functions operate on raw float64
// coordinates so that the package has no dependencies and can be tested
// in isolation.
//
// The orientation test uses a floating point filter with a conservative
// error bound. Configurations that fall inside the uncertainty band of
// the filter are reported as collinear rather than being resolved by an
// arbitrary sign, so degenerate near-parallel inputs degrade to the
// collinear code path instead of producing inconsistent answers.
package robust

import "math"

// orientErrBound is (3 + 16ε)ε where ε is the float64 machine epsilon.
// If the magnitude of the orientation determinant is below this bound
// times the magnitude of its terms, its sign cannot be trusted.
const orientErrBound = 3.3306690738754716e-16

// Orient returns the orientation of point (cx, cy) relative to the
// directed line from (ax, ay) to (bx, by): +1 if it lies to the left
// (counterclockwise), -1 if it lies to the right (clockwise), and 0 if
// the three points are collinear or too close to collinear to decide.
func Orient(ax, ay, bx, by, cx, cy float64) int {
	detLeft := (bx - ax) * (cy - ay)
	detRight := (by - ay) * (cx - ax)
	det := detLeft - detRight
	detSum := math.Abs(detLeft) + math.Abs(detRight)
	if math.Abs(det) >= orientErrBound*detSum {
		switch {
		case det > 0:
			return 1
		case det < 0:
			return -1
		}
	}
	return 0
}

// SegKind classifies the intersection of two segments.
type SegKind int

const (
	// SegNone means the segments do not intersect.
	SegNone SegKind = iota
	// SegCross means the segments meet in a single point, either a
	// proper crossing or an endpoint touch.
	SegCross
	// SegCollinear means the segments lie on the same line and share
	// more than a single point.
	SegCollinear
)

// SegmentIntersection determines how segment a-b intersects segment c-d.
// For SegCross it also returns the intersection parameters t along a-b
// and u along c-d, both clamped to [0, 1]. For SegCollinear the overlap
// range must be recovered by the caller with Param.
func SegmentIntersection(ax, ay, bx, by, cx, cy, dx, dy float64) (kind SegKind, t, u float64) {
	o1 := Orient(ax, ay, bx, by, cx, cy)
	o2 := Orient(ax, ay, bx, by, dx, dy)
	o3 := Orient(cx, cy, dx, dy, ax, ay)
	o4 := Orient(cx, cy, dx, dy, bx, by)

	if o1 == 0 && o2 == 0 {
		// Same line. Overlap exists if the parameter ranges meet.
		tc := Param(ax, ay, bx, by, cx, cy)
		td := Param(ax, ay, bx, by, dx, dy)
		lo, hi := math.Min(tc, td), math.Max(tc, td)
		if hi < 0 || lo > 1 {
			return SegNone, 0, 0
		}
		if hi == 0 || lo == 1 {
			// Endpoint contact only.
			if hi == 0 {
				t = 0
			} else {
				t = 1
			}
			if tc == t {
				u = 0
			} else {
				u = 1
			}
			return SegCross, t, u
		}
		return SegCollinear, 0, 0
	}

	if o1 != o2 && o3 != o4 {
		denom := (bx-ax)*(dy-cy) - (by-ay)*(dx-cx)
		if denom == 0 {
			return SegNone, 0, 0
		}
		t = ((cx-ax)*(dy-cy) - (cy-ay)*(dx-cx)) / denom
		u = ((cx-ax)*(by-ay) - (cy-ay)*(bx-ax)) / denom
		return SegCross, clamp01(t), clamp01(u)
	}
	return SegNone, 0, 0
}

// Param returns the parameter of point (px, py) along the segment from
// (ax, ay) to (bx, by), using the dominant axis of the segment. The
// point is assumed to lie on (or very near) the segment's line; the
// result is 0 at the start of the segment and 1 at its end.
func Param(ax, ay, bx, by, px, py float64) float64 {
	dx, dy := bx-ax, by-ay
	if math.Abs(dx) >= math.Abs(dy) {
		if dx == 0 {
			return 0
		}
		return (px - ax) / dx
	}
	return (py - ay) / dy
}

// DistPointSegment returns the distance from point (px, py) to the
// segment from (ax, ay) to (bx, by).
func DistPointSegment(px, py, ax, ay, bx, by float64) float64 {
	vx, vy := bx-ax, by-ay
	wx, wy := px-ax, py-ay

	c1 := wx*vx + wy*vy
	if c1 <= 0 {
		return math.Hypot(px-ax, py-ay)
	}
	c2 := vx*vx + vy*vy
	if c2 <= c1 {
		return math.Hypot(px-bx, py-by)
	}
	b := c1 / c2
	return math.Hypot(px-(ax+b*vx), py-(ay+b*vy))
}

// OnSegment reports whether point (px, py) lies within tol of the
// segment from (ax, ay) to (bx, by).
func OnSegment(px, py, ax, ay, bx, by, tol float64) bool {
	return DistPointSegment(px, py, ax, ay, bx, by) <= tol
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
