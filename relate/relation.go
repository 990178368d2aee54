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

package relate

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/spatialmodel/geom"
	"github.com/spatialmodel/geom/robust"
)

// Relation classifies how two polygonal geometries relate to each other.
type Relation int

const (
	// Disjoint means the geometries have no points in common.
	Disjoint Relation = iota
	// Touches means the boundaries meet but the interiors do not
	// intersect.
	Touches
	// Overlaps means the interiors intersect but neither geometry
	// contains the other.
	Overlaps
	// Within means the first geometry lies entirely inside the second.
	Within
	// Contains means the second geometry lies entirely inside the
	// first. Contains and Within are mirror images: Relate(a, b)
	// returns Within exactly when Relate(b, a) returns Contains, so
	// argument order matters.
	Contains
	// Equal means the geometries cover the same region.
	Equal
)

func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "disjoint"
	case Touches:
		return "touches"
	case Overlaps:
		return "overlaps"
	case Within:
		return "within"
	case Contains:
		return "contains"
	case Equal:
		return "equal"
	}
	return "unknown"
}

// Relate classifies the relationship between a and b. Both inputs are
// validated first; malformed rings fail the whole classification with an
// InvalidRingError. Configurations that cannot be told apart within the
// floating point tolerance return a ToleranceAmbiguousError instead of
// an arbitrary answer. An empty geometry is disjoint from everything.
func Relate(a, b geom.Polygonal) (Relation, error) {
	pa, pb := a.Polygons(), b.Polygons()
	if err := pa.Validate(); err != nil {
		return Disjoint, err
	}
	if err := pb.Validate(); err != nil {
		return Disjoint, err
	}
	ba, bb := pa.Bounds(), pb.Bounds()
	comb := ba.Copy()
	comb.Extend(bb)
	tol := comb.Tolerance()
	if ba.Empty() || bb.Empty() || !ba.Buffered(tol).Overlaps(bb) {
		return Disjoint, nil
	}

	properCross, contact := boundaryContacts(pa, pb, tol)
	if properCross {
		return Overlaps, nil
	}

	aIn, aOut, aEdge := probe(pa, pb, tol)
	bIn, bOut, bEdge := probe(pb, pa, tol)

	areaEq := scalar.EqualWithinAbsOrRel(pa.Area(), pb.Area(),
		tol*comb.Diagonal(), geom.DefaultTolerance)

	switch {
	case (aIn > 0 && aOut > 0) || (bIn > 0 && bOut > 0):
		// The boundary of one geometry passes through the other without
		// a detected segment crossing: it crosses at a shared vertex.
		return Overlaps, nil
	case aIn > 0 && bIn > 0:
		if areaEq {
			return Equal, nil
		}
		return Disjoint, geom.ToleranceAmbiguousError{
			Detail: "both geometries probe inside each other but areas differ"}
	case aIn > 0:
		return Within, nil
	case bIn > 0:
		return Contains, nil
	case aOut == 0 && bOut == 0 && aEdge > 0 && bEdge > 0:
		// Every probe point of both geometries lies on the other's
		// boundary.
		if areaEq {
			return Equal, nil
		}
		return Disjoint, geom.ToleranceAmbiguousError{
			Detail: "all probe points lie on boundaries but areas differ"}
	case contact || aEdge > 0 || bEdge > 0:
		return Touches, nil
	}
	return Disjoint, nil
}

// boundaryContacts scans the ring segments of a against those of b.
// properCross reports a crossing through segment interiors; contact
// reports any kind of meeting, including endpoint touches and collinear
// overlap.
func boundaryContacts(a, b geom.MultiPolygon, tol float64) (properCross, contact bool) {
	bb := b.Bounds().Buffered(tol)
	for _, pa := range a {
		for _, ra := range pa.Rings() {
			if !ra.Bounds().Buffered(tol).Overlaps(bb) {
				continue
			}
			for i := 0; i < len(ra)-1; i++ {
				sb := geom.NewBoundsPoint(ra[i])
				sb.Extend(geom.NewBoundsPoint(ra[i+1]))
				sb = sb.Buffered(tol)
				for _, pbb := range b {
					for _, rb := range pbb.Rings() {
						if !rb.Bounds().Overlaps(sb) {
							continue
						}
						for j := 0; j < len(rb)-1; j++ {
							kind, t, u := robust.SegmentIntersection(
								ra[i].X, ra[i].Y, ra[i+1].X, ra[i+1].Y,
								rb[j].X, rb[j].Y, rb[j+1].X, rb[j+1].Y)
							if kind == robust.SegNone {
								continue
							}
							contact = true
							if kind == robust.SegCross &&
								interior(t, ra[i], ra[i+1], tol) &&
								interior(u, rb[j], rb[j+1], tol) {
								properCross = true
								return
							}
						}
					}
				}
			}
		}
	}
	return
}

// interior reports whether parameter t falls strictly inside its
// segment, further than tol from both endpoints.
func interior(t float64, a, b geom.Point, tol float64) bool {
	l := math.Hypot(b.X-a.X, b.Y-a.Y)
	if l == 0 {
		return false
	}
	pt := tol / l
	return t > pt && t < 1-pt
}

// probe counts how the ring vertices and edge midpoints of a fall
// relative to b.
func probe(a, b geom.MultiPolygon, tol float64) (in, out, edge int) {
	for _, pa := range a {
		for _, r := range pa.Rings() {
			for i := 0; i < len(r)-1; i++ {
				mid := geom.Point{X: (r[i].X + r[i+1].X) / 2, Y: (r[i].Y + r[i+1].Y) / 2}
				for _, pt := range [2]geom.Point{r[i], mid} {
					switch pointIn(pt, b, tol) {
					case Inside:
						in++
					case Outside:
						out++
					case OnEdge:
						edge++
					}
				}
			}
		}
	}
	return
}

func nextAfter(v float64) float64 {
	return math.Nextafter(v, math.Inf(1))
}
