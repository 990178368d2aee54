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

// Package op computes boolean set operations between polygonal
// geometries (intersection, union, difference, and symmetric
// difference), buffers geometries by a signed distance, and exposes
// boolean topological predicates built on the relate package.
//
// The engine splits both operand boundaries at their mutual
// intersections, classifies every boundary fragment against the other
// operand, keeps the fragments selected by the requested operation, and
// re-links them into result rings. For fixed inputs the output is
// deterministic, but ring starting vertices are not guaranteed stable
// across versions: compare results by area or shape, not by raw vertex
// sequence.
//
// All functions are pure: inputs are never modified, and concurrent
// calls on distinct values are safe.
package op

import (
	"fmt"

	"github.com/spatialmodel/geom"
	"github.com/spatialmodel/geom/relate"
)

// Op is a boolean set operation.
type Op int

const (
	INTERSECTION Op = iota
	UNION
	DIFFERENCE
	XOR
)

// Construct performs the requested boolean operation between subject
// and clipping. DIFFERENCE keeps the parts of subject outside clipping,
// so argument order matters; the other operations are symmetric.
// Inputs are validated first and malformed geometry fails the whole
// operation with an InvalidRingError; results that contain no area,
// such as the intersection of disjoint geometries, are returned as an
// empty MultiPolygon, not an error.
func Construct(subject, clipping geom.Polygonal, operation Op) (geom.MultiPolygon, error) {
	a := subject.Polygons()
	b := clipping.Polygons()
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return construct(a.Normalize(), b.Normalize(), operation)
}

// construct assumes validated, normalized operands.
func construct(a, b geom.MultiPolygon, operation Op) (geom.MultiPolygon, error) {
	switch operation {
	case XOR:
		// Symmetric difference is the union of the two one-sided
		// differences, which cannot overlap in area.
		d1, err := construct(a, b, DIFFERENCE)
		if err != nil {
			return nil, err
		}
		d2, err := construct(b, a, DIFFERENCE)
		if err != nil {
			return nil, err
		}
		return append(d1, d2...), nil
	case INTERSECTION, UNION, DIFFERENCE:
	default:
		return nil, fmt.Errorf("op: unknown operation %d", operation)
	}

	comb := a.Bounds()
	comb.Extend(b.Bounds())
	tol := comb.Tolerance()

	if len(a) == 0 || len(b) == 0 || !a.Bounds().Buffered(tol).Overlaps(b.Bounds()) {
		switch operation {
		case INTERSECTION:
			return geom.MultiPolygon{}, nil
		case UNION:
			out := append(geom.MultiPolygon{}, a...)
			return append(out, b...), nil
		default:
			return append(geom.MultiPolygon{}, a...), nil
		}
	}

	g := newClipGraph(tol)
	g.build(a, b)
	selected := selectFragments(g.frags, operation)
	rings, err := relink(selected)
	if err != nil {
		return nil, err
	}
	return assemble(rings, tol*comb.Diagonal(), tol), nil
}

// selectFragments keeps the boundary fragments that outline the result
// of the operation. Fragments lying on both boundaries are kept once,
// from the subject side, when the operand interiors agree there: for
// intersection and union that is a shared same-direction fragment, and
// for difference a shared opposite-direction fragment.
func selectFragments(frags []*fragment, operation Op) []*fragment {
	type key struct{ start, end *node }
	shared := make(map[key]bool)
	for _, f := range frags {
		if f.operand == clipping && f.status == relate.OnEdge {
			shared[key{f.start, f.end}] = true
		}
	}

	var out []*fragment
	for _, f := range frags {
		keep := false
		switch operation {
		case INTERSECTION:
			if f.operand == subject {
				keep = f.status == relate.Inside ||
					(f.status == relate.OnEdge && shared[key{f.start, f.end}])
			} else {
				keep = f.status == relate.Inside
			}
		case UNION:
			if f.operand == subject {
				keep = f.status == relate.Outside ||
					(f.status == relate.OnEdge && shared[key{f.start, f.end}])
			} else {
				keep = f.status == relate.Outside
			}
		case DIFFERENCE:
			if f.operand == subject {
				keep = f.status == relate.Outside ||
					(f.status == relate.OnEdge && shared[key{f.end, f.start}])
			} else if f.status == relate.Inside {
				// Boundary of the subtracted region inside the subject
				// becomes a hole boundary, wound the other way.
				out = append(out, &fragment{start: f.end, end: f.start, operand: f.operand})
				continue
			}
		}
		if keep {
			out = append(out, f)
		}
	}
	return out
}

// Intersection returns the region shared by a and b.
func Intersection(a, b geom.Polygonal) (geom.MultiPolygon, error) {
	return Construct(a, b, INTERSECTION)
}

// Union returns the region covered by a or b or both.
func Union(a, b geom.Polygonal) (geom.MultiPolygon, error) {
	return Construct(a, b, UNION)
}

// Difference returns the parts of base not covered by subtracted.
// Difference(a, b) and Difference(b, a) are different regions whenever
// the two geometries partially overlap.
func Difference(base, subtracted geom.Polygonal) (geom.MultiPolygon, error) {
	return Construct(base, subtracted, DIFFERENCE)
}

// SymmetricDifference returns the region covered by exactly one of a
// and b.
func SymmetricDifference(a, b geom.Polygonal) (geom.MultiPolygon, error) {
	return Construct(a, b, XOR)
}
