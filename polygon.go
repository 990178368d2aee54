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

// A Polygon is one outer ring together with zero or more hole rings.
// Each hole must lie strictly inside the outer ring and the holes must
// not touch or overlap each other; Validate reports violations of these
// invariants as errors rather than repairing them.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// Rings returns the outer ring followed by the holes.
func (p Polygon) Rings() []Ring {
	o := make([]Ring, 0, len(p.Holes)+1)
	o = append(o, p.Outer)
	o = append(o, p.Holes...)
	return o
}

// Bounds gives the rectangular extents of the polygon.
func (p Polygon) Bounds() *Bounds {
	return p.Outer.Bounds()
}

// Polygons returns MultiPolygon{p} to fulfill the Polygonal interface.
func (p Polygon) Polygons() MultiPolygon {
	return MultiPolygon{p}
}

// Area returns the area enclosed by the outer ring minus the area of the
// holes. The result does not depend on ring winding order and is never
// negative for a valid polygon.
func (p Polygon) Area() float64 {
	a := p.Outer.Area()
	for _, h := range p.Holes {
		a -= h.Area()
	}
	return math.Max(a, 0)
}

// Length returns the total perimeter of the polygon, including holes.
func (p Polygon) Length() float64 {
	l := p.Outer.Length()
	for _, h := range p.Holes {
		l += h.Length()
	}
	return l
}

// Centroid calculates the area-weighted centroid of p, accounting for
// holes. It returns an EmptyGeometryError if p has zero area.
func (p Polygon) Centroid() (Point, error) {
	area := p.Outer.Area()
	c, err := p.Outer.Centroid()
	if err != nil {
		return Point{}, err
	}
	xA, yA := c.X*area, c.Y*area
	for _, h := range p.Holes {
		hc, err := h.Centroid()
		if err != nil {
			continue // Zero-area holes contribute nothing.
		}
		ha := h.Area()
		area -= ha
		xA -= hc.X * ha
		yA -= hc.Y * ha
	}
	if area <= 0 {
		return Point{}, EmptyGeometryError{Op: "centroid"}
	}
	return Point{X: xA / area, Y: yA / area}, nil
}

// Normalize returns a copy of p with the outer ring wound
// counterclockwise, hole rings wound clockwise, and all rings exactly
// closed.
func (p Polygon) Normalize() Polygon {
	o := Polygon{Outer: closeRing(p.Outer)}
	if o.Outer.Clockwise() {
		o.Outer = o.Outer.Reverse()
	}
	if len(p.Holes) > 0 {
		o.Holes = make([]Ring, len(p.Holes))
		for i, h := range p.Holes {
			h = closeRing(h)
			if !h.Clockwise() {
				h = h.Reverse()
			}
			o.Holes[i] = h
		}
	}
	return o
}

func closeRing(r Ring) Ring {
	o := make(Ring, len(r))
	copy(o, r)
	if len(o) > 1 {
		o[len(o)-1] = o[0]
	}
	return o
}

// Validate checks that all rings of p are well formed and that the holes
// are strictly nested inside the outer ring without touching it or each
// other. The first violation found is returned as an InvalidRingError.
func (p Polygon) Validate() error {
	if err := p.Outer.Validate(); err != nil {
		return err
	}
	tol := p.Outer.Bounds().Tolerance()
	for i, h := range p.Holes {
		if err := h.Validate(); err != nil {
			ringErr := err.(InvalidRingError)
			ringErr.Ring = i + 1
			return ringErr
		}
		for j, v := range h[:len(h)-1] {
			if pointInRing(v, p.Outer, tol) != ringInside {
				return InvalidRingError{Ring: i + 1,
					Reason: fmt.Sprintf("hole point %d is not strictly inside the outer ring", j)}
			}
		}
		if ringsIntersect(h, p.Outer) {
			return InvalidRingError{Ring: i + 1, Reason: "hole crosses the outer ring"}
		}
	}
	for i := 0; i < len(p.Holes); i++ {
		for j := i + 1; j < len(p.Holes); j++ {
			hi, hj := p.Holes[i], p.Holes[j]
			if ringsIntersect(hi, hj) {
				return InvalidRingError{Ring: j + 1,
					Reason: fmt.Sprintf("hole touches or crosses hole %d", i+1)}
			}
			if pointInRing(hj[0], hi, tol) == ringInside || pointInRing(hi[0], hj, tol) == ringInside {
				return InvalidRingError{Ring: j + 1,
					Reason: fmt.Sprintf("hole overlaps hole %d", i+1)}
			}
		}
	}
	return nil
}

// ringsIntersect reports whether any segment of a intersects any
// segment of b, including touches and collinear overlap.
func ringsIntersect(a, b Ring) bool {
	if !a.Bounds().Overlaps(b.Bounds()) {
		return false
	}
	for i := 0; i < len(a)-1; i++ {
		for j := 0; j < len(b)-1; j++ {
			kind, _, _ := robust.SegmentIntersection(
				a[i].X, a[i].Y, a[i+1].X, a[i+1].Y,
				b[j].X, b[j].Y, b[j+1].X, b[j+1].Y)
			if kind != robust.SegNone {
				return true
			}
		}
	}
	return false
}
