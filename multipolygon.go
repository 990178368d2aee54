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

// A MultiPolygon is a set of zero or more polygons describing a possibly
// disconnected or multi-part region, for example the result of a
// difference that splits a shape in two. Member polygons may share
// boundary points but must not overlap in area. An empty MultiPolygon is
// a valid value describing an empty region.
type MultiPolygon []Polygon

// Bounds gives the rectangular extents of the MultiPolygon.
func (mp MultiPolygon) Bounds() *Bounds {
	b := NewBounds()
	for _, p := range mp {
		b.Extend(p.Bounds())
	}
	return b
}

// Polygons returns the polygon members of mp.
func (mp MultiPolygon) Polygons() MultiPolygon {
	return mp
}

// Area returns the sum of the areas of the member polygons.
func (mp MultiPolygon) Area() float64 {
	a := 0.
	for _, p := range mp {
		a += p.Area()
	}
	return a
}

// Length returns the total perimeter of the member polygons.
func (mp MultiPolygon) Length() float64 {
	l := 0.
	for _, p := range mp {
		l += p.Length()
	}
	return l
}

// Centroid calculates the area-weighted centroid of the member polygons.
// It returns an EmptyGeometryError if mp is empty or has zero area.
func (mp MultiPolygon) Centroid() (Point, error) {
	var area, xA, yA float64
	for _, p := range mp {
		c, err := p.Centroid()
		if err != nil {
			continue
		}
		a := p.Area()
		area += a
		xA += c.X * a
		yA += c.Y * a
	}
	if area <= 0 {
		return Point{}, EmptyGeometryError{Op: "centroid"}
	}
	return Point{X: xA / area, Y: yA / area}, nil
}

// Normalize returns a copy of mp with every member normalized.
func (mp MultiPolygon) Normalize() MultiPolygon {
	o := make(MultiPolygon, len(mp))
	for i, p := range mp {
		o[i] = p.Normalize()
	}
	return o
}

// Validate checks every member polygon. Overlap between members is not
// checked here; operations that build MultiPolygons maintain that
// invariant themselves.
func (mp MultiPolygon) Validate() error {
	for _, p := range mp {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
