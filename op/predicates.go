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

package op

import (
	"fmt"

	"github.com/spatialmodel/geom"
	"github.com/spatialmodel/geom/relate"
)

// UnsupportedGeometryError is returned by predicates that receive a
// geometry type they cannot work with.
type UnsupportedGeometryError struct {
	G geom.Geom
}

func (e UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("op: unsupported geometry type %T", e.G)
}

// Within determines whether g lies entirely inside p. A point exactly
// on the boundary of p touches p but is not within it. Within(a, b) and
// Contains(a, b) have opposite argument orders: Within asks whether the
// first argument is inside the second.
func Within(g geom.Geom, p geom.Polygonal) (bool, error) {
	switch v := g.(type) {
	case geom.Point:
		mp := p.Polygons()
		if err := mp.Validate(); err != nil {
			return false, err
		}
		return relate.PointIn(v, mp) == relate.Inside, nil
	case geom.Polygonal:
		rel, err := relate.Relate(v, p)
		if err != nil {
			return false, err
		}
		return rel == relate.Within || rel == relate.Equal, nil
	}
	return false, UnsupportedGeometryError{G: g}
}

// Contains determines whether g lies entirely inside p. It is
// Within with the argument order reversed.
func Contains(p geom.Polygonal, g geom.Geom) (bool, error) {
	return Within(g, p)
}

// Intersects determines whether a and b share any point, including
// boundary contact.
func Intersects(a, b geom.Polygonal) (bool, error) {
	rel, err := relate.Relate(a, b)
	if err != nil {
		return false, err
	}
	return rel != relate.Disjoint, nil
}

// Disjoint determines whether a and b share no points at all.
func Disjoint(a, b geom.Polygonal) (bool, error) {
	rel, err := relate.Relate(a, b)
	if err != nil {
		return false, err
	}
	return rel == relate.Disjoint, nil
}
