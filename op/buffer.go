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
	"math"

	"github.com/spatialmodel/geom"
)

// defaultQuadSegments is the number of segments used to approximate a
// quarter turn of a round buffer join.
const defaultQuadSegments = 16

// Buffer returns a copy of g whose boundary is offset outward
// (distance > 0) or inward (distance < 0) by distance, in the planar
// unit of g's coordinates, with round joins. Buffer performs no unit
// conversion; callers must express distance in the same unit as the
// input coordinates. A negative distance that erodes a part of g to
// nothing removes that part from the result, and eroding everything
// away yields an empty MultiPolygon. Buffer(g, 0) returns g unchanged.
func Buffer(g geom.Polygonal, distance float64) (geom.MultiPolygon, error) {
	return BufferSegments(g, distance, defaultQuadSegments)
}

// BufferSegments is Buffer with control over the number of arc segments
// per quarter turn used to approximate round joins.
func BufferSegments(g geom.Polygonal, distance float64, quadSegments int) (geom.MultiPolygon, error) {
	mp := g.Polygons()
	if err := mp.Validate(); err != nil {
		return nil, err
	}
	mp = mp.Normalize()
	if distance == 0 {
		return append(geom.MultiPolygon{}, mp...), nil
	}
	if quadSegments < 1 {
		quadSegments = defaultQuadSegments
	}

	// The Minkowski dilation of the boundary by a disc: the union of a
	// stadium around every ring edge. Adding it grows the geometry by
	// |distance|; subtracting it erodes by the same amount.
	band, err := boundaryBand(mp, math.Abs(distance), 4*quadSegments)
	if err != nil {
		return nil, err
	}
	if distance > 0 {
		return construct(mp, band, UNION)
	}
	return construct(mp, band, DIFFERENCE)
}

// boundaryBand unions rectangles along every ring edge with discs at
// every ring vertex, covering all points within distance d of the
// boundary of mp.
func boundaryBand(mp geom.MultiPolygon, d float64, arcSegments int) (geom.MultiPolygon, error) {
	var band geom.MultiPolygon
	add := func(r geom.Ring) error {
		p := geom.Polygon{Outer: r}.Normalize()
		merged, err := construct(band, geom.MultiPolygon{p}, UNION)
		if err != nil {
			return err
		}
		band = merged
		return nil
	}
	for _, p := range mp {
		for _, r := range p.Rings() {
			for i := 0; i < len(r)-1; i++ {
				if err := add(edgeRect(r[i], r[i+1], d)); err != nil {
					return nil, err
				}
				if err := add(disc(r[i], d, arcSegments)); err != nil {
					return nil, err
				}
			}
		}
	}
	return band, nil
}

// edgeRect returns the rectangle covering all points within distance d
// of segment a-b, not counting the round caps.
func edgeRect(a, b geom.Point, d float64) geom.Ring {
	l := math.Hypot(b.X-a.X, b.Y-a.Y)
	nx := -(b.Y - a.Y) / l * d
	ny := (b.X - a.X) / l * d
	return geom.Ring{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
		{X: a.X + nx, Y: a.Y + ny},
	}
}

// disc returns a counterclockwise n-gon approximating the circle of
// radius d around c.
func disc(c geom.Point, d float64, n int) geom.Ring {
	r := make(geom.Ring, n+1)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		r[i] = geom.Point{X: c.X + d*math.Cos(a), Y: c.Y + d*math.Sin(a)}
	}
	r[n] = r[0]
	return r
}
