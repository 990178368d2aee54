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

import "math"

// Bounds holds the spatial extent of a geometry.
type Bounds struct {
	Min, Max Point
}

// NewBounds initializes a new empty bounds object.
func NewBounds() *Bounds {
	return &Bounds{Point{X: math.Inf(1), Y: math.Inf(1)}, Point{X: math.Inf(-1), Y: math.Inf(-1)}}
}

// NewBoundsPoint creates a bounds object from a point.
func NewBoundsPoint(point Point) *Bounds {
	return &Bounds{Point{X: point.X, Y: point.Y}, Point{X: point.X, Y: point.Y}}
}

// Copy returns a copy of b.
func (b *Bounds) Copy() *Bounds {
	return &Bounds{Point{X: b.Min.X, Y: b.Min.Y}, Point{X: b.Max.X, Y: b.Max.Y}}
}

// Bounds returns b.
func (b *Bounds) Bounds() *Bounds {
	return b
}

// Empty returns true if b does not contain any points.
func (b *Bounds) Empty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Extend increases the extent of b to include b2.
func (b *Bounds) Extend(b2 *Bounds) {
	if b2 == nil {
		return
	}
	b.extendPoint(b2.Min)
	b.extendPoint(b2.Max)
}

func (b *Bounds) extendPoint(point Point) *Bounds {
	b.Min.X = math.Min(b.Min.X, point.X)
	b.Min.Y = math.Min(b.Min.Y, point.Y)
	b.Max.X = math.Max(b.Max.X, point.X)
	b.Max.Y = math.Max(b.Max.Y, point.Y)
	return b
}

func (b *Bounds) extendPoints(points []Point) {
	for _, point := range points {
		b.extendPoint(point)
	}
}

// Overlaps returns whether b and b2 overlap.
func (b *Bounds) Overlaps(b2 *Bounds) bool {
	return b.Min.X <= b2.Max.X && b.Min.Y <= b2.Max.Y && b.Max.X >= b2.Min.X && b.Max.Y >= b2.Min.Y
}

// Contains returns whether b contains the point p.
func (b *Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Buffered returns a copy of b expanded by distance d on all sides.
func (b *Bounds) Buffered(d float64) *Bounds {
	return &Bounds{
		Min: Point{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: Point{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}

// Diagonal returns the length of the diagonal of b, or zero if b is empty.
func (b *Bounds) Diagonal() float64 {
	if b.Empty() {
		return 0
	}
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Tolerance returns the absolute comparison tolerance for geometries
// covered by b: DefaultTolerance scaled by the diagonal of b.
func (b *Bounds) Tolerance() float64 {
	return DefaultTolerance * b.Diagonal()
}
