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

// Package rtree provides a 2D spatial index for geometries, backed by
// github.com/dhconnelly/rtreego. It is used by the boolean operation
// engine to find candidate segment pairs and is also useful to callers
// batching many operations against a large set of geometries, such as
// clipping one region against many tiles.
package rtree

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/spatialmodel/geom"
)

// Spatial is the interface for types that can be stored in the index.
type Spatial interface {
	Bounds() *geom.Bounds
}

// An Rtree is a 2D spatial index.
type Rtree struct {
	tree *rtreego.Rtree
}

type entry struct {
	s Spatial
	r rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect {
	return e.r
}

// NewTree returns a new index with the given minimum and maximum
// branching factors.
func NewTree(minBranch, maxBranch int) *Rtree {
	return &Rtree{tree: rtreego.NewTree(2, minBranch, maxBranch)}
}

// Insert adds s to the index.
func (t *Rtree) Insert(s Spatial) {
	t.tree.Insert(&entry{s: s, r: rect(s.Bounds())})
}

// SearchIntersect returns all indexed items whose bounds overlap b.
func (t *Rtree) SearchIntersect(b *geom.Bounds) []Spatial {
	hits := t.tree.SearchIntersect(rect(b))
	o := make([]Spatial, len(hits))
	for i, h := range hits {
		o[i] = h.(*entry).s
	}
	return o
}

// Size returns the number of indexed items.
func (t *Rtree) Size() int {
	return t.tree.Size()
}

// rect converts bounds to an rtreego rectangle, padding degenerate
// extents because the backing index rejects zero-size rectangles.
func rect(b *geom.Bounds) rtreego.Rect {
	minX, minY := b.Min.X, b.Min.Y
	lx := b.Max.X - minX
	ly := b.Max.Y - minY
	pad := math.Max(math.Abs(minX), math.Abs(minY))*1e-12 + math.SmallestNonzeroFloat64
	if lx <= 0 {
		lx = pad
	}
	if ly <= 0 {
		ly = pad
	}
	r, err := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{lx, ly})
	if err != nil {
		// Only reachable with non-finite bounds.
		panic(err)
	}
	return r
}
