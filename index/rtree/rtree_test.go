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

package rtree

import (
	"testing"

	"github.com/spatialmodel/geom"
)

func cell(x, y float64) geom.Polygon {
	return geom.Polygon{Outer: geom.Ring{
		{X: x, Y: y}, {X: x + 1, Y: y}, {X: x + 1, Y: y + 1}, {X: x, Y: y + 1}, {X: x, Y: y},
	}}
}

func TestSearchIntersect(t *testing.T) {
	tree := NewTree(8, 16)
	for x := 0.; x < 10; x++ {
		for y := 0.; y < 10; y++ {
			tree.Insert(cell(x, y))
		}
	}
	if n := tree.Size(); n != 100 {
		t.Fatalf("size = %d, want 100", n)
	}

	window := &geom.Bounds{Min: geom.Point{X: 2.5, Y: 2.5}, Max: geom.Point{X: 4.5, Y: 4.5}}
	hits := tree.SearchIntersect(window)
	// Cells with x in {2, 3, 4} and y in {2, 3, 4}.
	if len(hits) != 9 {
		t.Errorf("got %d hits, want 9", len(hits))
	}
	for _, h := range hits {
		if !h.Bounds().Overlaps(window) {
			t.Errorf("hit %+v does not overlap the search window", h.Bounds())
		}
	}

	far := &geom.Bounds{Min: geom.Point{X: 50, Y: 50}, Max: geom.Point{X: 51, Y: 51}}
	if hits := tree.SearchIntersect(far); len(hits) != 0 {
		t.Errorf("got %d hits outside the grid, want 0", len(hits))
	}
}

func TestDegenerateBounds(t *testing.T) {
	// Points and axis-aligned segments have zero-size bounds; the index
	// must still accept and find them.
	tree := NewTree(2, 4)
	pt := geom.Point{X: 3, Y: 4}
	tree.Insert(pt)
	hits := tree.SearchIntersect((&geom.Bounds{
		Min: geom.Point{X: 2, Y: 3}, Max: geom.Point{X: 5, Y: 5},
	}))
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if got := hits[0].(geom.Point); !got.Equals(pt) {
		t.Errorf("got %+v, want %+v", got, pt)
	}
}
