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
	"testing"

	"github.com/spatialmodel/geom"
)

func TestBufferZero(t *testing.T) {
	m := mainland()
	got, err := Buffer(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d polygons, want 1", len(got))
	}
	if !areaEq(got.Area(), m.Area()) {
		t.Errorf("area = %g, want %g", got.Area(), m.Area())
	}
}

func TestBufferPositive(t *testing.T) {
	// Dilating a unit square by 1: the exact area is 1 + 4 + π; the arc
	// approximation undershoots π slightly.
	got, err := Buffer(box(0, 0, 1, 1), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d polygons, want 1", len(got))
	}
	want := 5 + math.Pi
	if math.Abs(got.Area()-want) > 0.01 {
		t.Errorf("area = %g, want about %g", got.Area(), want)
	}
}

func TestBufferNegative(t *testing.T) {
	// Eroding a 4x4 square by 1 leaves the central 2x2 square exactly:
	// inward offsets of a convex polygon have no arc segments.
	got, err := Buffer(box(0, 0, 4, 4), -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d polygons, want 1", len(got))
	}
	if !areaEq(got.Area(), 4) {
		t.Errorf("area = %g, want 4", got.Area())
	}
}

func TestBufferErodesToEmpty(t *testing.T) {
	got, err := Buffer(box(0, 0, 1, 1), -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d polygons, want 0", len(got))
	}
}

func TestBufferMonotonic(t *testing.T) {
	m := mainland()
	prev := -1.
	for _, d := range []float64{0, 0.25, 0.5, 1} {
		got, err := Buffer(m, d)
		if err != nil {
			t.Fatalf("distance %g: %v", d, err)
		}
		if a := got.Area(); a < prev {
			t.Errorf("area decreased from %g to %g at distance %g", prev, a, d)
		} else {
			prev = a
		}
	}
}

func TestBufferHole(t *testing.T) {
	p := box(0, 0, 6, 6)
	p.Holes = []geom.Ring{{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 2}}}

	// Dilation grows the outer boundary and shrinks the hole.
	got, err := Buffer(p, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d polygons, want 1", len(got))
	}
	if len(got[0].Holes) != 1 {
		t.Fatalf("got %d holes, want 1", len(got[0].Holes))
	}
	// 36 + 24*0.5 + π/4 outside, minus the eroded 1x1 hole.
	want := 36 + 12 + math.Pi/4 - 1
	if math.Abs(got.Area()-want) > 0.02 {
		t.Errorf("area = %g, want about %g", got.Area(), want)
	}
}

func TestBufferSegmentsCoarse(t *testing.T) {
	// Fewer arc segments approximate the circle more coarsely, so the
	// dilated area shrinks but stays above the inscribed polygon bound.
	fine, err := BufferSegments(box(0, 0, 1, 1), 1, 16)
	if err != nil {
		t.Fatal(err)
	}
	coarse, err := BufferSegments(box(0, 0, 1, 1), 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if coarse.Area() > fine.Area() {
		t.Errorf("coarse area %g exceeds fine area %g", coarse.Area(), fine.Area())
	}
	if coarse.Area() < 5+2*math.Sqrt2-1e-6 {
		t.Errorf("coarse area %g below the inscribed octagon bound", coarse.Area())
	}
}
