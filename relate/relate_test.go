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
	"testing"

	"github.com/spatialmodel/geom"
)

func box(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{Outer: geom.Ring{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	}}
}

func mainland() geom.Polygon {
	return geom.Polygon{Outer: geom.Ring{
		{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 3}, {X: 4, Y: 5.5}, {X: 3.5, Y: 4},
		{X: 3, Y: 5}, {X: 2, Y: 5}, {X: 2, Y: 4}, {X: 1, Y: 5}, {X: 0, Y: 3}, {X: 1, Y: 1},
	}}
}

func TestPointIn(t *testing.T) {
	holed := geom.Polygon{
		Outer: geom.Ring{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
		Holes: []geom.Ring{{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 1}}},
	}
	tests := []struct {
		name string
		pt   geom.Point
		pg   geom.Polygonal
		want WithinStatus
	}{
		{"inside", geom.Point{X: 0.5, Y: 2}, holed, Inside},
		{"outside", geom.Point{X: 5, Y: 5}, holed, Outside},
		{"in hole", geom.Point{X: 2, Y: 2}, holed, Outside},
		{"on outer edge", geom.Point{X: 0, Y: 2}, holed, OnEdge},
		{"on hole edge", geom.Point{X: 1, Y: 2}, holed, OnEdge},
		{"on vertex", geom.Point{X: 4, Y: 4}, holed, OnEdge},
		{"interior", geom.Point{X: 2.5, Y: 2.5}, mainland(), Inside},
		{"under bottom notch", geom.Point{X: 2, Y: 1.8}, mainland(), Outside},
		{"range centroid in mainland", geom.Point{X: 2.5, Y: 4.5}, mainland(), Inside},
		{"notch outside", geom.Point{X: 1.5, Y: 4.8}, mainland(), Outside},
		// Shares an X coordinate with the cape vertex (5, 3); the ray
		// cast must not count the east coast edge as a crossing.
		{"east of cape", geom.Point{X: 5, Y: 4.5}, mainland(), Outside},
		{"west of east coast", geom.Point{X: 4, Y: 3}, mainland(), Inside},
	}
	for _, tt := range tests {
		if got := PointIn(tt.pt, tt.pg); got != tt.want {
			t.Errorf("%s: PointIn = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPointInMultiPolygon(t *testing.T) {
	mp := geom.MultiPolygon{box(0, 0, 1, 1), box(3, 0, 4, 1)}
	if got := PointIn(geom.Point{X: 3.5, Y: 0.5}, mp); got != Inside {
		t.Errorf("point in second member: got %v, want %v", got, Inside)
	}
	if got := PointIn(geom.Point{X: 2, Y: 0.5}, mp); got != Outside {
		t.Errorf("point between members: got %v, want %v", got, Outside)
	}
}

func TestRelate(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Polygonal
		want Relation
	}{
		{"disjoint", box(0, 0, 1, 1), box(3, 3, 4, 4), Disjoint},
		{"touching edge", box(0, 0, 1, 1), box(1, 0, 2, 1), Touches},
		{"touching corner", box(0, 0, 1, 1), box(1, 1, 2, 2), Touches},
		{"overlapping", box(0, 0, 2, 2), box(1, 1, 3, 3), Overlaps},
		{"within", box(1, 1, 2, 2), box(0, 0, 4, 4), Within},
		{"contains", box(0, 0, 4, 4), box(1, 1, 2, 2), Contains},
		{"equal", box(0, 0, 2, 2), box(0, 0, 2, 2), Equal},
		{"mainland and range", mainland(), box(0, 3, 5, 6), Overlaps},
		{"empty operand", geom.MultiPolygon{}, box(0, 0, 1, 1), Disjoint},
	}
	for _, tt := range tests {
		got, err := Relate(tt.a, tt.b)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: Relate = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRelateMirror(t *testing.T) {
	// Relate(a, b) == Within exactly when Relate(b, a) == Contains.
	small, big := box(1, 1, 2, 2), box(0, 0, 4, 4)
	r1, err := Relate(small, big)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Relate(big, small)
	if err != nil {
		t.Fatal(err)
	}
	if r1 != Within || r2 != Contains {
		t.Errorf("got %v and %v, want within and contains", r1, r2)
	}
}

func TestRelateAmbiguous(t *testing.T) {
	// Identical outer squares with different disjoint holes: every probe
	// point of each hole lies inside the other geometry, the outer
	// boundaries only overlap collinearly, and the areas differ. No
	// relation fits, so the classification must refuse rather than guess.
	a := geom.Polygon{
		Outer: geom.Ring{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 6}, {X: 0, Y: 6}, {X: 0, Y: 0}},
		Holes: []geom.Ring{{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}}},
	}
	b := geom.Polygon{
		Outer: geom.Ring{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 6}, {X: 0, Y: 6}, {X: 0, Y: 0}},
		Holes: []geom.Ring{{{X: 3, Y: 3}, {X: 5, Y: 3}, {X: 5, Y: 5}, {X: 3, Y: 5}, {X: 3, Y: 3}}},
	}
	_, err := Relate(a, b)
	if err == nil {
		t.Fatal("expected an error for an ambiguous configuration")
	}
	if _, ok := err.(geom.ToleranceAmbiguousError); !ok {
		t.Errorf("error type = %T, want ToleranceAmbiguousError", err)
	}
}

func TestRelateInvalid(t *testing.T) {
	bowtie := geom.Polygon{Outer: geom.Ring{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}}}
	if _, err := Relate(bowtie, box(0, 0, 1, 1)); err == nil {
		t.Error("relating a self-intersecting ring should fail")
	}
}
