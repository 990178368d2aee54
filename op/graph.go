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
	"math"
	"sort"

	"github.com/google/btree"

	"github.com/spatialmodel/geom"
	"github.com/spatialmodel/geom/index/rtree"
	"github.com/spatialmodel/geom/relate"
	"github.com/spatialmodel/geom/robust"
)

const (
	subject = iota
	clipping
)

// A node is a shared vertex in the augmented planar graph formed by the
// two operand boundaries. Boundary points closer together than the
// snapping tolerance map to the same node.
type node struct {
	id int
	pt geom.Point
}

// A fragment is a directed piece of an operand boundary between two
// consecutive graph nodes, annotated with the position of its midpoint
// relative to the other operand.
type fragment struct {
	start, end *node
	operand    int
	status     relate.WithinStatus
	used       bool
}

// A segment is one original ring edge together with the parameters at
// which the other operand's boundary cuts it.
type segment struct {
	a, b    geom.Point
	operand int
	cuts    []float64
}

func (s *segment) Bounds() *geom.Bounds {
	b := geom.NewBoundsPoint(s.a)
	b.Extend(geom.NewBoundsPoint(s.b))
	return b
}

func (s *segment) at(t float64) geom.Point {
	switch t {
	case 0:
		return s.a
	case 1:
		return s.b
	}
	return geom.Point{X: s.a.X + t*(s.b.X-s.a.X), Y: s.a.Y + t*(s.b.Y-s.a.Y)}
}

func (s *segment) length() float64 {
	return math.Hypot(s.b.X-s.a.X, s.b.Y-s.a.Y)
}

// A clipGraph holds the node pool and boundary fragments of one boolean
// operation.
type clipGraph struct {
	tol    float64
	nodes  *btree.BTreeG[*node]
	nextID int
	frags  []*fragment
}

func newClipGraph(tol float64) *clipGraph {
	return &clipGraph{
		tol: tol,
		nodes: btree.NewG[*node](8, func(a, b *node) bool {
			if a.pt.X != b.pt.X {
				return a.pt.X < b.pt.X
			}
			return a.pt.Y < b.pt.Y
		}),
	}
}

// node returns the existing node within the snapping tolerance of pt,
// or creates a new one.
func (g *clipGraph) node(pt geom.Point) *node {
	var found *node
	pivot := &node{pt: geom.Point{X: pt.X - g.tol, Y: math.Inf(-1)}}
	g.nodes.AscendGreaterOrEqual(pivot, func(n *node) bool {
		if n.pt.X > pt.X+g.tol {
			return false
		}
		if math.Abs(n.pt.Y-pt.Y) <= g.tol && math.Abs(n.pt.X-pt.X) <= g.tol {
			found = n
			return false
		}
		return true
	})
	if found != nil {
		return found
	}
	n := &node{id: g.nextID, pt: pt}
	g.nextID++
	g.nodes.ReplaceOrInsert(n)
	return n
}

// ringSegments lists the directed edges of the rings of mp.
func ringSegments(mp geom.MultiPolygon, operand int) []*segment {
	var segs []*segment
	for _, p := range mp {
		for _, r := range p.Rings() {
			for i := 0; i < len(r)-1; i++ {
				segs = append(segs, &segment{a: r[i], b: r[i+1], operand: operand})
			}
		}
	}
	return segs
}

// cut registers the parameters at which segments sa and sb intersect
// each other.
func cut(sa, sb *segment) {
	kind, t, u := robust.SegmentIntersection(
		sa.a.X, sa.a.Y, sa.b.X, sa.b.Y,
		sb.a.X, sb.a.Y, sb.b.X, sb.b.Y)
	switch kind {
	case robust.SegCross:
		sa.cuts = append(sa.cuts, t)
		sb.cuts = append(sb.cuts, u)
	case robust.SegCollinear:
		sa.cuts = append(sa.cuts,
			robust.Param(sa.a.X, sa.a.Y, sa.b.X, sa.b.Y, sb.a.X, sb.a.Y),
			robust.Param(sa.a.X, sa.a.Y, sa.b.X, sa.b.Y, sb.b.X, sb.b.Y))
		sb.cuts = append(sb.cuts,
			robust.Param(sb.a.X, sb.a.Y, sb.b.X, sb.b.Y, sa.a.X, sa.a.Y),
			robust.Param(sb.a.X, sb.a.Y, sb.b.X, sb.b.Y, sa.b.X, sa.b.Y))
	}
}

// build splits the boundaries of a and b at their mutual intersections
// and classifies every resulting fragment against the opposite operand.
func (g *clipGraph) build(a, b geom.MultiPolygon) {
	segsA := ringSegments(a, subject)
	segsB := ringSegments(b, clipping)

	index := rtree.NewTree(8, 16)
	for _, s := range segsB {
		index.Insert(s)
	}
	for _, sa := range segsA {
		for _, hit := range index.SearchIntersect(sa.Bounds().Buffered(g.tol)) {
			cut(sa, hit.(*segment))
		}
	}

	for _, s := range segsA {
		g.fragment(s, b)
	}
	for _, s := range segsB {
		g.fragment(s, a)
	}
}

// fragment splits s at its recorded cut parameters and appends the
// resulting classified fragments to the graph.
func (g *clipGraph) fragment(s *segment, other geom.MultiPolygon) {
	params := []float64{0, 1}
	l := s.length()
	if l == 0 {
		return
	}
	pTol := g.tol / l
	for _, c := range s.cuts {
		if c > pTol && c < 1-pTol {
			params = append(params, c)
		}
	}
	sort.Float64s(params)

	prev := 0.
	for _, t := range params[1:] {
		if t-prev <= pTol {
			continue
		}
		start := g.node(s.at(prev))
		end := g.node(s.at(t))
		if start != end {
			mid := s.at((prev + t) / 2)
			g.frags = append(g.frags, &fragment{
				start:   start,
				end:     end,
				operand: s.operand,
				status:  relate.PointInTol(mid, other, g.tol),
			})
		}
		prev = t
	}
}

// relink joins the selected directed fragments into closed rings. At
// each node the walk continues along the unused fragment that turns
// farthest to the left, which keeps the enclosed interior on the left
// side of every ring.
func relink(frags []*fragment) ([]geom.Ring, error) {
	sort.Slice(frags, func(i, j int) bool {
		if frags[i].start.id != frags[j].start.id {
			return frags[i].start.id < frags[j].start.id
		}
		if frags[i].end.id != frags[j].end.id {
			return frags[i].end.id < frags[j].end.id
		}
		return frags[i].operand < frags[j].operand
	})
	out := make(map[*node][]*fragment, len(frags))
	for _, f := range frags {
		out[f.start] = append(out[f.start], f)
	}

	var rings []geom.Ring
	for _, f := range frags {
		if f.used {
			continue
		}
		ring := geom.Ring{f.start.pt, f.end.pt}
		f.used = true
		cur := f
		for steps := 0; cur.end != f.start; steps++ {
			if steps > len(frags) {
				return nil, fmt.Errorf(
					"op: boundary relinking did not close a ring near (%g, %g)",
					cur.end.pt.X, cur.end.pt.Y)
			}
			next := leftmost(cur, out[cur.end])
			if next == nil {
				return nil, fmt.Errorf(
					"op: open boundary at (%g, %g)", cur.end.pt.X, cur.end.pt.Y)
			}
			next.used = true
			ring = append(ring, next.end.pt)
			cur = next
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// leftmost picks the unused candidate that makes the sharpest left turn
// relative to the direction of cur. The reverse twin of cur is a last
// resort only.
func leftmost(cur *fragment, candidates []*fragment) *fragment {
	dinX := cur.end.pt.X - cur.start.pt.X
	dinY := cur.end.pt.Y - cur.start.pt.Y
	var best *fragment
	bestAngle := math.Inf(-1)
	var twin *fragment
	for _, c := range candidates {
		if c.used {
			continue
		}
		if c.end == cur.start && c.start == cur.end {
			twin = c
			continue
		}
		doutX := c.end.pt.X - c.start.pt.X
		doutY := c.end.pt.Y - c.start.pt.Y
		angle := math.Atan2(dinX*doutY-dinY*doutX, dinX*doutX+dinY*doutY)
		if angle > bestAngle {
			bestAngle = angle
			best = c
		}
	}
	if best == nil {
		return twin
	}
	return best
}

// assemble groups the relinked rings into polygons: counterclockwise
// rings become outer boundaries and clockwise rings become holes of the
// smallest outer ring that contains them. Rings with area within the
// sliver threshold are dropped.
func assemble(rings []geom.Ring, areaTol, tol float64) geom.MultiPolygon {
	var outers []geom.Polygon
	var holes []geom.Ring
	for _, r := range rings {
		if !r.Closed() {
			r = append(r, r[0])
		}
		a := r.SignedArea()
		if math.Abs(a) <= areaTol || len(r) < 4 {
			continue
		}
		if a > 0 {
			outers = append(outers, geom.Polygon{Outer: r})
		} else {
			holes = append(holes, r)
		}
	}
	for _, h := range holes {
		bestArea := math.Inf(1)
		best := -1
		for i, o := range outers {
			if !ringContains(o.Outer, h, tol) {
				continue
			}
			if a := o.Outer.Area(); a < bestArea {
				bestArea = a
				best = i
			}
		}
		if best >= 0 {
			outers[best].Holes = append(outers[best].Holes, h)
		}
	}
	out := make(geom.MultiPolygon, 0, len(outers))
	out = append(out, outers...)
	return out
}

// ringContains reports whether hole ring h lies inside outer ring o,
// judged by the first vertex of h that is clearly off o's boundary.
func ringContains(o, h geom.Ring, tol float64) bool {
	p := geom.Polygon{Outer: o}
	for _, v := range h[:len(h)-1] {
		switch relate.PointInTol(v, p, tol) {
		case relate.Inside:
			return true
		case relate.Outside:
			return false
		}
	}
	// Every vertex of h sits on o's boundary.
	return false
}
