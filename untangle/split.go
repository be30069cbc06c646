package untangle

import (
	"math"
	"sort"
)

// A cut is a position along the path: a fractional parameter on one segment.
// The path's own start and end are cuts too, so that walking consecutive
// cut pairs covers the path exactly once.
type cut struct {
	seg   int
	param float64
}

func pointAt(points []Point, c cut) Point {
	n := len(points)
	return Lerp(points[c.seg], points[CircularIndex(c.seg+1, n)], c.param)
}

// SplitAtIntersections slices the path at every intersection parameter and
// classifies each resulting fragment as Outer or Inner.
//
// The cut list merges both (segment, parameter) occurrences of every
// intersection with the path's own boundary markers, sorted by path
// position. Deduplication is positional, not geometric: a self-touching
// vertex is one geometric point but two distinct path positions, and both
// cuts must survive or the loops joined there would fuse.
func SplitAtIntersections(points []Point, closed bool, xs []Intersection, eps float64) FragmentList {
	n := len(points)
	lastSeg := n - 1
	if !closed {
		lastSeg = n - 2
	}

	cuts := make([]cut, 0, 2*len(xs)+2)
	cuts = append(cuts, cut{0, 0})
	for _, x := range xs {
		cuts = append(cuts, cut{x.SegA, x.ParamA}, cut{x.SegB, x.ParamB})
	}
	cuts = append(cuts, cut{lastSeg, 1})
	sort.Slice(cuts, func(i, j int) bool {
		if cuts[i].seg != cuts[j].seg {
			return cuts[i].seg < cuts[j].seg
		}
		return cuts[i].param < cuts[j].param
	})
	deduped := cuts[:1]
	for _, c := range cuts[1:] {
		prev := deduped[len(deduped)-1]
		if c.seg == prev.seg && Equal(c.param, prev.param, eps) {
			continue
		}
		deduped = append(deduped, c)
	}

	original := Polygon{Points: points}
	scale := probeOffset(original)

	var frags FragmentList
	for i := 0; i+1 < len(deduped); i++ {
		pts := extract(points, deduped[i], deduped[i+1], eps)
		if len(pts) < 2 {
			continue // cut pair degenerated to a single point
		}
		f := &Fragment{Points: pts}
		f.Tag = classify(f, original, scale, eps)
		frags = append(frags, f)
	}
	return frags
}

// extract builds the sub-path from cut a to cut b, interpolating exactly at
// the fractional ends and carrying every original vertex in between.
// Consecutive coincident points are collapsed as they are appended, so a cut
// sitting exactly on a vertex does not duplicate it.
func extract(points []Point, a, b cut, eps float64) []Point {
	n := len(points)
	pts := []Point{pointAt(points, a)}
	push := func(p Point) {
		if !SamePoint(p, pts[len(pts)-1], eps) {
			pts = append(pts, p)
		}
	}
	for v := a.seg + 1; v <= b.seg; v++ {
		push(points[CircularIndex(v, n)])
	}
	push(pointAt(points, b))
	return pts
}

// probeOffset is the distance the classifier steps off a fragment edge when
// probing which side is enclosed: a small fixed fraction of the path's
// characteristic scale.
func probeOffset(p Polygon) float64 {
	min, max := p.BoundingBox()
	d := max.Sub(min)
	return math.Sqrt(d.Dot(d)) / probeDivisor
}

// classify tags a fragment by probing both sides of its first edge against
// the original, possibly self-crossing path under the nonzero winding rule.
// A fragment with enclosed territory on both sides separates two covered
// regions and is Inner; one touched by the outside on either flank is part
// of the boundary and stays Outer.
func classify(f *Fragment, original Polygon, offset, eps float64) Tag {
	dir := f.Points[1].Sub(f.Points[0])
	length := math.Sqrt(dir.Dot(dir))
	if length < eps {
		return Outer
	}
	normal := Point{-dir.Y / length, dir.X / length}
	mid := Lerp(f.Points[0], f.Points[1], 0.5)
	left := mid.Add(normal.Scale(offset))
	right := mid.Sub(normal.Scale(offset))
	if original.Contains(left) && original.Contains(right) {
		return Inner
	}
	return Outer
}
