package untangle

import (
	"fmt"
	"strings"

	"github.com/karlbd/untangle/dbg"
	"github.com/logrusorgru/aurora"
)

// Point holds a 2D coordinate. X increases to the right and Y increases up
// the page, as on mathematical graph paper.
//
// Points are plain values. Everything the engine produces is derived from one
// decomposition call and owns its own point storage; no stage aliases the
// slices of another.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point      { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point      { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point  { return Point{p.X * s, p.Y * s} }
func (p Point) Cross(q Point) float64  { return p.X*q.Y - p.Y*q.X }
func (p Point) Dot(q Point) float64    { return p.X*q.X + p.Y*q.Y }

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Segment is the edge from Start to End. The engine mostly refers to edges by
// index into a point list; this type exists for call sites where carrying the
// endpoints is clearer.
type Segment struct {
	Start Point
	End   Point
}

// Intersection is a crossing between two non-adjacent segments of the same
// path. SegA < SegB always. The parameters locate the crossing along each
// segment and both lie in (eps, 1+eps]: a parameter at the very start of a
// segment would just be the shared vertex of the previous edge and is never
// reported.
type Intersection struct {
	At     Point
	SegA   int
	ParamA float64
	SegB   int
	ParamB float64
}

func (x Intersection) String() string {
	return fmt.Sprintf("%v @ seg %d t=%g / seg %d u=%g", x.At, x.SegA, x.ParamA, x.SegB, x.ParamB)
}

// Tag classifies a fragment. Outer fragments lie on the boundary of the
// region the path encloses; Inner fragments have enclosed area on both sides
// and contribute nothing to the final decomposition.
type Tag int

const (
	Outer Tag = iota
	Inner
)

func (t Tag) String() string {
	switch t {
	case Outer:
		return "Outer"
	case Inner:
		return "Inner"
	}
	return "Unknown"
}

// Fragment is one contiguous arc of the original path between two
// consecutive cut points (path endpoints or self-intersection points).
type Fragment struct {
	Points []Point
	Tag    Tag
}

func (f *Fragment) First() Point { return f.Points[0] }
func (f *Fragment) Last() Point  { return f.Points[len(f.Points)-1] }

// Closed reports whether the fragment loops back onto its own first point.
func (f *Fragment) Closed(eps float64) bool {
	return len(f.Points) > 2 && SamePoint(f.First(), f.Last(), eps)
}

// Reversed returns an independent copy of the fragment with its points in
// the opposite order. The tag is orientation-free and carries over.
func (f *Fragment) Reversed() *Fragment {
	return &Fragment{Points: reversedPoints(f.Points), Tag: f.Tag}
}

// minVertex returns the leftmost vertex of the fragment, breaking X ties by
// taking the lower Y. The fragment owning the globally leftmost vertex is
// guaranteed to lie on the outer hull of some loop, which makes it a safe
// seed for assembly.
func (f *Fragment) minVertex() Point {
	best := f.Points[0]
	for _, p := range f.Points[1:] {
		if p.X < best.X || (p.X == best.X && p.Y < best.Y) {
			best = p
		}
	}
	return best
}

func (f *Fragment) String() string {
	pts := make([]string, len(f.Points))
	for i, p := range f.Points {
		pts[i] = p.String()
	}
	return fmt.Sprintf("Fragment %s %s [%s]", f.DbgName(), f.Tag, strings.Join(pts, " "))
}

// DbgName gives the fragment a stable readable name for debugging. Inner
// fragments are red, closed ones cyan, everything else green.
func (f *Fragment) DbgName() string {
	name := dbg.Name(f)
	switch {
	case f.Tag == Inner:
		name = aurora.Red(name).String()
	case len(f.Points) > 2 && f.First() == f.Last():
		name = aurora.Cyan(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return name
}

// FragmentList is a working pool of fragments.
type FragmentList []*Fragment

func (fl FragmentList) String() string {
	var parts []string
	for _, f := range fl {
		parts = append(parts, f.DbgName())
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
