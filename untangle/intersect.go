package untangle

import "math"

// Intersections finds every crossing between non-adjacent segments of the
// path. Segment i runs from points[i] to points[i+1]; a closed path has one
// extra segment wrapping from the last point back to the first.
//
// Pairs that share an endpoint by construction (consecutive segments, and
// the wrap-around pair of a closed path) are skipped outright. For everything
// else the 2x2 linear system is solved for the parameters t and u along each
// segment, and a crossing is accepted only when both land in (eps, 1+eps].
// Rejecting parameters near zero keeps a crossing exactly at a shared vertex
// from being reported twice, once per incident segment pair.
//
// Parallel and overlapping collinear segments make the system singular and
// are skipped without being reported. That is a known limitation, not an
// error: pathological inputs with collinear overlaps decompose best-effort.
//
// Results come back in deterministic order: ascending first segment index,
// then ascending second. The search is a plain O(n²) pairwise sweep; paths
// in this domain are small enough that a sweep-line would be wasted effort.
func Intersections(points []Point, closed bool, eps float64) []Intersection {
	n := len(points)
	segN := n
	if !closed {
		segN = n - 1
	}
	var found []Intersection
	for i := 0; i < segN; i++ {
		si := Segment{Start: points[i], End: points[CircularIndex(i+1, n)]}
		for j := i + 1; j < segN; j++ {
			if j == i+1 || (closed && i == 0 && j == segN-1) {
				continue // shares an endpoint by construction
			}
			sj := Segment{Start: points[j], End: points[CircularIndex(j+1, n)]}

			// Cheap rejection: bounding boxes that don't come near
			// each other can't cross.
			if math.Max(si.Start.X, si.End.X)+eps < math.Min(sj.Start.X, sj.End.X) ||
				math.Max(sj.Start.X, sj.End.X)+eps < math.Min(si.Start.X, si.End.X) ||
				math.Max(si.Start.Y, si.End.Y)+eps < math.Min(sj.Start.Y, sj.End.Y) ||
				math.Max(sj.Start.Y, sj.End.Y)+eps < math.Min(si.Start.Y, si.End.Y) {
				continue
			}

			t, u, ok := si.Intersect(sj, eps)
			if !ok || t <= eps || t > 1+eps || u <= eps || u > 1+eps {
				continue
			}
			found = append(found, Intersection{
				At:     Lerp(si.Start, si.End, t),
				SegA:   i,
				ParamA: t,
				SegB:   j,
				ParamB: u,
			})
		}
	}
	return found
}

// Intersect solves the 2x2 system for the crossing of the infinite lines
// through s and o. It returns the line parameters along each segment and
// whether the system is solvable at all; parallel and degenerate pairs are
// not. Callers decide which parameter range to accept.
func (s Segment) Intersect(o Segment, eps float64) (t, u float64, ok bool) {
	ab := s.End.Sub(s.Start)
	cd := o.End.Sub(o.Start)
	det := ab.Cross(cd)
	if math.Abs(det) < eps {
		return 0, 0, false
	}
	ac := o.Start.Sub(s.Start)
	return ac.Cross(cd) / det, ac.Cross(ab) / det, true
}
