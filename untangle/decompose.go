package untangle

// Decompose takes a path that may cross itself any number of times and
// returns the simple (non-self-crossing) closed polygons bounding the
// regions the path encloses. Fragments that come out of the split already
// closed lead the result; loops the assembler had to rebuild follow. Callers
// should rely on set membership and areas only, not ordering.
//
// On a path with no self-intersections this is the identity up to cleanup:
// the split yields one closed Outer fragment equal to the cleaned input and
// the assembler never runs.
//
// Structural problems with the input (fewer than two distinct points,
// non-finite coordinates) panic with a DecomposeError before any stage runs;
// the package-level API converts that into a returned error. Degenerate
// geometry inside the path — collinear overlaps, near-parallel crossings —
// is skipped locally and never aborts the call.
func Decompose(points []Point, closed bool, eps float64) []Polygon {
	for _, p := range points {
		if !finite(p) {
			fatalf("path contains a non-finite coordinate at %v", p)
		}
	}
	pts := cleanPoints(points, eps)
	if closed && len(pts) > 1 && SamePoint(pts[0], pts[len(pts)-1], eps) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		fatalf("path needs at least 2 distinct points: got=%d", len(pts))
	}

	xs := Intersections(pts, closed, eps)
	frags := SplitAtIntersections(pts, closed, xs, eps)

	// Inner fragments separate two covered regions; they carry no
	// boundary and are dropped here. Everything else must be consumed
	// exactly once below.
	var done []Polygon
	var open FragmentList
	for _, f := range frags {
		if f.Tag == Inner {
			continue
		}
		if f.Closed(eps) {
			done = append(done, splitPinched(Polygon{Points: f.Points}.Clean(eps), eps)...)
		} else {
			open = append(open, f)
		}
	}

	var assemble FragmentList
	for _, f := range StitchFragments(open, eps) {
		if f.Closed(eps) {
			done = append(done, splitPinched(Polygon{Points: f.Points}.Clean(eps), eps)...)
		} else {
			assemble = append(assemble, f)
		}
	}

	for _, p := range AssembleLoops(assemble, eps) {
		done = append(done, splitPinched(p, eps)...)
	}
	return done
}

// splitPinched breaks a loop that revisits one of its own vertices into the
// sub-loops meeting there. A repeated vertex is a self-touch the
// intersector never reports (the crossing parameters land exactly on the
// shared point), so a loop carrying one would leave the engine non-simple.
// Splitting recurses until no vertex repeats; sub-loops too short to bound
// area are dropped.
func splitPinched(poly Polygon, eps float64) []Polygon {
	pts := poly.Points
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if !SamePoint(pts[i], pts[j], eps) {
				continue
			}
			lobe := Polygon{Points: append([]Point{}, pts[i:j]...)}.Clean(eps)
			rest := Polygon{Points: append(append([]Point{}, pts[:i]...), pts[j:]...)}.Clean(eps)
			var out []Polygon
			if len(lobe.Points) > 2 {
				out = append(out, splitPinched(lobe, eps)...)
			}
			if len(rest.Points) > 2 {
				out = append(out, splitPinched(rest, eps)...)
			}
			return out
		}
	}
	return []Polygon{poly}
}
