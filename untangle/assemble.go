package untangle

// AssembleLoops rebuilds closed simple polygons from the remaining open
// fragments.
//
// Each round seeds a walk from the fragment owning the globally leftmost
// vertex; that vertex must sit on the outer hull of whichever loop the
// fragment belongs to, so the seed is always safe and the choice
// deterministic. The walk runs twice, once taking the rightmost turn at
// every junction and once the leftmost, and the candidate loop enclosing the
// smaller absolute area wins. At a vertex the path visits more than twice
// both windings are locally plausible; the larger-area candidate is the one
// that double-covers territory another loop will claim, so the smaller one
// is correct.
//
// Fragments consumed by the winning walk leave the pool, fragments the walk
// pushed back (the prefix cut off by an interior splice) rejoin it, and the
// round repeats until the pool is empty. Every round shrinks the pool by at
// least the seed, so termination does not depend on the input being
// well-formed.
func AssembleLoops(open FragmentList, eps float64) []Polygon {
	pool := append(FragmentList{}, open...)
	var out []Polygon
	for len(pool) > 0 {
		seedIdx := 0
		for i, f := range pool[1:] {
			mv, best := f.minVertex(), pool[seedIdx].minVertex()
			if mv.X < best.X || (mv.X == best.X && mv.Y < best.Y) {
				seedIdx = i + 1
			}
		}
		seed := pool[seedIdx]
		if seed.Closed(eps) {
			pool = append(pool[:seedIdx], pool[seedIdx+1:]...)
			out = append(out, Polygon{Points: seed.Points}.Clean(eps))
			continue
		}

		rightmost := assembleWalk(pool, seed, false, eps)
		leftmost := assembleWalk(pool, seed, true, eps)

		// A walk that closed its loop beats one that ran out of
		// continuations; between two closed walks the smaller enclosed
		// area wins.
		winner := rightmost
		if rightmost.dangling && !leftmost.dangling {
			winner = leftmost
		} else if rightmost.dangling == leftmost.dangling &&
			(Polygon{Points: leftmost.loop}).Area() < (Polygon{Points: rightmost.loop}).Area() {
			winner = leftmost
		}

		next := make(FragmentList, 0, len(pool))
		for _, f := range pool {
			if f != seed && !winner.used[f] {
				next = append(next, f)
			}
		}
		pool = append(next, winner.pushback...)
		out = append(out, Polygon{Points: winner.loop}.Clean(eps))
	}
	return out
}

type walkResult struct {
	loop     []Point
	used     map[*Fragment]bool
	pushback FragmentList
	// dangling marks a walk that ran out of continuations mid-loop. It
	// loses to a walk that closed, but when both directions dangle the
	// partial path is still accepted as a result: forward progress on
	// malformed input beats aborting the whole decomposition.
	dangling bool
}

// assembleWalk extends the seed fragment one continuation at a time until a
// loop closes. At each junction the candidates are every unused pool
// fragment, in either orientation, whose first point coincides with the
// walk's current end; the one with the minimal (rightmost) or maximal
// (leftmost) turn angle from the incoming direction is taken.
func assembleWalk(pool FragmentList, seed *Fragment, leftmost bool, eps float64) walkResult {
	acc := append([]Point{}, seed.Points...)
	used := make(map[*Fragment]bool)
	for {
		last := acc[len(acc)-1]
		in := last.Sub(acc[len(acc)-2])

		var best *Fragment
		var bestPts []Point
		bestAngle := 0.0
		for _, f := range pool {
			if f == seed || used[f] {
				continue
			}
			for _, pts := range [][]Point{f.Points, f.Reversed().Points} {
				if !SamePoint(pts[0], last, eps) {
					continue
				}
				angle := turnAngle(in, pts[1].Sub(pts[0]))
				better := angle < bestAngle
				if leftmost {
					better = angle > bestAngle
				}
				if best == nil || better {
					best, bestPts, bestAngle = f, pts, angle
				}
			}
		}

		if best == nil {
			// Dangling: no continuation anywhere. Emit what we have.
			return walkResult{loop: acc, used: used, dangling: true}
		}
		if best.Closed(eps) {
			// A closed fragment ends the walk; it is a finished loop in
			// its own right and stays in the pool for a later round.
			return walkResult{loop: acc, used: used}
		}

		used[best] = true
		far := bestPts[len(bestPts)-1]
		for k := 0; k < len(acc)-1; k++ {
			if !SamePoint(acc[k], far, eps) {
				continue
			}
			// The candidate closes the loop at acc[k]. Anything walked
			// before that point belongs to a different loop: push it
			// back for a later round.
			res := walkResult{used: used}
			if k > 0 {
				prefix := append([]Point{}, acc[:k+1]...)
				res.pushback = FragmentList{{Points: prefix, Tag: Outer}}
			}
			res.loop = append(append([]Point{}, acc[k:]...), bestPts[1:]...)
			return res
		}
		acc = append(acc, bestPts[1:]...)
	}
}
