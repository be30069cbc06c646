package untangle

// StitchFragments merges chains of open fragments that connect
// unambiguously, so the assembler has fewer, longer fragments to reason
// about. This pass is purely an optimization: skipping it entirely would
// change nothing but the assembler's workload.
//
// Only forward merges happen here. The head fragment is extended while
// exactly one fragment of the whole input starts at its last point; a
// fragment that merely *ends* there would need reversing, which can flip
// orientation decisions that belong to the assembler, so it is ignored. Zero
// starts or more than one finalizes the head fragment as-is and the
// ambiguity is left for the assembler's turn-angle rules.
func StitchFragments(frags FragmentList, eps float64) FragmentList {
	pool := append(FragmentList{}, frags...)
	var result FragmentList
	for len(pool) > 0 {
		cur := &Fragment{
			Points: append([]Point{}, pool[0].Points...),
			Tag:    pool[0].Tag,
		}
		pool = pool[1:]
		for !cur.Closed(eps) {
			// Ambiguity is judged against the whole input, not the
			// shrinking pool. A fragment already absorbed into a
			// finalized chain still marks its start point as a
			// junction; counting only the pool would merge across
			// that junction and bury the crossing in a chain's
			// interior, out of the assembler's reach.
			starts := 0
			for _, f := range frags {
				if SamePoint(f.First(), cur.Last(), eps) {
					starts++
				}
			}
			if starts != 1 {
				break
			}
			matchIdx := -1
			for i, f := range pool {
				if SamePoint(f.First(), cur.Last(), eps) {
					matchIdx = i
				}
			}
			if matchIdx < 0 {
				break
			}
			next := pool[matchIdx]
			pool = append(pool[:matchIdx], pool[matchIdx+1:]...)
			// Drop the shared point so it isn't doubled.
			cur.Points = append(cur.Points, next.Points[1:]...)
		}
		result = append(result, cur)
	}
	return result
}
