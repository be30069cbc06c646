package untangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func frag(pts ...Point) *Fragment {
	return &Fragment{Points: pts}
}

func TestStitchChain(t *testing.T) {
	merged := StitchFragments(FragmentList{
		frag(Point{0, 0}, Point{1, 0}),
		frag(Point{1, 0}, Point{1, 1}),
		frag(Point{1, 1}, Point{0, 1}),
	}, DefaultEpsilon)
	assert.Len(t, merged, 1)
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, merged[0].Points)
	assert.False(t, merged[0].Closed(DefaultEpsilon))
}

func TestStitchCloses(t *testing.T) {
	merged := StitchFragments(FragmentList{
		frag(Point{0, 0}, Point{2, 0}),
		frag(Point{2, 0}, Point{1, 2}),
		frag(Point{1, 2}, Point{0, 0}),
	}, DefaultEpsilon)
	assert.Len(t, merged, 1)
	assert.True(t, merged[0].Closed(DefaultEpsilon))
}

func TestStitchLeavesAmbiguityAlone(t *testing.T) {
	// Two fragments start where the head ends; which one continues the
	// loop is the assembler's call, not ours.
	merged := StitchFragments(FragmentList{
		frag(Point{0, 0}, Point{1, 0}),
		frag(Point{1, 0}, Point{2, 1}),
		frag(Point{1, 0}, Point{2, -1}),
	}, DefaultEpsilon)
	assert.Len(t, merged, 3)
}

func TestStitchKeepsJunctionWithFinalizedStarter(t *testing.T) {
	// Two fragments start at (1,0), but the first is popped as a head of
	// its own before (0,0)->(1,0) reaches the junction. The junction is
	// no less ambiguous for it: the head must still stop there instead of
	// merging with the one starter left in the pool.
	merged := StitchFragments(FragmentList{
		frag(Point{1, 0}, Point{2, 1}),
		frag(Point{0, 0}, Point{1, 0}),
		frag(Point{1, 0}, Point{2, -1}),
	}, DefaultEpsilon)
	assert.Len(t, merged, 3)
	assert.Equal(t, []Point{{0, 0}, {1, 0}}, merged[1].Points)
}

func TestStitchOnlyMergesForward(t *testing.T) {
	// The second fragment *ends* at the head's last point. Merging it
	// would require a reversal, so it is left for the assembler.
	merged := StitchFragments(FragmentList{
		frag(Point{0, 0}, Point{1, 0}),
		frag(Point{2, 2}, Point{1, 0}),
	}, DefaultEpsilon)
	assert.Len(t, merged, 2)
}

func TestStitchDoesNotMutateInput(t *testing.T) {
	a := frag(Point{0, 0}, Point{1, 0})
	b := frag(Point{1, 0}, Point{1, 1})
	StitchFragments(FragmentList{a, b}, DefaultEpsilon)
	assert.Equal(t, []Point{{0, 0}, {1, 0}}, a.Points)
	assert.Equal(t, []Point{{1, 0}, {1, 1}}, b.Points)
}
