package untangle

import "math"

// DefaultEpsilon is the coincidence tolerance used when the caller does not
// supply one. Callers working with already-rounded coordinates may widen it.
// Every function in this package takes the tolerance explicitly; there is no
// hidden global.
const DefaultEpsilon = 1e-9

// probeDivisor scales the inside/outside probe offset used when classifying
// fragments: probes sit at (bounding box diagonal / probeDivisor) to either
// side of a fragment's first edge.
const probeDivisor = 2048

// Equal compares two floats under the given tolerance.
func Equal(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// SamePoint recognizes when two points are close enough to be treated as one.
func SamePoint(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// CircularIndex treats an array of length n as a circular buffer. Unlike the
// raw modulo operator it only gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Lerp interpolates between a and b. t=0 gives a, t=1 gives b.
func Lerp(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// turnAngle is the signed angle from the incoming direction to the outgoing
// direction, in (-π, π]. Right turns are negative, left turns positive, 0 is
// straight through and π an exact reversal. The range is half-open, so
// comparing angles is a total order over candidate continuations.
func turnAngle(in, out Point) float64 {
	return math.Atan2(in.Cross(out), in.Dot(out))
}

func reversedPoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// finite rejects NaN and ±Inf coordinates.
func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
