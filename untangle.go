// Decompose self-intersecting 2D paths into simple polygons.
//
// This package takes an arbitrary closed path, which may cross itself any
// number of times, and produces the set of simple (non-self-crossing)
// closed polygons bounding the regions the path encloses under the nonzero
// winding rule.
package untangle

import (
	"github.com/karlbd/untangle/untangle"
)

type Point = untangle.Point
type Polygon = untangle.Polygon

// DefaultEpsilon is the coincidence tolerance used unless WithTolerance
// overrides it.
const DefaultEpsilon = untangle.DefaultEpsilon

type config struct {
	eps    float64
	closed bool
}

type Option func(*config)

// WithTolerance widens (or narrows) the coincidence tolerance used for
// every eps-gated decision in the engine. Useful when the input coordinates
// have already been rounded.
func WithTolerance(eps float64) Option {
	return func(c *config) { c.eps = eps }
}

// Open marks the path as not closing back from its last point to its first.
func Open() Option {
	return func(c *config) { c.closed = false }
}

// Decompose a path into simple polygons.
//
// The path is an ordered point list, implicitly closed unless the Open
// option is given. Paths with fewer than two distinct points or non-finite
// coordinates return an error. On degenerate self-touching geometry the
// result is best effort; on well-formed self-intersecting paths it is
// exact: the output polygons tile the region the path encloses under the
// nonzero winding rule, with multiply-wound territory covered once. Only
// when every enclosed region is singly wound does the signed output area
// sum to the input's shoelace area; a doubly wound path like a pentagram
// encloses less once-counted area than its shoelace suggests.
func Decompose(points []Point, opts ...Option) (result []Polygon, err error) {
	defer func() {
		recoveredErr := untangle.HandleDecomposePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	c := config{eps: untangle.DefaultEpsilon, closed: true}
	for _, opt := range opts {
		opt(&c)
	}
	return untangle.Decompose(points, c.closed, c.eps), nil
}
