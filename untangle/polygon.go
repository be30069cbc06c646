package untangle

// Polygon is an ordered vertex loop with an implicit edge joining the last
// point back to the first. The decomposition output consists of simple
// polygons; the input path may cross itself arbitrarily.
type Polygon struct {
	Points []Point
}

// SignedArea is the shoelace area of the polygon: positive for
// counter-clockwise vertex order, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	sum := 0.0
	n := len(p.Points)
	for i, a := range p.Points {
		b := p.Points[CircularIndex(i+1, n)]
		sum += a.Cross(b)
	}
	return sum / 2
}

// Area is the absolute shoelace area.
func (p Polygon) Area() float64 {
	a := p.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// BoundingBox returns the lower-left and upper-right corners of the
// polygon's axis-aligned bounding box.
func (p Polygon) BoundingBox() (min, max Point) {
	min, max = p.Points[0], p.Points[0]
	for _, pt := range p.Points[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	return min, max
}

// WindingNumber counts the signed crossings of a rightward ray from pt: each
// upward edge passing left of pt adds one, each downward edge subtracts one.
// Works on self-intersecting polygons.
func (p Polygon) WindingNumber(pt Point) int {
	wn := 0
	n := len(p.Points)
	for i, a := range p.Points {
		b := p.Points[CircularIndex(i+1, n)]
		if a.Y <= pt.Y {
			if b.Y > pt.Y && sideOf(a, b, pt) > 0 {
				wn++
			}
		} else {
			if b.Y <= pt.Y && sideOf(a, b, pt) < 0 {
				wn--
			}
		}
	}
	return wn
}

// Contains is the nonzero winding rule: pt is inside if the winding number
// is anything but zero.
func (p Polygon) Contains(pt Point) bool {
	return p.WindingNumber(pt) != 0
}

// sideOf is positive when pt lies left of the directed line a->b, negative
// when right, zero when collinear.
func sideOf(a, b, pt Point) float64 {
	return b.Sub(a).Cross(pt.Sub(a))
}

// Reverse returns a copy with the opposite orientation.
func (p Polygon) Reverse() Polygon {
	return Polygon{Points: reversedPoints(p.Points)}
}

// Clean removes consecutive duplicate points within eps, including a last
// point that duplicates the first. Clean is idempotent: applying it twice
// gives the same result as applying it once.
func (p Polygon) Clean(eps float64) Polygon {
	out := Polygon{Points: cleanPoints(p.Points, eps)}
	if n := len(out.Points); n > 1 && SamePoint(out.Points[0], out.Points[n-1], eps) {
		out.Points = out.Points[:n-1]
	}
	return out
}

// cleanPoints drops consecutive points that coincide within eps. Zero-length
// edges contribute nothing to the geometry but would produce singular
// systems in the intersector.
func cleanPoints(pts []Point, eps float64) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && SamePoint(p, out[len(out)-1], eps) {
			continue
		}
		out = append(out, p)
	}
	return out
}
