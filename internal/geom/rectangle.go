package geom

import "fmt"

// Edge indices into Rectangle.Edges.
const (
	EdgeTop = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Rectangle is an axis-aligned box anchored at its upper-left corner.
// Y grows downward, so Top() < Bottom().
type Rectangle struct {
	upperLeft Point
	width     float64
	height    float64
}

// NewRectangle creates a rectangle. Negative sizes are clamped to zero.
func NewRectangle(upperLeft Point, width, height float64) Rectangle {
	return Rectangle{
		upperLeft: upperLeft,
		width:     max(width, 0),
		height:    max(height, 0),
	}
}

// NewRectangleXY creates a rectangle from its upper-left coordinates.
func NewRectangleXY(x, y, width, height float64) Rectangle {
	return NewRectangle(Point{X: x, Y: y}, width, height)
}

func (r Rectangle) UpperLeft() Point { return r.upperLeft }
func (r Rectangle) Width() float64   { return r.width }
func (r Rectangle) Height() float64  { return r.height }
func (r Rectangle) Left() float64    { return r.upperLeft.X }
func (r Rectangle) Right() float64   { return r.upperLeft.X + r.width }
func (r Rectangle) Top() float64     { return r.upperLeft.Y }
func (r Rectangle) Bottom() float64  { return r.upperLeft.Y + r.height }

// Center returns the midpoint of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.upperLeft.X + r.width/2, Y: r.upperLeft.Y + r.height/2}
}

// Edges returns the four boundary segments in top, right, bottom, left order.
// They run clockwise: each edge starts where the previous one ended.
func (r Rectangle) Edges() [4]Line {
	ul := r.upperLeft
	ur := Point{X: r.Right(), Y: r.Top()}
	lr := Point{X: r.Right(), Y: r.Bottom()}
	ll := Point{X: r.Left(), Y: r.Bottom()}

	return [4]Line{
		EdgeTop:    NewLine(ul, ur),
		EdgeRight:  NewLine(ur, lr),
		EdgeBottom: NewLine(lr, ll),
		EdgeLeft:   NewLine(ll, ul),
	}
}

// IntersectionPoints returns the distinct points where l crosses the boundary,
// in edge order.
func (r Rectangle) IntersectionPoints(l Line) []Point {
	var points []Point
	for _, edge := range r.Edges() {
		p, ok := l.IntersectionWith(edge)
		if !ok || containsPoint(points, p) {
			continue
		}
		points = append(points, p)
	}
	return points
}

// ContainsPoint reports whether p lies inside or on the boundary.
func (r Rectangle) ContainsPoint(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Inflate returns a copy grown by margin on every side.
func (r Rectangle) Inflate(margin float64) Rectangle {
	return NewRectangleXY(
		r.upperLeft.X-margin,
		r.upperLeft.Y-margin,
		r.width+2*margin,
		r.height+2*margin,
	)
}

// Translate returns a copy moved by (dx, dy).
func (r Rectangle) Translate(dx, dy float64) Rectangle {
	return NewRectangleXY(r.upperLeft.X+dx, r.upperLeft.Y+dy, r.width, r.height)
}

// String implements fmt.Stringer.
func (r Rectangle) String() string {
	return fmt.Sprintf("[%v %gx%g]", r.upperLeft, r.width, r.height)
}

func containsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q.Equals(p) {
			return true
		}
	}
	return false
}
