package geom

import (
	"fmt"
	"math"
)

// intersectionPrecision is the fixed-point grid general-case intersections are
// rounded to before the on-segment test.
const intersectionPrecision = 1e9

// Line is a directed segment from start to end. Zero-length lines are valid.
type Line struct {
	start Point
	end   Point
}

// NewLine creates a segment from a to b.
func NewLine(a, b Point) Line {
	return Line{start: a, end: b}
}

// NewLineXY creates a segment from (x1, y1) to (x2, y2).
func NewLineXY(x1, y1, x2, y2 float64) Line {
	return Line{start: Point{X: x1, Y: y1}, end: Point{X: x2, Y: y2}}
}

// Start returns the starting point.
func (l Line) Start() Point {
	return l.start
}

// End returns the ending point.
func (l Line) End() Point {
	return l.end
}

// Length returns the segment length (0 for degenerate lines).
func (l Line) Length() float64 {
	return l.start.Distance(l.end)
}

// Middle returns the midpoint of the segment.
func (l Line) Middle() Point {
	return Point{X: (l.start.X + l.end.X) / 2, Y: (l.start.Y + l.end.Y) / 2}
}

// IsIntersecting reports whether the two segments share at least one point.
//
// Two vertical segments intersect when they sit on the same x and their y ranges
// overlap. Other parallel segments intersect when they are collinear and overlap
// along x, or when they touch end-to-start. Everything else goes through IntersectionWith.
func (l Line) IsIntersecting(other Line) bool {
	if l.isVertical() && other.isVertical() {
		return l.start.X == other.start.X &&
			(l.start.InRangeY(other) ||
				l.end.InRangeY(other) ||
				other.start.InRangeY(l) ||
				other.end.InRangeY(l))
	}
	if l.isParallel(other) {
		return (l.isCollinear(other) && l.isOverlapping(other)) ||
			l.start.Equals(other.end) ||
			l.end.Equals(other.start)
	}
	_, ok := l.IntersectionWith(other)
	return ok
}

// IsIntersectingBoth reports whether l intersects both a and b.
func (l Line) IsIntersectingBoth(a, b Line) bool {
	return l.IsIntersecting(a) && l.IsIntersecting(b)
}

// IntersectionWith returns the single point where the segments cross.
// Parallel segments (including collinear ones) have no unique point and report false.
func (l Line) IntersectionWith(other Line) (Point, bool) {
	if l.isParallel(other) {
		return Point{}, false
	}

	// A vertical segment has no slope; substitute its x into the other line.
	if l.isVertical() {
		return l.acceptIfOnBoth(other, l.start.X, other.yAt(l.start.X))
	}
	if other.isVertical() {
		return l.acceptIfOnBoth(other, other.start.X, l.yAt(other.start.X))
	}

	a1, b1, c1 := l.coefficients()
	a2, b2, c2 := other.coefficients()

	det := a1*b2 - a2*b1
	if det == 0 {
		return Point{}, false
	}

	x := roundToGrid((b2*c1 - b1*c2) / det)
	y := roundToGrid((a1*c2 - a2*c1) / det)
	return l.acceptIfOnBoth(other, x, y)
}

// Equals reports whether both segments have the same endpoints, in either order.
func (l Line) Equals(other Line) bool {
	return (l.start.Equals(other.start) && l.end.Equals(other.end)) ||
		(l.start.Equals(other.end) && l.end.Equals(other.start))
}

// ClosestIntersectionToStart returns the intersection with the rectangle's
// boundary nearest to the segment's start. On equal distances the first point
// found (in top, right, bottom, left edge order) wins.
func (l Line) ClosestIntersectionToStart(r Rectangle) (Point, bool) {
	points := r.IntersectionPoints(l)
	if len(points) == 0 {
		return Point{}, false
	}

	closest := points[0]
	minDist := l.start.Distance(closest)
	for _, p := range points[1:] {
		if d := l.start.Distance(p); d < minDist {
			closest = p
			minDist = d
		}
	}
	return closest, true
}

// String implements fmt.Stringer.
func (l Line) String() string {
	return fmt.Sprintf("%v->%v", l.start, l.end)
}

func (l Line) isVertical() bool {
	return l.start.X == l.end.X
}

// isParallel compares the cross product of both direction vectors against zero.
func (l Line) isParallel(other Line) bool {
	return (l.end.Y-l.start.Y)*(other.end.X-other.start.X) ==
		(other.end.Y-other.start.Y)*(l.end.X-l.start.X)
}

// isCollinear reports whether both parallel segments lie on the same infinite
// line. Each side is checked so a degenerate segment is judged by the other's
// direction.
func (l Line) isCollinear(other Line) bool {
	return cross(l.start, l.end, other.start) == 0 &&
		cross(other.start, other.end, l.start) == 0
}

func (l Line) isOverlapping(other Line) bool {
	return l.start.InRangeX(other) ||
		l.end.InRangeX(other) ||
		other.start.InRangeX(l) ||
		other.end.InRangeX(l)
}

// containsPoint is an inclusive bounding-box test.
func (l Line) containsPoint(p Point) bool {
	return math.Min(l.start.X, l.end.X) <= p.X && p.X <= math.Max(l.start.X, l.end.X) &&
		math.Min(l.start.Y, l.end.Y) <= p.Y && p.Y <= math.Max(l.start.Y, l.end.Y)
}

func (l Line) acceptIfOnBoth(other Line, x, y float64) (Point, bool) {
	p := Point{X: x, Y: y}
	if l.containsPoint(p) && other.containsPoint(p) {
		return p, true
	}
	return Point{}, false
}

// yAt evaluates the slope-intercept form at x. Only valid for non-vertical lines.
func (l Line) yAt(x float64) float64 {
	m := (l.end.Y - l.start.Y) / (l.end.X - l.start.X)
	b := l.start.Y - m*l.start.X
	return m*x + b
}

// coefficients returns A, B, C of the implicit form Ax + By = C.
func (l Line) coefficients() (a, b, c float64) {
	a = l.end.Y - l.start.Y
	b = l.start.X - l.end.X
	c = a*l.start.X + b*l.start.Y
	return a, b, c
}

func roundToGrid(v float64) float64 {
	return math.Round(v*intersectionPrecision) / intersectionPrecision
}

// cross returns the z component of (b-a) x (p-a).
func cross(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
