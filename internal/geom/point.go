// Package geom provides the float64 shape primitives used by the collision engine:
// points, line segments and axis-aligned rectangles. All types are immutable values.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate. Equality is exact; no epsilon is applied.
type Point struct {
	X, Y float64
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Equals reports exact floating-point equality of both coordinates.
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// InRangeX reports whether p.X lies strictly between the x coordinates of the
// line's endpoints, regardless of their order.
func (p Point) InRangeX(l Line) bool {
	return strictlyBetween(p.X, l.start.X, l.end.X)
}

// InRangeY reports whether p.Y lies strictly between the y coordinates of the
// line's endpoints, regardless of their order.
func (p Point) InRangeY(l Line) bool {
	return strictlyBetween(p.Y, l.start.Y, l.end.Y)
}

// DistanceToSegment returns the distance from p to the segment [start, end].
// Projections falling before start or after end measure to that endpoint.
func (p Point) DistanceToSegment(start, end Point) float64 {
	if start.Equals(end) {
		return p.Distance(start)
	}

	dx := end.X - start.X
	dy := end.Y - start.Y
	lengthSq := dx*dx + dy*dy

	t := ((p.X-start.X)*dx + (p.Y-start.Y)*dy) / lengthSq
	switch {
	case t < 0:
		return p.Distance(start)
	case t > 1:
		return p.Distance(end)
	}

	numerator := math.Abs(dy*p.X - dx*p.Y + end.X*start.Y - end.Y*start.X)
	return numerator / math.Sqrt(lengthSq)
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func strictlyBetween(v, a, b float64) bool {
	return (a < v && v < b) || (b < v && v < a)
}
