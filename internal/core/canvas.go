package core

import (
	"math"

	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// Surface is the drawing target for world-space sprites.
// Coordinates are in world units; the implementation decides how they map to cells.
type Surface interface {
	FillRect(r geom.Rectangle, glyph rune, c Color)
	FillCircle(center geom.Point, radius float64, glyph rune, c Color)
	DrawText(p geom.Point, text string, c Color)
}

// Canvas projects a fixed-size world onto a region of a Screen.
// The projection is a plain per-axis scale, so the world is stretched to fill the area.
type Canvas struct {
	screen *Screen
	area   Rect
	scaleX float64
	scaleY float64
}

// NewCanvas creates a canvas mapping a worldW x worldH world onto area.
// Non-positive world sizes are treated as 1 to keep the scale finite.
func NewCanvas(screen *Screen, area Rect, worldW, worldH float64) *Canvas {
	if worldW <= 0 {
		worldW = 1
	}
	if worldH <= 0 {
		worldH = 1
	}
	return &Canvas{
		screen: screen,
		area:   area,
		scaleX: float64(area.W) / worldW,
		scaleY: float64(area.H) / worldH,
	}
}

// Area returns the screen region the world is projected onto.
func (c *Canvas) Area() Rect {
	return c.area
}

// CellAt converts a world point to screen cell coordinates.
func (c *Canvas) CellAt(p geom.Point) (int, int) {
	return c.area.X + int(math.Floor(p.X*c.scaleX)), c.area.Y + int(math.Floor(p.Y*c.scaleY))
}

// FillRect fills every cell the rectangle covers. Anything smaller than a cell
// still occupies one cell so thin borders and paddles stay visible.
func (c *Canvas) FillRect(r geom.Rectangle, glyph rune, col Color) {
	x0, x1 := c.span(r.Left(), r.Right(), c.scaleX)
	y0, y1 := c.span(r.Top(), r.Bottom(), c.scaleY)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, glyph, col)
		}
	}
}

// FillCircle fills the cells whose centers fall inside the circle, plus the
// cell containing the center itself.
func (c *Canvas) FillCircle(center geom.Point, radius float64, glyph rune, col Color) {
	c.set(int(math.Floor(center.X*c.scaleX)), int(math.Floor(center.Y*c.scaleY)), glyph, col)

	x0, x1 := c.span(center.X-radius, center.X+radius, c.scaleX)
	y0, y1 := c.span(center.Y-radius, center.Y+radius, c.scaleY)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			mid := geom.NewPoint((float64(x)+0.5)/c.scaleX, (float64(y)+0.5)/c.scaleY)
			if mid.Distance(center) <= radius {
				c.set(x, y, glyph, col)
			}
		}
	}
}

// DrawText writes text starting at the cell containing p.
func (c *Canvas) DrawText(p geom.Point, text string, col Color) {
	x, y := c.CellAt(p)
	c.screen.DrawTextColor(x, y, text, col)
}

// span returns the half-open cell range [from, to) in area-local coordinates.
func (c *Canvas) span(lo, hi, scale float64) (int, int) {
	from := int(math.Floor(lo * scale))
	to := int(math.Ceil(hi * scale))
	if to <= from {
		to = from + 1
	}
	return from, to
}

// set writes an area-local cell, clipping to the canvas area.
func (c *Canvas) set(x, y int, glyph rune, col Color) {
	if !c.area.Contains(c.area.X+x, c.area.Y+y) {
		return
	}
	c.screen.SetCell(c.area.X+x, c.area.Y+y, glyph, col)
}
