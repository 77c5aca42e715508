package core

import (
	"testing"

	"github.com/vovakirdan/tui-bricks/internal/geom"
)

func TestCanvasFillRect(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewCanvas(s, NewRect(0, 0, 80, 24), 800, 600)

	// A 20-unit border is thinner than one row but still gets drawn.
	c.FillRect(geom.NewRectangleXY(0, 0, 800, 20), '█', ColorGray)

	for x := 0; x < 80; x++ {
		if got := s.GetCell(x, 0); got.Color != ColorGray || got.Rune != '█' {
			t.Fatalf("cell (%d, 0) = %+v, expected gray block", x, got)
		}
	}
	if got := s.GetCell(0, 1); got.Rune != ' ' {
		t.Errorf("row 1 should be untouched, got %q", got.Rune)
	}
}

func TestCanvasClipsToArea(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewCanvas(s, NewRect(2, 1, 10, 5), 100, 50)

	c.FillRect(geom.NewRectangleXY(90, 0, 50, 200), '#', ColorRed)

	if got := s.GetCell(11, 1); got.Rune != '#' {
		t.Errorf("last column of the area should be filled, got %q", got.Rune)
	}
	if got := s.GetCell(12, 1); got.Rune != ' ' {
		t.Errorf("cells right of the area must stay blank, got %q", got.Rune)
	}
	if got := s.GetCell(11, 6); got.Rune != ' ' {
		t.Errorf("cells below the area must stay blank, got %q", got.Rune)
	}
}

func TestCanvasFillCircle(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewCanvas(s, NewRect(0, 0, 80, 24), 800, 600)

	c.FillCircle(geom.NewPoint(390, 550), 5, '●', ColorRed)

	if got := s.GetCell(39, 22); got.Rune != '●' || got.Color != ColorRed {
		t.Errorf("center cell = %+v, expected red ball", got)
	}
	if got := s.GetCell(38, 22); got.Rune != ' ' {
		t.Errorf("neighbour cell should stay blank, got %q", got.Rune)
	}
}

func TestCanvasDrawText(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewCanvas(s, NewRect(0, 0, 80, 24), 800, 600)

	c.DrawText(geom.NewPoint(10, 590), "Score: 5", ColorWhite)

	if got := s.Row(23); got[1:9] != "Score: 5" {
		t.Errorf("Row(23) = %q, expected text at column 1", got)
	}
	if x, y := c.CellAt(geom.NewPoint(10, 590)); x != 1 || y != 23 {
		t.Errorf("CellAt = (%d, %d), expected (1, 23)", x, y)
	}
}

func TestColorNames(t *testing.T) {
	for _, c := range []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPink, ColorCyan, ColorBlack, ColorGray} {
		parsed, ok := ParseColor(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), parsed, ok)
		}
	}

	if _, ok := ParseColor("mauve"); ok {
		t.Error("unknown color names should not parse")
	}
}
