package bricks

import (
	"math/rand"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// Layout names accepted in blocks.layout.
const (
	LayoutRandom = "random"
	LayoutGrid   = "grid"
)

// BlockSpec is a block to place at the start of a round.
type BlockSpec struct {
	Rect  geom.Rectangle
	Color core.Color
}

// gridCell is one slot of the block grid.
type gridCell struct {
	row  int
	rect geom.Rectangle
}

// gridCells enumerates the grid row by row. Both end coordinates are inclusive.
func gridCells(cfg config.BricksBlocks) []gridCell {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil
	}

	var cells []gridCell
	row := 0
	for y := cfg.StartY; y <= cfg.EndY; y += cfg.Height {
		for x := cfg.StartX; x <= cfg.EndX; x += cfg.Width {
			cells = append(cells, gridCell{row: row, rect: geom.NewRectangleXY(x, y, cfg.Width, cfg.Height)})
		}
		row++
	}
	return cells
}

// RandomLayout shuffles the grid slots and fills up to MaxBlocks of them with
// randomly colored blocks. A non-positive MaxBlocks fills every slot.
func RandomLayout(cfg config.BricksBlocks, palette []core.Color, rng *rand.Rand) []BlockSpec {
	cells := gridCells(cfg)
	if len(palette) == 0 {
		return nil
	}

	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	n := len(cells)
	if cfg.MaxBlocks > 0 && cfg.MaxBlocks < n {
		n = cfg.MaxBlocks
	}

	specs := make([]BlockSpec, 0, n)
	for _, cell := range cells[:n] {
		specs = append(specs, BlockSpec{Rect: cell.rect, Color: palette[rng.Intn(len(palette))]})
	}
	return specs
}

// GridLayout fills every grid slot, coloring blocks by row.
func GridLayout(cfg config.BricksBlocks, palette []core.Color, _ *rand.Rand) []BlockSpec {
	if len(palette) == 0 {
		return nil
	}

	cells := gridCells(cfg)
	specs := make([]BlockSpec, 0, len(cells))
	for _, cell := range cells {
		specs = append(specs, BlockSpec{Rect: cell.rect, Color: palette[cell.row%len(palette)]})
	}
	return specs
}

// layoutFunc picks the layout for a name, defaulting to random.
func layoutFunc(name string) func(config.BricksBlocks, []core.Color, *rand.Rand) []BlockSpec {
	if name == LayoutGrid {
		return GridLayout
	}
	return RandomLayout
}
