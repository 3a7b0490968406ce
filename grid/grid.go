// Package grid partitions 2D extents into fixed-size cells.
//
// The number of cells along an axis is ⌈extent/size⌉ (ggmath.DivCeil), so
// the last cell in a row or column may be smaller than the cell size when
// the extent is not evenly divisible. Cells are indexed in row-major order:
// index = cy*CellsX + cx.
//
// The same arithmetic sizes GPU compute dispatches: Workgroups returns the
// number of workgroups covering an invocation extent.
package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggmath"
	"github.com/gogpu/ggmath/bitset"
)

// MaxCells is the largest number of cells a Grid may hold.
const MaxCells = math.MaxInt32

var (
	// ErrEmptyCell is returned by New when a cell dimension is zero.
	ErrEmptyCell = errors.New("grid: cell size must be > 0")

	// ErrTooLarge is returned by New when the grid would exceed MaxCells.
	ErrTooLarge = errors.New("grid: too many cells")
)

// Count returns the number of size-wide cells needed to cover extent.
// It panics if size is 0.
func Count(extent, size uint32) uint32 {
	return ggmath.DivCeil(extent, size)
}

// Workgroups returns the number of workgroups along each axis needed to
// cover size invocations with workgroups of the given dimensions.
// It panics if any workgroup dimension is 0.
//
// Example:
//
//	// 1920x1080 image, 16x16 workgroups -> 120x68x1 dispatch
//	n := grid.Workgroups(
//	    gputypes.Extent3D{Width: 1920, Height: 1080, DepthOrArrayLayers: 1},
//	    gputypes.Extent3D{Width: 16, Height: 16, DepthOrArrayLayers: 1})
func Workgroups(size, workgroup gputypes.Extent3D) gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              ggmath.DivCeil(size.Width, workgroup.Width),
		Height:             ggmath.DivCeil(size.Height, workgroup.Height),
		DepthOrArrayLayers: ggmath.DivCeil(size.DepthOrArrayLayers, workgroup.DepthOrArrayLayers),
	}
}

// Cell is one rectangular partition of a Grid.
type Cell struct {
	// X is the cell column index (0-based).
	X int

	// Y is the cell row index (0-based).
	Y int

	// MinX is the left edge in extent coordinates.
	MinX int

	// MinY is the top edge in extent coordinates.
	MinY int

	// Width is the actual width (may be < cell width for the last column).
	Width int

	// Height is the actual height (may be < cell height for the last row).
	Height int
}

// Bounds returns the cell's rectangle as (x, y, width, height).
func (c Cell) Bounds() (x, y, w, h int) {
	return c.MinX, c.MinY, c.Width, c.Height
}

// Contains reports whether the point (px, py) lies within the cell.
func (c Cell) Contains(px, py int) bool {
	return px >= c.MinX && px < c.MinX+c.Width &&
		py >= c.MinY && py < c.MinY+c.Height
}

// Grid divides a width x height extent into cells of cellW x cellH.
//
// The layout is immutable after New. The dirty set is safe for concurrent
// use; everything else is read-only and may be shared freely.
type Grid struct {
	width, height int
	cellW, cellH  int
	cellsX        int
	cellsY        int

	dirty *bitset.Atomic
}

// New creates a grid covering width x height with cells of cellW x cellH.
// A zero width or height yields an empty grid with no cells. All cells
// start clean. New returns ErrTooLarge if the grid would have more than
// MaxCells cells.
func New(width, height, cellW, cellH uint32) (*Grid, error) {
	if cellW == 0 || cellH == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyCell, cellW, cellH)
	}

	g := &Grid{
		width:  int(width),
		height: int(height),
		cellW:  int(cellW),
		cellH:  int(cellH),
	}
	if width == 0 || height == 0 {
		g.width, g.height = 0, 0
		return g, nil
	}

	cellsX, cellsY := uint64(Count(width, cellW)), uint64(Count(height, cellH))
	if cellsX*cellsY > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrTooLarge, cellsX, cellsY)
	}

	g.cellsX = int(cellsX)
	g.cellsY = int(cellsY)
	g.dirty = bitset.NewAtomic(g.cellsX * g.cellsY)

	ggmath.Logger().Debug("grid: created",
		slog.Int("width", g.width),
		slog.Int("height", g.height),
		slog.Int("cellsX", g.cellsX),
		slog.Int("cellsY", g.cellsY))
	return g, nil
}

// Width returns the extent width.
func (g *Grid) Width() int { return g.width }

// Height returns the extent height.
func (g *Grid) Height() int { return g.height }

// CellSize returns the nominal cell dimensions.
func (g *Grid) CellSize() (w, h int) { return g.cellW, g.cellH }

// CellsX returns the number of cell columns.
func (g *Grid) CellsX() int { return g.cellsX }

// CellsY returns the number of cell rows.
func (g *Grid) CellsY() int { return g.cellsY }

// Len returns the total number of cells.
func (g *Grid) Len() int { return g.cellsX * g.cellsY }

// Extent returns the grid dimensions in cells as a GPU extent, ready to be
// used as a dispatch size with one workgroup per cell.
func (g *Grid) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(g.cellsX),
		Height:             uint32(g.cellsY),
		DepthOrArrayLayers: 1,
	}
}

// Index returns the row-major index of cell (cx, cy), or -1 if out of range.
func (g *Grid) Index(cx, cy int) int {
	if cx < 0 || cx >= g.cellsX || cy < 0 || cy >= g.cellsY {
		return -1
	}
	return cy*g.cellsX + cx
}

// Cell returns cell (cx, cy). ok is false if the coordinates are out of range.
func (g *Grid) Cell(cx, cy int) (c Cell, ok bool) {
	if g.Index(cx, cy) < 0 {
		return Cell{}, false
	}

	minX := cx * g.cellW
	minY := cy * g.cellH
	return Cell{
		X:      cx,
		Y:      cy,
		MinX:   minX,
		MinY:   minY,
		Width:  min(g.cellW, g.width-minX),
		Height: min(g.cellH, g.height-minY),
	}, true
}

// CellAt returns the cell containing point (px, py).
// ok is false if the point is outside the extent.
func (g *Grid) CellAt(px, py int) (c Cell, ok bool) {
	if px < 0 || px >= g.width || py < 0 || py >= g.height {
		return Cell{}, false
	}
	return g.Cell(px/g.cellW, py/g.cellH)
}

// cellRange converts a rectangle to the inclusive range of cells it
// touches, clamped to the grid. ok is false if nothing intersects.
func (g *Grid) cellRange(x, y, w, h int) (cx1, cy1, cx2, cy2 int, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}

	x1 := max(x, 0)
	y1 := max(y, 0)
	x2 := min(x+w, g.width)
	y2 := min(y+h, g.height)
	if x1 >= x2 || y1 >= y2 {
		return 0, 0, 0, 0, false
	}

	return x1 / g.cellW, y1 / g.cellH, (x2 - 1) / g.cellW, (y2 - 1) / g.cellH, true
}

// CellsInRect returns all cells that intersect the rectangle, in row-major
// order. Returns nil if the rectangle is empty or outside the extent.
func (g *Grid) CellsInRect(x, y, w, h int) []Cell {
	cx1, cy1, cx2, cy2, ok := g.cellRange(x, y, w, h)
	if !ok {
		return nil
	}

	result := make([]Cell, 0, (cx2-cx1+1)*(cy2-cy1+1))
	for cy := cy1; cy <= cy2; cy++ {
		for cx := cx1; cx <= cx2; cx++ {
			c, _ := g.Cell(cx, cy)
			result = append(result, c)
		}
	}
	return result
}

// ForEach calls fn for each cell in row-major order.
func (g *Grid) ForEach(fn func(c Cell)) {
	for cy := range g.cellsY {
		for cx := range g.cellsX {
			c, _ := g.Cell(cx, cy)
			fn(c)
		}
	}
}
