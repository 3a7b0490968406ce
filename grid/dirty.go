package grid

// MarkDirty marks cell (cx, cy) as dirty.
// Does nothing if the coordinates are out of range.
func (g *Grid) MarkDirty(cx, cy int) {
	if i := g.Index(cx, cy); i >= 0 {
		g.dirty.Set(i)
	}
}

// MarkRectDirty marks every cell intersecting the rectangle as dirty.
// Coordinates are in extent space, not cell space.
func (g *Grid) MarkRectDirty(x, y, w, h int) {
	cx1, cy1, cx2, cy2, ok := g.cellRange(x, y, w, h)
	if !ok {
		return
	}
	for cy := cy1; cy <= cy2; cy++ {
		for cx := cx1; cx <= cx2; cx++ {
			g.dirty.Set(cy*g.cellsX + cx)
		}
	}
}

// MarkAllDirty marks every cell as dirty.
func (g *Grid) MarkAllDirty() {
	if g.dirty != nil {
		g.dirty.SetAll()
	}
}

// IsDirty reports whether cell (cx, cy) is dirty.
func (g *Grid) IsDirty(cx, cy int) bool {
	i := g.Index(cx, cy)
	return i >= 0 && g.dirty.Test(i)
}

// DirtyCount returns the number of dirty cells.
func (g *Grid) DirtyCount() int {
	if g.dirty == nil {
		return 0
	}
	return g.dirty.Count()
}

// TakeDirty returns the dirty cells in row-major order and marks them
// clean. Cells marked concurrently are either returned or stay dirty for
// the next call.
func (g *Grid) TakeDirty() []Cell {
	if g.dirty == nil {
		return nil
	}

	indices := g.dirty.TakeAll()
	if len(indices) == 0 {
		return nil
	}
	cells := make([]Cell, len(indices))
	for i, idx := range indices {
		cells[i], _ = g.Cell(idx%g.cellsX, idx/g.cellsX)
	}
	return cells
}
