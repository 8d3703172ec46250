package main

const SpatialCellSize = 80.0 // ~2x largest hazard radius

// SpatialGrid is a fixed-cell grid for broad-phase radius queries over the
// entity store. Entities are indexed by ID at their center point; exact
// distance filtering happens in Store.InRadius.
type SpatialGrid struct {
	cols, rows int
	cells      [][]EntityID
}

// NewSpatialGrid creates a grid covering a w x h playfield
func NewSpatialGrid(w, h float64) *SpatialGrid {
	cols := int(w/SpatialCellSize) + 1
	rows := int(h/SpatialCellSize) + 1
	return &SpatialGrid{
		cols:  cols,
		rows:  rows,
		cells: make([][]EntityID, cols*rows),
	}
}

// Clear resets all cells (keeps allocated capacity)
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *SpatialGrid) cellIdx(x, y float64) int {
	cx := int(x / SpatialCellSize)
	cy := int(y / SpatialCellSize)
	if cx < 0 {
		cx = 0
	} else if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= g.rows {
		cy = g.rows - 1
	}
	return cy*g.cols + cx
}

// Insert adds an entity ID at the given position
func (g *SpatialGrid) Insert(x, y float64, id EntityID) {
	idx := g.cellIdx(x, y)
	g.cells[idx] = append(g.cells[idx], id)
}

// Query appends the IDs of all cells overlapping the bounding box of the
// given circle to buf and returns the extended slice
func (g *SpatialGrid) Query(x, y, radius float64, buf []EntityID) []EntityID {
	minCX := int((x - radius) / SpatialCellSize)
	maxCX := int((x + radius) / SpatialCellSize)
	minCY := int((y - radius) / SpatialCellSize)
	maxCY := int((y + radius) / SpatialCellSize)
	if minCX < 0 {
		minCX = 0
	}
	if maxCX >= g.cols {
		maxCX = g.cols - 1
	}
	if minCY < 0 {
		minCY = 0
	}
	if maxCY >= g.rows {
		maxCY = g.rows - 1
	}
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			buf = append(buf, g.cells[cy*g.cols+cx]...)
		}
	}
	return buf
}
