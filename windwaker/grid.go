package windwaker

const (
	GridCells = 7

	// MapMin and MapMax bound both x and z on the sea chart
	MapMin float32 = -350000
	MapMax float32 = 350000

	QuadrantSize float32 = 100000
)

// QuadrantGrid is the 7x7 sea chart. Built once; treat as read only.
type QuadrantGrid struct {
	cells [GridCells][GridCells]Quadrant
}

// BuildGrid fills every chart cell. The result is the same on every call.
func BuildGrid() QuadrantGrid {
	var g QuadrantGrid
	for row := 0; row < GridCells; row++ {
		for col := 0; col < GridCells; col++ {
			g.cells[row][col] = QuadrantAt(row, col)
		}
	}
	return g
}

var defaultGrid = BuildGrid()

// DefaultGrid returns a copy of the process-wide chart
func DefaultGrid() QuadrantGrid {
	return defaultGrid
}

// Cell returns the quadrant at row, col; QuadrantUnknown when out of range
func (g *QuadrantGrid) Cell(row, col int) Quadrant {
	if row < 0 || row >= GridCells || col < 0 || col >= GridCells {
		return QuadrantUnknown
	}
	return g.cells[row][col]
}

// Rect is a cell's area on the x/z plane; both bounds are inclusive
type Rect struct {
	Quadrant   Quadrant
	MinX, MinZ float32
	MaxX, MaxZ float32
}

func (r Rect) Contains(x, z float32) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

// Rect derives the area of a cell: columns run along x, rows along z
func (g *QuadrantGrid) Rect(row, col int) Rect {
	minX := MapMin + float32(col)*QuadrantSize
	minZ := MapMin + float32(row)*QuadrantSize
	return Rect{
		Quadrant: g.Cell(row, col),
		MinX:     minX,
		MinZ:     minZ,
		MaxX:     minX + QuadrantSize,
		MaxZ:     minZ + QuadrantSize,
	}
}

// Rects lists every cell in row-major order
func (g *QuadrantGrid) Rects() []Rect {
	rects := make([]Rect, 0, GridCells*GridCells)
	for row := 0; row < GridCells; row++ {
		for col := 0; col < GridCells; col++ {
			rects = append(rects, g.Rect(row, col))
		}
	}
	return rects
}

// Resolve names the sea chart quadrant the position is in.
//
// Only the sea stages have chart coordinates; any other stage, or a position
// off the chart (loading screens, unmapped instances), is QuadrantUnknown.
// Cells share their edges and both bounds are inclusive, so a position on an
// edge belongs to the lower row, then the lower column: the scan runs row-major
// and stops at the first hit.
func Resolve(stage StageID, pos Position, grid *QuadrantGrid) Quadrant {
	if !stage.IsSea() {
		return QuadrantUnknown
	}

	// written this way so NaN falls out too
	if !(pos.X >= MapMin && pos.X <= MapMax && pos.Z >= MapMin && pos.Z <= MapMax) {
		return QuadrantUnknown
	}

	for row := 0; row < GridCells; row++ {
		for col := 0; col < GridCells; col++ {
			if r := grid.Rect(row, col); r.Contains(pos.X, pos.Z) {
				return r.Quadrant
			}
		}
	}

	return QuadrantUnknown
}
