package types

// Default playfield, in pixels
const (
	DefaultWidth    = 600
	DefaultHeight   = 400
	DefaultCellSize = 20
)

// Point is a grid-aligned pixel position
type Point struct {
	X, Y int
}

// Add returns p translated by o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// DefaultGrid returns the 600x400 playfield split into 20px cells (30x20)
func DefaultGrid() Grid {
	return Grid{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		CellSize: DefaultCellSize,
	}
}

// Cols returns the number of cells on the x axis
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cells on the y axis
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cell converts a column/row pair into a pixel position
func (g Grid) Cell(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// ColRow is the inverse of Cell
func (g Grid) ColRow(p Point) (int, int) {
	return p.X / g.CellSize, p.Y / g.CellSize
}

// Contains reports whether p lies inside the playfield
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}
