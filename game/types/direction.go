package types

// Direction represents a cardinal direction
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// Opposite returns the direction rotated by 180 degrees
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// ToPoint converts a Direction into a displacement of one cell
func (d Direction) ToPoint(cellSize int) Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -cellSize} // y grows downwards
	case Down:
		return Point{X: 0, Y: cellSize}
	case Left:
		return Point{X: -cellSize, Y: 0}
	case Right:
		return Point{X: cellSize, Y: 0}
	default:
		return Point{}
	}
}
