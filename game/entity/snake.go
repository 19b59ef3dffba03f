package entity

import (
	"snake-arcade/game/types"
)

// InitialLength is the number of segments a fresh snake starts with
const InitialLength = 3

// DefaultStart is the head position of a fresh snake
var DefaultStart = types.Point{X: 100, Y: 100}

type Snake struct {
	Body      []types.Point // head first
	Direction types.Direction
	grid      types.Grid
}

// NewSnake builds a horizontal snake of InitialLength segments facing right,
// with its head at start and the body trailing to the left.
func NewSnake(grid types.Grid, start types.Point) *Snake {
	body := make([]types.Point, 0, InitialLength)
	for i := 0; i < InitialLength; i++ {
		body = append(body, types.Point{X: start.X - i*grid.CellSize, Y: start.Y})
	}
	return &Snake{
		Body:      body,
		Direction: types.Right,
		grid:      grid,
	}
}

// NewSnakeWithBody builds a snake from an explicit body, head first
func NewSnakeWithBody(grid types.Grid, body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
		grid:      grid,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// IsOppositeDirection reports whether dir would reverse the snake into itself
func (s *Snake) IsOppositeDirection(dir types.Direction) bool {
	return s.Direction.Opposite() == dir
}

// Move advances the head one cell and drops the tail. A reversal request is
// replaced by the current direction. Returns the direction actually applied.
func (s *Snake) Move(dir types.Direction) types.Direction {
	if s.IsOppositeDirection(dir) {
		dir = s.Direction
	}

	newHead := s.GetHead().Add(dir.ToPoint(s.grid.CellSize))
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead

	s.Direction = dir
	return dir
}

// Grow duplicates the tail; the extra segment unfolds on the next Move
func (s *Snake) Grow() {
	s.Body = append(s.Body, s.GetTail())
}

func (s *Snake) CollidesWithFood(food Food) bool {
	return s.GetHead() == food.Position
}

// WrapAround teleports an out-of-bounds head to the opposite edge. The checks
// are exclusive: at most one axis is corrected per call.
func (s *Snake) WrapAround() {
	head := s.GetHead()
	switch {
	case head.X < 0:
		head.X = s.grid.Width - s.grid.CellSize
	case head.X >= s.grid.Width:
		head.X = 0
	case head.Y < 0:
		head.Y = s.grid.Height - s.grid.CellSize
	case head.Y >= s.grid.Height:
		head.Y = 0
	}
	s.Body[0] = head
}

// CollidesWithSelf reports whether the head overlaps any later segment
func (s *Snake) CollidesWithSelf() bool {
	head := s.GetHead()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}
