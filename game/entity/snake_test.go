package entity

import (
	"testing"

	"snake-arcade/game/types"

	"github.com/stretchr/testify/require"
)

var grid = types.DefaultGrid()

func TestNewSnake(t *testing.T) {
	s := NewSnake(grid, DefaultStart)
	require.Equal(t, InitialLength, s.Len())
	require.Equal(t, types.Point{X: 100, Y: 100}, s.GetHead())
	require.Equal(t, []types.Point{{X: 100, Y: 100}, {X: 80, Y: 100}, {X: 60, Y: 100}}, s.Body)
	require.Equal(t, types.Right, s.Direction)
}

func TestNewSnakeCustomStart(t *testing.T) {
	s := NewSnake(grid, types.Point{X: 300, Y: 200})
	require.Equal(t, types.Point{X: 300, Y: 200}, s.GetHead())
	require.Equal(t, types.Point{X: 260, Y: 200}, s.GetTail())
}

func TestSnakeMoveRight(t *testing.T) {
	s := NewSnake(grid, DefaultStart)
	applied := s.Move(types.Right)
	require.Equal(t, types.Right, applied)
	require.Equal(t, types.Point{X: 120, Y: 100}, s.GetHead())
	require.Equal(t, InitialLength, s.Len())
	require.Equal(t, types.Point{X: 80, Y: 100}, s.GetTail())
}

func TestSnakeMoveIgnoresReversal(t *testing.T) {
	s := NewSnake(grid, DefaultStart)
	applied := s.Move(types.Left)
	require.Equal(t, types.Right, applied)
	require.Equal(t, types.Right, s.Direction)
	require.Equal(t, types.Point{X: 120, Y: 100}, s.GetHead())
}

func TestSnakeGrow(t *testing.T) {
	s := NewSnake(grid, DefaultStart)
	tail := s.GetTail()
	s.Grow()
	require.Equal(t, InitialLength+1, s.Len())
	require.Equal(t, tail, s.GetTail())
	require.Equal(t, tail, s.Body[s.Len()-2])

	// the duplicate unfolds on the next move
	s.Move(types.Right)
	require.Equal(t, InitialLength+1, s.Len())
	require.Equal(t, tail, s.GetTail())
	require.NotEqual(t, s.Body[s.Len()-2], s.GetTail())
}

func TestSnakeCollidesWithFood(t *testing.T) {
	s := NewSnake(grid, DefaultStart)
	require.True(t, s.CollidesWithFood(NewFood(types.Point{X: 100, Y: 100})))
	require.False(t, s.CollidesWithFood(NewFood(types.Point{X: 80, Y: 100})))
	require.False(t, s.CollidesWithFood(NewFood(types.Point{X: 300, Y: 300})))
}

func TestSnakePreventReverseDirection(t *testing.T) {
	s := NewSnake(grid, DefaultStart)
	require.False(t, s.IsOppositeDirection(types.Down))
	require.True(t, s.IsOppositeDirection(types.Left))

	s.Move(types.Up)
	require.True(t, s.IsOppositeDirection(types.Down))
	require.False(t, s.IsOppositeDirection(types.Left))
	require.False(t, s.IsOppositeDirection(types.Right))

	s.Move(types.Left)
	require.True(t, s.IsOppositeDirection(types.Right))

	s.Move(types.Down)
	require.True(t, s.IsOppositeDirection(types.Up))
}

func TestSnakeWrapAround(t *testing.T) {
	s := NewSnakeWithBody(grid, []types.Point{{X: 580, Y: 40}, {X: 560, Y: 40}}, types.Right)
	s.Move(types.Right)
	s.WrapAround()
	require.Equal(t, types.Point{X: 0, Y: 40}, s.GetHead())

	s = NewSnakeWithBody(grid, []types.Point{{X: 40, Y: 380}, {X: 40, Y: 360}}, types.Down)
	s.Move(types.Down)
	s.WrapAround()
	require.Equal(t, types.Point{X: 40, Y: 0}, s.GetHead())

	s = NewSnakeWithBody(grid, []types.Point{{X: 0, Y: 40}, {X: 20, Y: 40}}, types.Left)
	s.Move(types.Left)
	s.WrapAround()
	require.Equal(t, types.Point{X: 580, Y: 40}, s.GetHead())

	s = NewSnakeWithBody(grid, []types.Point{{X: 40, Y: 0}, {X: 40, Y: 20}}, types.Up)
	s.Move(types.Up)
	s.WrapAround()
	require.Equal(t, types.Point{X: 40, Y: 380}, s.GetHead())
}

func TestSnakeWrapAroundInBoundsIsNoop(t *testing.T) {
	s := NewSnake(grid, DefaultStart)
	before := append([]types.Point(nil), s.Body...)
	s.WrapAround()
	require.Equal(t, before, s.Body)
}

// Only one axis is corrected per call when both overflow at once.
func TestSnakeWrapAroundSingleAxis(t *testing.T) {
	s := NewSnakeWithBody(grid, []types.Point{{X: 600, Y: 400}}, types.Right)
	s.WrapAround()
	require.Equal(t, types.Point{X: 0, Y: 400}, s.GetHead())

	s.WrapAround()
	require.Equal(t, types.Point{X: 0, Y: 0}, s.GetHead())
}

func TestSnakeCollidesWithSelf(t *testing.T) {
	s := NewSnakeWithBody(grid, []types.Point{
		{X: 100, Y: 100},
		{X: 120, Y: 100},
		{X: 120, Y: 120},
		{X: 100, Y: 120},
		{X: 100, Y: 100},
	}, types.Up)
	require.True(t, s.CollidesWithSelf())

	s = NewSnake(grid, DefaultStart)
	require.False(t, s.CollidesWithSelf())
}

func TestSnakeRunsIntoItself(t *testing.T) {
	s := NewSnake(grid, DefaultStart)
	for i := 0; i < 2; i++ {
		s.Grow()
	}
	s.Move(types.Right)
	s.Move(types.Down)
	s.Move(types.Left)
	require.False(t, s.CollidesWithSelf())
	s.Move(types.Up)
	require.True(t, s.CollidesWithSelf())
}

func TestSnakeOccupies(t *testing.T) {
	s := NewSnake(grid, DefaultStart)
	require.True(t, s.Occupies(types.Point{X: 60, Y: 100}))
	require.False(t, s.Occupies(types.Point{X: 40, Y: 100}))
}
