package game

import "snake-arcade/game/types"

// Input is a frontend-independent key or window event
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputRestart
	InputQuit
	InputClose // window closed or interrupt; honoured in every state
)

// Direction maps a directional input to its Direction
func (in Input) Direction() (types.Direction, bool) {
	switch in {
	case InputUp:
		return types.Up, true
	case InputDown:
		return types.Down, true
	case InputLeft:
		return types.Left, true
	case InputRight:
		return types.Right, true
	default:
		return 0, false
	}
}
