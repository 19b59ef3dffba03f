package entity

import "snake-arcade/game/types"

// Food is a single edible cell
type Food struct {
	Position types.Point
}

func NewFood(pos types.Point) Food {
	return Food{Position: pos}
}
