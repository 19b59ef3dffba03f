package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// FoodFactory produces food at random grid cells
type FoodFactory struct {
	grid       types.Grid
	rng        *rand.Rand
	avoidSnake bool
}

// NewFoodFactory returns a factory drawing cells from the given seed. When
// avoidSnake is false food may land on the snake's body.
func NewFoodFactory(grid types.Grid, seed uint64, avoidSnake bool) *FoodFactory {
	return &FoodFactory{
		grid:       grid,
		rng:        rand.New(rand.NewSource(seed)),
		avoidSnake: avoidSnake,
	}
}

// CreateFood picks a uniformly random cell. snake may be nil.
func (fm *FoodFactory) CreateFood(snake *entity.Snake) entity.Food {
	if fm.avoidSnake && snake != nil {
		if free := fm.freeCells(snake); len(free) > 0 {
			return entity.NewFood(free[fm.rng.Intn(len(free))])
		}
	}
	return entity.NewFood(fm.grid.Cell(
		fm.rng.Intn(fm.grid.Cols()),
		fm.rng.Intn(fm.grid.Rows()),
	))
}

func (fm *FoodFactory) freeCells(snake *entity.Snake) []types.Point {
	free := make([]types.Point, 0, fm.grid.Cols()*fm.grid.Rows())
	for col := 0; col < fm.grid.Cols(); col++ {
		for row := 0; row < fm.grid.Rows(); row++ {
			p := fm.grid.Cell(col, row)
			if !snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	return free
}
