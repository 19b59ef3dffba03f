package ui

import (
	"fmt"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

const (
	windowTitle = "Snake Game"
	fontSize    = 28
	lineSpacing = 50
)

var (
	snakeColor = rl.Green
	headColor  = rl.Lime
	foodColor  = rl.Red
	textColor  = rl.White
)

// Renderer is the raylib frontend: it owns the window, draws the game and
// reads the keyboard.
type Renderer struct {
	grid     types.Grid
	cellSize int32
}

// NewRenderer opens a window sized to grid
func NewRenderer(grid types.Grid) (*Renderer, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(grid.Width), int32(grid.Height), windowTitle)
	if !rl.IsWindowReady() {
		return nil, errors.New("unable to open window")
	}
	// Escape must not close the window; only the close button does
	rl.SetExitKey(rl.KeyNull)

	return &Renderer{
		grid:     grid,
		cellSize: int32(grid.CellSize),
	}, nil
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

// Poll drains the raylib key queue
func (r *Renderer) Poll() []game.Input {
	var inputs []game.Input
	if rl.WindowShouldClose() {
		inputs = append(inputs, game.InputClose)
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if in := keyToInput(key); in != game.InputNone {
			inputs = append(inputs, in)
		}
	}
	return inputs
}

func keyToInput(key int32) game.Input {
	switch key {
	case rl.KeyUp:
		return game.InputUp
	case rl.KeyDown:
		return game.InputDown
	case rl.KeyLeft:
		return game.InputLeft
	case rl.KeyRight:
		return game.InputRight
	case rl.KeyR:
		return game.InputRestart
	case rl.KeyQ:
		return game.InputQuit
	default:
		return game.InputNone
	}
}

func (r *Renderer) Render(g *game.Game) error {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	if g.State() == game.WaitingForRestart {
		r.drawGameOver(g)
	} else {
		r.drawSnake(g)
		r.drawFood(g)
		rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), 10, 10, fontSize, textColor)
		rl.DrawText(fmt.Sprintf("High Score: %d", g.HighScore()), 10, 40, fontSize, textColor)
		rl.DrawText(fmt.Sprintf("Time: %s", g.ElapsedTime().Truncate(time.Second)), 10, 70, fontSize, textColor)
	}

	rl.EndDrawing()
	return nil
}

func (r *Renderer) drawSnake(g *game.Game) {
	snake := g.Snake()
	for i, p := range snake.Body {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		rl.DrawRectangle(int32(p.X), int32(p.Y), r.cellSize, r.cellSize, color)
	}
	r.drawDirectionIndicator(snake.GetHead(), snake.Direction)
}

// drawDirectionIndicator draws a small triangle on the head pointing where
// the snake is going.
func (r *Renderer) drawDirectionIndicator(head types.Point, dir types.Direction) {
	headX := float32(head.X)
	headY := float32(head.Y)
	cell := float32(r.cellSize)
	half := cell / 2

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: headX + cell, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY}
		c = rl.Vector2{X: headX + half, Y: headY + cell}
	case types.Left:
		a = rl.Vector2{X: headX, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY + cell}
		c = rl.Vector2{X: headX + half, Y: headY}
	case types.Down:
		a = rl.Vector2{X: headX + half, Y: headY + cell}
		b = rl.Vector2{X: headX + cell, Y: headY + half}
		c = rl.Vector2{X: headX, Y: headY + half}
	default:
		a = rl.Vector2{X: headX + half, Y: headY}
		b = rl.Vector2{X: headX, Y: headY + half}
		c = rl.Vector2{X: headX + cell, Y: headY + half}
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawFood(g *game.Game) {
	p := g.Food().Position
	rl.DrawRectangle(int32(p.X), int32(p.Y), r.cellSize, r.cellSize, foodColor)
}

func (r *Renderer) drawGameOver(g *game.Game) {
	x := int32(r.grid.Width / 4)
	y := int32(r.grid.Height / 4)

	stats := g.Stats()
	lines := []struct {
		text  string
		color rl.Color
	}{
		{"Game Over!", rl.Red},
		{fmt.Sprintf("Score: %d", g.Score()), textColor},
		{fmt.Sprintf("High Score: %d", g.HighScore()), textColor},
		{"Press R to Restart or Q to Quit", textColor},
	}
	for i, line := range lines {
		rl.DrawText(line.text, x, y+int32(i)*lineSpacing, fontSize, line.color)
	}

	summary := stats.Summary()
	small := int32(fontSize/2 + 4)
	bottom := int32(r.grid.Height) - 10 - int32(len(summary))*(small+4)
	for i, line := range summary {
		rl.DrawText(line, 10, bottom+int32(i)*(small+4), small, rl.Gray)
	}
}
