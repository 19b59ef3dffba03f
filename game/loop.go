package game

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// DefaultTick is the time between two game steps (10 Hz)
const DefaultTick = 100 * time.Millisecond

// Frontend is the presentation side of the game
type Frontend interface {
	// Poll returns the inputs received since the previous call, oldest first
	Poll() []Input
	Render(g *Game) error
}

// Run drives g at a fixed rate until the player quits or ctx is done. Each
// step drains input, advances the game and renders it. Restarting happens in
// place, so the loop never re-enters itself.
func Run(ctx context.Context, g *Game, fe Frontend, tick time.Duration) error {
	if tick <= 0 {
		tick = DefaultTick
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		if done := step(g, fe); done {
			return nil
		}
		if err := fe.Render(g); err != nil {
			return errors.Wrap(err, "rendering frame")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// step applies pending input and advances one tick. It reports whether the
// game has been quit.
func step(g *Game, fe Frontend) bool {
	for _, in := range fe.Poll() {
		g.HandleInput(in)
		if g.State() == Quit {
			return true
		}
	}
	g.Tick()
	return false
}
