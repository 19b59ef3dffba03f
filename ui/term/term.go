// Package term renders the game in a terminal with termbox. Every grid cell
// takes two terminal columns so the board keeps a roughly square aspect.
package term

import (
	"fmt"
	"sync"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/event"
	"snake-arcade/game/types"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	foodColor    = termbox.ColorRed

	left = 1 // board origin, inside the frame
	top  = 2

	// frames the status line stays highlighted after a food is eaten
	flashFrames = 3
)

// Frontend implements game.Frontend on top of termbox
type Frontend struct {
	grid   types.Grid
	events chan termbox.Event
	done   chan struct{}
	once   sync.Once
	flash  int
}

// New takes over the terminal. Call Close to give it back.
func New(grid types.Grid) (*Frontend, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "initialising terminal")
	}
	termbox.SetInputMode(termbox.InputEsc)

	f := &Frontend{
		grid:   grid,
		events: make(chan termbox.Event, 32),
		done:   make(chan struct{}),
	}
	go f.readEvents()
	return f, nil
}

// readEvents forwards terminal events; it is the only other goroutine and
// never touches game state.
func (f *Frontend) readEvents() {
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt || !f.forward(ev) {
			return
		}
	}
}

// forward queues ev for Poll. It gives up once the frontend is closed, even
// if nobody drains the queue anymore.
func (f *Frontend) forward(ev termbox.Event) bool {
	select {
	case f.events <- ev:
		return true
	case <-f.done:
		return false
	}
}

func (f *Frontend) Close() {
	f.once.Do(func() {
		close(f.done)
		termbox.Interrupt()
		termbox.Close()
	})
}

// Watch subscribes to the game's events so the status line can react to them
func (f *Frontend) Watch(bus *event.Bus) event.Subscription {
	return bus.Register(event.FoodEaten, func(event.Event) {
		f.flash = flashFrames
	})
}

// Poll drains the events received since the previous call
func (f *Frontend) Poll() []game.Input {
	var inputs []game.Input
	for {
		select {
		case ev := <-f.events:
			if ev.Type == termbox.EventError {
				log.WithError(ev.Err).Error("terminal event error")
			}
			if in := eventToInput(ev); in != game.InputNone {
				inputs = append(inputs, in)
			}
		default:
			return inputs
		}
	}
}

func eventToInput(ev termbox.Event) game.Input {
	switch ev.Type {
	case termbox.EventKey:
	case termbox.EventError:
		return game.InputClose
	default:
		return game.InputNone
	}

	switch ev.Key {
	case termbox.KeyArrowUp:
		return game.InputUp
	case termbox.KeyArrowDown:
		return game.InputDown
	case termbox.KeyArrowLeft:
		return game.InputLeft
	case termbox.KeyArrowRight:
		return game.InputRight
	case termbox.KeyCtrlC, termbox.KeyEsc:
		return game.InputClose
	}

	switch ev.Ch {
	case 'r', 'R':
		return game.InputRestart
	case 'q', 'Q':
		return game.InputQuit
	}
	return game.InputNone
}

func (f *Frontend) Render(g *game.Game) error {
	if err := termbox.Clear(defaultColor, bgColor); err != nil {
		return err
	}

	if g.State() == game.WaitingForRestart {
		f.renderGameOver(g)
	} else {
		tbprint(left, 0, f.statusColor(), bgColor,
			fmt.Sprintf("Score: %d   High Score: %d   Time: %s",
				g.Score(), g.HighScore(), g.ElapsedTime().Truncate(time.Second)))
		f.renderBoard()
		f.renderSnake(g)
		f.renderFood(g)
	}

	return termbox.Flush()
}

// statusColor highlights the status line for a few frames after a meal
func (f *Frontend) statusColor() termbox.Attribute {
	if f.flash > 0 {
		f.flash--
		return termbox.ColorYellow | termbox.AttrBold
	}
	return defaultColor
}

func (f *Frontend) renderSnake(g *game.Game) {
	for i, p := range g.Snake().Body {
		ch := ' '
		if i == 0 {
			ch = '█'
		}
		f.setCell(p, ch, snakeColor, snakeColor)
	}
}

func (f *Frontend) renderFood(g *game.Game) {
	f.setCell(g.Food().Position, ' ', foodColor, foodColor)
}

func (f *Frontend) setCell(p types.Point, ch rune, fg, bg termbox.Attribute) {
	col, row := f.grid.ColRow(p)
	x := left + col*2
	y := top + row
	termbox.SetCell(x, y, ch, fg, bg)
	termbox.SetCell(x+1, y, ch, fg, bg)
}

func (f *Frontend) renderBoard() {
	width := f.grid.Cols() * 2
	bottom := top + f.grid.Rows()

	for y := top; y < bottom; y++ {
		termbox.SetCell(left-1, y, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, y, '│', defaultColor, bgColor)
	}
	for x := left; x < left+width; x++ {
		termbox.SetCell(x, top-1, '─', defaultColor, bgColor)
		termbox.SetCell(x, bottom, '─', defaultColor, bgColor)
	}
	termbox.SetCell(left-1, top-1, '┌', defaultColor, bgColor)
	termbox.SetCell(left+width, top-1, '┐', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)
}

func (f *Frontend) renderGameOver(g *game.Game) {
	x := f.grid.Cols() / 2
	y := f.grid.Rows() / 4

	stats := g.Stats()
	tbprint(x, y, termbox.ColorRed|termbox.AttrBold, bgColor, "Game Over!")
	tbprint(x, y+2, defaultColor, bgColor, fmt.Sprintf("Score: %d", g.Score()))
	tbprint(x, y+4, defaultColor, bgColor, fmt.Sprintf("High Score: %d", g.HighScore()))
	tbprint(x, y+6, defaultColor, bgColor, "Press R to Restart or Q to Quit")
	for i, line := range stats.Summary() {
		tbprint(x, y+9+i, defaultColor, bgColor, line)
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
