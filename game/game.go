package game

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/event"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// DefaultFoodReward is the number of points a food is worth
const DefaultFoodReward = 10

// State of the game state machine
type State int

const (
	Running State = iota
	GameOver
	WaitingForRestart
	Quit
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	case WaitingForRestart:
		return "waiting_for_restart"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// ScoreStore loads and saves the persisted high score
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Config holds the rules a Game is played with
type Config struct {
	Grid       types.Grid
	Start      types.Point
	FoodReward int
	Seed       uint64
	AvoidSnake bool // keep food off the snake's body
}

// DefaultConfig returns the classic 30x20 board with a time based seed
func DefaultConfig() Config {
	return Config{
		Grid:       types.DefaultGrid(),
		Start:      entity.DefaultStart,
		FoodReward: DefaultFoodReward,
		Seed:       uint64(time.Now().UnixNano()),
	}
}

// Game owns the snake, the food and the scores. It is not safe for
// concurrent use; the loop that ticks it is the only writer.
type Game struct {
	UUID string

	cfg     Config
	snake   *entity.Snake
	food    entity.Food
	factory *manager.FoodFactory
	store   ScoreStore
	sounds  SoundPlayer
	bus     *event.Bus
	stats   *manager.SessionStats

	score     int
	highScore int
	pending   types.Direction
	state     State
	round     int
	ticks     uint64
	startTime time.Time

	log *log.Entry
}

// NewGame builds a running game. sounds may be nil.
func NewGame(cfg Config, store ScoreStore, sounds SoundPlayer) *Game {
	if cfg.FoodReward == 0 {
		cfg.FoodReward = DefaultFoodReward
	}
	if sounds == nil {
		sounds = NopSoundPlayer{}
	}

	gameUUID := uuid.New().String()
	g := &Game{
		UUID:    gameUUID,
		cfg:     cfg,
		factory: manager.NewFoodFactory(cfg.Grid, cfg.Seed, cfg.AvoidSnake),
		store:   store,
		sounds:  sounds,
		bus:     event.NewBus(),
		stats:   manager.NewSessionStats(),
		log:     log.WithField("Session", gameUUID),
	}

	// handler order matters: grow, respawn, score, then feedback
	g.bus.Register(event.FoodEaten, func(event.Event) { g.snake.Grow() })
	g.bus.Register(event.FoodEaten, func(event.Event) { g.food = g.factory.CreateFood(g.snake) })
	g.bus.Register(event.FoodEaten, func(event.Event) { g.score += g.cfg.FoodReward })
	g.bus.Register(event.FoodEaten, func(event.Event) { g.sounds.Play(CueFoodEaten) })

	g.bus.Register(event.GameOver, g.onGameOverStarted)
	g.bus.Register(event.GameOver, func(event.Event) { g.sounds.Play(CueGameOver) })
	g.bus.Register(event.GameOver, func(event.Event) { g.updateHighScore() })
	g.bus.Register(event.GameOver, func(event.Event) {
		g.stats.AddGame(g.round, g.score, g.startTime, time.Now())
	})
	g.bus.Register(event.GameOver, g.onGameOverFinished)

	g.Restart()
	return g
}

// Restart puts the game back into its initial running state and reloads the
// high score from the store. The high score never goes down.
func (g *Game) Restart() {
	g.round++
	g.snake = entity.NewSnake(g.cfg.Grid, g.cfg.Start)
	g.food = g.factory.CreateFood(g.snake)
	g.score = 0
	// a failed save must not lose the score shown on the game over screen
	g.highScore = max(g.highScore, g.loadHighScore())
	g.pending = g.snake.Direction
	g.ticks = 0
	g.startTime = time.Now()
	g.state = Running

	g.log = g.log.WithField("Round", g.round)
	g.log.WithFields(log.Fields{
		"HighScore": g.highScore,
		"Food":      g.food.Position,
	}).Info("round started")
}

func (g *Game) loadHighScore() int {
	if g.store == nil {
		return 0
	}
	score, err := g.store.Load()
	if err != nil {
		g.log.WithError(err).Warn("unable to load high score, using 0")
		return 0
	}
	return score
}

// HandleInput applies one input event to the state machine
func (g *Game) HandleInput(in Input) {
	if in == InputClose {
		g.quit("window closed")
		return
	}

	switch g.state {
	case Running:
		dir, ok := in.Direction()
		if !ok {
			return
		}
		// reversing into the second segment is never allowed
		if !g.snake.IsOppositeDirection(dir) {
			g.pending = dir
		}
	case WaitingForRestart:
		switch in {
		case InputRestart:
			g.Restart()
		case InputQuit:
			g.quit("quit requested")
		}
	}
}

func (g *Game) quit(reason string) {
	if g.state == Quit {
		return
	}
	g.log.WithField("Score", g.score).Info(reason)
	g.state = Quit
}

// Tick advances the game one step. It does nothing unless Running.
func (g *Game) Tick() {
	if g.state != Running {
		return
	}
	g.ticks++

	applied := g.snake.Move(g.pending)
	g.pending = applied

	if g.snake.CollidesWithFood(g.food) {
		g.log.WithFields(log.Fields{
			"Tick": g.ticks,
			"Food": g.food.Position,
		}).Debug("snake ate")
		g.bus.Notify(event.Event{Kind: event.FoodEaten, Tick: g.ticks, Score: g.score})
	}

	g.snake.WrapAround()

	if g.snake.CollidesWithSelf() {
		g.bus.Notify(event.Event{Kind: event.GameOver, Tick: g.ticks, Score: g.score})
	}
}

func (g *Game) onGameOverStarted(ev event.Event) {
	g.state = GameOver
	g.log.WithFields(log.Fields{
		"Tick":   ev.Tick,
		"Score":  g.score,
		"Length": g.snake.Len(),
	}).Info("snake collided with itself")
}

func (g *Game) onGameOverFinished(event.Event) {
	if g.state == GameOver {
		g.state = WaitingForRestart
	}
}

// updateHighScore persists the score when it beats the stored one
func (g *Game) updateHighScore() {
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.highScore); err != nil {
		g.log.WithError(err).Error("unable to save high score")
		return
	}
	g.log.WithField("HighScore", g.highScore).Info("new high score")
}

// Events exposes the bus. Handlers registered here run after the game's own.
func (g *Game) Events() *event.Bus {
	return g.bus
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() entity.Food {
	return g.food
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) HighScore() int {
	return g.highScore
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) Ticks() uint64 {
	return g.ticks
}

func (g *Game) Grid() types.Grid {
	return g.cfg.Grid
}

func (g *Game) Stats() *manager.SessionStats {
	return g.stats
}

// ElapsedTime returns how long the current round has been running
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.startTime)
}
