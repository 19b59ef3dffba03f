package main

import (
	"os"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/manager"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	frontendRaylib = "raylib"
	frontendTerm   = "term"

	defaultTermLogFile = "snake.log"
)

// options is everything the command line can change. The zero-flag run
// reproduces the classic game.
type options struct {
	Frontend      string
	HighScoreFile string
	AssetsDir     string
	Tick          time.Duration
	Reward        int
	Seed          uint64
	AvoidBody     bool
	LogLevel      string
	LogFile       string
}

func defaultOptions() *options {
	return &options{
		Frontend:      frontendRaylib,
		HighScoreFile: manager.DefaultHighScoreFile,
		AssetsDir:     "assets",
		Tick:          game.DefaultTick,
		Reward:        game.DefaultFoodReward,
		LogLevel:      "info",
	}
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.Frontend, "frontend", o.Frontend, "presentation to use: raylib or term")
	fs.StringVar(&o.HighScoreFile, "highscore-file", o.HighScoreFile, "file holding the high score")
	fs.StringVar(&o.AssetsDir, "assets", o.AssetsDir, "directory containing the sound files")
	fs.DurationVar(&o.Tick, "tick", o.Tick, "time between two game steps")
	fs.IntVar(&o.Reward, "reward", o.Reward, "points awarded per food")
	fs.Uint64Var(&o.Seed, "seed", o.Seed, "food placement seed, 0 picks one from the clock")
	fs.BoolVar(&o.AvoidBody, "avoid-body", o.AvoidBody, "never spawn food on the snake")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&o.LogFile, "log-file", o.LogFile, "write logs to this file instead of stderr")
}

func (o *options) validate() error {
	switch o.Frontend {
	case frontendRaylib, frontendTerm:
	default:
		return errors.Errorf("unknown frontend %q", o.Frontend)
	}
	if o.Tick <= 0 {
		return errors.Errorf("tick must be positive, got %s", o.Tick)
	}
	if o.Reward <= 0 {
		return errors.Errorf("reward must be positive, got %d", o.Reward)
	}
	return nil
}

// gameConfig turns the options into game rules
func (o *options) gameConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.FoodReward = o.Reward
	cfg.AvoidSnake = o.AvoidBody
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
	return cfg
}

// configureLogging sets the logrus level and output. The terminal frontend
// owns the screen, so it logs to a file unless told otherwise. The returned
// func releases the log file, if any.
func (o *options) configureLogging() (func(), error) {
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	path := o.LogFile
	if path == "" && o.Frontend == frontendTerm {
		path = defaultTermLogFile
	}
	if path == "" {
		log.SetOutput(os.Stderr)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", path)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
