package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"snake-arcade/audio"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/ui"
	"snake-arcade/ui/term"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	opts := defaultOptions()
	cmd := &cobra.Command{
		Use:          "snake",
		Short:        "snake is a small arcade game: eat, grow, don't bite yourself",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			closeLog, err := opts.configureLogging()
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = play(ctx, opts)
			if errors.Is(err, context.Canceled) {
				log.Info("interrupted")
				return nil
			}
			return err
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}

// play opens the selected frontend and runs the game until the player quits
func play(ctx context.Context, opts *options) error {
	cfg := opts.gameConfig()
	store := manager.NewHighScoreStore(opts.HighScoreFile)

	log.WithFields(log.Fields{
		"Frontend":  opts.Frontend,
		"HighScore": store.Path(),
		"Seed":      cfg.Seed,
		"Tick":      opts.Tick,
	}).Info("starting snake")

	switch opts.Frontend {
	case frontendTerm:
		fe, err := term.New(cfg.Grid)
		if err != nil {
			return err
		}
		defer fe.Close()

		sounds := audio.NewPlayer(opts.AssetsDir)
		defer sounds.Close()

		g := game.NewGame(cfg, store, sounds)
		fe.Watch(g.Events())
		return game.Run(ctx, g, fe, opts.Tick)
	default:
		fe, err := ui.NewRenderer(cfg.Grid)
		if err != nil {
			return err
		}
		defer fe.Close()

		sounds := ui.NewSoundBank(opts.AssetsDir)
		defer sounds.Close()

		return game.Run(ctx, game.NewGame(cfg, store, sounds), fe, opts.Tick)
	}
}
