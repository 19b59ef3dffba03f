package game

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Cue names a feedback sound
type Cue int

const (
	CueFoodEaten Cue = iota
	CueGameOver
)

// Default cue files, relative to the assets directory
var CueFiles = map[Cue]string{
	CueFoodEaten: "click.wav",
	CueGameOver:  "game_over.wav",
}

func (c Cue) String() string {
	switch c {
	case CueFoodEaten:
		return "food_eaten"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SoundPlayer plays cues. Playback is best effort and never fails the game.
type SoundPlayer interface {
	Play(cue Cue)
}

type NopSoundPlayer struct{}

func (NopSoundPlayer) Play(Cue) {}

// ResolveCueFiles returns the path of every cue file found in dir. Missing
// files are logged and left out.
func ResolveCueFiles(dir string) map[Cue]string {
	found := make(map[Cue]string, len(CueFiles))
	for cue, name := range CueFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			log.WithFields(log.Fields{
				"Cue":  cue,
				"Path": path,
			}).Warn("sound file not found, cue will be silent")
			continue
		}
		found[cue] = path
	}
	return found
}
