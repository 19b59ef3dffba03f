// Package audio plays game cues from WAV files through beep's speaker. It
// backs the terminal frontend, which has no audio of its own.
package audio

import (
	"os"
	"time"

	"snake-arcade/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

// Player keeps every cue decoded in memory so playback never touches disk
type Player struct {
	buffers     map[game.Cue]*beep.Buffer
	initialized bool
}

// NewPlayer loads the cues found in assetsDir and opens the speaker. Any
// failure is logged and leaves the player (or the affected cue) silent.
func NewPlayer(assetsDir string) *Player {
	p := &Player{
		buffers: loadBuffers(game.ResolveCueFiles(assetsDir), sampleRate),
	}
	if len(p.buffers) == 0 {
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.WithError(err).Warn("unable to open speaker, sounds disabled")
		return p
	}
	p.initialized = true
	return p
}

func loadBuffers(paths map[game.Cue]string, rate beep.SampleRate) map[game.Cue]*beep.Buffer {
	buffers := make(map[game.Cue]*beep.Buffer, len(paths))
	for cue, path := range paths {
		buf, err := loadBuffer(path, rate)
		if err != nil {
			log.WithError(err).WithField("Cue", cue).Warn("unable to decode sound, cue will be silent")
			continue
		}
		buffers[cue] = buf
	}
	return buffers
}

// loadBuffer decodes a WAV file and resamples it to rate
func loadBuffer(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	format.SampleRate = rate
	buf := beep.NewBuffer(format)
	buf.Append(src)
	return buf, nil
}

// Play starts cue without waiting for it to finish
func (p *Player) Play(cue game.Cue) {
	if !p.initialized {
		return
	}
	buf, ok := p.buffers[cue]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

func (p *Player) Close() {
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
