package ui

import (
	"snake-arcade/game"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"
)

// SoundBank plays cues through the raylib audio device
type SoundBank struct {
	sounds map[game.Cue]rl.Sound
	ready  bool
}

// NewSoundBank loads every cue found in assetsDir. A missing file or audio
// device only leaves the affected cues silent.
func NewSoundBank(assetsDir string) *SoundBank {
	sb := &SoundBank{sounds: make(map[game.Cue]rl.Sound)}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		log.Warn("audio device unavailable, sounds disabled")
		return sb
	}
	sb.ready = true

	for cue, path := range game.ResolveCueFiles(assetsDir) {
		sb.sounds[cue] = rl.LoadSound(path)
		log.WithField("Path", path).Debug("loaded sound")
	}
	return sb
}

func (sb *SoundBank) Play(cue game.Cue) {
	if s, ok := sb.sounds[cue]; ok {
		rl.PlaySound(s)
	}
}

func (sb *SoundBank) Close() {
	if !sb.ready {
		return
	}
	for _, s := range sb.sounds {
		rl.UnloadSound(s)
	}
	rl.CloseAudioDevice()
}
