package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/prefabs"
)

// soundboard plays the tuning's named sound effects.
type soundboard struct {
	lib    *assets.Library
	tuning *prefabs.Tuning
	logger *log.Logger
	muted  bool

	playing []*audio.Player
}

func newSoundboard(lib *assets.Library, tuning *prefabs.Tuning, logger *log.Logger) *soundboard {
	return &soundboard{lib: lib, tuning: tuning, logger: logger}
}

func (b *soundboard) Play(name string) {
	if b.muted {
		return
	}
	spec, ok := b.tuning.Sound(name)
	if !ok {
		b.logger.Debug("no such sound", "name", name)
		return
	}
	p, err := b.lib.Player(spec.File, spec.Volume)
	if err != nil {
		b.logger.Warn("sound failed", "name", name, "error", err)
		return
	}
	p.Play()
	b.playing = append(b.playing, p)
}

// Update releases players that finished.
func (b *soundboard) Update() {
	kept := b.playing[:0]
	for _, p := range b.playing {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	clear(b.playing[len(kept):])
	b.playing = kept
}
