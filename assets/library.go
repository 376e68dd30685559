// Package assets hands out the images and sounds named by level content.
// Files under the asset directory win; anything missing is drawn or
// synthesized so the game runs without art.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// Context returns the process-wide audio context, creating it on first use.
func Context() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// Library caches images and decoded sounds by content name, such as
// "Tiles/BlockA3" or "Sounds/PlayerJump".
type Library struct {
	dir    string
	logger *log.Logger

	mu     sync.Mutex
	images map[string]*ebiten.Image
	sounds map[string][]byte
}

// NewLibrary looks for files under dir. An empty dir means placeholders
// only.
func NewLibrary(dir string, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.Default()
	}
	return &Library{
		dir:    dir,
		logger: logger,
		images: make(map[string]*ebiten.Image),
		sounds: make(map[string][]byte),
	}
}

// Image returns the picture for name, w by h pixels when it has to be
// drawn.
func (l *Library) Image(name string, w, h int) *ebiten.Image {
	key := fmt.Sprintf("%s@%dx%d", name, w, h)

	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.images[key]; ok {
		return img
	}

	img, err := l.loadImage(name)
	if err != nil {
		if !os.IsNotExist(err) {
			l.logger.Warn("image load failed, using placeholder", "name", name, "error", err)
		}
		img = ebiten.NewImageFromImage(Placeholder(name, w, h))
	}
	l.images[key] = img
	return img
}

func (l *Library) loadImage(name string) (*ebiten.Image, error) {
	if l.dir == "" {
		return nil, os.ErrNotExist
	}
	b, err := os.ReadFile(l.path(name, ".png"))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Sound returns the PCM bytes for a sound file, scaled by volume when it
// has to be synthesized.
func (l *Library) Sound(file string, volume float64) ([]byte, error) {
	key := fmt.Sprintf("%s@%.2f", file, volume)

	l.mu.Lock()
	defer l.mu.Unlock()
	if pcm, ok := l.sounds[key]; ok {
		return pcm, nil
	}

	pcm, err := l.loadWav(file)
	if os.IsNotExist(err) {
		pcm, err = ToneFor(file).PCM(volume), nil
	}
	if err != nil {
		return nil, err
	}
	l.sounds[key] = pcm
	return pcm, nil
}

func (l *Library) loadWav(file string) ([]byte, error) {
	if l.dir == "" {
		return nil, os.ErrNotExist
	}
	b, err := os.ReadFile(l.path(file, ".wav"))
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", file, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(stream); err != nil {
		return nil, fmt.Errorf("read wav %q: %w", file, err)
	}
	return buf.Bytes(), nil
}

// Player creates a one-shot audio player for a sound file.
func (l *Library) Player(file string, volume float64) (*audio.Player, error) {
	pcm, err := l.Sound(file, volume)
	if err != nil {
		return nil, err
	}
	return Context().NewPlayerFromBytes(pcm), nil
}

func (l *Library) path(name, ext string) string {
	clean := filepath.ToSlash(name)
	clean = strings.TrimPrefix(clean, "assets/")
	return filepath.Join(l.dir, filepath.FromSlash(clean)+ext)
}
