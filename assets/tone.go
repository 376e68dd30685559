package assets

import (
	"encoding/binary"
	"math"
	"strings"
	"time"
)

// SampleRate is the rate of every sound the library produces.
const SampleRate = 44100

// Tone describes a short synthesized effect: a square wave sliding from
// From to To hertz with a linear fade out.
type Tone struct {
	From     float64
	To       float64
	Duration time.Duration
	Volume   float64
}

var tones = map[string]Tone{
	"PlayerJump":    {From: 330, To: 660, Duration: 120 * time.Millisecond, Volume: 1},
	"PlayerKilled":  {From: 440, To: 110, Duration: 450 * time.Millisecond, Volume: 1},
	"PlayerFall":    {From: 220, To: 55, Duration: 500 * time.Millisecond, Volume: 1},
	"PowerUp":       {From: 440, To: 1320, Duration: 400 * time.Millisecond, Volume: 1},
	"MonsterKilled": {From: 180, To: 90, Duration: 250 * time.Millisecond, Volume: 1},
	"GemCollected":  {From: 880, To: 1320, Duration: 90 * time.Millisecond, Volume: 1},
	"TileBroken":    {From: 120, To: 60, Duration: 160 * time.Millisecond, Volume: 1},
	"ExitReached":   {From: 523, To: 1046, Duration: 700 * time.Millisecond, Volume: 1},
}

// ToneFor returns the synthesized stand-in for a sound file such as
// "Sounds/PlayerJump".
func ToneFor(file string) Tone {
	name := file[strings.LastIndex(file, "/")+1:]
	if t, ok := tones[name]; ok {
		return t
	}
	return Tone{From: 440, To: 440, Duration: 100 * time.Millisecond, Volume: 1}
}

// PCM renders t as 16-bit little-endian stereo samples, the format the
// audio context plays directly.
func (t Tone) PCM(volume float64) []byte {
	n := int(math.Round(t.Duration.Seconds() * SampleRate))
	out := make([]byte, n*4)
	amp := math.Max(0, math.Min(1, t.Volume*volume)) * 0.3 * math.MaxInt16

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.From + (t.To-t.From)*progress
		phase += freq / SampleRate
		phase -= math.Floor(phase)

		v := amp * (1 - progress)
		if phase >= 0.5 {
			v = -v
		}
		s := uint16(int16(v))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}
