package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadTuningMatchesDefaults(t *testing.T) {
	got, err := LoadTuning()
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), got)
}

func TestTuningValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tuning)
		ok     bool
	}{
		{"defaults", func(*Tuning) {}, true},
		{"zero_jump_time", func(t *Tuning) { t.Player.MaxJumpTime = 0 }, false},
		{"missing_gem_marker", func(t *Tuning) { t.Gem.Kinds = t.Gem.Kinds[:3] }, false},
		{"no_enemy_frame", func(t *Tuning) { t.Enemy.Sprite.FrameWidth = 0 }, false},
		{"no_max_time", func(t *Tuning) { t.Level.MaxTime = 0 }, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tuning := DefaultTuning()
			c.mutate(&tuning)
			err := tuning.Validate()
			if c.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidTuning)
		})
	}
}

func TestGemKindLookup(t *testing.T) {
	spec := DefaultTuning().Gem

	k, ok := spec.Kind('4')
	require.True(t, ok)
	assert.Equal(t, 100, k.Value)
	assert.True(t, k.PowerUp)

	k, ok = spec.Kind('2')
	require.True(t, ok)
	assert.Equal(t, 30, k.Value)
	assert.False(t, k.PowerUp)

	_, ok = spec.Kind('9')
	assert.False(t, ok)
}

func TestTuningSound(t *testing.T) {
	s, ok := DefaultTuning().Sound("tile_broken")
	require.True(t, ok)
	assert.Equal(t, "Sounds/TileBroken", s.File)

	_, ok = DefaultTuning().Sound("nope")
	assert.False(t, ok)
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want color.Color
		err  bool
	}{
		{"rgb", `c: "#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"rgba", `c: "10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"short", `c: "#123"`, nil, true},
		{"not_hex", `c: "#zz2030"`, nil, true},
		{"not_scalar", "c: [1, 2]", nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out struct {
				C *YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte(c.in), &out)
			if c.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, out.C.Color)
		})
	}
}

func TestLoadMissingSpec(t *testing.T) {
	_, err := LoadSpec[LevelSpec]("missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefabs: load missing.yaml")
}

func TestWatcherReportsLevelEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644))
	target := filepath.Join(dir, "3.txt")
	require.NoError(t, os.WriteFile(target, []byte("P..X\n####\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no watcher event for level edit")
	}
}

func TestWatcherFileFilters(t *testing.T) {
	assert.True(t, IsSpecFile("prefabs/player.yaml"))
	assert.True(t, IsSpecFile("x.YML"))
	assert.False(t, IsSpecFile("levels/0.txt"))
	assert.True(t, IsLevelFile("levels/0.txt"))
	assert.False(t, IsLevelFile("levels/0.json"))
}
