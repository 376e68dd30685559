package prefabs

import (
	"errors"
	"fmt"
	"image/color"
)

// Tuning gathers every gameplay constant the simulation reads.
type Tuning struct {
	Player PlayerSpec
	Enemy  EnemySpec
	Gem    GemSpec
	Level  LevelSpec
	Sounds []AudioSpec
}

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

// LoadTuning reads player.yaml, enemy.yaml, gem.yaml, level.yaml and
// audio.yaml, preferring copies under ./prefabs over the embedded ones.
func LoadTuning() (Tuning, error) {
	var t Tuning

	player, err := LoadPlayerSpec()
	if err != nil {
		return t, err
	}
	enemy, err := LoadEnemySpec()
	if err != nil {
		return t, err
	}
	gem, err := LoadGemSpec()
	if err != nil {
		return t, err
	}
	level, err := LoadLevelSpec()
	if err != nil {
		return t, err
	}
	sounds, err := LoadSpec[SoundsSpec]("audio.yaml")
	if err != nil {
		return t, err
	}

	t = Tuning{
		Player: *player,
		Enemy:  *enemy,
		Gem:    *gem,
		Level:  *level,
		Sounds: sounds.Sounds,
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	if t.Player.MaxJumpTime <= 0 {
		return fmt.Errorf("%w: player.max_jump_time must be positive", ErrInvalidTuning)
	}
	if t.Player.MaxFallSpeed <= 0 || t.Player.MaxMoveSpeed <= 0 {
		return fmt.Errorf("%w: player speed limits must be positive", ErrInvalidTuning)
	}
	for _, s := range []SpriteSpec{t.Player.Sprite, t.Enemy.Sprite} {
		if s.FrameWidth <= 0 || s.FrameHeight <= 0 {
			return fmt.Errorf("%w: sprite %q has no frame size", ErrInvalidTuning, s.Image)
		}
	}
	for _, m := range "1234" {
		if _, ok := t.Gem.Kind(m); !ok {
			return fmt.Errorf("%w: gem.kinds missing marker %q", ErrInvalidTuning, m)
		}
	}
	if t.Level.ViewportWidth <= 0 || t.Level.ViewportHeight <= 0 {
		return fmt.Errorf("%w: level viewport must be positive", ErrInvalidTuning)
	}
	if t.Level.MaxTime <= 0 {
		return fmt.Errorf("%w: level.max_time must be positive", ErrInvalidTuning)
	}
	return nil
}

// Sound returns the audio spec registered under name.
func (t Tuning) Sound(name string) (AudioSpec, bool) {
	for _, s := range t.Sounds {
		if s.Name == name {
			return s, true
		}
	}
	return AudioSpec{}, false
}

// DefaultTuning mirrors the embedded yaml files.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerSpec{
			Name: "player",
			Sprite: SpriteSpec{
				Image:        "Sprites/Player",
				FrameWidth:   64,
				FrameHeight:  64,
				BoundsWidth:  0.4,
				BoundsHeight: 0.8,
			},
			MoveAcceleration:    13000,
			MaxMoveSpeed:        1750,
			GroundDragFactor:    0.48,
			AirDragFactor:       0.58,
			MaxJumpTime:         0.35,
			JumpLaunchVelocity:  -3500,
			GravityAcceleration: 3400,
			MaxFallSpeed:        550,
			JumpControlPower:    0.14,
			SafeFallDistance:    160,
			MaxPowerUpTime:      6,
			RunThreshold:        0.02,
			MoveStickScale:      1,
			StickDeadZone:       0.5,
			AccelerometerScale:  1.5,
			TiltDeadZone:        0.1,
		},
		Enemy: EnemySpec{
			Name: "enemy",
			Sprite: SpriteSpec{
				Image:        "Sprites/Monster",
				FrameWidth:   64,
				FrameHeight:  64,
				BoundsWidth:  0.35,
				BoundsHeight: 0.7,
			},
			MoveSpeed:   64,
			MaxWaitTime: 0.5,
		},
		Gem: GemSpec{
			Name: "gem",
			Kinds: []GemKindSpec{
				{Marker: "1", Value: 10, Image: "Sprites/Gem"},
				{Marker: "2", Value: 30, Image: "Sprites/Gem"},
				{Marker: "3", Value: 50, Image: "Sprites/Gem"},
				{Marker: "4", Value: 100, PowerUp: true, Image: "Sprites/PowerUp"},
			},
			BounceHeight:  0.18,
			BounceRate:    3,
			BounceSync:    -0.75,
			TextureHeight: 32,
			RadiusFactor:  1.0 / 3.0,
			CollectSpeed:  900,
			ShrinkFactor:  0.96,
			CollectScale:  1.5,
		},
		Level: LevelSpec{
			Name:            "level",
			ViewMargin:      0.35,
			ViewportWidth:   800,
			ViewportHeight:  480,
			PointsPerSecond: 5,
			BonusRate:       100,
			MaxTime:         120,
			HUDAnchorX:      24,
			HUDAnchorY:      16,
			RandomSeed:      354668,
			Background:      &YAMLColor{Color: color.NRGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff}},
			HUDColor:        &YAMLColor{Color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		},
		Sounds: []AudioSpec{
			{Name: "jump", File: "Sounds/PlayerJump", Volume: 0.5},
			{Name: "player_killed", File: "Sounds/PlayerKilled", Volume: 0.7},
			{Name: "player_fell", File: "Sounds/PlayerFall", Volume: 0.7},
			{Name: "power_up", File: "Sounds/PowerUp", Volume: 0.6},
			{Name: "enemy_killed", File: "Sounds/MonsterKilled", Volume: 0.6},
			{Name: "gem_collected", File: "Sounds/GemCollected", Volume: 0.5},
			{Name: "tile_broken", File: "Sounds/TileBroken", Volume: 0.6},
			{Name: "exit_reached", File: "Sounds/ExitReached", Volume: 0.8},
		},
	}
}
