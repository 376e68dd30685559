package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SpriteSpec describes a character sprite frame and the collision box
// carved out of it. The box is BoundsWidth x BoundsHeight of the frame,
// centered horizontally and resting on the frame's bottom edge.
type SpriteSpec struct {
	Image        string  `yaml:"image"`
	FrameWidth   int     `yaml:"frame_width"`
	FrameHeight  int     `yaml:"frame_height"`
	BoundsWidth  float64 `yaml:"bounds_width"`
	BoundsHeight float64 `yaml:"bounds_height"`
}

type PlayerSpec struct {
	Name   string     `yaml:"name"`
	Sprite SpriteSpec `yaml:"sprite"`

	MoveAcceleration    float64 `yaml:"move_acceleration"`
	MaxMoveSpeed        float64 `yaml:"max_move_speed"`
	GroundDragFactor    float64 `yaml:"ground_drag_factor"`
	AirDragFactor       float64 `yaml:"air_drag_factor"`
	MaxJumpTime         float64 `yaml:"max_jump_time"`
	JumpLaunchVelocity  float64 `yaml:"jump_launch_velocity"`
	GravityAcceleration float64 `yaml:"gravity_acceleration"`
	MaxFallSpeed        float64 `yaml:"max_fall_speed"`
	JumpControlPower    float64 `yaml:"jump_control_power"`
	SafeFallDistance    float64 `yaml:"safe_fall_distance"`
	MaxPowerUpTime      float64 `yaml:"max_power_up_time"`
	RunThreshold        float64 `yaml:"run_threshold"`

	MoveStickScale     float64 `yaml:"move_stick_scale"`
	StickDeadZone      float64 `yaml:"stick_dead_zone"`
	AccelerometerScale float64 `yaml:"accelerometer_scale"`
	TiltDeadZone       float64 `yaml:"tilt_dead_zone"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name        string     `yaml:"name"`
	Sprite      SpriteSpec `yaml:"sprite"`
	MoveSpeed   float64    `yaml:"move_speed"`
	MaxWaitTime float64    `yaml:"max_wait_time"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// GemKindSpec binds one level marker to a gem's award.
type GemKindSpec struct {
	Marker  string `yaml:"marker"`
	Value   int    `yaml:"value"`
	PowerUp bool   `yaml:"power_up"`
	Image   string `yaml:"image"`
}

type GemSpec struct {
	Name          string        `yaml:"name"`
	Kinds         []GemKindSpec `yaml:"kinds"`
	BounceHeight  float64       `yaml:"bounce_height"`
	BounceRate    float64       `yaml:"bounce_rate"`
	BounceSync    float64       `yaml:"bounce_sync"`
	TextureHeight float64       `yaml:"texture_height"`
	RadiusFactor  float64       `yaml:"radius_factor"`
	CollectSpeed  float64       `yaml:"collect_speed"`
	ShrinkFactor  float64       `yaml:"shrink_factor"`
	CollectScale  float64       `yaml:"collect_scale"`
}

// Kind returns the gem kind placed by marker.
func (s GemSpec) Kind(marker rune) (GemKindSpec, bool) {
	for _, k := range s.Kinds {
		if k.Marker == string(marker) {
			return k, true
		}
	}
	return GemKindSpec{}, false
}

func LoadGemSpec() (*GemSpec, error) {
	spec, err := LoadSpec[GemSpec]("gem.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type LevelSpec struct {
	Name            string     `yaml:"name"`
	ViewMargin      float64    `yaml:"view_margin"`
	ViewportWidth   float64    `yaml:"viewport_width"`
	ViewportHeight  float64    `yaml:"viewport_height"`
	PointsPerSecond int        `yaml:"points_per_second"`
	BonusRate       float64    `yaml:"bonus_rate"`
	MaxTime         float64    `yaml:"max_time"`
	HUDAnchorX      float64    `yaml:"hud_anchor_x"`
	HUDAnchorY      float64    `yaml:"hud_anchor_y"`
	RandomSeed      int64      `yaml:"random_seed"`
	Background      *YAMLColor `yaml:"background"`
	HUDColor        *YAMLColor `yaml:"hud_color"`
}

func LoadLevelSpec() (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec]("level.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type SoundsSpec struct {
	Sounds []AudioSpec `yaml:"sounds"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
