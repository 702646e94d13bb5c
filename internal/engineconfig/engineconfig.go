package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"showroom/internal/input"
	"showroom/internal/radial"
)

// ConfigPath is the default config file, relative to the process working directory.
const ConfigPath = "config/showroom.yaml"

// Config is the full showroom configuration. Persisted as YAML; fields missing from the file
// keep their Default values.
type Config struct {
	Window    Window              `yaml:"window"`
	Logging   Logging             `yaml:"logging"`
	Platform  string              `yaml:"platform"`
	Player    Player              `yaml:"player"`
	Look      Look                `yaml:"look"`
	Keys      map[string][]string `yaml:"keys"`
	Physics   Physics             `yaml:"physics"`
	Showroom  Ring                `yaml:"showroom"`
	Guardrail Ring                `yaml:"guardrail"`
	Debug     Debug               `yaml:"debug"`
}

type Window struct {
	Title      string `yaml:"title"`
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int32  `yaml:"target_fps"`
}

type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Player holds locomotion and spawn settings. Yaw is in degrees.
type Player struct {
	Speed       float32    `yaml:"speed"`
	EyeHeight   float32    `yaml:"eye_height"`
	HalfExtents [3]float32 `yaml:"half_extents"`
	Spawn       [3]float32 `yaml:"spawn"`
	SpawnYaw    float32    `yaml:"spawn_yaw"`
}

type Look struct {
	TouchSensitivity   float32 `yaml:"touch_sensitivity"`
	PointerSensitivity float32 `yaml:"pointer_sensitivity"`
}

type Physics struct {
	Gravity    [3]float32 `yaml:"gravity"`
	MaxSubstep float32    `yaml:"max_substep"`
}

// Ring is a circular collider structure. Angles are in degrees; Center is world X/Z.
type Ring struct {
	Radius    float32    `yaml:"radius"`
	Height    float32    `yaml:"height"`
	Thickness float32    `yaml:"thickness"`
	BaseY     float32    `yaml:"base_y"`
	Center    [2]float32 `yaml:"center"`
	GapAngle  float32    `yaml:"gap_angle"`
	GapWidth  float32    `yaml:"gap_width"`
	Segments  int        `yaml:"segments"`
	// PostSize is the half width of the doorway pillars; 0 disables them.
	PostSize float32 `yaml:"post_size"`
}

type Debug struct {
	ShowFPS     bool `yaml:"show_fps"`
	ShowHUD     bool `yaml:"show_hud"`
	GridVisible bool `yaml:"grid_visible"`
}

// Default returns the built-in configuration: a 14 m showroom with a 30° doorway facing -Z,
// a plaza guardrail, and a desktop player spawned outside the doorway looking in.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "showroom",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Logging:  Logging{Level: "info", File: "logs/showroom.log"},
		Platform: "desktop",
		Player: Player{
			Speed:       6,
			EyeHeight:   0.7,
			HalfExtents: [3]float32{0.3, 0.8, 0.3},
			Spawn:       [3]float32{0, 1.6, -50},
			SpawnYaw:    180,
		},
		Look: Look{TouchSensitivity: 0.004, PointerSensitivity: 0.002},
		Keys: map[string][]string{
			"forward":  {string(input.KeyW), string(input.KeyArrowUp)},
			"backward": {string(input.KeyS), string(input.KeyArrowDown)},
			"left":     {string(input.KeyA), string(input.KeyArrowLeft)},
			"right":    {string(input.KeyD), string(input.KeyArrowRight)},
		},
		Physics: Physics{Gravity: [3]float32{0, -9.81, 0}, MaxSubstep: 1.0 / 60},
		Showroom: Ring{
			Radius:    14,
			Height:    6,
			Thickness: 0.35,
			GapAngle:  270,
			GapWidth:  30,
			Segments:  48,
			PostSize:  0.4,
		},
		Guardrail: Ring{
			Radius:    60,
			Height:    1.2,
			Thickness: 0.3,
			GapAngle:  270,
			GapWidth:  12,
			Segments:  96,
		},
		Debug: Debug{GridVisible: true},
	}
}

// Load reads the config at path over Default. A missing file yields Default and no error; an
// unreadable or invalid file yields Default and the error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("engineconfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("engineconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("engineconfig: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	return nil
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Radial returns the ring in generator units.
func (r Ring) Radial() radial.Ring {
	return radial.Ring{
		Radius:    r.Radius,
		Height:    r.Height,
		Thickness: r.Thickness,
		BaseY:     r.BaseY,
		Center:    mgl32.Vec2{r.Center[0], r.Center[1]},
		Gap:       radial.Gap{Center: Radians(r.GapAngle), Width: Radians(r.GapWidth)},
		Segments:  r.Segments,
	}
}

// KeyMap returns the configured key bindings, or the default map when none are usable.
func (c Config) KeyMap() input.KeyMap {
	m := input.KeyMapFromBindings(c.Keys)
	if len(m) == 0 {
		return input.DefaultKeyMap()
	}
	return m
}

// SpawnPoint returns the player spawn point.
func (p Player) SpawnPoint() mgl32.Vec3 {
	return mgl32.Vec3(p.Spawn)
}

// BodyHalfExtents returns the player collision box half size.
func (p Player) BodyHalfExtents() mgl32.Vec3 {
	return mgl32.Vec3(p.HalfExtents)
}

// GravityVec returns the gravity vector.
func (p Physics) GravityVec() mgl32.Vec3 {
	return mgl32.Vec3(p.Gravity)
}
