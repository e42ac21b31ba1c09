package battle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the arena layout and the tuning knobs of a battle.
type Config struct {
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Enemies []WorldCoord  `yaml:"enemies"`
	Button  CellCoord     `yaml:"button"`
	Plots   []PlotConfig  `yaml:"plots"`
	Walls   []EdgeConfig  `yaml:"walls"`
	Windows []EdgeConfig  `yaml:"windows"`
	Pathing PathingConfig `yaml:"pathing"`
	Camera  CameraConfig  `yaml:"camera"`
	Sound   SoundConfig   `yaml:"sound"`
}

type PlayerConfig struct {
	Spawn       WorldCoord `yaml:"spawn"`
	VisionRange int        `yaml:"vision_range"`
	StartSpeed  float64    `yaml:"start_speed"` // first step out of Standing
	RunSpeed    float64    `yaml:"run_speed"`
	LearnTicks  int        `yaml:"learn_ticks"`
}

type EnemyConfig struct {
	Speed         float64 `yaml:"speed"`
	Health        int     `yaml:"health"`
	TargetRadius  float64 `yaml:"target_radius"` // cells
	BehaviorTicks int     `yaml:"behavior_ticks"`
}

type PlotConfig struct {
	Cell    CellCoord `yaml:"cell"`
	Ability Ability   `yaml:"ability"`
}

// EdgeConfig is a wall or window given by its two corner endpoints.
type EdgeConfig struct {
	A WorldCoord `yaml:"a"`
	B WorldCoord `yaml:"b"`
}

type PathingConfig struct {
	MaxExpansions int `yaml:"max_expansions"`
}

type CameraConfig struct {
	Scale  float64 `yaml:"scale"`
	Follow float64 `yaml:"follow"` // fraction of the gap closed per tick
}

// SoundConfig names the background loop started when the battle goes live.
type SoundConfig struct {
	Name    string  `yaml:"name"`
	File    string  `yaml:"file"`
	Channel string  `yaml:"channel"`
	Volume  float64 `yaml:"volume"`
}

// DefaultConfig is the stock arena: the button in the middle and one plot
// per ability around it.
func DefaultConfig() Config {
	return Config{
		Player: PlayerConfig{
			Spawn:       WorldCoord{X: 150, Y: -150},
			VisionRange: 5,
			StartSpeed:  2.0,
			RunSpeed:    3.0,
			LearnTicks:  30,
		},
		Enemy: EnemyConfig{
			Speed:         1.5,
			Health:        100,
			TargetRadius:  7.0,
			BehaviorTicks: 150,
		},
		Enemies: []WorldCoord{
			{X: -300, Y: 240},
			{X: 320, Y: 260},
			{X: -260, Y: -300},
		},
		Button: CellCoord{X: 0, Y: 0},
		Plots: []PlotConfig{
			{Cell: CellCoord{X: -1, Y: -2}, Ability: MeleeAttack},
			{Cell: CellCoord{X: 1, Y: -2}, Ability: Armor},
			{Cell: CellCoord{X: 2, Y: -1}, Ability: RangeAttack},
			{Cell: CellCoord{X: 2, Y: 1}, Ability: Vision},
			{Cell: CellCoord{X: 1, Y: 2}, Ability: Build},
			{Cell: CellCoord{X: -1, Y: 2}, Ability: Repair},
			{Cell: CellCoord{X: -2, Y: -1}, Ability: ButtonPress},
			{Cell: CellCoord{X: -2, Y: 1}, Ability: Heal},
		},
		Pathing: PathingConfig{MaxExpansions: DefaultMaxExpansions},
		Camera:  CameraConfig{Scale: 1.1, Follow: 0.1},
		Sound: SoundConfig{
			Name:    "battle-bg",
			File:    "assets/sounds/Cool-Adventure-Intro.mp3",
			Channel: "bg",
			Volume:  0.2,
		},
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Lists present in the file
// replace the defaults wholesale.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks tuning ranges and the corner-alignment of every edge.
func (c Config) Validate() error {
	switch {
	case c.Player.LearnTicks <= 0:
		return fmt.Errorf("player.learn_ticks must be > 0, got %d", c.Player.LearnTicks)
	case c.Player.VisionRange < 0:
		return fmt.Errorf("player.vision_range must be >= 0, got %d", c.Player.VisionRange)
	case c.Enemy.BehaviorTicks <= 0:
		return fmt.Errorf("enemy.behavior_ticks must be > 0, got %d", c.Enemy.BehaviorTicks)
	case c.Enemy.Health <= 0:
		return fmt.Errorf("enemy.health must be > 0, got %d", c.Enemy.Health)
	case c.Enemy.Speed <= 0:
		return fmt.Errorf("enemy.speed must be > 0, got %v", c.Enemy.Speed)
	case c.Camera.Scale <= 0:
		return fmt.Errorf("camera.scale must be > 0, got %v", c.Camera.Scale)
	case c.Camera.Follow < 0 || c.Camera.Follow > 1:
		return fmt.Errorf("camera.follow must be within [0,1], got %v", c.Camera.Follow)
	}
	if _, err := c.walls(); err != nil {
		return err
	}
	if _, err := c.windows(); err != nil {
		return err
	}
	seen := make(map[CellCoord]bool, len(c.Plots))
	for _, p := range c.Plots {
		if seen[p.Cell] {
			return fmt.Errorf("two ability plots on cell %v", p.Cell)
		}
		seen[p.Cell] = true
	}
	return nil
}

func (c Config) walls() ([]Wall, error) {
	out := make([]Wall, 0, len(c.Walls))
	for _, e := range c.Walls {
		w, err := NewWall(e.A, e.B)
		if err != nil {
			return nil, err
		}
		if _, dup := findWall(out, e.A, e.B); dup {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (c Config) windows() ([]Window, error) {
	out := make([]Window, 0, len(c.Windows))
	for _, e := range c.Windows {
		w, err := NewWindow(e.A, e.B)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
