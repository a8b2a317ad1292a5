// Package config provides YAML-based game configuration loading, the
// window key/value file and the stage difficulty curve.
package config

import "path/filepath"

// Config is the full game configuration.
type Config struct {
	Render     RenderConfig     `yaml:"render"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Timing     TimingConfig     `yaml:"timing"`
	Player     PlayerConfig     `yaml:"player"`
	Paths      PathsConfig      `yaml:"paths"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RenderConfig controls the frame loop and terminal output.
type RenderConfig struct {
	FPS   int `yaml:"fps"`
	Scale int `yaml:"scale"` // 0 picks the largest scale that fits
}

// GameplayConfig holds the player movement rules.
type GameplayConfig struct {
	LadderTile uint16 `yaml:"ladder_tile"`
	MinX       int16  `yaml:"min_x"`
	MaxX       int16  `yaml:"max_x"`
	Step       int16  `yaml:"step"`
	ClimbStep  int16  `yaml:"climb_step"`
	JumpTicks  uint16 `yaml:"jump_ticks"`
	JumpApex   uint16 `yaml:"jump_apex"`
	GoalLine   int16  `yaml:"goal_line"` // the stage is cleared above this y
	BonusStart uint32 `yaml:"bonus_start"`
	BonusStep  uint32 `yaml:"bonus_step"`
}

// TimingConfig holds screen durations in milliseconds.
type TimingConfig struct {
	BootStep      uint32 `yaml:"boot_step"`
	AttractIdle   uint32 `yaml:"attract_idle"`
	Title         uint32 `yaml:"title"`
	Credit        uint32 `yaml:"credit"`
	HowHigh       uint32 `yaml:"how_high"`
	HighScore     uint32 `yaml:"high_score"`
	BonusInterval uint32 `yaml:"bonus_interval"`
	Blink         uint32 `yaml:"blink"`
}

// PlayerConfig holds per-game player settings.
type PlayerConfig struct {
	Lives    int    `yaml:"lives"`
	Initials string `yaml:"initials"`
}

// PathsConfig names the files kept in the data directory. Relative paths
// are resolved against the data directory.
type PathsConfig struct {
	TileMaps    string `yaml:"tile_maps"`
	Machine     string `yaml:"machine"`
	Scores      string `yaml:"scores"`
	Log         string `yaml:"log"`
	Window      string `yaml:"window"`
	Screenshots string `yaml:"screenshots"`
}

// InputConfig tunes how terminal key presses map to held buttons.
type InputConfig struct {
	HoldMs uint32 `yaml:"hold_ms"` // terminals report presses, not releases
}

// Resolve returns a copy with every relative path joined to dataDir.
func (p PathsConfig) Resolve(dataDir string) PathsConfig {
	join := func(path string) string {
		if path == "" || filepath.IsAbs(path) || dataDir == "" {
			return path
		}
		return filepath.Join(dataDir, path)
	}
	return PathsConfig{
		TileMaps:    join(p.TileMaps),
		Machine:     join(p.Machine),
		Scores:      join(p.Scores),
		Log:         join(p.Log),
		Window:      join(p.Window),
		Screenshots: join(p.Screenshots),
	}
}

// DefaultConfig returns the hardcoded configuration used when no YAML
// source can be read.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{FPS: 60, Scale: 0},
		Gameplay: GameplayConfig{
			LadderTile: 0xc0,
			MinX:       16,
			MaxX:       224,
			Step:       2,
			ClimbStep:  2,
			JumpTicks:  20,
			JumpApex:   10,
			GoalLine:   48,
			BonusStart: 5000,
			BonusStep:  100,
		},
		Timing: TimingConfig{
			BootStep:      33,
			AttractIdle:   10000,
			Title:         5000,
			Credit:        1000,
			HowHigh:       3000,
			HighScore:     5000,
			BonusInterval: 2000,
			Blink:         250,
		},
		Player: PlayerConfig{Lives: 3, Initials: "AAA"},
		Paths: PathsConfig{
			TileMaps:    "ckong.dat",
			Machine:     "machine.dat",
			Scores:      "scores.db",
			Log:         "ckong.log",
			Window:      "ckong.cfg",
			Screenshots: "screenshots",
		},
		Input: InputConfig{HoldMs: 120},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "stage", MaxAt: 8},
			Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}
