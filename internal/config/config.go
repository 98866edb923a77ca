// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for Froggit.
package config

// FroggitConfig contains all tunable gameplay parameters.
type FroggitConfig struct {
	Frog    FrogConfig    `yaml:"frog"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// FrogConfig defines frog movement and lives.
type FrogConfig struct {
	SlideSeconds float64 `yaml:"slide_seconds"` // Duration of one hop
	Lives        int     `yaml:"lives"`
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	ExitPoints int `yaml:"exit_points"` // Points per claimed exit
	LifeBonus  int `yaml:"life_bonus"`  // Points per remaining life on a win
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyFroggitPreset modifies the config based on a difficulty preset.
// The fixed preset leaves the loaded values untouched.
func ApplyFroggitPreset(cfg *FroggitConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Frog.Lives = 5
		cfg.Frog.SlideSeconds = 0.3
	case DifficultyNormal:
		cfg.Frog.Lives = 3
		cfg.Frog.SlideSeconds = 0.25
	case DifficultyHard:
		cfg.Frog.Lives = 2
		cfg.Frog.SlideSeconds = 0.2
	}
}
