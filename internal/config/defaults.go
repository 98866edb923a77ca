package config

import (
	_ "embed"
)

//go:embed defaults/froggit.yaml
var defaultFroggitYAML []byte

// DefaultFroggitConfig returns the default Froggit configuration.
func DefaultFroggitConfig() FroggitConfig {
	return FroggitConfig{
		Frog: FrogConfig{
			SlideSeconds: 0.25,
			Lives:        3,
		},
		Scoring: ScoringConfig{
			ExitPoints: 100,
			LifeBonus:  50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFroggitYAML
}
