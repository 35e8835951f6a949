package config

import (
	_ "embed"
)

//go:embed defaults/pixelpong.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			BallSpeed:     1.0,
			PaddleSpeed:   1.0,
			PaddleDamping: 1.0,
		},
		AI: AIConfig{
			Difficulty: "NORMAL",
		},
		Match: MatchConfig{
			DurationSeconds: 120,
		},
		Audio: AudioConfig{
			Muted: false,
		},
	}
}
