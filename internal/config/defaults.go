package config

import (
	_ "embed"

	"github.com/vovakirdan/turtleshell/internal/scene"
)

//go:embed defaults/turtleshell.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the built-in configuration.
func Default() Config {
	p := scene.DefaultParams()
	return Config{
		Scene: SceneConfig{
			ElementCount:     p.ElementCount,
			ScaleMultiplier:  p.ScaleMultiplier,
			DepthRange:       p.DepthRange,
			PerspectiveRange: p.PerspectiveRange,
			PerspectiveBase:  p.PerspectiveBase,
			SeedOffset:       p.SeedOffset,
			ReferenceWidth:   80,
		},
		Storage: StorageConfig{
			Path: "~/.turtleshell/visits.db",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}
