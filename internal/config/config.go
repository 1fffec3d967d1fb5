// Package config provides YAML-based configuration loading for turtleshell.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/turtleshell/internal/scene"
)

// ErrInvalid is returned when a loaded configuration cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete turtleshell configuration.
type Config struct {
	Scene   SceneConfig   `yaml:"scene"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// SceneConfig defines how skies are generated.
type SceneConfig struct {
	ElementCount     int     `yaml:"element_count"`
	ScaleMultiplier  float64 `yaml:"scale_multiplier"`
	DepthRange       float64 `yaml:"depth_range"`
	PerspectiveRange float64 `yaml:"perspective_range"`
	PerspectiveBase  float64 `yaml:"perspective_base"`
	SeedOffset       float64 `yaml:"seed_offset"`
	ReferenceWidth   int     `yaml:"reference_width"` // Terminal width at which shapes have scale 1
}

// StorageConfig defines where visits are recorded.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SSHConfig defines the SSH server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Params converts the scene section to generator parameters.
func (c SceneConfig) Params() scene.Params {
	return scene.Params{
		ElementCount:     c.ElementCount,
		ScaleMultiplier:  c.ScaleMultiplier,
		DepthRange:       c.DepthRange,
		PerspectiveRange: c.PerspectiveRange,
		PerspectiveBase:  c.PerspectiveBase,
		SeedOffset:       c.SeedOffset,
	}
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	if err := c.Scene.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Scene.ReferenceWidth <= 0 {
		return fmt.Errorf("%w: reference width %d <= 0", ErrInvalid, c.Scene.ReferenceWidth)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: negative idle timeout", ErrInvalid)
	}
	return nil
}
