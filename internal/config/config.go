// Package config provides YAML-based configuration loading for snakeloop.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/snakeloop/internal/core"
	"github.com/vovakirdan/snakeloop/internal/world"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete snakeloop configuration.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Render RenderConfig `yaml:"render"`
	Loop   LoopConfig   `yaml:"loop"`
	Input  InputConfig  `yaml:"input"`
}

// WorldConfig defines the grid and the spawn point.
type WorldConfig struct {
	Width      int    `yaml:"width"`
	SpawnIndex int    `yaml:"spawn_index"`
	Boundary   string `yaml:"boundary"` // "none", "clamp" or "wrap"
}

// RenderConfig defines how a frame is painted.
type RenderConfig struct {
	CellSize         int        `yaml:"cell_size"`
	Background       core.Color `yaml:"background"`
	Foreground       core.Color `yaml:"foreground"`
	ResizeEveryFrame bool       `yaml:"resize_every_frame"`
}

// LoopConfig defines the frame loop lifecycle.
type LoopConfig struct {
	FrameLimit   int  `yaml:"frame_limit"`
	TickRate     int  `yaml:"tick_rate"`     // Ticks per second
	WireControls bool `yaml:"wire_controls"` // Start/stop buttons drive the loop
	QuitOnFinish bool `yaml:"quit_on_finish"`
}

// InputConfig defines key handling in the terminal.
type InputConfig struct {
	RepeatDelayMS int `yaml:"repeat_delay_ms"` // Hold after the first press, above the terminal's auto-repeat delay
	HoldTimeoutMS int `yaml:"hold_timeout_ms"` // Hold after each auto-repeat
}

// RepeatDelay returns the initial hold as a duration.
func (c InputConfig) RepeatDelay() time.Duration {
	return time.Duration(c.RepeatDelayMS) * time.Millisecond
}

// HoldTimeout returns the key hold timeout as a duration.
func (c InputConfig) HoldTimeout() time.Duration {
	return time.Duration(c.HoldTimeoutMS) * time.Millisecond
}

// BoundaryPolicy returns the parsed world boundary.
func (c WorldConfig) BoundaryPolicy() (world.Boundary, error) {
	return world.ParseBoundary(c.Boundary)
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error

	if c.World.Width <= 0 {
		errs = append(errs, fmt.Errorf("%w: world.width must be positive, got %d", ErrInvalid, c.World.Width))
	}
	boundary, err := c.World.BoundaryPolicy()
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: world.boundary: %v", ErrInvalid, err))
	}
	if err == nil && boundary != world.BoundaryNone && c.World.Width > 0 {
		cells := c.World.Width * c.World.Width
		if c.World.SpawnIndex < 0 || c.World.SpawnIndex >= cells {
			errs = append(errs, fmt.Errorf("%w: world.spawn_index %d outside [0, %d) with boundary %s",
				ErrInvalid, c.World.SpawnIndex, cells, boundary))
		}
	}
	if c.Render.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: render.cell_size must be positive, got %d", ErrInvalid, c.Render.CellSize))
	}
	if c.Loop.FrameLimit < 0 {
		errs = append(errs, fmt.Errorf("%w: loop.frame_limit must not be negative, got %d", ErrInvalid, c.Loop.FrameLimit))
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: loop.tick_rate must be positive, got %d", ErrInvalid, c.Loop.TickRate))
	}
	if c.Input.RepeatDelayMS <= 0 {
		errs = append(errs, fmt.Errorf("%w: input.repeat_delay_ms must be positive, got %d", ErrInvalid, c.Input.RepeatDelayMS))
	}
	if c.Input.HoldTimeoutMS <= 0 {
		errs = append(errs, fmt.Errorf("%w: input.hold_timeout_ms must be positive, got %d", ErrInvalid, c.Input.HoldTimeoutMS))
	}

	return errors.Join(errs...)
}
