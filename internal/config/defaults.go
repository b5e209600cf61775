package config

import (
	_ "embed"

	"github.com/vovakirdan/snakeloop/internal/core"
	"github.com/vovakirdan/snakeloop/internal/loop"
	"github.com/vovakirdan/snakeloop/internal/render"
	"github.com/vovakirdan/snakeloop/internal/world"
)

//go:embed defaults/snakeloop.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:      world.DefaultWidth,
			SpawnIndex: world.DefaultSpawnIndex,
			Boundary:   string(world.BoundaryNone),
		},
		Render: RenderConfig{
			CellSize:   render.DefaultCellSize,
			Background: core.ColorBlack,
			Foreground: core.ColorGreen,
		},
		Loop: LoopConfig{
			FrameLimit:   loop.DefaultFrameLimit,
			TickRate:     60,
			WireControls: true,
		},
		Input: InputConfig{
			RepeatDelayMS: 700,
			HoldTimeoutMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
