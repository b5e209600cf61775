// Package input bridges asynchronous key and pointer events to the
// once-per-frame read done by the game loop.
package input

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakeloop/internal/core"
)

// Key identifiers accepted by SetKey.
const (
	KeyLeft  = "ArrowLeft"
	KeyRight = "ArrowRight"
	KeyUp    = "ArrowUp"
	KeyDown  = "ArrowDown"
)

// Controls is one consistent read of the four movement flags.
type Controls struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// Directions returns the active directions in application order:
// Left, Right, Up, Down.
func (c Controls) Directions() []core.Direction {
	dirs := make([]core.Direction, 0, 4)
	if c.Left {
		dirs = append(dirs, core.DirLeft)
	}
	if c.Right {
		dirs = append(dirs, core.DirRight)
	}
	if c.Up {
		dirs = append(dirs, core.DirUp)
	}
	if c.Down {
		dirs = append(dirs, core.DirDown)
	}
	return dirs
}

// Any reports whether any movement flag is set.
func (c Controls) Any() bool {
	return c.Left || c.Right || c.Up || c.Down
}

// State is the flag record shared between event callbacks and the frame tick.
// A single mutex guards the whole record so a snapshot never mixes writes.
type State struct {
	mu       sync.Mutex
	controls Controls
	running  bool
	logger   *log.Logger
}

// NewState creates an empty flag record. A nil logger discards diagnostics.
func NewState(logger *log.Logger) *State {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &State{logger: logger}
}

// SetKey records a key press or release.
// It returns false, and changes nothing, for keys other than the four arrows.
func (s *State) SetKey(key string, pressed bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case KeyLeft:
		s.controls.Left = pressed
	case KeyRight:
		s.controls.Right = pressed
	case KeyUp:
		s.controls.Up = pressed
	case KeyDown:
		s.controls.Down = pressed
	default:
		return false
	}
	return true
}

// SetRunning records the start/stop intent from the pointer controls.
func (s *State) SetRunning(running bool) {
	s.mu.Lock()
	s.running = running
	s.mu.Unlock()

	if running {
		s.logger.Info("start")
	} else {
		s.logger.Info("stop")
	}
}

// Running returns the last start/stop intent.
func (s *State) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Snapshot returns the movement flags as of the last write.
func (s *State) Snapshot() Controls {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controls
}

// Reset clears every flag.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controls = Controls{}
	s.running = false
}
