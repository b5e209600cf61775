// Package loop runs the per-frame update cycle: read input, move the head,
// draw, count the frame and ask the host for the next tick.
//
// The loop never blocks. The host scheduler calls Tick once per frame and
// Tick asks for the following one, holding the returned handle so the
// final transition can release it.
package loop

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakeloop/internal/input"
	"github.com/vovakirdan/snakeloop/internal/render"
	"github.com/vovakirdan/snakeloop/internal/world"
)

// DefaultFrameLimit is the number of productive frames after which the loop finishes.
const DefaultFrameLimit = 3000

// CompletionMessage is sent to the status sink when the loop finishes.
const CompletionMessage = "All done!"

// Sentinel errors.
var (
	ErrMissingDependency = errors.New("loop: missing dependency")
	ErrAlreadyStarted    = errors.New("loop: already initialized")
	ErrInvalidFrameLimit = errors.New("loop: frame limit must not be negative")
)

// Handle identifies one pending tick request.
type Handle uint64

// Scheduler is the host's per-frame callback primitive.
type Scheduler interface {
	// RequestTick arranges for fn to be called once on the next frame.
	RequestTick(fn func()) Handle
	// Cancel drops a pending request. Unknown handles are ignored.
	Cancel(h Handle)
}

// StatusSink displays a single line of status text.
type StatusSink interface {
	SetStatus(text string)
}

// StatusFunc adapts a function to StatusSink.
type StatusFunc func(text string)

// SetStatus calls f(text).
func (f StatusFunc) SetStatus(text string) {
	f(text)
}

// State is the lifecycle state of a Loop.
type State int

const (
	StateStopped State = iota
	StateRunning
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// FrameMessage is the status text after a productive frame.
func FrameMessage(frames int) string {
	return fmt.Sprintf("Frame callback has been called %d times.", frames)
}

// Options configures a Loop.
type Options struct {
	// FrameLimit is checked at the start of every tick: once the frame count
	// exceeds it the loop finishes. Zero means DefaultFrameLimit.
	FrameLimit int

	// Logger receives lifecycle and boundary diagnostics. Nil discards them.
	Logger *log.Logger

	// OnFinish, if set, is called once after the loop finishes.
	OnFinish func()
}

// Deps are the collaborators a Loop drives. All are required.
type Deps struct {
	World     *world.World
	Input     *input.State
	Renderer  *render.Renderer
	Surface   render.Surface
	Scheduler Scheduler
	Status    StatusSink
}

func (d Deps) validate() error {
	var missing []string
	if d.World == nil {
		missing = append(missing, "world")
	}
	if d.Input == nil {
		missing = append(missing, "input")
	}
	if d.Renderer == nil {
		missing = append(missing, "renderer")
	}
	if d.Surface == nil {
		missing = append(missing, "surface")
	}
	if d.Scheduler == nil {
		missing = append(missing, "scheduler")
	}
	if d.Status == nil {
		missing = append(missing, "status sink")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingDependency, missing)
	}
	return nil
}

// Loop owns the frame clock and drives the world, input and renderer.
type Loop struct {
	deps       Deps
	frameLimit int
	logger     *log.Logger
	onFinish   func()

	state     State
	started   bool
	frames    int
	handle    Handle
	hasHandle bool

	boundaryReports int
}

// New creates a stopped loop. Missing collaborators are a setup error.
func New(opts Options, deps Deps) (*Loop, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if opts.FrameLimit < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFrameLimit, opts.FrameLimit)
	}
	if opts.FrameLimit == 0 {
		opts.FrameLimit = DefaultFrameLimit
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Loop{
		deps:       deps,
		frameLimit: opts.FrameLimit,
		logger:     opts.Logger,
		onFinish:   opts.OnFinish,
		state:      StateStopped,
	}, nil
}

// Init starts the loop and requests the first tick.
// The loop runs right away regardless of the pointer start/stop intent.
func (l *Loop) Init() error {
	if l.state != StateStopped {
		return ErrAlreadyStarted
	}
	l.state = StateRunning
	l.started = true
	l.logger.Debug("loop started", "frame_limit", l.frameLimit)
	l.schedule()
	return nil
}

// Tick runs one frame. It is the callback handed to the scheduler.
func (l *Loop) Tick() {
	if l.state == StateFinished {
		return
	}

	// Checked before reading input, so the input of the last frame is never applied.
	if l.frames > l.frameLimit {
		l.finish()
		return
	}

	if l.started {
		controls := l.deps.Input.Snapshot()
		if err := l.deps.World.Apply(controls.Directions()...); err != nil {
			l.reportBoundary(err)
		}
		l.deps.Renderer.Draw(l.deps.Surface, l.deps.World)
		l.frames++
		l.deps.Status.SetStatus(FrameMessage(l.frames))
	}

	l.schedule()
}

// Start resumes frame production. It has no effect once finished.
func (l *Loop) Start() {
	if l.state == StateFinished {
		return
	}
	l.started = true
}

// Stop pauses frame production. Ticks keep arriving but draw nothing.
func (l *Loop) Stop() {
	l.started = false
}

// State returns the lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Started reports whether frames are being produced.
func (l *Loop) Started() bool {
	return l.started
}

// Finished reports whether the loop has reached its frame limit.
func (l *Loop) Finished() bool {
	return l.state == StateFinished
}

// FrameCount returns the number of productive frames so far.
func (l *Loop) FrameCount() int {
	return l.frames
}

// FrameLimit returns the configured frame limit.
func (l *Loop) FrameLimit() int {
	return l.frameLimit
}

// BoundaryReports returns how many frames moved the head off the grid.
func (l *Loop) BoundaryReports() int {
	return l.boundaryReports
}

// Release cancels the pending tick request, if any. The host calls it when
// tearing down early; finishing calls it too.
func (l *Loop) Release() {
	if !l.hasHandle {
		return
	}
	l.deps.Scheduler.Cancel(l.handle)
	l.handle = 0
	l.hasHandle = false
}

func (l *Loop) schedule() {
	l.handle = l.deps.Scheduler.RequestTick(l.Tick)
	l.hasHandle = true
}

func (l *Loop) finish() {
	l.started = false
	l.state = StateFinished
	l.deps.Status.SetStatus(CompletionMessage)
	l.Release()
	l.logger.Info("loop finished", "frames", l.frames)

	if l.onFinish != nil {
		l.onFinish()
	}
}

func (l *Loop) reportBoundary(err error) {
	var be *world.BoundaryError
	if !errors.As(err, &be) {
		l.logger.Error("world update failed", "error", err)
		return
	}
	l.boundaryReports++
	l.logger.Debug("head left the grid",
		"boundary", be.Boundary,
		"from", be.From,
		"raw", be.Raw,
		"to", be.To,
	)
}
