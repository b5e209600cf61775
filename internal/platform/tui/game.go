package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakeloop/internal/config"
	"github.com/vovakirdan/snakeloop/internal/core"
	"github.com/vovakirdan/snakeloop/internal/input"
	"github.com/vovakirdan/snakeloop/internal/loop"
	"github.com/vovakirdan/snakeloop/internal/render"
	"github.com/vovakirdan/snakeloop/internal/world"
)

// StatusLine is the status text sink shown above the board.
type StatusLine struct {
	text string
}

// SetStatus replaces the status text.
func (s *StatusLine) SetStatus(text string) {
	s.text = text
}

// Text returns the current status text.
func (s *StatusLine) Text() string {
	return s.text
}

// Game is one running session: a loop and everything it drives.
type Game struct {
	Config    config.Config
	World     *world.World
	Input     *input.State
	Canvas    *core.Canvas
	Renderer  *render.Renderer
	Scheduler *FrameScheduler
	Status    *StatusLine
	Loop      *loop.Loop

	finished bool
}

// NewGame wires a session from configuration. Any failure here is fatal
// for the session; nothing is retried.
func NewGame(cfg config.Config, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	boundary, err := cfg.World.BoundaryPolicy()
	if err != nil {
		return nil, err
	}
	w, err := world.NewWithBoundary(cfg.World.Width, cfg.World.SpawnIndex, boundary)
	if err != nil {
		return nil, fmt.Errorf("cannot create world: %w", err)
	}

	renderer := render.New(render.Options{
		CellSize:         cfg.Render.CellSize,
		Background:       cfg.Render.Background,
		Foreground:       cfg.Render.Foreground,
		ResizeEveryFrame: cfg.Render.ResizeEveryFrame,
	})
	side := renderer.SideLength(w)

	g := &Game{
		Config:    cfg,
		World:     w,
		Input:     input.NewState(logger),
		Canvas:    core.NewCanvas(side, side),
		Renderer:  renderer,
		Scheduler: NewFrameScheduler(cfg.Loop.TickRate),
		Status:    &StatusLine{},
	}
	g.Canvas.Fill(cfg.Render.Background)

	g.Loop, err = loop.New(loop.Options{
		FrameLimit: cfg.Loop.FrameLimit,
		Logger:     logger,
		OnFinish:   g.onFinish,
	}, loop.Deps{
		World:     g.World,
		Input:     g.Input,
		Renderer:  g.Renderer,
		Surface:   g.Canvas,
		Scheduler: g.Scheduler,
		Status:    g.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create loop: %w", err)
	}
	return g, nil
}

// onFinish clears the input record; nothing reads it after the last frame.
func (g *Game) onFinish() {
	g.finished = true
	g.Input.Reset()
}

// Finished reports whether the loop reached its frame limit.
func (g *Game) Finished() bool {
	return g.finished
}

// Engage handles the start control. With wired controls it also resumes the loop.
func (g *Game) Engage() {
	g.Input.SetRunning(true)
	if g.Config.Loop.WireControls {
		g.Loop.Start()
	}
}

// Disengage handles the stop control. With wired controls it also pauses the loop.
func (g *Game) Disengage() {
	g.Input.SetRunning(false)
	if g.Config.Loop.WireControls {
		g.Loop.Stop()
	}
}

// BoardRows returns the number of terminal rows the board occupies.
func (g *Game) BoardRows() int {
	return g.World.Width()
}

// Buttons returns the start and stop buttons.
// Rows: status, board, blank, buttons.
func (g *Game) Buttons() (start, stop Button) {
	return layoutButtons(1 + g.BoardRows() + 1)
}

// RequiredSize returns the terminal size needed to show the whole screen.
func (g *Game) RequiredSize() (int, int) {
	w := g.BoardRows() * len([]rune(cellGlyph))
	start, stop := g.Buttons()
	w = max(w, start.Rect.Right(), stop.Rect.Right())
	h := stop.Rect.Bottom() + 1 // help line
	return w, h
}

// Fits reports whether the host screen can show the game.
func (g *Game) Fits(rc core.RuntimeConfig) bool {
	w, h := g.RequiredSize()
	return rc.ScreenW >= w && rc.ScreenH >= h
}
