// Package render paints the world into a drawing surface.
package render

import (
	"github.com/vovakirdan/snakeloop/internal/core"
	"github.com/vovakirdan/snakeloop/internal/world"
)

// DefaultCellSize is the side of one grid cell in surface units.
const DefaultCellSize = 20

// Surface is the drawing target. core.Canvas implements it.
type Surface interface {
	Resize(w, h int)
	Fill(c core.Color)
	FillRect(x, y, w, h int, c core.Color)
}

// Options configures a Renderer.
type Options struct {
	CellSize   int
	Background core.Color
	Foreground core.Color

	// ResizeEveryFrame resizes the surface on every Draw call, which also
	// clears it. When false the surface is resized only when the side changes.
	ResizeEveryFrame bool
}

// DefaultOptions returns a black background with a green head, 20 units per cell.
func DefaultOptions() Options {
	return Options{
		CellSize:   DefaultCellSize,
		Background: core.ColorBlack,
		Foreground: core.ColorGreen,
	}
}

// Renderer draws the head cell on a square background.
type Renderer struct {
	opts     Options
	lastSide int
}

// New creates a renderer. A non-positive cell size falls back to the default.
func New(opts Options) *Renderer {
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultCellSize
	}
	return &Renderer{opts: opts, lastSide: -1}
}

// CellSize returns the side of one grid cell in surface units.
func (r *Renderer) CellSize() int {
	return r.opts.CellSize
}

// SideLength returns the surface side needed for the world.
func (r *Renderer) SideLength(w *world.World) int {
	return w.Width() * r.opts.CellSize
}

// HeadRect returns the square the head occupies, in surface units.
func (r *Renderer) HeadRect(w *world.World) core.Rect {
	cs := r.opts.CellSize
	return core.NewRect(w.Col()*cs, w.Row()*cs, cs, cs)
}

// Draw paints one frame: background over the whole surface, then a single
// foreground square at the head. A head off the grid is drawn wherever its
// coordinates land and left to the surface to clip.
func (r *Renderer) Draw(s Surface, w *world.World) {
	side := r.SideLength(w)
	if r.opts.ResizeEveryFrame || side != r.lastSide {
		s.Resize(side, side)
		r.lastSide = side
	}

	s.Fill(r.opts.Background)

	head := r.HeadRect(w)
	s.FillRect(head.X, head.Y, head.W, head.H, r.opts.Foreground)
}
