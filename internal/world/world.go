// Package world holds the grid the snake head moves on.
//
// The grid is square with side Width and the head is stored as a row-major
// linear index. Movement is plain index arithmetic: Left and Right step by
// one, Up and Down step by a full row.
package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snakeloop/internal/core"
)

// Default world parameters.
const (
	DefaultWidth      = 16
	DefaultSpawnIndex = 10
)

// Sentinel errors.
var (
	ErrInvalidWidth = errors.New("world: width must be positive")
	ErrInvalidSpawn = errors.New("world: spawn index outside the grid")
	ErrOutOfBounds  = errors.New("world: head left the grid")
)

// Boundary selects what happens when a move takes the head off the grid.
type Boundary string

const (
	// BoundaryNone keeps the raw linear index, wherever it lands.
	// Moving left from column 0 ends on the previous row.
	BoundaryNone Boundary = "none"
	// BoundaryClamp stops the head at the grid edge on each axis.
	BoundaryClamp Boundary = "clamp"
	// BoundaryWrap moves the head to the opposite edge on each axis.
	BoundaryWrap Boundary = "wrap"
)

// ParseBoundary resolves a boundary policy name. Empty means BoundaryNone.
func ParseBoundary(name string) (Boundary, error) {
	switch Boundary(name) {
	case "", BoundaryNone:
		return BoundaryNone, nil
	case BoundaryClamp, BoundaryWrap:
		return Boundary(name), nil
	}
	return BoundaryNone, fmt.Errorf("world: unknown boundary %q (want none, clamp or wrap)", name)
}

// BoundaryError reports a move whose raw result was outside the grid.
// From is the index before the move, Raw the unchecked result and To the
// index the head actually ended on.
type BoundaryError struct {
	Boundary Boundary
	From     int
	Raw      int
	To       int
}

func (e *BoundaryError) Error() string {
	if e.Raw == e.To {
		return fmt.Sprintf("world: head left the grid: %d -> %d", e.From, e.Raw)
	}
	return fmt.Sprintf("world: head left the grid: %d -> %d (%s to %d)", e.From, e.Raw, e.Boundary, e.To)
}

func (e *BoundaryError) Unwrap() error {
	return ErrOutOfBounds
}

// World is the grid and the position of the snake head.
type World struct {
	width    int
	head     int
	boundary Boundary
}

// New creates a world with no range checks on the head index.
// A non-positive width falls back to DefaultWidth; spawnIndex is taken as-is.
func New(width, spawnIndex int) *World {
	if width <= 0 {
		width = DefaultWidth
	}
	return &World{
		width:    width,
		head:     spawnIndex,
		boundary: BoundaryNone,
	}
}

// NewWithBoundary creates a world with a boundary policy.
// Clamp and wrap worlds also require the spawn index to be on the grid.
func NewWithBoundary(width, spawnIndex int, boundary Boundary) (*World, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	if _, err := ParseBoundary(string(boundary)); err != nil {
		return nil, err
	}
	if boundary == "" {
		boundary = BoundaryNone
	}
	if boundary != BoundaryNone && (spawnIndex < 0 || spawnIndex >= width*width) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidSpawn, spawnIndex, width*width)
	}
	return &World{width: width, head: spawnIndex, boundary: boundary}, nil
}

// Width returns the number of grid columns (and rows).
func (w *World) Width() int {
	return w.width
}

// Cells returns the number of cells on the grid.
func (w *World) Cells() int {
	return w.width * w.width
}

// HeadIndex returns the linear index of the head.
func (w *World) HeadIndex() int {
	return w.head
}

// Row returns the head row, using floor division. A head before the first
// cell lands on a negative row.
func (w *World) Row() int {
	return core.FloorDiv(w.head, w.width)
}

// Col returns the head column, always in [0, width).
func (w *World) Col() int {
	return core.Wrap(w.head, w.width)
}

// Boundary returns the active boundary policy.
func (w *World) Boundary() Boundary {
	return w.boundary
}

// InBounds reports whether the head is on the grid.
func (w *World) InBounds() bool {
	return w.head >= 0 && w.head < w.Cells()
}

// ApplyMove moves the head one step in a single direction.
func (w *World) ApplyMove(d core.Direction) error {
	return w.Apply(d)
}

// Apply moves the head by the sum of all given directions.
// Held perpendicular keys therefore move diagonally, and opposite keys cancel.
// A *BoundaryError is returned when the raw result is off the grid; the move
// itself is still applied according to the boundary policy.
func (w *World) Apply(dirs ...core.Direction) error {
	dx, dy := 0, 0
	for _, d := range dirs {
		ddx, ddy := d.Delta()
		dx += ddx
		dy += ddy
	}
	if dx == 0 && dy == 0 {
		return nil
	}

	from := w.head
	raw := from + dx + dy*w.width

	if w.boundary == BoundaryNone {
		w.head = raw
		if !w.InBounds() {
			return &BoundaryError{Boundary: w.boundary, From: from, Raw: raw, To: raw}
		}
		return nil
	}

	col := core.Wrap(from, w.width) + dx
	row := core.FloorDiv(from, w.width) + dy
	if col >= 0 && col < w.width && row >= 0 && row < w.width {
		w.head = row*w.width + col
		return nil
	}

	switch w.boundary {
	case BoundaryClamp:
		col = core.Clamp(col, 0, w.width-1)
		row = core.Clamp(row, 0, w.width-1)
	case BoundaryWrap:
		col = core.Wrap(col, w.width)
		row = core.Wrap(row, w.width)
	}
	w.head = row*w.width + col
	return &BoundaryError{Boundary: w.boundary, From: from, Raw: raw, To: w.head}
}
