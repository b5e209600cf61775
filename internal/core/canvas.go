package core

import (
	"strings"
)

// Canvas is an in-memory grid of colored units.
// It is the drawing surface the renderer paints into; the platform layer
// decides how units become terminal cells.
type Canvas struct {
	width  int
	height int
	units  [][]Color
}

// NewCanvas creates a canvas with the given dimensions, cleared to black.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// allocate creates the underlying unit storage.
func (c *Canvas) allocate() {
	c.units = make([][]Color, c.height)
	for y := range c.units {
		c.units[y] = make([]Color, c.width)
	}
}

// Width returns the canvas width in units.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in units.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the canvas area as a rectangle at the origin.
func (c *Canvas) Bounds() Rect {
	return NewRect(0, 0, c.width, c.height)
}

// Resize sets the canvas dimensions. Like an HTML canvas, resizing always
// discards the previous content, even when the size is unchanged.
// Negative dimensions are treated as zero.
func (c *Canvas) Resize(width, height int) {
	c.width = Max(width, 0)
	c.height = Max(height, 0)
	c.allocate()
}

// Fill paints every unit with the given color.
func (c *Canvas) Fill(color Color) {
	for y := range c.units {
		for x := range c.units[y] {
			c.units[y][x] = color
		}
	}
}

// FillRect paints a rectangle. Parts outside the canvas are clipped.
func (c *Canvas) FillRect(x, y, w, h int, color Color) {
	r := c.Bounds().Intersect(NewRect(x, y, w, h))
	if r.Empty() {
		return
	}
	for py := r.Y; py < r.Bottom(); py++ {
		row := c.units[py]
		for px := r.X; px < r.Right(); px++ {
			row[px] = color
		}
	}
}

// At returns the color at the given unit.
// Out-of-bounds coordinates report black.
func (c *Canvas) At(x, y int) Color {
	if !c.Bounds().Contains(x, y) {
		return ColorBlack
	}
	return c.units[y][x]
}

// String renders the canvas as text for debugging and screenshots:
// '.' for black units and '#' for everything else.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			if c.units[y][x] == ColorBlack {
				sb.WriteRune('.')
			} else {
				sb.WriteRune('#')
			}
		}
	}
	return sb.String()
}
