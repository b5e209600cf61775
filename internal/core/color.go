package core

import "fmt"

// Color is a solid fill color for a canvas unit.
// Values map to ANSI 256-color codes in the terminal platform.
type Color uint8

// Palette used by the renderer and configuration files.
const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightGreen
	ColorOrange
)

var colorNames = map[Color]string{
	ColorBlack:       "black",
	ColorRed:         "red",
	ColorGreen:       "green",
	ColorYellow:      "yellow",
	ColorBlue:        "blue",
	ColorMagenta:     "magenta",
	ColorCyan:        "cyan",
	ColorWhite:       "white",
	ColorGray:        "gray",
	ColorBrightGreen: "bright_green",
	ColorOrange:      "orange",
}

// String returns the configuration name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor resolves a configuration color name.
func ParseColor(name string) (Color, error) {
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorBlack, fmt.Errorf("core: unknown color %q", name)
}

// MarshalYAML writes the color by name.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML reads a color by name.
func (c *Color) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseColor(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
