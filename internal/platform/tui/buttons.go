package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snakeloop/internal/core"
)

// Button is a clickable label at a fixed screen position.
type Button struct {
	Label string
	Rect  core.Rect
}

// Hit reports whether the terminal cell (x, y) is on the button.
func (b Button) Hit(x, y int) bool {
	return b.Rect.Contains(x, y)
}

var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("7"))
	activeButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("10")).
				Bold(true)
)

const (
	startLabel = "[ Start ]"
	stopLabel  = "[ Stop ]"
	buttonGap  = 2
)

// layoutButtons places the start and stop buttons on screen row y.
func layoutButtons(y int) (start, stop Button) {
	start = Button{Label: startLabel, Rect: core.NewRect(0, y, len(startLabel), 1)}
	stop = Button{
		Label: stopLabel,
		Rect:  core.NewRect(start.Rect.Right()+buttonGap, y, len(stopLabel), 1),
	}
	return start, stop
}

// renderButtons draws both buttons on one line, highlighting the active intent.
func renderButtons(start, stop Button, running bool) string {
	startStyle, stopStyle := buttonStyle, activeButtonStyle
	if running {
		startStyle, stopStyle = activeButtonStyle, buttonStyle
	}
	gap := strings.Repeat(" ", buttonGap)
	return startStyle.Render(start.Label) + gap + stopStyle.Render(stop.Label)
}
