package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	statusStyle   = lipgloss.NewStyle().Bold(true)
	runningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pausedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	finishedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	game     *Game
	keys     KeyMap
	help     help.Model
	hold     *KeyHold
	logger   *log.Logger
	now      func() time.Time
	width    int
	height   int
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *Game, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		hold:   NewKeyHold(game.Input, game.Config.Input.RepeatDelay(), game.Config.Input.HoldTimeout()),
		logger: logger,
		now:    time.Now,
	}
}

// Init starts the loop and requests the first frame.
func (m Model) Init() tea.Cmd {
	if err := m.game.Loop.Init(); err != nil {
		m.logger.Error("cannot start loop", "error", err)
		return tea.Quit
	}
	return m.game.Scheduler.Cmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if id, ok := m.keys.ArrowKey(msg); ok {
		m.hold.Press(id, m.now())
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.game.Loop.Release()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Release):
		m.hold.ReleaseAll()
	case key.Matches(msg, m.keys.Start):
		m.game.Engage()
	case key.Matches(msg, m.keys.Stop):
		m.game.Disengage()
	}

	return m, nil
}

// handleMouse maps clicks on the on-screen buttons. Start reacts to the
// press, stop to the release.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	start, stop := m.buttons()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && start.Hit(msg.X, msg.Y) {
			m.game.Engage()
		}
	case tea.MouseActionRelease:
		if stop.Hit(msg.X, msg.Y) {
			m.game.Disengage()
		}
	}

	return m, nil
}

// handleTick releases stale keys and runs the due frame.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	m.hold.Expire(msg.Time)

	if !m.game.Scheduler.Dispatch(msg) {
		return m, nil
	}

	if m.game.Finished() && m.game.Config.Loop.QuitOnFinish {
		m.quitting = true
		return m, tea.Quit
	}

	return m, m.game.Scheduler.Cmd()
}

// buttons returns the button layout for the current board size.
func (m Model) buttons() (start, stop Button) {
	return m.game.Buttons()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := m.game.RequiredSize()
	if m.width > 0 && m.height > 0 && (m.width < needW || m.height < needH) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height)
	}

	var b strings.Builder

	status := m.game.Status.Text()
	if status == "" {
		status = "Waiting for the first frame..."
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	b.WriteString(RenderCanvas(m.game.Canvas, m.game.Renderer.CellSize()))
	b.WriteString("\n\n")

	start, stop := m.buttons()
	b.WriteString(renderButtons(start, stop, m.game.Input.Running()))
	b.WriteString("  ")
	b.WriteString(m.stateLabel())
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) stateLabel() string {
	switch {
	case m.game.Loop.Finished():
		return finishedStyle.Render(fmt.Sprintf("finished after %d frames", m.game.Loop.FrameCount()))
	case m.game.Loop.Started():
		label := fmt.Sprintf("running  head %d", m.game.World.HeadIndex())
		if held := m.hold.Held(); len(held) > 0 {
			label += "  " + strings.Join(held, "+")
		}
		return runningStyle.Render(label)
	default:
		return pausedStyle.Render("paused")
	}
}

// Run starts the Bubble Tea program for the given game.
func Run(game *Game, logger *log.Logger) error {
	model := NewModel(game, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Start/stop buttons
	)

	_, err := p.Run()
	return err
}
