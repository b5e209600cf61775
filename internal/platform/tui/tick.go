// Package tui provides the Bubble Tea integration for snakeloop.
// It supplies the frame scheduler, key and pointer sources, status line and
// display that the game loop runs against.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakeloop/internal/loop"
)

// TickMsg is sent when a requested frame is due.
type TickMsg struct {
	Handle loop.Handle
	Time   time.Time
}

// FrameScheduler implements loop.Scheduler on top of tea.Tick.
// At most one request is pending; Bubble Tea delivers it as a TickMsg and
// the model hands it back through Dispatch.
type FrameScheduler struct {
	interval time.Duration
	last     loop.Handle
	pending  loop.Handle
	fn       func()
}

// NewFrameScheduler creates a scheduler firing tickRate times per second.
func NewFrameScheduler(tickRate int) *FrameScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameScheduler{interval: time.Second / time.Duration(tickRate)}
}

// Interval returns the time between frames.
func (s *FrameScheduler) Interval() time.Duration {
	return s.interval
}

// RequestTick replaces any pending request with fn.
func (s *FrameScheduler) RequestTick(fn func()) loop.Handle {
	s.last++
	s.pending = s.last
	s.fn = fn
	return s.pending
}

// Cancel drops the pending request if h identifies it.
func (s *FrameScheduler) Cancel(h loop.Handle) {
	if h != s.pending {
		return
	}
	s.pending = 0
	s.fn = nil
}

// Pending reports whether a request is waiting for its frame.
func (s *FrameScheduler) Pending() bool {
	return s.fn != nil
}

// Cmd returns the Bubble Tea command that delivers the pending request,
// or nil when nothing is pending.
func (s *FrameScheduler) Cmd() tea.Cmd {
	if s.fn == nil {
		return nil
	}
	h := s.pending
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Handle: h, Time: t}
	})
}

// Dispatch runs the callback for msg. Stale or cancelled handles are ignored.
func (s *FrameScheduler) Dispatch(msg TickMsg) bool {
	if s.fn == nil || msg.Handle != s.pending {
		return false
	}
	fn := s.fn
	s.fn = nil
	s.pending = 0
	fn()
	return true
}
