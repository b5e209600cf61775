package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/snakeloop/internal/input"
)

// KeyHold turns key presses into press/release pairs.
// Terminals report presses (and auto-repeats) but never releases, so a key
// counts as held until its deadline passes. The first press holds for the
// repeat delay, which must outlast the terminal's pause before auto-repeat
// starts; every repeat then extends the hold by the shorter timeout.
type KeyHold struct {
	state    *input.State
	delay    time.Duration
	timeout  time.Duration
	deadline map[string]time.Time
}

// NewKeyHold creates a hold tracker writing to state.
func NewKeyHold(state *input.State, delay, timeout time.Duration) *KeyHold {
	return &KeyHold{
		state:    state,
		delay:    max(delay, timeout),
		timeout:  timeout,
		deadline: make(map[string]time.Time),
	}
}

// Press records a press of key at now. Unknown keys are ignored.
func (h *KeyHold) Press(key string, now time.Time) {
	if !h.state.SetKey(key, true) {
		return
	}
	until, held := h.deadline[key]
	if !held {
		h.deadline[key] = now.Add(h.delay)
		return
	}
	if next := now.Add(h.timeout); next.After(until) {
		h.deadline[key] = next
	}
}

// Expire releases every key whose deadline is not after now.
func (h *KeyHold) Expire(now time.Time) {
	for key, until := range h.deadline {
		if !now.Before(until) {
			h.state.SetKey(key, false)
			delete(h.deadline, key)
		}
	}
}

// ReleaseAll releases every held key immediately.
func (h *KeyHold) ReleaseAll() {
	for key := range h.deadline {
		h.state.SetKey(key, false)
		delete(h.deadline, key)
	}
}

// Held returns the held keys in sorted order.
func (h *KeyHold) Held() []string {
	keys := make([]string, 0, len(h.deadline))
	for key := range h.deadline {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
