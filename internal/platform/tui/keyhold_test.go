package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/snakeloop/internal/input"
)

func TestKeyHoldExpire(t *testing.T) {
	state := input.NewState(nil)
	h := NewKeyHold(state, 150*time.Millisecond, 150*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(input.KeyRight, t0)
	if !state.Snapshot().Right {
		t.Fatal("Press should set the flag")
	}

	h.Expire(t0.Add(100 * time.Millisecond))
	if !state.Snapshot().Right {
		t.Error("key should still be held before the timeout")
	}

	// Auto-repeat extends the hold
	h.Press(input.KeyRight, t0.Add(120*time.Millisecond))
	h.Expire(t0.Add(200 * time.Millisecond))
	if !state.Snapshot().Right {
		t.Error("repeat should extend the hold")
	}

	h.Expire(t0.Add(270 * time.Millisecond))
	if state.Snapshot().Right {
		t.Error("key should be released after the timeout")
	}
	if len(h.Held()) != 0 {
		t.Errorf("Held() = %v, expected none", h.Held())
	}
}

// Terminals pause before auto-repeat starts; the hold must span that gap.
func TestKeyHoldSpansRepeatDelay(t *testing.T) {
	const (
		frame    = 16 * time.Millisecond
		delay    = 500 * time.Millisecond // terminal pause before auto-repeat
		interval = 33 * time.Millisecond  // terminal auto-repeat rate
	)
	state := input.NewState(nil)
	h := NewKeyHold(state, 700*time.Millisecond, 150*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(input.KeyDown, t0)
	nextRepeat := t0.Add(delay)
	lastRepeat := t0.Add(2 * time.Second)

	for now := t0; now.Before(lastRepeat); now = now.Add(frame) {
		for !nextRepeat.After(now) {
			h.Press(input.KeyDown, nextRepeat)
			nextRepeat = nextRepeat.Add(interval)
		}
		h.Expire(now)
		if !state.Snapshot().Down {
			t.Fatalf("key released at %v while held", now.Sub(t0))
		}
	}

	h.Expire(nextRepeat.Add(150 * time.Millisecond))
	if state.Snapshot().Down {
		t.Error("key should be released once repeats stop")
	}
}

func TestKeyHoldTapReleasesAfterDelay(t *testing.T) {
	state := input.NewState(nil)
	h := NewKeyHold(state, 700*time.Millisecond, 150*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(input.KeyLeft, t0)
	h.Expire(t0.Add(699 * time.Millisecond))
	if !state.Snapshot().Left {
		t.Error("tap should hold until the repeat delay")
	}
	h.Expire(t0.Add(700 * time.Millisecond))
	if state.Snapshot().Left {
		t.Error("tap should be released at the repeat delay")
	}
}

func TestKeyHoldIgnoresUnknownKeys(t *testing.T) {
	state := input.NewState(nil)
	h := NewKeyHold(state, time.Second, time.Second)

	h.Press("Enter", time.Unix(0, 0))
	if len(h.Held()) != 0 {
		t.Errorf("unknown keys should not be tracked, got %v", h.Held())
	}
}

func TestKeyHoldReleaseAll(t *testing.T) {
	state := input.NewState(nil)
	h := NewKeyHold(state, time.Second, time.Second)
	now := time.Unix(0, 0)

	h.Press(input.KeyUp, now)
	h.Press(input.KeyLeft, now)

	held := h.Held()
	if len(held) != 2 || held[0] != input.KeyLeft || held[1] != input.KeyUp {
		t.Errorf("Held() = %v, expected [ArrowLeft ArrowUp]", held)
	}

	h.ReleaseAll()
	if state.Snapshot().Any() {
		t.Error("ReleaseAll should clear every flag")
	}
}
