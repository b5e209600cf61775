package input

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakeloop/internal/core"
)

func TestSetKey(t *testing.T) {
	tests := []struct {
		key      string
		expected Controls
	}{
		{KeyLeft, Controls{Left: true}},
		{KeyRight, Controls{Right: true}},
		{KeyUp, Controls{Up: true}},
		{KeyDown, Controls{Down: true}},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			s := NewState(nil)
			if !s.SetKey(tc.key, true) {
				t.Fatalf("SetKey(%q) should be recognized", tc.key)
			}
			if got := s.Snapshot(); got != tc.expected {
				t.Errorf("Snapshot() after press = %+v, expected %+v", got, tc.expected)
			}

			s.SetKey(tc.key, false)
			if got := s.Snapshot(); got != (Controls{}) {
				t.Errorf("Snapshot() after release = %+v, expected all false", got)
			}
		})
	}
}

func TestSetKeyIgnoresOtherKeys(t *testing.T) {
	s := NewState(nil)
	s.SetKey(KeyUp, true)

	for _, key := range []string{"a", "Enter", "arrowleft", "Left", ""} {
		if s.SetKey(key, true) {
			t.Errorf("SetKey(%q) should not be recognized", key)
		}
	}

	if got := s.Snapshot(); got != (Controls{Up: true}) {
		t.Errorf("Unknown keys should be no-ops, got %+v", got)
	}
}

func TestSnapshotStable(t *testing.T) {
	s := NewState(nil)
	s.SetKey(KeyRight, true)
	s.SetKey(KeyDown, true)
	s.SetKey(KeyLeft, true)
	s.SetKey(KeyLeft, false)

	want := Controls{Right: true, Down: true}
	for i := range 10 {
		if got := s.Snapshot(); got != want {
			t.Fatalf("read %d: Snapshot() = %+v, expected %+v", i, got, want)
		}
	}
}

func TestSetRunningLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	s := NewState(logger)

	s.SetRunning(true)
	if !s.Running() {
		t.Error("Running() should be true after SetRunning(true)")
	}
	s.SetRunning(false)
	if s.Running() {
		t.Error("Running() should be false after SetRunning(false)")
	}

	out := buf.String()
	start := strings.Index(out, "start")
	stop := strings.Index(out, "stop")
	if start < 0 || stop < 0 || stop < start {
		t.Errorf("expected start then stop in log output, got %q", out)
	}

	// Running intent does not touch movement flags
	if s.Snapshot().Any() {
		t.Error("SetRunning should not change movement flags")
	}
}

func TestReset(t *testing.T) {
	s := NewState(nil)
	s.SetKey(KeyLeft, true)
	s.SetRunning(true)
	s.Reset()

	if s.Snapshot().Any() || s.Running() {
		t.Error("Reset should clear every flag")
	}
}

func TestDirectionsOrder(t *testing.T) {
	c := Controls{Left: true, Right: true, Up: true, Down: true}
	dirs := c.Directions()

	expected := []core.Direction{core.DirLeft, core.DirRight, core.DirUp, core.DirDown}
	if len(dirs) != len(expected) {
		t.Fatalf("Directions() returned %d entries, expected %d", len(dirs), len(expected))
	}
	for i := range expected {
		if dirs[i] != expected[i] {
			t.Errorf("Directions()[%d] = %v, expected %v", i, dirs[i], expected[i])
		}
	}

	if len((Controls{}).Directions()) != 0 {
		t.Error("empty Controls should produce no directions")
	}
}

func TestConcurrentWriters(t *testing.T) {
	s := NewState(nil)
	keys := []string{KeyLeft, KeyRight, KeyUp, KeyDown}

	var wg sync.WaitGroup
	for _, key := range keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			for i := range 1000 {
				s.SetKey(key, i%2 == 0)
			}
			s.SetKey(key, true)
		}(key)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 1000 {
			_ = s.Snapshot()
		}
	}()
	wg.Wait()

	want := Controls{Left: true, Right: true, Up: true, Down: true}
	if got := s.Snapshot(); got != want {
		t.Errorf("Snapshot() = %+v, expected %+v", got, want)
	}
}
