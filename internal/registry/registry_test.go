package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestAddRemove(t *testing.T) {
	r := New()

	if err := r.Add("a", "alice", nil); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := r.Add("a", "alice", nil); !errors.Is(err, ErrDuplicate) {
		t.Errorf("second Add() error = %v, expected ErrDuplicate", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", r.Len())
	}

	e, ok := r.Remove("a")
	if !ok || e.User != "alice" {
		t.Errorf("Remove() = %+v, %v", e, ok)
	}
	if e.Frames() != 0 {
		t.Errorf("Frames() without a loop = %d, expected 0", e.Frames())
	}
	if _, ok := r.Remove("a"); ok {
		t.Error("second Remove() should report a missing session")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", r.Len())
	}
}

func TestListOrder(t *testing.T) {
	r := New()
	clock := time.Unix(100, 0)
	r.now = func() time.Time { return clock }

	for _, id := range []string{"c", "a"} {
		if err := r.Add(id, "u", nil); err != nil {
			t.Fatal(err)
		}
	}
	clock = clock.Add(time.Second)
	if err := r.Add("b", "u", nil); err != nil {
		t.Fatal(err)
	}

	got := r.List()
	want := []string{"a", "c", "b"}
	if len(got) != len(want) {
		t.Fatalf("List() returned %d entries, expected %d", len(got), len(want))
	}
	for i, e := range got {
		if e.ID != want[i] {
			t.Errorf("List()[%d].ID = %q, expected %q", i, e.ID, want[i])
		}
	}
}

func TestConcurrentSessions(t *testing.T) {
	r := New()
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := r.Add(id, "u", nil); err != nil {
				t.Errorf("Add(%q) failed: %v", id, err)
			}
			r.List()
			r.Remove(id)
		}(fmt.Sprintf("s%d", i))
	}
	wg.Wait()

	if r.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", r.Len())
	}
}
