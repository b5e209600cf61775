// Package registry tracks the loops running in live sessions.
// The SSH server adds a session when its program is created and removes it
// when the connection ends, so every session owns an independent loop.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/snakeloop/internal/loop"
)

// ErrDuplicate is returned when a session ID is added twice.
var ErrDuplicate = errors.New("registry: session already registered")

// Entry describes one live session.
type Entry struct {
	ID      string
	User    string
	Started time.Time
	Loop    *loop.Loop
}

// Frames returns the number of frames the session's loop has run.
func (e Entry) Frames() int {
	if e.Loop == nil {
		return 0
	}
	return e.Loop.FrameCount()
}

// Registry is a concurrency-safe set of sessions keyed by ID.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Entry
	now      func() time.Time
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		sessions: make(map[string]Entry),
		now:      time.Now,
	}
}

// Add registers a session's loop.
func (r *Registry) Add(id, user string, l *loop.Loop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, id)
	}
	r.sessions[id] = Entry{ID: id, User: user, Started: r.now(), Loop: l}
	return nil
}

// Remove drops a session and returns its entry.
func (r *Registry) Remove(id string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	return e, ok
}

// List returns all sessions, oldest first.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry, 0, len(r.sessions))
	for _, e := range r.sessions {
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Started.Equal(result[j].Started) {
			return result[i].Started.Before(result[j].Started)
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
