package session

import (
	"context"
	"sync"

	"callagent-server/internal/observability"
)

// Registry tracks the live session for each call SID. At most one session is
// registered per call; registering over a live one force-closes the old
// session.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	logger   *observability.Logger
}

func NewRegistry(logger *observability.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		logger:   logger,
	}
}

// Register binds a session to its call SID. A prior session under the same
// SID is terminated in the background; registry operations never block on
// session teardown.
func (r *Registry) Register(ctx context.Context, callID string, s *Session) {
	r.mu.Lock()
	prior, exists := r.sessions[callID]
	r.sessions[callID] = s
	r.mu.Unlock()

	if exists && prior != s {
		ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callID})
		r.logger.Warn(ctx, "Replacing live session for call")
		go prior.Terminate(ctx)
	}
}

// Deregister removes the binding only if it still points at s, so a stale
// session tearing down cannot unbind its replacement.
func (r *Registry) Deregister(callID string, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.sessions[callID]; ok && current == s {
		delete(r.sessions, callID)
	}
}

// Lookup returns the live session for a call SID, if any.
func (r *Registry) Lookup(callID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[callID]
	return s, ok
}

// ActiveCallIDs returns a snapshot of the call SIDs with live sessions.
func (r *Registry) ActiveCallIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	return ids
}
