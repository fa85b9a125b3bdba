package service

import (
	"context"
	"sync"

	"github.com/forkpoint/ordering-api/internal/domain/repository"
)

// SessionManager owns one CartService per customer session. The cart itself
// carries no locks, so the manager serializes all access to a session's cart;
// two different sessions proceed in parallel.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	states   repository.CartStateRepository
}

type sessionEntry struct {
	mu       sync.Mutex
	cart     *CartService
	restored bool
}

// NewSessionManager creates a new session manager backed by the given state
// repository.
func NewSessionManager(states repository.CartStateRepository) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*sessionEntry),
		states:   states,
	}
}

// WithCart runs fn with exclusive access to the session's cart, creating and
// restoring the cart on first use. A snapshot restore failure is surfaced to
// the caller before fn runs.
func (m *SessionManager) WithCart(ctx context.Context, sessionID string, fn func(cart *CartService) error) error {
	m.mu.Lock()
	entry, ok := m.sessions[sessionID]
	if !ok {
		entry = &sessionEntry{cart: NewCartService(sessionID, m.states)}
		m.sessions[sessionID] = entry
	}
	m.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if !entry.restored {
		if err := entry.cart.Restore(ctx); err != nil {
			return err
		}
		entry.restored = true
	}
	return fn(entry.cart)
}

// Drop discards the in-memory cart for the session and deletes its persisted
// snapshot.
func (m *SessionManager) Drop(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if m.states == nil {
		return nil
	}
	return m.states.Delete(ctx, sessionID)
}

// ActiveSessions returns the number of carts currently held in memory.
func (m *SessionManager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
