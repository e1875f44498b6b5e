package session

import (
	"sync"
	"time"

	"github.com/vominhduc11/dealerhub/internal/pricing"
)

// Manager owns one session per dealer, creating them on demand and dropping
// those idle longer than the TTL.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	rules    []pricing.Rule
	ttl      time.Duration
	now      func() time.Time
}

// NewManager builds a manager with the given rule table and idle TTL.
// A non-positive TTL disables expiry.
func NewManager(rules []pricing.Rule, ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		rules:    rules,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the dealer's session, creating a fresh one when none exists
// or the previous one has expired.
func (m *Manager) Get(dealerID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[dealerID]; ok && !m.expired(s) {
		return s
	}
	s := New(m.rules)
	m.sessions[dealerID] = s
	return s
}

// Drop removes the dealer's session outright.
func (m *Manager) Drop(dealerID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, dealerID)
}

// ExpireIdle removes every session idle longer than the TTL and reports how
// many were dropped.
func (m *Manager) ExpireIdle() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	dropped := 0
	for id, s := range m.sessions {
		if m.expired(s) {
			delete(m.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) expired(s *Session) bool {
	if m.ttl <= 0 {
		return false
	}
	return m.now().Sub(s.LastSeen()) > m.ttl
}
