package session

import (
	"testing"
	"time"

	"github.com/vominhduc11/dealerhub/internal/pricing"
)

func TestManagerGetCreatesPerDealer(t *testing.T) {
	m := NewManager(pricing.DefaultRules, time.Hour)

	first := m.Get(1)
	if first == nil {
		t.Fatal("expected session")
	}
	if again := m.Get(1); again != first {
		t.Fatal("expected the same session for the same dealer")
	}
	if other := m.Get(2); other == first {
		t.Fatal("expected a distinct session per dealer")
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", m.Len())
	}
}

func TestManagerDrop(t *testing.T) {
	m := NewManager(pricing.DefaultRules, time.Hour)
	first := m.Get(1)

	m.Drop(1)
	if m.Len() != 0 {
		t.Fatalf("expected empty manager, got %d", m.Len())
	}
	if again := m.Get(1); again == first {
		t.Fatal("expected a fresh session after drop")
	}
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager(pricing.DefaultRules, time.Hour)
	first := m.Get(1)

	// warp the manager clock past the TTL
	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if again := m.Get(1); again == first {
		t.Fatal("expected expired session to be replaced")
	}

	m.now = func() time.Time { return time.Now().Add(4 * time.Hour) }
	if dropped := m.ExpireIdle(); dropped != 1 {
		t.Fatalf("expected 1 dropped session, got %d", dropped)
	}
	if m.Len() != 0 {
		t.Fatalf("expected no sessions left, got %d", m.Len())
	}
}

func TestManagerZeroTTLNeverExpires(t *testing.T) {
	m := NewManager(pricing.DefaultRules, 0)
	first := m.Get(1)

	m.now = func() time.Time { return time.Now().Add(1000 * time.Hour) }
	if again := m.Get(1); again != first {
		t.Fatal("expected session to survive with expiry disabled")
	}
	if dropped := m.ExpireIdle(); dropped != 0 {
		t.Fatalf("expected nothing dropped, got %d", dropped)
	}
}
