// pkg/memcache/seen_events.go
package mem

import (
	"sync"
	"time"
)

// EventDedupeStore remembers webhook delivery ids long enough to absorb the
// pipeline's retry storms. Single-process by design: the store only has to
// protect one service instance, the unique DB constraints remain the durable
// guard.
type EventDedupeStore interface {
	// MarkOnce records key and reports whether this was its first occurrence
	// inside the ttl window.
	MarkOnce(key string, ttl time.Duration) bool

	Seen(key string) bool
}

type seenEntry struct {
	expiresAt time.Time
}

type SeenEvents struct {
	mu   sync.Mutex
	data map[string]seenEntry
}

func NewSeenEvents() *SeenEvents {
	return &SeenEvents{
		data: make(map[string]seenEntry),
	}
}

func (s *SeenEvents) MarkOnce(key string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if ok && time.Now().Before(e.expiresAt) {
		return false
	}
	s.data[key] = seenEntry{expiresAt: time.Now().Add(ttl)}
	return true
}

func (s *SeenEvents) Seen(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, key) // cleanup expired
		return false
	}
	return true
}
