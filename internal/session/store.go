package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/petetru/careermap-backend/internal/platform/logger"
)

var ErrNotFound = errors.New("session not found")

// Store keeps sessions for their UI lifetime. Nothing here is durable: a
// store restart loses every session, which matches the product contract.
type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	sess    Session
	expires time.Time
}

type memoryStore struct {
	log *logger.Logger
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]memoryEntry
}

func NewMemoryStore(log *logger.Logger, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	var l *logger.Logger
	if log != nil {
		l = log.With("service", "MemorySessionStore")
	}
	return &memoryStore{
		log:      l,
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

func (m *memoryStore) Get(_ context.Context, id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if time.Now().After(e.expires) {
		delete(m.sessions, id)
		return Session{}, ErrNotFound
	}
	return e.sess, nil
}

func (m *memoryStore) Save(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	m.sessions[s.ID] = memoryEntry{sess: s, expires: time.Now().Add(m.ttl)}
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// sweepLocked drops expired entries. Called on Save so an idle store holds
// no timer goroutine.
func (m *memoryStore) sweepLocked() {
	now := time.Now()
	for id, e := range m.sessions {
		if now.After(e.expires) {
			delete(m.sessions, id)
		}
	}
}
