package session

import (
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"runplay-store/internal/service/cart"
)

var ErrSessionNotFound = errors.New("session not found")

// Session owns the cart of one visitor.
type Session struct {
	ID        string
	Cart      *cart.Cart
	StartedAt time.Time
	expiresAt time.Time
}

// Registry keeps one independent Session per visitor, in memory only.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	logger   *log.Logger
}

func New(ttl time.Duration, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

func (r *Registry) Start() (*Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	if evicted := r.Sweep(); evicted > 0 {
		r.logger.Printf("session registry: swept expired=%d", evicted)
	}
	now := r.now()
	s := &Session{
		ID:        id.String(),
		Cart:      cart.New(r.now),
		StartedAt: now.UTC(),
		expiresAt: now.Add(r.ttl),
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	r.logger.Printf("session registry: started id=%s", s.ID)
	return s, nil
}

// Lookup returns a live session and extends its expiry.
func (r *Registry) Lookup(id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if now.After(s.expiresAt) {
		delete(r.sessions, id)
		r.logger.Printf("session registry: expired id=%s", id)
		return nil, ErrSessionNotFound
	}
	s.expiresAt = now.Add(r.ttl)
	return s, nil
}

// End discards the session and its cart.
func (r *Registry) End(id string) bool {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		r.logger.Printf("session registry: ended id=%s", id)
	}
	return ok
}

func (r *Registry) Sweep() int {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, s := range r.sessions {
		if now.After(s.expiresAt) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// TTLSeconds is used for the session cookie max-age.
func (r *Registry) TTLSeconds() int {
	return int(r.ttl.Seconds())
}
