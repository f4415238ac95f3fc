package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/paddock/internal/domain/quiz"
	"github.com/okian/paddock/pkg/logger"
	"github.com/okian/paddock/pkg/metrics"
)

// DefaultSessionCapacity bounds the store when no capacity is configured.
const DefaultSessionCapacity = 10000

// node is one session in the recency list. head is the newest session.
type node struct {
	id    string
	state quiz.State
	prev  *node
	next  *node
}

// SessionStore keeps quiz sessions in memory. When bounded, creating a
// session beyond capacity evicts the oldest one. States are stored and
// returned by value so callers never share them.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*node
	head     *node
	tail     *node
	capacity int
	newID    func() string
	log      logger.Logger
}

// NewSessionStore creates a session store with options.
func NewSessionStore(opts ...SessionOption) *SessionStore {
	s := &SessionStore{
		sessions: make(map[string]*node),
		capacity: DefaultSessionCapacity,
		newID:    uuid.NewString,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores state under a fresh id and returns the id.
func (s *SessionStore) Create(ctx context.Context, state quiz.State) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for _, taken := s.sessions[id]; taken; _, taken = s.sessions[id] {
		id = s.newID()
	}

	if s.capacity > 0 && len(s.sessions) >= s.capacity {
		s.evictOldest(ctx)
	}

	n := &node{id: id, state: state, next: s.head}
	if s.head != nil {
		s.head.prev = n
	}
	s.head = n
	if s.tail == nil {
		s.tail = n
	}
	s.sessions[id] = n

	metrics.RecordQuizSessionCreated()
	metrics.UpdateQuizSessionsActive(len(s.sessions))
	return id
}

// Get returns the state of session id.
func (s *SessionStore) Get(_ context.Context, id string) (quiz.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.sessions[id]
	if !ok {
		return quiz.State{}, ErrSessionNotFound
	}
	return n.state, nil
}

// Update applies fn to the state of session id and stores the result when
// fn succeeds. fn runs under the store lock and must not call the store.
func (s *SessionStore) Update(_ context.Context, id string, fn func(quiz.State) (quiz.State, error)) (quiz.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.sessions[id]
	if !ok {
		return quiz.State{}, ErrSessionNotFound
	}
	next, err := fn(n.state)
	if err != nil {
		return n.state, err
	}
	n.state = next
	return next, nil
}

// Delete removes session id and reports whether it was present.
func (s *SessionStore) Delete(_ context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.sessions[id]
	if !ok {
		return false
	}
	s.unlink(n)
	metrics.UpdateQuizSessionsActive(len(s.sessions))
	return true
}

// Size returns the number of stored sessions.
func (s *SessionStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// evictOldest drops the tail. Must be called with s.mu held.
func (s *SessionStore) evictOldest(ctx context.Context) {
	n := s.tail
	if n == nil {
		return
	}
	s.unlink(n)
	metrics.RecordQuizSessionEvicted()
	s.log.Debug(ctx, "quiz session evicted", logger.String("session_id", n.id))
}

// unlink removes n from the list and the map. Must be called with s.mu held.
func (s *SessionStore) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		s.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		s.tail = n.prev
	}
	n.prev, n.next = nil, nil
	delete(s.sessions, n.id)
}
