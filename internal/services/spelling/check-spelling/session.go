package checkspelling

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session orders concurrent checks for one editor. Only the result of the
// most recently begun request may be committed.
type Session struct {
	mu        sync.Mutex
	latest    uint64
	committed uint64
	result    *Output
	lastUsed  time.Time
}

// Begin issues the next request id.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	s.lastUsed = time.Now()
	return s.latest
}

// Commit stores out when id is still the latest issued id. It reports false
// for a stale id and leaves the stored result untouched.
func (s *Session) Commit(id uint64, out *Output) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.latest {
		return false
	}
	s.committed = id
	s.result = out
	return true
}

// Latest returns the latest issued id.
func (s *Session) Latest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Result returns the committed result and the id it was committed under.
func (s *Session) Result() (*Output, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.committed
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Sessions maps session ids to sessions and forgets idle ones.
type Sessions struct {
	mu      sync.Mutex
	idleTTL time.Duration
	byID    map[string]*Session
}

func NewSessions(idleTTL time.Duration) *Sessions {
	return &Sessions{
		idleTTL: idleTTL,
		byID:    make(map[string]*Session),
	}
}

// Get returns the session for id, creating it when needed. An empty id gets a new uuid.
func (r *Sessions) Get(id string) (string, *Session) {
	if id == "" {
		id = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked(time.Now())

	s, ok := r.byID[id]
	if !ok {
		s = &Session{lastUsed: time.Now()}
		r.byID[id] = s
	}
	return id, s
}

// Len returns the number of live sessions.
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

func (r *Sessions) pruneLocked(now time.Time) {
	if r.idleTTL <= 0 {
		return
	}
	for id, s := range r.byID {
		if now.Sub(s.idleSince()) > r.idleTTL {
			delete(r.byID, id)
		}
	}
}
