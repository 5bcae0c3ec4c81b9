// Package memory keeps short-term conversational context per session.
// Nothing here is persisted; the store lives and dies with the process.
package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// DefaultTTL is how long a session survives without activity.
	DefaultTTL = 1 * time.Hour
	// DefaultMaxPairs bounds the rolling transcript to avoid token blowup.
	DefaultMaxPairs = 10

	purgeInterval = 10 * time.Minute

	// NoHistory is returned by Context for sessions with no prior turns.
	NoHistory = "No previous conversation."
)

// Pair is one user/assistant exchange.
type Pair struct {
	User      string
	Assistant string
}

// Session is the rolling memory for one conversation thread.
type Session struct {
	ID    string
	Pairs []Pair
}

// Store owns all session memories. Expiry is handled by the backing cache:
// every write refreshes the TTL and an expired session is simply absent on
// the next lookup, so idle conversations start fresh.
type Store struct {
	cache    *cache.Cache
	ttl      time.Duration
	maxPairs int

	// mu serializes the get-modify-set in Append; the backing cache is
	// thread-safe per call but not across a read-modify-write.
	mu sync.Mutex
}

// NewStore creates a session memory store with the default 1h TTL and
// 10-pair cap.
func NewStore() *Store {
	return NewStoreWithLimits(DefaultTTL, DefaultMaxPairs)
}

// NewStoreWithLimits allows tests to shrink the TTL and cap.
func NewStoreWithLimits(ttl time.Duration, maxPairs int) *Store {
	return &Store{
		cache:    cache.New(ttl, purgeInterval),
		ttl:      ttl,
		maxPairs: maxPairs,
	}
}

// GetOrCreate returns the live session for the id, creating an empty one if
// it does not exist or has expired. Touching a session refreshes its TTL.
func (s *Store) GetOrCreate(sessionID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(sessionID)
}

func (s *Store) getOrCreateLocked(sessionID string) *Session {
	if x, found := s.cache.Get(sessionID); found {
		sess := x.(*Session)
		s.cache.Set(sessionID, sess, cache.DefaultExpiration)
		return sess
	}
	sess := &Session{ID: sessionID}
	s.cache.Set(sessionID, sess, cache.DefaultExpiration)
	return sess
}

// Append records one exchange, dropping the oldest pair once the cap is
// exceeded.
func (s *Store) Append(sessionID, userText, assistantText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreateLocked(sessionID)
	sess.Pairs = append(sess.Pairs, Pair{User: userText, Assistant: assistantText})
	if len(sess.Pairs) > s.maxPairs {
		sess.Pairs = sess.Pairs[len(sess.Pairs)-s.maxPairs:]
	}
	s.cache.Set(sessionID, sess, cache.DefaultExpiration)
}

// Context renders the transcript for prompt assembly.
func (s *Store) Context(sessionID string) string {
	s.mu.Lock()
	sess := s.getOrCreateLocked(sessionID)
	pairs := make([]Pair, len(sess.Pairs))
	copy(pairs, sess.Pairs)
	s.mu.Unlock()

	if len(pairs) == 0 {
		return NoHistory
	}

	var b strings.Builder
	for _, p := range pairs {
		b.WriteString("User: ")
		b.WriteString(p.User)
		b.WriteString("\nAssistant: ")
		b.WriteString(p.Assistant)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Len reports how many pairs the session currently holds.
func (s *Store) Len(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if x, found := s.cache.Get(sessionID); found {
		return len(x.(*Session).Pairs)
	}
	return 0
}

// ActiveSessions reports how many sessions are currently live.
func (s *Store) ActiveSessions() int {
	return s.cache.ItemCount()
}

// Exists reports whether the session is still live (not expired).
func (s *Store) Exists(sessionID string) bool {
	_, found := s.cache.Get(sessionID)
	return found
}
