package memory

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	s := NewStore()

	a := s.GetOrCreate("sess-1")
	b := s.GetOrCreate("sess-1")

	assert.Same(t, a, b)
	assert.Equal(t, "sess-1", a.ID)
}

func TestAppendCapsAtMaxPairs(t *testing.T) {
	s := NewStore()

	for i := 0; i < DefaultMaxPairs+5; i++ {
		s.Append("sess", fmt.Sprintf("question %d", i), fmt.Sprintf("answer %d", i))
	}

	assert.Equal(t, DefaultMaxPairs, s.Len("sess"))

	// Oldest turns were dropped, newest kept
	ctx := s.Context("sess")
	assert.NotContains(t, ctx, "question 0")
	assert.NotContains(t, ctx, "question 4")
	assert.Contains(t, ctx, "question 5")
	assert.Contains(t, ctx, fmt.Sprintf("question %d", DefaultMaxPairs+4))
}

func TestContextFormat(t *testing.T) {
	s := NewStore()

	s.Append("sess", "What are your skills?", "I work with Go and Python.")
	s.Append("sess", "Nice!", "Thanks!")

	want := "User: What are your skills?\n" +
		"Assistant: I work with Go and Python.\n" +
		"User: Nice!\n" +
		"Assistant: Thanks!"
	assert.Equal(t, want, s.Context("sess"))
}

func TestContextEmptySession(t *testing.T) {
	s := NewStore()

	assert.Equal(t, NoHistory, s.Context("fresh"))
}

func TestSessionExpiry(t *testing.T) {
	s := NewStoreWithLimits(20*time.Millisecond, DefaultMaxPairs)

	s.Append("sess", "hello", "hi")
	assert.True(t, s.Exists("sess"))

	time.Sleep(40 * time.Millisecond)

	assert.False(t, s.Exists("sess"))
	assert.Equal(t, NoHistory, s.Context("sess"))
}

func TestActiveSessions(t *testing.T) {
	s := NewStore()

	s.GetOrCreate("a")
	s.GetOrCreate("b")
	s.GetOrCreate("a")

	assert.Equal(t, 2, s.ActiveSessions())
}
