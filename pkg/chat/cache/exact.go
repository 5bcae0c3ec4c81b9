package cache

import (
	"context"
	"strings"
	"time"

	"portfolio-chat-be/pkg/chat/types"
	"portfolio-chat-be/pkg/profile"
)

// DefaultExactDelay is applied to warm hits so canned answers do not come
// back noticeably faster than generated ones.
const DefaultExactDelay = 2 * time.Second

// ExactCache holds pre-built responses for common questions and the
// quick-action buttons, keyed by the normalized message text. Hits cost
// zero LLM calls.
type ExactCache struct {
	responses map[string]types.ChatResponse
	delay     time.Duration
}

func NewExactCache(profiles *profile.Repository) *ExactCache {
	return NewExactCacheWithDelay(profiles, DefaultExactDelay)
}

func NewExactCacheWithDelay(profiles *profile.Repository, delay time.Duration) *ExactCache {
	c := &ExactCache{
		responses: make(map[string]types.ChatResponse),
		delay:     delay,
	}
	c.seed(profiles)
	return c
}

func (c *ExactCache) seed(profiles *profile.Repository) {
	text := func(key, body string) {
		c.responses[key] = types.ChatResponse{Type: types.TypeText, Data: types.TextPayload(body)}
	}

	text("hello", "Hello! I'm Arif Foysal, a Full Stack Developer and AI enthusiast. How can I help you today?")
	text("hi", "Hi there! I'm Arif, nice to meet you! What would you like to know about my work?")
	text("what is your name", "I'm Arif Foysal, a Full Stack Developer and AI Engineer from Bangladesh.")
	text("who are you", "I'm Arif Foysal, a passionate software developer specializing in full-stack web development and AI. I love building innovative solutions that solve real-world problems.")
	text("what is your background?", "I'm Arif Foysal, a Full Stack Developer and AI Enthusiast from Bangladesh with 3+ years of experience. I specialize in building innovative web applications and AI solutions. I've won multiple awards including finalist positions in national project showcases like UIU CSE Fest, Inventious 4.1, and Hult Prize Bangladesh 2025. Currently, I work at Amar Fuel developing IoT-based fuel station solutions, while also freelancing as a Full Stack Developer on Fiverr. My passion lies in creating technology solutions that solve real-world problems.")

	// Quick-action buttons from the frontend map straight onto portfolio data.
	c.responses["show me your projects"] = types.ChatResponse{
		Type: types.TypeProjectsList,
		Data: types.ProjectsPayload(profiles.Projects()),
	}
	c.responses["what are your skills?"] = types.ChatResponse{
		Type: types.TypeSkillsList,
		Data: types.SkillsPayload(profiles.Skills()),
	}
	c.responses["tell me about your experience"] = types.ChatResponse{
		Type: types.TypeExperienceList,
		Data: types.ExperiencePayload(profiles.Experience()),
	}
	c.responses["how can i contact you?"] = types.ChatResponse{
		Type: types.TypeContactInfo,
		Data: types.ContactPayload(profiles.ContactInfo()),
	}
}

// Normalize lowercases and trims a message into its cache key form.
func Normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

// Lookup returns a session-stamped copy of the cached response for message,
// or ok=false on a miss. Hits pause for the configured delay so the answer
// feels typed rather than instant; the pause respects ctx cancellation.
func (c *ExactCache) Lookup(ctx context.Context, message, sessionID string) (types.ChatResponse, bool, error) {
	cached, ok := c.responses[Normalize(message)]
	if !ok {
		return types.ChatResponse{}, false, nil
	}

	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return types.ChatResponse{}, false, ctx.Err()
		}
	}

	return cached.WithSession(sessionID), true, nil
}

// Len reports how many canned responses are seeded.
func (c *ExactCache) Len() int {
	return len(c.responses)
}
