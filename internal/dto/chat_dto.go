package dto

import (
	"encoding/json"
	"time"
)

type SendChatRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=2000"`
	SessionId string `json:"session_id,omitempty" validate:"omitempty,max=64"`
}

// SendChatResponse mirrors the wire envelope the frontend renders from. Data
// is either a plain string (text replies) or a structured portfolio payload.
type SendChatResponse struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	SessionId string          `json:"session_id"`
}

type ChatHealthResponse struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	LLMClientReady    bool   `json:"llm_client_ready"`
	VectorStoreReady  bool   `json:"vector_store_ready"`
	ActiveSessions    int    `json:"active_sessions"`
	CachedResponses   int    `json:"cached_responses"`
	SemanticCacheSize int64  `json:"semantic_cache_size"`
}

// --- Limit Exceeded Error Types ---

// LimitExceededError is a custom error that carries usage details
type LimitExceededError struct {
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	RetryAfter time.Time `json:"retry_after"`
}

func (e *LimitExceededError) Error() string {
	return "rate limit exceeded"
}

// LimitExceededData is the data payload for 429 responses
type LimitExceededData struct {
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	RetryAfter time.Time `json:"retry_after"`
}

// LimitExceededResponse is the full 429 response structure
type LimitExceededResponse struct {
	Success   bool              `json:"success"`
	Code      int               `json:"code"`
	Message   string            `json:"message"`
	ErrorType string            `json:"error_type"`
	Data      LimitExceededData `json:"data"`
}
