package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveChatMessageRequest struct {
	UserId      string `json:"user_id" validate:"required,max=64"`
	SessionId   string `json:"session_id" validate:"required,max=64"`
	Message     string `json:"message" validate:"required"`
	Response    string `json:"response" validate:"required"`
	MessageType string `json:"message_type,omitempty"`
}

type GetChatHistoryRequest struct {
	UserId string `json:"user_id" validate:"required,max=64"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200"`
}

type ChatHistoryEntry struct {
	Id          uuid.UUID `json:"id"`
	UserId      string    `json:"user_id"`
	SessionId   string    `json:"session_id"`
	Message     string    `json:"message"`
	Response    string    `json:"response"`
	MessageType string    `json:"message_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type GetChatHistoryResponse struct {
	Messages   []ChatHistoryEntry `json:"messages"`
	TotalCount int                `json:"total_count"`
}

type ClearChatHistoryRequest struct {
	UserId string `json:"user_id" validate:"required,max=64"`
}

type ClearChatHistoryResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// PublishChatHistoryMessage is the payload for async history persistence.
type PublishChatHistoryMessage struct {
	UserId      string `json:"user_id"`
	SessionId   string `json:"session_id"`
	Message     string `json:"message"`
	Response    string `json:"response"`
	MessageType string `json:"message_type"`
}

type HistoryHealthResponse struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	DatabaseConnected bool   `json:"database_connected"`
}
