package contract

import (
	"context"

	"portfolio-chat-be/internal/model"
)

type ChatHistoryRepository interface {
	Create(ctx context.Context, entry *model.ChatHistory) error
	FindByUserId(ctx context.Context, userId string, limit int) ([]*model.ChatHistory, error)
	FindBySessionId(ctx context.Context, sessionId string, limit int) ([]*model.ChatHistory, error)
	DeleteByUserId(ctx context.Context, userId string) (int64, error)
}
