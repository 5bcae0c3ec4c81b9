package contract

import (
	"context"

	"portfolio-chat-be/internal/model"

	"github.com/google/uuid"
)

// ScoredChatResponse wraps a cached response with its similarity score
type ScoredChatResponse struct {
	Entry      *model.ChatResponseCache
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type ChatResponseRepository interface {
	Create(ctx context.Context, entry *model.ChatResponseCache) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteOlderThan removes cache entries past their useful life
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
	Count(ctx context.Context) (int64, error)
	// SearchSimilarWithScore returns entries with their similarity scores, filtered by threshold
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredChatResponse, error)
}
