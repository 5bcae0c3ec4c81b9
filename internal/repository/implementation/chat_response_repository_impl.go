package implementation

import (
	"context"

	"portfolio-chat-be/internal/model"
	"portfolio-chat-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ChatResponseRepositoryImpl struct {
	db *gorm.DB
}

func NewChatResponseRepository(db *gorm.DB) contract.ChatResponseRepository {
	return &ChatResponseRepositoryImpl{db: db}
}

func (r *ChatResponseRepositoryImpl) Create(ctx context.Context, entry *model.ChatResponseCache) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ChatResponseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ChatResponseCache{}, id).Error
}

func (r *ChatResponseRepositoryImpl) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < now() - make_interval(days => ?)", days).
		Delete(&model.ChatResponseCache{})
	return result.RowsAffected, result.Error
}

func (r *ChatResponseRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ChatResponseCache{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns cached responses with similarity scores, filtered by threshold
func (r *ChatResponseRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredChatResponse, error) {
	if limit <= 0 {
		limit = 1
	}

	// Cosine distance in pgvector is: 1 - cosine_similarity
	// So we compute: 1 - (embedding <=> query_vector) = cosine_similarity
	type result struct {
		model.ChatResponseCache
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("chat_responses").
		Select("chat_responses.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("1 - (embedding <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredChatResponse, len(results))
	for i, res := range results {
		entry := res.ChatResponseCache
		scored[i] = &contract.ScoredChatResponse{
			Entry:      &entry,
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
