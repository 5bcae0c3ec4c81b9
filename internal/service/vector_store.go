package service

import (
	"context"

	"portfolio-chat-be/internal/model"
	"portfolio-chat-be/internal/repository/contract"
	"portfolio-chat-be/pkg/chat/cache"

	"github.com/pgvector/pgvector-go"
)

// pgVectorStore adapts the gorm-backed response repository to the
// cache.VectorSearcher interface the semantic cache works against.
type pgVectorStore struct {
	repo contract.ChatResponseRepository
}

func NewPgVectorStore(repo contract.ChatResponseRepository) cache.VectorSearcher {
	return &pgVectorStore{repo: repo}
}

func (s *pgVectorStore) SearchSimilar(ctx context.Context, vec []float32, limit int, threshold float64) ([]cache.CachedAnswer, error) {
	scored, err := s.repo.SearchSimilarWithScore(ctx, vec, limit, threshold)
	if err != nil {
		return nil, err
	}

	answers := make([]cache.CachedAnswer, len(scored))
	for i, sc := range scored {
		answers[i] = cache.CachedAnswer{
			Query:      sc.Entry.Query,
			Response:   sc.Entry.Response,
			Category:   sc.Entry.Category,
			Intent:     sc.Entry.Intent,
			Similarity: sc.Similarity,
		}
	}
	return answers, nil
}

func (s *pgVectorStore) Save(ctx context.Context, query string, vec []float32, response string, category string, intent string) error {
	return s.repo.Create(ctx, &model.ChatResponseCache{
		Query:     query,
		Response:  response,
		Category:  category,
		Intent:    intent,
		Embedding: pgvector.NewVector(vec),
	})
}
