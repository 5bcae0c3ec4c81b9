package cache

import (
	"context"
	"time"

	"portfolio-chat-be/pkg/chat/types"
	"portfolio-chat-be/pkg/embedding"
)

const (
	// DefaultSimilarityThreshold is the minimum cosine similarity for a
	// stored answer to be reused. Inclusive: a score of exactly 0.85 hits.
	DefaultSimilarityThreshold = 0.85

	semanticSearchLimit = 1
)

// CachedAnswer is one row from the vector store: the original query, the
// serialized response envelope, its classification metadata and how close
// it is to the live message.
type CachedAnswer struct {
	Query      string
	Response   string
	Category   string
	Intent     string
	Similarity float64
}

// VectorSearcher abstracts the pgvector-backed response store.
type VectorSearcher interface {
	SearchSimilar(ctx context.Context, vec []float32, limit int, threshold float64) ([]CachedAnswer, error)
	Save(ctx context.Context, query string, vec []float32, response string, category string, intent string) error
}

// SemanticCache reuses previously generated answers when a new message is
// close enough in embedding space to a stored query.
type SemanticCache struct {
	store     VectorSearcher
	embedder  embedding.Provider
	threshold float64
	delay     time.Duration
}

func NewSemanticCache(store VectorSearcher, embedder embedding.Provider) *SemanticCache {
	return &SemanticCache{
		store:     store,
		embedder:  embedder,
		threshold: DefaultSimilarityThreshold,
		delay:     DefaultExactDelay,
	}
}

// NewSemanticCacheWithOptions overrides the threshold and hit delay, mainly
// for tests.
func NewSemanticCacheWithOptions(store VectorSearcher, embedder embedding.Provider, threshold float64, delay time.Duration) *SemanticCache {
	return &SemanticCache{
		store:     store,
		embedder:  embedder,
		threshold: threshold,
		delay:     delay,
	}
}

// Lookup searches for a stored answer semantically close to message. A
// non-nil error always comes with ok=false; callers should log it and treat
// the lookup as a miss rather than failing the request.
func (c *SemanticCache) Lookup(ctx context.Context, message, sessionID string) (types.ChatResponse, bool, error) {
	if c.store == nil || c.embedder == nil {
		return types.ChatResponse{}, false, nil
	}

	vec, err := c.embedder.Embed(ctx, message)
	if err != nil {
		return types.ChatResponse{}, false, err
	}

	matches, err := c.store.SearchSimilar(ctx, vec, semanticSearchLimit, c.threshold)
	if err != nil {
		return types.ChatResponse{}, false, err
	}
	if len(matches) == 0 {
		return types.ChatResponse{}, false, nil
	}

	// The store filters by threshold too, but the inclusive boundary is an
	// observable contract: a score of exactly the threshold must hit.
	if matches[0].Similarity < c.threshold {
		return types.ChatResponse{}, false, nil
	}

	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return types.ChatResponse{}, false, ctx.Err()
		}
	}

	// Stored responses are {type,data} envelopes; anything unparseable is
	// served as plain text rather than dropped.
	respType, payload, _ := types.UnmarshalEnvelope([]byte(matches[0].Response))
	return types.ChatResponse{Type: respType, Data: payload, SessionID: sessionID}, true, nil
}

// Store persists a generated response for future semantic reuse, tagged
// with the classification that produced it.
func (c *SemanticCache) Store(ctx context.Context, query string, resp types.ChatResponse, classification types.ClassificationResult) error {
	if c.store == nil || c.embedder == nil {
		return nil
	}

	raw, err := types.MarshalEnvelope(resp.Type, resp.Data)
	if err != nil {
		return err
	}

	vec, err := c.embedder.Embed(ctx, query)
	if err != nil {
		return err
	}

	return c.store.Save(ctx, query, vec, string(raw), string(classification.Category), string(classification.Intent))
}
