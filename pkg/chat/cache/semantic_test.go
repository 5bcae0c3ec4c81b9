package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"portfolio-chat-be/pkg/chat/types"

	"github.com/stretchr/testify/assert"
)

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vec, nil
}

func (f *fakeEmbedder) Dimensions() int { return len(f.vec) }

type fakeSearcher struct {
	answers []CachedAnswer
	err     error

	saved []CachedAnswer
}

func (f *fakeSearcher) SearchSimilar(ctx context.Context, vec []float32, limit int, threshold float64) ([]CachedAnswer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.answers, nil
}

func (f *fakeSearcher) Save(ctx context.Context, query string, vec []float32, response string, category string, intent string) error {
	f.saved = append(f.saved, CachedAnswer{Query: query, Response: response, Category: category, Intent: intent})
	return nil
}

func newTestSemanticCache(store VectorSearcher) *SemanticCache {
	return NewSemanticCacheWithOptions(store, &fakeEmbedder{vec: []float32{1, 0, 0}}, DefaultSimilarityThreshold, 0)
}

func TestSemanticCacheHitParsesEnvelope(t *testing.T) {
	store := &fakeSearcher{answers: []CachedAnswer{{
		Query:      "what do you work with",
		Response:   `{"type":"text","data":"I work with Go."}`,
		Similarity: 0.91,
	}}}
	c := newTestSemanticCache(store)

	resp, ok, err := c.Lookup(context.Background(), "what are your tools", "sess")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, types.TypeText, resp.Type)
	assert.Equal(t, types.TextPayload("I work with Go."), resp.Data)
	assert.Equal(t, "sess", resp.SessionID)
}

func TestSemanticCacheMalformedEntryDegradesToText(t *testing.T) {
	store := &fakeSearcher{answers: []CachedAnswer{{
		Response:   `this is not json at all`,
		Similarity: 0.9,
	}}}
	c := newTestSemanticCache(store)

	resp, ok, err := c.Lookup(context.Background(), "anything", "s")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, types.TypeText, resp.Type)
	assert.Equal(t, types.TextPayload("this is not json at all"), resp.Data)
}

func TestSemanticCacheMiss(t *testing.T) {
	c := newTestSemanticCache(&fakeSearcher{})

	_, ok, err := c.Lookup(context.Background(), "anything", "s")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSemanticCacheThresholdBoundary(t *testing.T) {
	makeCache := func(similarity float64) *SemanticCache {
		return newTestSemanticCache(&fakeSearcher{answers: []CachedAnswer{{
			Response:   `{"type":"text","data":"close enough"}`,
			Similarity: similarity,
		}}})
	}

	t.Run("exactly at the threshold hits", func(t *testing.T) {
		c := makeCache(DefaultSimilarityThreshold)

		resp, ok, err := c.Lookup(context.Background(), "anything", "s")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, types.TextPayload("close enough"), resp.Data)
	})

	t.Run("just below the threshold misses", func(t *testing.T) {
		c := makeCache(DefaultSimilarityThreshold - 0.0001)

		_, ok, err := c.Lookup(context.Background(), "anything", "s")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSemanticCacheSearchErrorIsMissWithError(t *testing.T) {
	c := newTestSemanticCache(&fakeSearcher{err: errors.New("db down")})

	_, ok, err := c.Lookup(context.Background(), "anything", "s")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSemanticCacheEmbedErrorIsMissWithError(t *testing.T) {
	c := NewSemanticCacheWithOptions(&fakeSearcher{}, &fakeEmbedder{err: errors.New("api down")}, DefaultSimilarityThreshold, 0)

	_, ok, err := c.Lookup(context.Background(), "anything", "s")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSemanticCacheNilDepsAreNoops(t *testing.T) {
	c := NewSemanticCache(nil, nil)

	_, ok, err := c.Lookup(context.Background(), "anything", "s")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, c.Store(context.Background(), "q", types.ChatResponse{}, types.FallbackClassification()))
}

func TestSemanticCacheStoreWritesEnvelope(t *testing.T) {
	store := &fakeSearcher{}
	c := newTestSemanticCache(store)

	resp := types.ChatResponse{
		Type: types.TypeText,
		Data: types.TextPayload("Stored answer"),
	}
	err := c.Store(context.Background(), "what do you do", resp, types.ClassificationResult{
		Category: types.CategoryPersonal,
		Intent:   types.IntentGeneralQuestion,
	})
	assert.NoError(t, err)

	if assert.Len(t, store.saved, 1) {
		assert.Equal(t, "what do you do", store.saved[0].Query)
		assert.Equal(t, "personal", store.saved[0].Category)
		assert.Equal(t, "general_question", store.saved[0].Intent)

		var env types.Envelope
		assert.NoError(t, json.Unmarshal([]byte(store.saved[0].Response), &env))
		assert.Equal(t, types.TypeText, env.Type)
	}
}
