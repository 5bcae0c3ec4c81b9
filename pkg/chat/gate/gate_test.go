package gate

import (
	"context"
	"errors"
	"math"
	"testing"

	"portfolio-chat-be/pkg/chat/types"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if vec, ok := f.vectors[text]; ok {
		return vec, nil
	}
	return []float32{1, 0, 0}, nil
}

func (f *fakeEmbedder) Dimensions() int { return 3 }

func TestShouldCacheStructuredCategories(t *testing.T) {
	// No embedder calls should be needed for structured answers.
	embedder := &fakeEmbedder{err: errors.New("unreachable")}
	g := NewGate(embedder, zap.NewNop())

	categories := []types.Category{
		types.CategoryProjects, types.CategorySkills, types.CategoryEducation,
		types.CategoryExperience, types.CategoryAchievements, types.CategoryContact,
		types.CategoryPersonal,
	}
	for _, cat := range categories {
		assert.True(t, g.ShouldCache(context.Background(), "anything", types.ClassificationResult{Category: cat}), "category %s", cat)
	}
	assert.Zero(t, embedder.calls)
}

func TestShouldCacheOffTopicSmallTalk(t *testing.T) {
	g := NewGate(&fakeEmbedder{}, zap.NewNop())

	for _, intent := range []types.Intent{types.IntentGreeting, types.IntentGeneralQuestion} {
		classification := types.ClassificationResult{Category: types.CategoryOther, Intent: intent}
		assert.False(t, g.ShouldCache(context.Background(), "hello there", classification), "intent %s", intent)
	}
}

func TestShouldCacheSemanticRelevance(t *testing.T) {
	onTopic := types.ClassificationResult{Category: types.CategoryOther, Intent: types.IntentSpecificItem}

	t.Run("similar message caches", func(t *testing.T) {
		embedder := &fakeEmbedder{vectors: map[string][]float32{
			portfolioAnchor:             {1, 0, 0},
			"tell me about your stack?": {0.9, 0.1, 0},
		}}
		g := NewGate(embedder, zap.NewNop())
		assert.True(t, g.ShouldCache(context.Background(), "tell me about your stack?", onTopic))
	})

	t.Run("orthogonal message does not", func(t *testing.T) {
		embedder := &fakeEmbedder{vectors: map[string][]float32{
			portfolioAnchor:           {1, 0, 0},
			"what is the weather like": {0, 1, 0},
		}}
		g := NewGate(embedder, zap.NewNop())
		assert.False(t, g.ShouldCache(context.Background(), "what is the weather like", onTopic))
	})

	t.Run("anchor embedded once", func(t *testing.T) {
		embedder := &fakeEmbedder{}
		g := NewGate(embedder, zap.NewNop())
		g.ShouldCache(context.Background(), "first", onTopic)
		g.ShouldCache(context.Background(), "second", onTopic)
		// two messages plus a single anchor embedding
		assert.Equal(t, 3, embedder.calls)
	})
}

func TestShouldCacheKeywordFallback(t *testing.T) {
	broken := &fakeEmbedder{err: errors.New("provider down")}

	t.Run("keyword match caches", func(t *testing.T) {
		g := NewGate(broken, zap.NewNop())
		classification := types.ClassificationResult{Category: types.CategoryOther, Intent: types.IntentSpecificItem, Confidence: 0.1}
		assert.True(t, g.ShouldCache(context.Background(), "what database do you prefer", classification))
	})

	t.Run("no keywords but confident classification caches", func(t *testing.T) {
		g := NewGate(broken, zap.NewNop())
		classification := types.ClassificationResult{Category: types.CategoryOther, Intent: types.IntentSpecificItem, Confidence: 0.9}
		assert.True(t, g.ShouldCache(context.Background(), "zzz qqq", classification))
	})

	t.Run("no keywords and low confidence does not", func(t *testing.T) {
		g := NewGate(broken, zap.NewNop())
		classification := types.ClassificationResult{Category: types.CategoryOther, Intent: types.IntentSpecificItem, Confidence: 0.7}
		assert.False(t, g.ShouldCache(context.Background(), "zzz qqq", classification))
	})
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"scaled copy", []float32{1, 1}, []float32{5, 5}, 1.0},
		{"empty", nil, nil, 0.0},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0.0},
		{"zero vector", []float32{0, 0}, []float32{1, 2}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCosineSimilarityBounded(t *testing.T) {
	a := []float32{0.3, -0.7, 0.2, 0.9}
	b := []float32{-0.5, 0.1, 0.8, -0.2}
	got := CosineSimilarity(a, b)
	assert.LessOrEqual(t, math.Abs(got), 1.0)
}
