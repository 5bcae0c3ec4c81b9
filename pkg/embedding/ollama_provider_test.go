package embedding

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVector(t *testing.T) {
	t.Run("unit magnitude", func(t *testing.T) {
		got := NormalizeVector([]float32{3, 4})
		assert.InDelta(t, 0.6, got[0], 1e-6)
		assert.InDelta(t, 0.8, got[1], 1e-6)

		var magnitude float64
		for _, v := range got {
			magnitude += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6)
	})

	t.Run("zero vector unchanged", func(t *testing.T) {
		got := NormalizeVector([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, got)
	})

	t.Run("already normalized", func(t *testing.T) {
		got := NormalizeVector([]float32{1, 0})
		assert.InDelta(t, 1.0, got[0], 1e-6)
		assert.InDelta(t, 0.0, got[1], 1e-6)
	})
}

func TestOllamaProviderDefaults(t *testing.T) {
	p := NewOllamaProvider("", "", 0).(*OllamaProvider)
	assert.Equal(t, "http://localhost:11434", p.BaseURL)
	assert.Equal(t, "nomic-embed-text", p.Model)
	assert.Equal(t, 768, p.Dimensions())
}

func TestOllamaProviderEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embeddings", r.URL.Path)

		var req ollamaEmbeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nomic-embed-text", req.Model)
		assert.Equal(t, "hello", req.Prompt)

		json.NewEncoder(w).Encode(ollamaEmbeddingResponse{Embedding: []float64{3, 4}})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "", 2)

	vec, err := p.Embed(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, vec, 2)
	assert.InDelta(t, 0.6, vec[0], 1e-6)
	assert.InDelta(t, 0.8, vec[1], 1e-6)
}

func TestOllamaProviderEmbedErrors(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		p := NewOllamaProvider("http://localhost:11434", "", 0)
		_, err := p.Embed(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not found", http.StatusNotFound)
		}))
		defer srv.Close()

		p := NewOllamaProvider(srv.URL, "", 0)
		_, err := p.Embed(context.Background(), "hello")
		assert.ErrorContains(t, err, "model not found")
	})
}
