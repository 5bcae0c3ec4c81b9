package gate

import (
	"context"
	"math"
	"strings"
	"sync"

	"portfolio-chat-be/pkg/chat/types"
	"portfolio-chat-be/pkg/embedding"

	"go.uber.org/zap"
)

// RelevanceThreshold is the minimum cosine similarity between a message and
// the portfolio anchor text for the answer to be worth caching.
const RelevanceThreshold = 0.65

// portfolioAnchor is a bag of portfolio vocabulary embedded once per process.
// Messages close to it in embedding space are on-topic.
const portfolioAnchor = `
Full Stack Developer projects technologies React Vue Python FastAPI
machine learning AI artificial intelligence web development backend frontend
database docker deployment cloud AWS skills experience achievements awards
education certification professional background innovation technology solutions
`

// alwaysCacheCategories are structured answers backed by portfolio data.
// Their responses are deterministic, so caching is always safe.
var alwaysCacheCategories = map[types.Category]struct{}{
	types.CategoryProjects:     {},
	types.CategorySkills:       {},
	types.CategoryEducation:    {},
	types.CategoryExperience:   {},
	types.CategoryAchievements: {},
	types.CategoryContact:      {},
	types.CategoryPersonal:     {},
}

var portfolioKeywords = []string{
	"project", "skill", "experience", "work", "technology", "code",
	"programming", "development", "developer", "engineer", "portfolio",
	"github", "fullstack", "frontend", "backend", "react",
	"vue", "python", "javascript", "node", "fastapi", "database",
	"deployment", "docker", "aws", "education", "degree", "certificate",
	"achievement", "award", "accomplishment", "contact", "email",
	"linkedin", "website", "langchain", "ai", "ml", "machine learning",
	"llm", "gpt", "vector", "rag", "agent", "automation", "iot",
	"api", "rest", "graphql", "sql", "mongodb", "firebase",
	"git", "version control", "scrum", "agile", "testing", "ci/cd",
}

// Gate decides whether a freshly generated response should be written to the
// semantic cache.
type Gate struct {
	embedder embedding.Provider
	logger   *zap.Logger

	mu        sync.Mutex
	anchorVec []float32
}

func NewGate(embedder embedding.Provider, logger *zap.Logger) *Gate {
	return &Gate{
		embedder: embedder,
		logger:   logger,
	}
}

// ShouldCache applies the graduated decision: structured categories always
// cache, off-topic small talk never does, and everything else hinges on
// semantic relevance to the portfolio anchor, with keyword matching as the
// fallback when embeddings are unavailable.
func (g *Gate) ShouldCache(ctx context.Context, message string, classification types.ClassificationResult) bool {
	if _, ok := alwaysCacheCategories[classification.Category]; ok {
		return true
	}

	if offTopicSmallTalk(classification) {
		return false
	}

	relevant, err := g.semanticallyRelevant(ctx, message)
	if err != nil {
		g.logger.Warn("semantic relevance check failed, falling back to keywords", zap.Error(err))
		return g.keywordRelevant(message, classification)
	}
	return relevant
}

func offTopicSmallTalk(classification types.ClassificationResult) bool {
	return classification.Category == types.CategoryOther &&
		(classification.Intent == types.IntentGreeting || classification.Intent == types.IntentGeneralQuestion)
}

func (g *Gate) semanticallyRelevant(ctx context.Context, message string) (bool, error) {
	messageVec, err := g.embedder.Embed(ctx, message)
	if err != nil {
		return false, err
	}

	anchorVec, err := g.anchor(ctx)
	if err != nil {
		return false, err
	}

	similarity := CosineSimilarity(messageVec, anchorVec)
	g.logger.Debug("semantic relevance",
		zap.String("message", truncate(message, 50)),
		zap.Float64("similarity", similarity),
	)

	return similarity > RelevanceThreshold, nil
}

// anchor embeds the portfolio vocabulary once and reuses it afterwards.
func (g *Gate) anchor(ctx context.Context) ([]float32, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.anchorVec != nil {
		return g.anchorVec, nil
	}

	vec, err := g.embedder.Embed(ctx, portfolioAnchor)
	if err != nil {
		return nil, err
	}
	g.anchorVec = vec
	return vec, nil
}

// keywordRelevant is the backup path when the embedding provider is down.
func (g *Gate) keywordRelevant(message string, classification types.ClassificationResult) bool {
	messageLower := strings.ToLower(message)
	for _, keyword := range portfolioKeywords {
		if strings.Contains(messageLower, keyword) {
			return true
		}
	}

	if offTopicSmallTalk(classification) {
		return false
	}

	return classification.Confidence > 0.7
}

// CosineSimilarity returns the cosine of the angle between two vectors, in
// [-1, 1]. Empty or zero vectors score 0.
func CosineSimilarity(vec1, vec2 []float32) float64 {
	if len(vec1) == 0 || len(vec2) == 0 || len(vec1) != len(vec2) {
		return 0.0
	}

	var dot, mag1, mag2 float64
	for i := range vec1 {
		a, b := float64(vec1[i]), float64(vec2[i])
		dot += a * b
		mag1 += a * a
		mag2 += b * b
	}

	if mag1 == 0 || mag2 == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(mag1) * math.Sqrt(mag2))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
