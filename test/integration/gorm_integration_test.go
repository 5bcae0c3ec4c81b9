package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"portfolio-chat-be/internal/model"
	"portfolio-chat-be/internal/repository/implementation"
	"portfolio-chat-be/pkg/database"
	"portfolio-chat-be/pkg/embedding"

	"github.com/joho/godotenv"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	responseRepo := implementation.NewChatResponseRepository(gormDB)
	historyRepo := implementation.NewChatHistoryRepository(gormDB)

	t.Run("Check Chat Response Repository", func(t *testing.T) {
		count, err := responseRepo.Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Cached response count: %d", count)
	})

	t.Run("Check Chat History Repository", func(t *testing.T) {
		entries, err := historyRepo.FindBySessionId(context.Background(), "integration-probe", 1)
		assert.NoError(t, err)
		t.Logf("Probe returned %d entries", len(entries))
	})

	t.Run("Vector Round Trip", func(t *testing.T) {
		vec := make([]float32, 1536)
		vec[0] = 1
		vec = embedding.NormalizeVector(vec)

		entry := &model.ChatResponseCache{
			Query:     "integration probe query",
			Response:  `{"type":"text","data":"probe"}`,
			Category:  "other",
			Intent:    "general_question",
			Embedding: pgvector.NewVector(vec),
		}
		if err := responseRepo.Create(context.Background(), entry); err != nil {
			t.Fatalf("Failed to insert probe entry: %v", err)
		}
		defer func() {
			assert.NoError(t, responseRepo.Delete(context.Background(), entry.Id))
		}()

		scored, err := responseRepo.SearchSimilarWithScore(context.Background(), vec, 1, 0.99)
		assert.NoError(t, err)
		if assert.NotEmpty(t, scored) {
			assert.Equal(t, "integration probe query", scored[0].Entry.Query)
			assert.Equal(t, "general_question", scored[0].Entry.Intent)
			assert.InDelta(t, 1.0, scored[0].Similarity, 0.01)
		}
	})
}
