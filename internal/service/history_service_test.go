package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/model"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryHistoryRepo struct {
	mu      sync.Mutex
	entries []*model.ChatHistory
	err     error
}

func (r *memoryHistoryRepo) Create(_ context.Context, entry *model.ChatHistory) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memoryHistoryRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *memoryHistoryRepo) FindByUserId(_ context.Context, userId string, limit int) ([]*model.ChatHistory, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*model.ChatHistory
	for _, e := range r.entries {
		if e.UserId == userId {
			out = append(out, e)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memoryHistoryRepo) FindBySessionId(_ context.Context, sessionId string, limit int) ([]*model.ChatHistory, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*model.ChatHistory
	for _, e := range r.entries {
		if e.SessionId == sessionId {
			out = append(out, e)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memoryHistoryRepo) DeleteByUserId(_ context.Context, userId string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var kept []*model.ChatHistory
	var deleted int64
	for _, e := range r.entries {
		if e.UserId == userId {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return deleted, nil
}

func TestSaveChatMessageDefaultsType(t *testing.T) {
	repo := &memoryHistoryRepo{}
	svc := NewHistoryService(repo, nil, zap.NewNop())

	err := svc.SaveChatMessage(context.Background(), &dto.SaveChatMessageRequest{
		UserId:    "u1",
		SessionId: "s1",
		Message:   "hi",
		Response:  `{"type":"text","data":"hello"}`,
	})
	require.NoError(t, err)

	require.Len(t, repo.entries, 1)
	assert.Equal(t, "text", repo.entries[0].MessageType)
}

func TestGetSessionHistory(t *testing.T) {
	repo := &memoryHistoryRepo{entries: []*model.ChatHistory{
		{UserId: "s1", SessionId: "s1", Message: "hi", Response: "hello", MessageType: "text"},
		{UserId: "s1", SessionId: "s1", Message: "projects?", Response: "[]", MessageType: "projects_list"},
		{UserId: "s2", SessionId: "s2", Message: "other", Response: "x", MessageType: "text"},
	}}
	svc := NewHistoryService(repo, nil, zap.NewNop())

	res, err := svc.GetSessionHistory(context.Background(), "s1", 50)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, "projects_list", res.Messages[1].MessageType)
}

func TestClearChatHistory(t *testing.T) {
	repo := &memoryHistoryRepo{entries: []*model.ChatHistory{
		{UserId: "u1", SessionId: "s1"},
		{UserId: "u1", SessionId: "s2"},
		{UserId: "u2", SessionId: "s3"},
	}}
	svc := NewHistoryService(repo, nil, zap.NewNop())

	res, err := svc.ClearChatHistory(context.Background(), &dto.ClearChatHistoryRequest{UserId: "u1"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.DeletedCount)
	assert.Len(t, repo.entries, 1)
}

func TestHistoryHealth(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		svc := NewHistoryService(&memoryHistoryRepo{}, nil, zap.NewNop())
		health := svc.Health(context.Background())
		assert.Equal(t, "healthy", health.Status)
		assert.True(t, health.DatabaseConnected)
	})

	t.Run("database down", func(t *testing.T) {
		svc := NewHistoryService(&memoryHistoryRepo{err: errors.New("connection refused")}, nil, zap.NewNop())
		health := svc.Health(context.Background())
		assert.Equal(t, "degraded", health.Status)
		assert.False(t, health.DatabaseConnected)
	})
}

func TestPublishConsumeRoundTrip(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	repo := &memoryHistoryRepo{}
	logger := zap.NewNop()
	historySvc := NewHistoryService(repo, NewPublisherService(pubSub, "save-history-test"), logger)
	consumer := NewConsumerService(pubSub, "save-history-test", historySvc, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	err := historySvc.PublishChatMessage(&dto.PublishChatHistoryMessage{
		UserId:      "s1",
		SessionId:   "s1",
		Message:     "what are your skills?",
		Response:    `{"type":"skills_list","data":[]}`,
		MessageType: "skills_list",
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return repo.len() == 1
	}, time.Second, 10*time.Millisecond)

	require.Len(t, repo.entries, 1)
	assert.Equal(t, "s1", repo.entries[0].SessionId)
	assert.Equal(t, "skills_list", repo.entries[0].MessageType)
}
