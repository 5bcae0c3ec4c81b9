package service

import (
	"context"
	"encoding/json"

	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/model"
	"portfolio-chat-be/internal/repository/contract"

	"go.uber.org/zap"
)

// IHistoryService persists and serves the durable chat transcript.
type IHistoryService interface {
	// PublishChatMessage enqueues a turn for async persistence.
	PublishChatMessage(msg *dto.PublishChatHistoryMessage) error
	SaveChatMessage(ctx context.Context, request *dto.SaveChatMessageRequest) error
	GetChatHistory(ctx context.Context, request *dto.GetChatHistoryRequest) (*dto.GetChatHistoryResponse, error)
	GetSessionHistory(ctx context.Context, sessionId string, limit int) (*dto.GetChatHistoryResponse, error)
	ClearChatHistory(ctx context.Context, request *dto.ClearChatHistoryRequest) (*dto.ClearChatHistoryResponse, error)
	Health(ctx context.Context) *dto.HistoryHealthResponse
}

type historyService struct {
	historyRepo      contract.ChatHistoryRepository
	publisherService IPublisherService
	logger           *zap.Logger
}

func NewHistoryService(
	historyRepo contract.ChatHistoryRepository,
	publisherService IPublisherService,
	logger *zap.Logger,
) IHistoryService {
	return &historyService{
		historyRepo:      historyRepo,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (s *historyService) PublishChatMessage(msg *dto.PublishChatHistoryMessage) error {
	if s.publisherService == nil {
		return nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(context.Background(), payload)
}

func (s *historyService) SaveChatMessage(ctx context.Context, request *dto.SaveChatMessageRequest) error {
	messageType := request.MessageType
	if messageType == "" {
		messageType = "text"
	}

	return s.historyRepo.Create(ctx, &model.ChatHistory{
		UserId:      request.UserId,
		SessionId:   request.SessionId,
		Message:     request.Message,
		Response:    request.Response,
		MessageType: messageType,
	})
}

func (s *historyService) GetChatHistory(ctx context.Context, request *dto.GetChatHistoryRequest) (*dto.GetChatHistoryResponse, error) {
	entries, err := s.historyRepo.FindByUserId(ctx, request.UserId, request.Limit)
	if err != nil {
		return nil, err
	}
	return toHistoryResponse(entries), nil
}

func (s *historyService) GetSessionHistory(ctx context.Context, sessionId string, limit int) (*dto.GetChatHistoryResponse, error) {
	entries, err := s.historyRepo.FindBySessionId(ctx, sessionId, limit)
	if err != nil {
		return nil, err
	}
	return toHistoryResponse(entries), nil
}

func (s *historyService) ClearChatHistory(ctx context.Context, request *dto.ClearChatHistoryRequest) (*dto.ClearChatHistoryResponse, error) {
	deleted, err := s.historyRepo.DeleteByUserId(ctx, request.UserId)
	if err != nil {
		return nil, err
	}
	return &dto.ClearChatHistoryResponse{DeletedCount: deleted}, nil
}

func (s *historyService) Health(ctx context.Context) *dto.HistoryHealthResponse {
	connected := s.historyRepo != nil
	if connected {
		if _, err := s.historyRepo.FindBySessionId(ctx, "health-probe", 1); err != nil {
			connected = false
		}
	}

	status := "healthy"
	if !connected {
		status = "degraded"
	}

	return &dto.HistoryHealthResponse{
		Status:            status,
		Message:           "Chat history service is running",
		DatabaseConnected: connected,
	}
}

func toHistoryResponse(entries []*model.ChatHistory) *dto.GetChatHistoryResponse {
	messages := make([]dto.ChatHistoryEntry, len(entries))
	for i, e := range entries {
		messages[i] = dto.ChatHistoryEntry{
			Id:          e.Id,
			UserId:      e.UserId,
			SessionId:   e.SessionId,
			Message:     e.Message,
			Response:    e.Response,
			MessageType: e.MessageType,
			CreatedAt:   e.CreatedAt,
		}
	}
	return &dto.GetChatHistoryResponse{
		Messages:   messages,
		TotalCount: len(messages),
	}
}
