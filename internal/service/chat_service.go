package service

import (
	"context"
	"encoding/json"
	"time"

	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/repository/contract"
	"portfolio-chat-be/pkg/chat/cache"
	"portfolio-chat-be/pkg/chat/classify"
	"portfolio-chat-be/pkg/chat/gate"
	"portfolio-chat-be/pkg/chat/memory"
	"portfolio-chat-be/pkg/chat/ratelimit"
	"portfolio-chat-be/pkg/chat/respond"
	"portfolio-chat-be/pkg/chat/route"
	"portfolio-chat-be/pkg/chat/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IChatService defines the chat service interface
type IChatService interface {
	SendChat(ctx context.Context, clientKey string, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	Health(ctx context.Context) *dto.ChatHealthResponse
}

// chatService coordinates the response pipeline: admission, the two cache
// tiers, classification, data routing, generation and the cache-write gate.
type chatService struct {
	limiter       *ratelimit.SlidingWindow
	exactCache    *cache.ExactCache
	semanticCache *cache.SemanticCache
	sessions      *memory.Store
	classifier    *classify.Classifier
	router        *route.Router
	generator     *respond.Generator
	cacheGate     *gate.Gate
	responseRepo  contract.ChatResponseRepository
	historySvc    IHistoryService
	logger        *zap.Logger
}

func NewChatService(
	limiter *ratelimit.SlidingWindow,
	exactCache *cache.ExactCache,
	semanticCache *cache.SemanticCache,
	sessions *memory.Store,
	classifier *classify.Classifier,
	router *route.Router,
	generator *respond.Generator,
	cacheGate *gate.Gate,
	responseRepo contract.ChatResponseRepository,
	historySvc IHistoryService,
	logger *zap.Logger,
) IChatService {
	return &chatService{
		limiter:       limiter,
		exactCache:    exactCache,
		semanticCache: semanticCache,
		sessions:      sessions,
		classifier:    classifier,
		router:        router,
		generator:     generator,
		cacheGate:     cacheGate,
		responseRepo:  responseRepo,
		historySvc:    historySvc,
		logger:        logger,
	}
}

func (s *chatService) SendChat(ctx context.Context, clientKey string, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	// 1. Admission
	if clientKey == "" {
		clientKey = ratelimit.AnonymousKey
	}
	if !s.limiter.Allow(clientKey) {
		return nil, &dto.LimitExceededError{
			Limit:      s.limiter.Limit(),
			Remaining:  s.limiter.Remaining(clientKey),
			RetryAfter: time.Now().Add(s.limiter.RetryAfter(clientKey)),
		}
	}

	sessionID := request.SessionId
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// 2. Exact match cache (fastest)
	if resp, ok, err := s.exactCache.Lookup(ctx, request.Message, sessionID); err != nil {
		return nil, err
	} else if ok {
		s.logger.Debug("exact cache hit", zap.String("session_id", sessionID))
		s.sessions.Append(sessionID, request.Message, assistantText(resp))
		s.recordHistory(sessionID, request.Message, resp)
		return toDTO(resp)
	}

	// 3. Semantic cache (vector similarity)
	resp, ok, err := s.semanticCache.Lookup(ctx, request.Message, sessionID)
	if err != nil {
		s.logger.Warn("semantic cache lookup failed", zap.Error(err))
	} else if ok {
		s.logger.Debug("semantic cache hit", zap.String("session_id", sessionID))
		s.sessions.Append(sessionID, request.Message, assistantText(resp))
		s.recordHistory(sessionID, request.Message, resp)
		return toDTO(resp)
	}

	// 4. Session memory
	session := s.sessions.GetOrCreate(sessionID)

	// 5. Classify the message
	classification := s.classifier.Classify(ctx, request.Message)

	// 6. Fetch portfolio data and resolve the rendering type
	data := s.router.FetchData(classification, request.Message)
	responseType := route.ResolveType(classification)

	// 7. Generate the conversational reply
	history := s.sessions.Context(session.ID)
	responseText := s.generator.Generate(ctx, request.Message, classification, data, history)

	// 8. Build the final response
	final := types.ChatResponse{
		Type:      types.TypeText,
		Data:      types.TextPayload(responseText),
		SessionID: sessionID,
	}
	if classification.RequiresSpecialUI && data != nil {
		final = types.ChatResponse{
			Type:      responseType,
			Data:      data,
			SessionID: sessionID,
		}
	}

	// 9. Cache-write gate
	if s.cacheGate.ShouldCache(ctx, request.Message, classification) {
		if err := s.semanticCache.Store(ctx, request.Message, final, classification); err != nil {
			s.logger.Warn("could not store response in vector store", zap.Error(err))
		}
	} else {
		s.logger.Debug("skipping cache, not relevant",
			zap.String("category", string(classification.Category)))
	}

	// 10. Update session memory
	s.sessions.Append(sessionID, request.Message, responseText)

	s.recordHistory(sessionID, request.Message, final)

	return toDTO(final)
}

// recordHistory persists the turn asynchronously; failures only log.
func (s *chatService) recordHistory(sessionID, message string, resp types.ChatResponse) {
	if s.historySvc == nil {
		return
	}

	responseText := ""
	if raw, err := types.MarshalEnvelope(resp.Type, resp.Data); err == nil {
		responseText = string(raw)
	}

	if err := s.historySvc.PublishChatMessage(&dto.PublishChatHistoryMessage{
		UserId:      sessionID,
		SessionId:   sessionID,
		Message:     message,
		Response:    responseText,
		MessageType: string(resp.Type),
	}); err != nil {
		s.logger.Warn("could not publish chat history", zap.Error(err))
	}
}

// assistantText renders a response for session memory. Cache hits can carry
// structured payloads, which would bloat the transcript if inlined verbatim.
func assistantText(resp types.ChatResponse) string {
	if text, ok := resp.Data.(types.TextPayload); ok {
		return string(text)
	}
	return "Shared " + string(resp.Type) + " data."
}

func (s *chatService) Health(ctx context.Context) *dto.ChatHealthResponse {
	var semanticSize int64
	vectorReady := false
	if s.responseRepo != nil {
		if count, err := s.responseRepo.Count(ctx); err == nil {
			semanticSize = count
			vectorReady = true
		}
	}

	status := "healthy"
	if !vectorReady {
		status = "degraded"
	}

	return &dto.ChatHealthResponse{
		Status:            status,
		Message:           "Chatbot service is running",
		LLMClientReady:    true, // the service is only constructed with a live client
		VectorStoreReady:  vectorReady,
		ActiveSessions:    s.sessions.ActiveSessions(),
		CachedResponses:   s.exactCache.Len(),
		SemanticCacheSize: semanticSize,
	}
}

func toDTO(resp types.ChatResponse) (*dto.SendChatResponse, error) {
	data, err := json.Marshal(resp.Data)
	if err != nil {
		return nil, err
	}
	return &dto.SendChatResponse{
		Type:      string(resp.Type),
		Data:      data,
		SessionId: resp.SessionID,
	}, nil
}
