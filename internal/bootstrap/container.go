package bootstrap

import (
	"log"
	"time"

	"portfolio-chat-be/internal/config"
	"portfolio-chat-be/internal/controller"
	"portfolio-chat-be/internal/pkg/logger"
	"portfolio-chat-be/internal/repository/implementation"
	"portfolio-chat-be/internal/service"
	"portfolio-chat-be/pkg/chat/cache"
	"portfolio-chat-be/pkg/chat/classify"
	"portfolio-chat-be/pkg/chat/gate"
	"portfolio-chat-be/pkg/chat/memory"
	"portfolio-chat-be/pkg/chat/ratelimit"
	"portfolio-chat-be/pkg/chat/respond"
	"portfolio-chat-be/pkg/chat/route"
	"portfolio-chat-be/pkg/embedding"
	"portfolio-chat-be/pkg/llm/openai"
	"portfolio-chat-be/pkg/profile"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const chatHistoryTopic = "SAVE_CHAT_HISTORY"

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	HistoryController controller.IHistoryController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	zlog := sysLogger.Raw()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Repositories
	responseRepo := implementation.NewChatResponseRepository(db)
	historyRepo := implementation.NewChatHistoryRepository(db)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, chatHistoryTopic)
	historyService := service.NewHistoryService(historyRepo, publisherService, zlog)
	consumerService := service.NewConsumerService(pubSub, chatHistoryTopic, historyService, zlog)

	// 5. Chat pipeline. Without an OpenAI key the pipeline cannot run, so
	// the chat service stays nil (its endpoints answer 503) while history
	// keeps serving.
	var chatService service.IChatService
	if cfg.Ai.OpenAIAPIKey == "" {
		zlog.Warn("OPENAI_API_KEY is not set, chat pipeline disabled")
	} else if llmProvider, err := openai.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.ChatModel, ""); err != nil {
		zlog.Warn("chat pipeline disabled, LLM provider failed to initialize", zap.Error(err))
	} else {
		var embeddingProvider embedding.Provider
		if cfg.Ai.EmbeddingProvider == "ollama" {
			embeddingProvider = embedding.NewOllamaProvider(
				cfg.Ai.OllamaBaseURL,
				cfg.Ai.OllamaModel,
				cfg.Ai.EmbeddingDim,
			)
			log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
		} else {
			var err error
			embeddingProvider, err = embedding.NewOpenAIProvider(
				cfg.Ai.OpenAIAPIKey,
				cfg.Ai.EmbeddingModel,
				cfg.Ai.EmbeddingDim,
			)
			if err != nil {
				log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
			}
			log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
		}
		log.Printf("[INFO] Using LLM Provider: OPENAI (%s)", cfg.Ai.ChatModel)

		profiles := profile.NewRepository()
		limiter := ratelimit.NewWithPolicy(
			cfg.RateLimit.Limit,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
		exactCache := cache.NewExactCache(profiles)
		semanticCache := cache.NewSemanticCache(service.NewPgVectorStore(responseRepo), embeddingProvider)
		sessions := memory.NewStore()
		classifier := classify.NewClassifier(llmProvider, zlog)
		router := route.NewRouter(profiles)
		generator := respond.NewGenerator(llmProvider, zlog)
		cacheGate := gate.NewGate(embeddingProvider, zlog)

		chatService = service.NewChatService(
			limiter,
			exactCache,
			semanticCache,
			sessions,
			classifier,
			router,
			generator,
			cacheGate,
			responseRepo,
			historyService,
			zlog,
		)
	}

	// 7. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService),
		HistoryController: controller.NewHistoryController(historyService),
		ConsumerService:   consumerService,
	}
}
