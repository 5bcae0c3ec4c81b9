package controller

import (
	"errors"

	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/pkg/serverutils"
	"portfolio-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

// chatController serves the pipeline. chatService is nil when the chat
// stack could not be initialized (no OpenAI key); the endpoints then answer
// 503/unhealthy while the rest of the API keeps working.
type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("/", c.SendChat)
	h.Get("/health", c.Health)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	if c.chatService == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "chatbot service is not available")
	}

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// Callers are anonymous, so admission is keyed by client address.
	res, err := c.chatService.SendChat(ctx.Context(), ctx.IP(), &req)
	if err != nil {
		var limitErr *dto.LimitExceededError
		if errors.As(err, &limitErr) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(dto.LimitExceededResponse{
				Success:   false,
				Code:      fiber.StatusTooManyRequests,
				Message:   "Rate limit exceeded. Please slow down and try again shortly.",
				ErrorType: "rate_limit_exceeded",
				Data: dto.LimitExceededData{
					Limit:      limitErr.Limit,
					Remaining:  limitErr.Remaining,
					RetryAfter: limitErr.RetryAfter,
				},
			})
		}
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	if c.chatService == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(&dto.ChatHealthResponse{
			Status:  "unhealthy",
			Message: "Chatbot service not initialized - check OPENAI_API_KEY",
		})
	}
	return ctx.JSON(c.chatService.Health(ctx.Context()))
}
