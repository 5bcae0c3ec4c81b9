package controller

import (
	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/pkg/serverutils"
	"portfolio-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHistoryController interface {
	RegisterRoutes(r fiber.Router)
	Save(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type historyController struct {
	historyService service.IHistoryService
}

func NewHistoryController(historyService service.IHistoryService) IHistoryController {
	return &historyController{
		historyService: historyService,
	}
}

func (c *historyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/history/v1")
	h.Post("/save", c.Save)
	h.Post("/get", c.Get)
	h.Post("/clear", c.Clear)
	h.Get("/session/:session_id", c.GetSession)
	h.Get("/health", c.Health)
}

func (c *historyController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.historyService.SaveChatMessage(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Chat message saved", nil))
}

func (c *historyController) Get(ctx *fiber.Ctx) error {
	var req dto.GetChatHistoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.historyService.GetChatHistory(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *historyController) Clear(ctx *fiber.Ctx) error {
	var req dto.ClearChatHistoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.historyService.ClearChatHistory(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat history cleared", res))
}

func (c *historyController) GetSession(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("session_id")
	limit := ctx.QueryInt("limit", 50)

	res, err := c.historyService.GetSessionHistory(ctx.Context(), sessionId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session history", res))
}

func (c *historyController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.historyService.Health(ctx.Context()))
}
