// FILE: internal/controller/chat_controller.go
// Controller for the chat preview endpoints
package controller

import (
	"ai-assistant-admin-be/internal/dto"
	"ai-assistant-admin-be/internal/pkg/serverutils"
	"ai-assistant-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(api fiber.Router)
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(api fiber.Router) {
	api.Post("/assistants/:id/chat/sessions", c.CreateSession)
	api.Post("/chat/sessions/:sessionId/messages", c.SendMessage)
}

// CreateSession starts a chat preview against one assistant
// @Summary Start chat preview session
// @Tags Chat
// @Produce json
// @Success 201 {object} dto.CreateChatSessionResponse
// @Router /api/assistants/{id}/chat/sessions [post]
func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	session, err := c.chatService.CreateSession(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Chat session started", session))
}

// SendMessage appends the user message and a canned reply
// @Summary Send chat preview message
// @Tags Chat
// @Accept json
// @Produce json
// @Success 200 {object} dto.SendChatMessageResponse
// @Router /api/chat/sessions/{sessionId}/messages [post]
func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.chatService.SendMessage(ctx.Context(), ctx.Params("sessionId"), &req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Message sent", res))
}
