// FILE: internal/controller/assistant_controller.go
// Controller for the assistant CRUD endpoints
package controller

import (
	"errors"

	"ai-assistant-admin-be/internal/dto"
	"ai-assistant-admin-be/internal/pkg/apperr"
	"ai-assistant-admin-be/internal/pkg/serverutils"
	"ai-assistant-admin-be/internal/pkg/validation"
	"ai-assistant-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(api fiber.Router)
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(api fiber.Router) {
	api.Get("/assistants", c.GetAll)
	api.Get("/assistants/:id", c.GetById)
	api.Post("/assistants", c.Create)
	api.Put("/assistants/:id", c.Update)
	api.Delete("/assistants/:id", c.Delete)
}

// GetAll returns every assistant record in insertion order
// @Summary List assistants
// @Tags Assistants
// @Produce json
// @Success 200 {object} []dto.AssistantResponse
// @Router /api/assistants [get]
func (c *assistantController) GetAll(ctx *fiber.Ctx) error {
	assistants, err := c.assistantService.GetAll(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Assistants retrieved", assistants))
}

// GetById returns a single assistant record
// @Summary Get assistant
// @Tags Assistants
// @Produce json
// @Success 200 {object} dto.AssistantResponse
// @Router /api/assistants/{id} [get]
func (c *assistantController) GetById(ctx *fiber.Ctx) error {
	assistant, err := c.assistantService.GetById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Assistant retrieved", assistant))
}

// Create validates the payload and appends a new assistant record
// @Summary Create assistant
// @Tags Assistants
// @Accept json
// @Produce json
// @Success 201 {object} dto.AssistantResponse
// @Router /api/assistants [post]
func (c *assistantController) Create(ctx *fiber.Ctx) error {
	var req dto.AssistantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	assistant, err := c.assistantService.Create(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Assistant created", assistant))
}

// Update replaces every field of an existing assistant except its id
// @Summary Update assistant
// @Tags Assistants
// @Accept json
// @Produce json
// @Success 200 {object} dto.AssistantResponse
// @Router /api/assistants/{id} [put]
func (c *assistantController) Update(ctx *fiber.Ctx) error {
	var req dto.AssistantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	assistant, err := c.assistantService.Update(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Assistant updated", assistant))
}

// Delete removes an assistant. The simulated channel can fail transiently,
// which surfaces as 503; the record is untouched in that case.
// @Summary Delete assistant
// @Tags Assistants
// @Produce json
// @Router /api/assistants/{id} [delete]
func (c *assistantController) Delete(ctx *fiber.Ctx) error {
	if err := c.assistantService.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Assistant deleted", nil))
}

// respondError maps domain errors onto HTTP statuses for every controller.
func respondError(ctx *fiber.Ctx, err error) error {
	var ve *validation.ValidationError
	switch {
	case errors.As(err, &ve):
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ValidationErrorResponse(ve))
	case errors.Is(err, apperr.ErrAssistantNotFound), errors.Is(err, apperr.ErrChatSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	case errors.Is(err, apperr.ErrTransientFailure):
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}
