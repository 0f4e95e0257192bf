package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/application/usecase"
)

// AIHandler maneja las peticiones HTTP del asistente de descripciones.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// DescribeItem POST /api/ai/describe-item
func (h *AIHandler) DescribeItem(c *fiber.Ctx) error {
	var in dto.DescribeItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	result, err := h.uc.DescribeItem(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
