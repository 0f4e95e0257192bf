package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// respondError mapea errores de dominio a códigos HTTP. Todos los handlers
// pasan por aquí para que el contrato de errores sea uniforme.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrDocumentFrozen):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "FROZEN", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrConfirmationRequired):
		return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{Code: "CONFIRMATION_REQUIRED", Message: "la operación requiere confirmación explícita"})
	case errors.Is(err, domain.ErrSyncDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SYNC_DISABLED", Message: "la sincronización remota no está configurada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// parseDocType traduce el segmento de ruta (:type) al tipo de documento.
// Acepta el plural usado por las rutas: "invoices" o "quotations".
func parseDocType(c *fiber.Ctx) (entity.DocumentType, bool) {
	switch c.Params("type") {
	case "invoices":
		return entity.DocumentTypeInvoice, true
	case "quotations":
		return entity.DocumentTypeQuotation, true
	default:
		return "", false
	}
}

func badDocType(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: "tipo de documento inválido: use invoices o quotations",
	})
}

// confirmQuery lee el flag ?confirm=true usado por las eliminaciones.
func confirmQuery(c *fiber.Ctx) bool {
	return c.Query("confirm") == "true"
}
