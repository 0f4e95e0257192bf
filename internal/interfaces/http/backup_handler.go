package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturador-api/internal/application/backup"
)

// BackupHandler maneja exportación, importación y sincronización remota de
// respaldos. El respaldo cubre los cinco registros; la empresa activa no viaja.
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export GET /api/backup/export
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	payload, err := h.uc.Export()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="facturador-backup.json"`)
	return c.JSON(payload)
}

// importRequest envuelve el payload crudo del respaldo con el flag de
// confirmación; las claves no reconocidas del payload se ignoran.
type importRequest struct {
	Confirm bool                       `json:"confirm"`
	Data    map[string]json.RawMessage `json:"data"`
}

// Import POST /api/backup/import
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	var in importRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	result, err := h.uc.Import(in.Data, in.Confirm)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Push POST /api/backup/sync/:userId/push
func (h *BackupHandler) Push(c *fiber.Ctx) error {
	if err := h.uc.Push(c.Context(), c.Params("userId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Pull GET /api/backup/sync/:userId/pull
// Devuelve el respaldo remoto sin aplicarlo; aplicarlo es un Import aparte.
func (h *BackupHandler) Pull(c *fiber.Ctx) error {
	payload, err := h.uc.Pull(c.Context(), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payload)
}
