package dto

import (
	"time"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// SaveClientRequest body para POST /api/clients y PUT /api/clients/:id.
type SaveClientRequest struct {
	Details entity.Details `json:"details"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID        string         `json:"id"`
	Details   entity.Details `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
