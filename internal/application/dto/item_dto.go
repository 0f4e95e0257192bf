package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveItemRequest body para POST /api/items y PUT /api/items/:id.
type SaveItemRequest struct {
	Description string          `json:"description"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
}

// ItemResponse ítem del catálogo en respuestas.
type ItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
