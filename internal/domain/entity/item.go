package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa una entrada del catálogo de productos/servicios.
// Price es el precio de venta por defecto que se copia a una línea nueva.
type Item struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
