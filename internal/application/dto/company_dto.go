package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// CreateCompanyRequest body para POST /api/companies.
type CreateCompanyRequest struct {
	Details      entity.Details  `json:"details"`
	Logo         string          `json:"logo,omitempty"`
	BankQRCode   string          `json:"bank_qr_code,omitempty"`
	DefaultNotes string          `json:"default_notes,omitempty"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	Currency     string          `json:"currency"`
	Template     string          `json:"template,omitempty"`
	AccentColor  string          `json:"accent_color,omitempty"`
}

// UpdateCompanyRequest body para PUT /api/companies/:id. Campos nil no se tocan.
type UpdateCompanyRequest struct {
	Details      *entity.Details  `json:"details,omitempty"`
	Logo         *string          `json:"logo,omitempty"`
	BankQRCode   *string          `json:"bank_qr_code,omitempty"`
	DefaultNotes *string          `json:"default_notes,omitempty"`
	TaxRate      *decimal.Decimal `json:"tax_rate,omitempty"`
	Currency     *string          `json:"currency,omitempty"`
	Template     *string          `json:"template,omitempty"`
	AccentColor  *string          `json:"accent_color,omitempty"`
}

// SetActiveCompanyRequest body para PUT /api/companies/active.
type SetActiveCompanyRequest struct {
	CompanyID string `json:"company_id"`
}

// CompanyResponse perfil de empresa en respuestas.
type CompanyResponse struct {
	ID           string          `json:"id"`
	Details      entity.Details  `json:"details"`
	Logo         string          `json:"logo,omitempty"`
	BankQRCode   string          `json:"bank_qr_code,omitempty"`
	DefaultNotes string          `json:"default_notes,omitempty"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	Currency     string          `json:"currency"`
	Template     string          `json:"template,omitempty"`
	AccentColor  string          `json:"accent_color,omitempty"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
