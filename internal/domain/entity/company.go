package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company representa un perfil de empresa emisora. Sus campos siembran los
// documentos nuevos (logo, notas, tarifa de impuesto, moneda, plantilla).
// Una sola empresa está "activa" a la vez; la activa se resuelve en el registro.
type Company struct {
	ID           string          `json:"id"`
	Details      Details         `json:"details"`
	Logo         string          `json:"logo,omitempty"`        // imagen en data-URI (base64)
	BankQRCode   string          `json:"bank_qr_code,omitempty"` // contenido del QR de pago
	DefaultNotes string          `json:"default_notes,omitempty"`
	TaxRate      decimal.Decimal `json:"tax_rate"` // porcentaje (19 = 19%)
	Currency     string          `json:"currency"` // código ISO 4217
	Template     string          `json:"template,omitempty"`
	AccentColor  string          `json:"accent_color,omitempty"` // hex #RRGGBB
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
