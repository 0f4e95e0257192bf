package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// LineItemRequest línea facturable del formulario. El ID efímero lo asigna el backend.
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Markup      decimal.Decimal `json:"markup"`
	Price       decimal.Decimal `json:"price"`
}

// SaveDocumentRequest body para POST /api/documents.
// ID vacío crea un documento; ID presente actualiza el documento cargado.
// Confirm refleja la confirmación explícita del usuario antes de comprometer.
// SaveNewClient, si va en true y el cliente (nombre+email) no existe en el
// registro, lo agrega; es aditivo y su fallo nunca impide el guardado.
type SaveDocumentRequest struct {
	ID             string              `json:"id,omitempty"`
	DocumentType   entity.DocumentType `json:"document_type"`
	DocumentNumber string              `json:"document_number"`
	ClientDetails  entity.Details      `json:"client_details"`
	CompanyDetails entity.Details      `json:"company_details"`
	Logo           string              `json:"logo,omitempty"`
	BankQRCode     string              `json:"bank_qr_code,omitempty"`
	IssueDate      time.Time           `json:"issue_date"`
	DueDate        time.Time           `json:"due_date"`
	LineItems      []LineItemRequest   `json:"line_items"`
	Notes          string              `json:"notes,omitempty"`
	TaxRate        decimal.Decimal     `json:"tax_rate"`
	Currency       string              `json:"currency"`
	Template       string              `json:"template,omitempty"`
	AccentColor    string              `json:"accent_color,omitempty"`
	Confirm        bool                `json:"confirm"`
	SaveNewClient  bool                `json:"save_new_client,omitempty"`
}

// DocumentResponse documento guardado en respuestas. DisplayStatus es la vista
// derivada (Overdue/Expired incluidos); Status/QuotationStatus son los campos base.
type DocumentResponse struct {
	ID              string                 `json:"id"`
	DocumentNumber  string                 `json:"document_number"`
	DocumentType    entity.DocumentType    `json:"document_type"`
	ClientDetails   entity.Details         `json:"client_details"`
	CompanyDetails  entity.Details         `json:"company_details"`
	Logo            string                 `json:"logo,omitempty"`
	BankQRCode      string                 `json:"bank_qr_code,omitempty"`
	IssueDate       time.Time              `json:"issue_date"`
	DueDate         time.Time              `json:"due_date"`
	LineItems       []entity.LineItem      `json:"line_items"`
	Notes           string                 `json:"notes,omitempty"`
	TaxRate         decimal.Decimal        `json:"tax_rate"`
	Currency        string                 `json:"currency"`
	Subtotal        decimal.Decimal        `json:"subtotal"`
	TaxAmount       decimal.Decimal        `json:"tax_amount"`
	Total           decimal.Decimal        `json:"total"`
	Status          entity.InvoiceStatus   `json:"status,omitempty"`
	QuotationStatus entity.QuotationStatus `json:"quotation_status,omitempty"`
	DisplayStatus   string                 `json:"display_status"`
	PaidDate        *time.Time             `json:"paid_date,omitempty"`
	Payments        []entity.Payment       `json:"payments"`
	AmountPaid      decimal.Decimal        `json:"amount_paid"`
	BalanceDue      decimal.Decimal        `json:"balance_due"`
	Template        string                 `json:"template,omitempty"`
	AccentColor     string                 `json:"accent_color,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// SaveDocumentResponse resultado del guardado.
type SaveDocumentResponse struct {
	Document    DocumentResponse `json:"document"`
	ClientAdded bool             `json:"client_added,omitempty"`
}

// EditDocumentResponse snapshot editable de un documento cargado: las líneas
// llevan IDs regenerados y NumberLocked indica que el número es solo-lectura.
type EditDocumentResponse struct {
	Document     DocumentResponse `json:"document"`
	NumberLocked bool             `json:"number_locked"`
}

// NextNumberResponse siguiente consecutivo para un documento nuevo.
type NextNumberResponse struct {
	DocumentNumber string `json:"document_number"`
}

// ConvertQuotationRequest body para POST /api/documents/quotations/:id/convert.
type ConvertQuotationRequest struct {
	Confirm bool `json:"confirm"`
}

// RecordPaymentRequest body para POST /api/documents/invoices/:id/payments.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Method string          `json:"method"`
	Notes  string          `json:"notes,omitempty"`
}

// RecordPaymentResponse resultado del registro de un pago. Warning trae
// "OVERPAYMENT" cuando el abono dejó el total sobrepagado (no bloqueante).
type RecordPaymentResponse struct {
	Document DocumentResponse `json:"document"`
	Warning  string           `json:"warning,omitempty"`
}

// ShareTextResponse texto plano del documento para correo o chat.
type ShareTextResponse struct {
	Text string `json:"text"`
}
