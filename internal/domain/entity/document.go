package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType tipo del documento guardado. Los dos registros
// (savedInvoices, savedQuotations) nunca se mezclan.
type DocumentType string

const (
	DocumentTypeInvoice   DocumentType = "invoice"
	DocumentTypeQuotation DocumentType = "quotation"
)

// Estados base de factura. "Overdue" NO es un estado almacenado: se deriva
// al leer (ver billing.DisplayInvoiceStatus).
type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "Pending"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PartiallyPaid"
	InvoiceStatusPaid          InvoiceStatus = "Paid"
)

// InvoiceDisplayOverdue valor derivado solo-lectura para facturas vencidas.
const InvoiceDisplayOverdue = "Overdue"

// Estados de cotización. Agreed solo se alcanza vía conversión a factura.
type QuotationStatus string

const (
	QuotationStatusActive  QuotationStatus = "Active"
	QuotationStatusExpired QuotationStatus = "Expired"
	QuotationStatusAgreed  QuotationStatus = "Agreed"
)

// LineItem una línea facturable dentro de un documento. Los IDs son efímeros:
// se regeneran cada vez que el documento se carga para edición.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Markup      decimal.Decimal `json:"markup"`
	Price       decimal.Decimal `json:"price"` // precio de venta autoritativo para totales
}

// Payment un abono registrado contra una factura. La lista es append-only:
// nunca se edita ni se elimina un pago existente.
type Payment struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Method string          `json:"method"`
	Notes  string          `json:"notes,omitempty"`
}

// SavedDocument la unidad persistida: una factura o una cotización con
// snapshots por valor de los datos de empresa y cliente al momento de guardar.
// DocumentNumber es único (case-insensitive) dentro de su propio registro,
// no entre tipos: una factura convertida conserva el número de su cotización.
type SavedDocument struct {
	ID             string          `json:"id"`
	DocumentNumber string          `json:"document_number"`
	DocumentType   DocumentType    `json:"document_type"`
	ClientDetails  Details         `json:"client_details"`
	CompanyDetails Details         `json:"company_details"`
	Logo           string          `json:"logo,omitempty"`
	BankQRCode     string          `json:"bank_qr_code,omitempty"`
	IssueDate      time.Time       `json:"issue_date"`
	DueDate        time.Time       `json:"due_date"`
	LineItems      []LineItem      `json:"line_items"`
	Notes          string          `json:"notes,omitempty"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Currency       string          `json:"currency"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
	Status         InvoiceStatus   `json:"status,omitempty"`           // solo facturas
	QuotationStatus QuotationStatus `json:"quotation_status,omitempty"` // solo cotizaciones
	PaidDate       *time.Time      `json:"paid_date,omitempty"`
	Payments       []Payment       `json:"payments"`
	Template       string          `json:"template,omitempty"`
	AccentColor    string          `json:"accent_color,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AmountPaid suma de todos los pagos registrados.
func (d *SavedDocument) AmountPaid() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range d.Payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// BalanceDue saldo pendiente (total - pagado). Puede ser negativo si hubo sobrepago.
func (d *SavedDocument) BalanceDue() decimal.Decimal {
	return d.Total.Sub(d.AmountPaid())
}
