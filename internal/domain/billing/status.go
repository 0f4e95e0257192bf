package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// InvoiceState estado base derivado de los pagos de una factura.
type InvoiceState struct {
	Status     entity.InvoiceStatus
	PaidDate   *time.Time
	AmountPaid decimal.Decimal
}

// DeriveInvoiceState aplica la regla de pagos: pagado >= total -> Paid,
// pagado > 0 -> PartiallyPaid, si no Pending. PaidDate es la fecha del último
// pago; si la factura queda Paid sin fecha de pago utilizable (caso límite:
// total cero o pago con fecha vacía) se usa hoy. Regla centralizada aquí para
// que un cambio de producto toque una sola línea.
func DeriveInvoiceState(total decimal.Decimal, payments []entity.Payment, today time.Time) InvoiceState {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}

	st := InvoiceState{AmountPaid: paid}
	switch {
	case paid.GreaterThanOrEqual(total):
		st.Status = entity.InvoiceStatusPaid
		d := today
		if n := len(payments); n > 0 && !payments[n-1].Date.IsZero() {
			d = payments[n-1].Date
		}
		st.PaidDate = &d
	case paid.GreaterThan(decimal.Zero):
		st.Status = entity.InvoiceStatusPartiallyPaid
	default:
		st.Status = entity.InvoiceStatusPending
	}
	return st
}

// DisplayInvoiceStatus estado para mostrar: una factura no pagada con
// vencimiento anterior a hoy se muestra "Overdue" sin tocar el estado
// almacenado (vencida es una vista, no una transición).
func DisplayInvoiceStatus(doc *entity.SavedDocument, today time.Time) string {
	if doc.Status != entity.InvoiceStatusPaid && beforeDay(doc.DueDate, today) {
		return entity.InvoiceDisplayOverdue
	}
	return string(doc.Status)
}

// DisplayQuotationStatus estado para mostrar de una cotización:
// Agreed si fue convertida; Expired si venció; Active en otro caso.
func DisplayQuotationStatus(doc *entity.SavedDocument, today time.Time) string {
	if doc.QuotationStatus == entity.QuotationStatusAgreed {
		return string(entity.QuotationStatusAgreed)
	}
	if beforeDay(doc.DueDate, today) {
		return string(entity.QuotationStatusExpired)
	}
	return string(entity.QuotationStatusActive)
}

// DisplayStatus despacha según el tipo del documento.
func DisplayStatus(doc *entity.SavedDocument, today time.Time) string {
	if doc.DocumentType == entity.DocumentTypeQuotation {
		return DisplayQuotationStatus(doc, today)
	}
	return DisplayInvoiceStatus(doc, today)
}

// Frozen indica si el documento ya no admite ediciones por la vía normal:
// facturas fuera de Pending; cotizaciones Agreed o vencidas (el vencimiento
// se evalúa derivado, igual que en pantalla).
func Frozen(doc *entity.SavedDocument, today time.Time) bool {
	if doc.DocumentType == entity.DocumentTypeQuotation {
		s := DisplayQuotationStatus(doc, today)
		return s == string(entity.QuotationStatusAgreed) || s == string(entity.QuotationStatusExpired)
	}
	return doc.Status != entity.InvoiceStatusPending
}

// beforeDay compara solo la fecha calendario (ignora horas y zona intra-día).
func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
