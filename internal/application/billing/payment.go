package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/domain"
	domainbilling "github.com/jhoicas/Facturador-api/internal/domain/billing"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/domain/repository"
)

// WarningOverpayment aviso no bloqueante: el abono dejó el total sobrepagado.
const WarningOverpayment = "OVERPAYMENT"

// PaymentUseCase registro de abonos contra facturas. La lista de pagos es
// append-only: nunca se edita ni se elimina un pago anterior.
type PaymentUseCase struct {
	docs repository.DocumentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(docs repository.DocumentRepository) *PaymentUseCase {
	return &PaymentUseCase{docs: docs}
}

// Record anexa el pago y re-deriva estado y fecha de pago con la misma regla
// del guardado. Un sobrepago no bloquea: se registra y la respuesta lo avisa.
func (uc *PaymentUseCase) Record(invoiceID string, in dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("el monto del pago debe ser mayor a cero: %w", domain.ErrInvalidInput)
	}
	if in.Method == "" {
		return nil, fmt.Errorf("el método de pago es requerido: %w", domain.ErrInvalidInput)
	}

	invoice, err := uc.docs.GetByID(entity.DocumentTypeInvoice, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, fmt.Errorf("factura %q: %w", invoiceID, domain.ErrNotFound)
	}

	invoice.Payments = append(invoice.Payments, entity.Payment{
		ID:     uuid.New().String(),
		Amount: in.Amount,
		Date:   in.Date,
		Method: in.Method,
		Notes:  in.Notes,
	})

	today := time.Now()
	state := domainbilling.DeriveInvoiceState(invoice.Total, invoice.Payments, today)
	invoice.Status = state.Status
	invoice.PaidDate = state.PaidDate
	invoice.UpdatedAt = today

	if err := uc.docs.Update(invoice); err != nil {
		return nil, err
	}

	resp := &dto.RecordPaymentResponse{Document: toDocumentResponse(invoice, today)}
	if state.AmountPaid.GreaterThan(invoice.Total) {
		resp.Warning = WarningOverpayment
	}
	return resp, nil
}
