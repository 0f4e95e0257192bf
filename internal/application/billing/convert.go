package billing

import (
	"fmt"
	"time"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/domain/repository"
)

// ConvertQuotationUseCase conversión cotización → factura. Es la única vía por
// la que una cotización llega a Agreed; la factura resultante conserva el
// número de la cotización (colisión entre tipos permitida por diseño).
type ConvertQuotationUseCase struct {
	docs repository.DocumentRepository
}

// NewConvertQuotationUseCase construye el caso de uso.
func NewConvertQuotationUseCase(docs repository.DocumentRepository) *ConvertQuotationUseCase {
	return &ConvertQuotationUseCase{docs: docs}
}

// Convert crea la factura a partir de la cotización y congela la cotización
// en Agreed. Vence a 15 días de hoy; nace Pending, sin pagos.
func (uc *ConvertQuotationUseCase) Convert(quotationID string, confirm bool) (*dto.DocumentResponse, error) {
	quotation, err := uc.docs.GetByID(entity.DocumentTypeQuotation, quotationID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, fmt.Errorf("cotización %q: %w", quotationID, domain.ErrNotFound)
	}
	if !confirm {
		return nil, domain.ErrConfirmationRequired
	}
	if quotation.QuotationStatus == entity.QuotationStatusAgreed {
		return nil, fmt.Errorf("la cotización ya fue convertida: %w", domain.ErrConflict)
	}
	if existing, err := uc.docs.GetByNumber(entity.DocumentTypeInvoice, quotation.DocumentNumber); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("ya existe una factura con número %q: %w", quotation.DocumentNumber, domain.ErrDuplicate)
	}

	today := time.Now()
	invoice := *quotation
	invoice.ID = entity.NewID()
	invoice.DocumentType = entity.DocumentTypeInvoice
	invoice.IssueDate = today
	invoice.DueDate = today.AddDate(0, 0, 15)
	invoice.Status = entity.InvoiceStatusPending
	invoice.QuotationStatus = ""
	invoice.PaidDate = nil
	invoice.Payments = []entity.Payment{}
	invoice.LineItems = append([]entity.LineItem(nil), quotation.LineItems...)
	invoice.CreatedAt = today
	invoice.UpdatedAt = today

	if err := uc.docs.Create(&invoice); err != nil {
		return nil, err
	}

	quotation.QuotationStatus = entity.QuotationStatusAgreed
	quotation.UpdatedAt = today
	if err := uc.docs.Update(quotation); err != nil {
		return nil, err
	}

	resp := toDocumentResponse(&invoice, today)
	return &resp, nil
}
