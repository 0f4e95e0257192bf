package billing

import (
	"time"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	domainbilling "github.com/jhoicas/Facturador-api/internal/domain/billing"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// toDocumentResponse proyecta un documento guardado a DTO, derivando el estado
// para mostrar con la fecha de referencia dada.
func toDocumentResponse(d *entity.SavedDocument, today time.Time) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:              d.ID,
		DocumentNumber:  d.DocumentNumber,
		DocumentType:    d.DocumentType,
		ClientDetails:   d.ClientDetails,
		CompanyDetails:  d.CompanyDetails,
		Logo:            d.Logo,
		BankQRCode:      d.BankQRCode,
		IssueDate:       d.IssueDate,
		DueDate:         d.DueDate,
		LineItems:       d.LineItems,
		Notes:           d.Notes,
		TaxRate:         d.TaxRate,
		Currency:        d.Currency,
		Subtotal:        d.Subtotal,
		TaxAmount:       d.TaxAmount,
		Total:           d.Total,
		Status:          d.Status,
		QuotationStatus: d.QuotationStatus,
		DisplayStatus:   domainbilling.DisplayStatus(d, today),
		PaidDate:        d.PaidDate,
		Payments:        d.Payments,
		AmountPaid:      d.AmountPaid(),
		BalanceDue:      d.BalanceDue(),
		Template:        d.Template,
		AccentColor:     d.AccentColor,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
