package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturador-api/internal/domain"
	domainbilling "github.com/jhoicas/Facturador-api/internal/domain/billing"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/domain/repository"
	pkgcurrency "github.com/jhoicas/Facturador-api/pkg/currency"
)

// PDFUseCase orquesta la exportación PDF de un documento guardado.
type PDFUseCase struct {
	docs repository.DocumentRepository
	gen  DocumentPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(docs repository.DocumentRepository, gen DocumentPDFGenerator) *PDFUseCase {
	return &PDFUseCase{docs: docs, gen: gen}
}

// Generate devuelve los bytes del PDF y un nombre de archivo sugerido.
func (uc *PDFUseCase) Generate(ctx context.Context, docType entity.DocumentType, id string) ([]byte, string, error) {
	doc, err := uc.docs.GetByID(docType, id)
	if err != nil {
		return nil, "", err
	}
	if doc == nil {
		return nil, "", fmt.Errorf("%s %q: %w", docType, id, domain.ErrNotFound)
	}

	format := domainbilling.FormatCurrency(pkgcurrency.Formatter(doc.Currency))
	raw, err := uc.gen.GenerateDocumentPDF(ctx, doc, format)
	if err != nil {
		return nil, "", err
	}

	prefix := "factura"
	if docType == entity.DocumentTypeQuotation {
		prefix = "cotizacion"
	}
	return raw, fmt.Sprintf("%s-%s.pdf", prefix, doc.DocumentNumber), nil
}
