package billing

import (
	"context"

	domainbilling "github.com/jhoicas/Facturador-api/internal/domain/billing"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// DocumentPDFGenerator puerto hacia el renderizador PDF. El PDF y la vista
// previa derivan del mismo snapshot y la misma función de formato de moneda,
// así que lo exportado nunca diverge de lo mostrado.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, doc *entity.SavedDocument, format domainbilling.FormatCurrency) ([]byte, error)
}
