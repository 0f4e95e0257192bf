package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/domain"
	domainbilling "github.com/jhoicas/Facturador-api/internal/domain/billing"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/domain/repository"
	pkgcurrency "github.com/jhoicas/Facturador-api/pkg/currency"
)

// DocumentUseCase consultas y operaciones simples sobre los dos registros de
// documentos: listar, obtener, cargar para edición, eliminar, consecutivo y
// texto para compartir.
type DocumentUseCase struct {
	docs repository.DocumentRepository
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(docs repository.DocumentRepository) *DocumentUseCase {
	return &DocumentUseCase{docs: docs}
}

// List devuelve el registro completo con el estado para mostrar de cada documento.
func (uc *DocumentUseCase) List(docType entity.DocumentType) ([]dto.DocumentResponse, error) {
	docs, err := uc.docs.List(docType)
	if err != nil {
		return nil, err
	}
	today := time.Now()
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d, today))
	}
	return out, nil
}

// Get obtiene un documento por ID.
func (uc *DocumentUseCase) Get(docType entity.DocumentType, id string) (*dto.DocumentResponse, error) {
	doc, err := uc.load(docType, id)
	if err != nil {
		return nil, err
	}
	resp := toDocumentResponse(doc, time.Now())
	return &resp, nil
}

// LoadForEdit copia un documento guardado al formulario de edición:
// cada línea recibe un ID regenerado (los IDs de línea son efímeros, no
// estables entre cargas) y el resto de campos va textual, con el número
// marcado como solo-lectura para proteger la unicidad.
func (uc *DocumentUseCase) LoadForEdit(docType entity.DocumentType, id string) (*dto.EditDocumentResponse, error) {
	doc, err := uc.load(docType, id)
	if err != nil {
		return nil, err
	}
	snapshot := *doc
	snapshot.LineItems = make([]entity.LineItem, len(doc.LineItems))
	for i, li := range doc.LineItems {
		li.ID = uuid.New().String()
		snapshot.LineItems[i] = li
	}
	return &dto.EditDocumentResponse{
		Document:     toDocumentResponse(&snapshot, time.Now()),
		NumberLocked: true,
	}, nil
}

// Delete elimina un documento; exige confirmación explícita.
func (uc *DocumentUseCase) Delete(docType entity.DocumentType, id string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	return uc.docs.Delete(docType, id)
}

// NextNumber calcula el consecutivo para un documento nuevo del tipo dado.
func (uc *DocumentUseCase) NextNumber(docType entity.DocumentType) (*dto.NextNumberResponse, error) {
	docs, err := uc.docs.List(docType)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(docs))
	for _, d := range docs {
		numbers = append(numbers, d.DocumentNumber)
	}
	return &dto.NextNumberResponse{DocumentNumber: domainbilling.NextDocumentNumber(numbers)}, nil
}

// ShareText compone el resumen de texto plano del documento para correo o chat.
func (uc *DocumentUseCase) ShareText(docType entity.DocumentType, id string) (*dto.ShareTextResponse, error) {
	doc, err := uc.load(docType, id)
	if err != nil {
		return nil, err
	}
	format := domainbilling.FormatCurrency(pkgcurrency.Formatter(doc.Currency))
	return &dto.ShareTextResponse{Text: domainbilling.RenderDocumentSummary(doc, format)}, nil
}

func (uc *DocumentUseCase) load(docType entity.DocumentType, id string) (*entity.SavedDocument, error) {
	doc, err := uc.docs.GetByID(docType, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%s %q: %w", docType, id, domain.ErrNotFound)
	}
	return doc, nil
}
