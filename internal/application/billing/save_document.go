package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/domain"
	domainbilling "github.com/jhoicas/Facturador-api/internal/domain/billing"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/domain/repository"
	"github.com/jhoicas/Facturador-api/pkg/logger"
)

// SaveDocumentUseCase gobierna el paso de un documento en edición al estado
// persistido: validación, congelamiento, unicidad de número, confirmación,
// alta aditiva del cliente, derivación de estado y commit.
type SaveDocumentUseCase struct {
	docs    repository.DocumentRepository
	clients repository.ClientRepository
	log     *logger.Logger
}

// NewSaveDocumentUseCase construye el caso de uso.
func NewSaveDocumentUseCase(docs repository.DocumentRepository, clients repository.ClientRepository, log *logger.Logger) *SaveDocumentUseCase {
	return &SaveDocumentUseCase{docs: docs, clients: clients, log: log}
}

// Save crea (ID vacío) o actualiza (ID presente) un documento. Los rechazos
// ocurren antes de cualquier mutación: si Save devuelve error, ningún registro
// cambió. El orden de las verificaciones es el del flujo del formulario:
// validación, congelado, duplicado, confirmación.
func (uc *SaveDocumentUseCase) Save(in dto.SaveDocumentRequest) (*dto.SaveDocumentResponse, error) {
	if in.DocumentType != entity.DocumentTypeInvoice && in.DocumentType != entity.DocumentTypeQuotation {
		return nil, fmt.Errorf("tipo de documento %q: %w", in.DocumentType, domain.ErrInvalidInput)
	}
	if len(in.LineItems) == 0 {
		return nil, fmt.Errorf("el documento no tiene líneas: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.ClientDetails.Name) == "" {
		return nil, fmt.Errorf("el nombre del cliente está vacío: %w", domain.ErrInvalidInput)
	}

	today := time.Now()

	var existing *entity.SavedDocument
	if in.ID != "" {
		var err error
		existing, err = uc.docs.GetByID(in.DocumentType, in.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		if domainbilling.Frozen(existing, today) {
			return nil, domain.ErrDocumentFrozen
		}
	}

	// El número es solo-lectura mientras un documento está cargado: en una
	// actualización prevalece el número original, venga lo que venga.
	number := in.DocumentNumber
	if existing != nil {
		number = existing.DocumentNumber
	}
	dup, err := uc.docs.GetByNumber(in.DocumentType, number)
	if err != nil {
		return nil, err
	}
	if dup != nil && (existing == nil || dup.ID != existing.ID) {
		return nil, fmt.Errorf("ya existe %s con número %q: %w", in.DocumentType, number, domain.ErrDuplicate)
	}

	if !in.Confirm {
		return nil, domain.ErrConfirmationRequired
	}

	// Alta aditiva del cliente: nunca condiciona el guardado.
	clientAdded := uc.maybeSaveClient(in)

	lineItems := make([]entity.LineItem, 0, len(in.LineItems))
	for _, li := range in.LineItems {
		lineItems = append(lineItems, entity.LineItem{
			ID:          uuid.New().String(),
			Description: li.Description,
			Quantity:    li.Quantity,
			CostPrice:   li.CostPrice,
			Markup:      li.Markup,
			Price:       li.Price,
		})
	}
	totals := domainbilling.ComputeTotals(lineItems, in.TaxRate)

	var doc entity.SavedDocument
	if existing != nil {
		doc = *existing // conserva ID, pagos, estado de cotización, createdAt
	} else {
		doc = entity.SavedDocument{
			ID:        entity.NewID(),
			Payments:  []entity.Payment{},
			CreatedAt: today,
		}
	}

	doc.DocumentNumber = number
	doc.DocumentType = in.DocumentType
	doc.ClientDetails = in.ClientDetails
	doc.CompanyDetails = in.CompanyDetails
	doc.Logo = in.Logo
	doc.BankQRCode = in.BankQRCode
	doc.IssueDate = in.IssueDate
	doc.DueDate = in.DueDate
	doc.LineItems = lineItems
	doc.Notes = in.Notes
	doc.TaxRate = in.TaxRate
	doc.Currency = in.Currency
	doc.Subtotal = totals.Subtotal
	doc.TaxAmount = totals.TaxAmount
	doc.Total = totals.Total
	doc.Template = in.Template
	doc.AccentColor = in.AccentColor
	doc.UpdatedAt = today

	switch in.DocumentType {
	case entity.DocumentTypeInvoice:
		state := domainbilling.DeriveInvoiceState(doc.Total, doc.Payments, today)
		doc.Status = state.Status
		doc.PaidDate = state.PaidDate
		doc.QuotationStatus = ""
	case entity.DocumentTypeQuotation:
		if existing == nil {
			doc.QuotationStatus = entity.QuotationStatusActive
		}
		doc.Status = ""
		doc.PaidDate = nil
	}

	if existing != nil {
		err = uc.docs.Update(&doc)
	} else {
		err = uc.docs.Create(&doc)
	}
	if err != nil {
		return nil, err
	}

	return &dto.SaveDocumentResponse{
		Document:    toDocumentResponse(&doc, today),
		ClientAdded: clientAdded,
	}, nil
}

// maybeSaveClient agrega el cliente del documento al registro si no existe
// (llave nombre+email). Cualquier fallo se registra y se ignora.
func (uc *SaveDocumentUseCase) maybeSaveClient(in dto.SaveDocumentRequest) bool {
	if !in.SaveNewClient {
		return false
	}
	known, err := uc.clients.GetByIdentity(in.ClientDetails.Name, in.ClientDetails.Email)
	if err != nil || known != nil {
		return false
	}
	now := time.Now()
	client := &entity.Client{
		ID:        entity.NewID(),
		Details:   in.ClientDetails,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clients.Create(client); err != nil {
		uc.log.Warn().Err(err).Str("client", in.ClientDetails.Name).Msg("alta aditiva de cliente fallida")
		return false
	}
	return true
}
