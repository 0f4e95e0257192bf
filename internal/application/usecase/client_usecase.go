package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/domain/repository"
)

// ClientUseCase CRUD del registro de clientes. Los documentos guardados copian
// los datos del cliente por valor, así que borrar un cliente no los afecta.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente. Duplicado = mismo par (nombre, email) normalizado.
func (uc *ClientUseCase) Create(in dto.SaveClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.Details.Name) == "" {
		return nil, fmt.Errorf("el nombre es requerido: %w", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByIdentity(in.Details.Name, in.Details.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("ya existe un cliente %q: %w", in.Details.Name, domain.ErrDuplicate)
	}
	now := time.Now()
	client := &entity.Client{
		ID:        entity.NewID(),
		Details:   in.Details,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List lista clientes; search filtra por subcadena sobre nombre/email/teléfono.
func (uc *ClientUseCase) List(search string) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Update reemplaza los datos de contacto de un cliente.
func (uc *ClientUseCase) Update(id string, in dto.SaveClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.Details.Name) == "" {
		return nil, fmt.Errorf("el nombre es requerido: %w", domain.ErrInvalidInput)
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	client.Details = in.Details
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente; exige confirmación explícita.
func (uc *ClientUseCase) Delete(id string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	return uc.repo.Delete(id)
}

// DeleteBatch elimina un lote de clientes; exige confirmación explícita.
func (uc *ClientUseCase) DeleteBatch(in dto.DeleteBatchRequest) (*dto.DeleteBatchResponse, error) {
	if !in.Confirm {
		return nil, domain.ErrConfirmationRequired
	}
	if len(in.IDs) == 0 {
		return nil, fmt.Errorf("lote vacío: %w", domain.ErrInvalidInput)
	}
	n, err := uc.repo.DeleteBatch(in.IDs)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteBatchResponse{Deleted: n}, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Details:   c.Details,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
