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

// ItemUseCase CRUD del catálogo de ítems. Price es el precio de venta por
// defecto que el editor copia a una línea nueva.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un ítem del catálogo.
func (uc *ItemUseCase) Create(in dto.SaveItemRequest) (*dto.ItemResponse, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("la descripción es requerida: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	item := &entity.Item{
		ID:          entity.NewID(),
		Description: in.Description,
		CostPrice:   in.CostPrice,
		Price:       in.Price,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista ítems; search filtra por subcadena sobre descripción/categoría.
func (uc *ItemUseCase) List(search string) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Update reemplaza un ítem del catálogo.
func (uc *ItemUseCase) Update(id string, in dto.SaveItemRequest) (*dto.ItemResponse, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("la descripción es requerida: %w", domain.ErrInvalidInput)
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Description = in.Description
	item.CostPrice = in.CostPrice
	item.Price = in.Price
	item.Category = in.Category
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un ítem; exige confirmación explícita.
func (uc *ItemUseCase) Delete(id string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	return uc.repo.Delete(id)
}

// DeleteBatch elimina un lote de ítems; exige confirmación explícita.
func (uc *ItemUseCase) DeleteBatch(in dto.DeleteBatchRequest) (*dto.DeleteBatchResponse, error) {
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

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          it.ID,
		Description: it.Description,
		CostPrice:   it.CostPrice,
		Price:       it.Price,
		Category:    it.Category,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
