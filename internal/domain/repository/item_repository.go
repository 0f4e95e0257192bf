package repository

import "github.com/jhoicas/Facturador-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para el catálogo de ítems.
// List con search filtra por subcadena case-insensitive sobre descripción/categoría.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	List(search string) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
	DeleteBatch(ids []string) (int, error)
}
