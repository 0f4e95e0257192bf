package localstore

import (
	"strings"

	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// ItemRepository implementa repository.ItemRepository sobre el Store.
type ItemRepository struct {
	store *Store
}

// NewItemRepository construye el repositorio.
func NewItemRepository(store *Store) *ItemRepository {
	return &ItemRepository{store: store}
}

// Create agrega un ítem al catálogo.
func (r *ItemRepository) Create(item *entity.Item) error {
	return r.store.Update(func(tx *Tx) error {
		var items []*entity.Item
		if err := tx.Get(KeyItems, &items); err != nil {
			return err
		}
		items = append(items, item)
		return tx.Set(KeyItems, items)
	})
}

// GetByID busca por identificador.
func (r *ItemRepository) GetByID(id string) (*entity.Item, error) {
	items, err := r.all()
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

// List devuelve ítems, opcionalmente filtrados por subcadena case-insensitive
// sobre descripción o categoría.
func (r *ItemRepository) List(search string) ([]*entity.Item, error) {
	items, err := r.all()
	if err != nil {
		return nil, err
	}
	if search == "" {
		return items, nil
	}
	q := strings.ToLower(search)
	out := make([]*entity.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Description), q) ||
			strings.Contains(strings.ToLower(it.Category), q) {
			out = append(out, it)
		}
	}
	return out, nil
}

// Update reemplaza el ítem con el mismo ID.
func (r *ItemRepository) Update(item *entity.Item) error {
	return r.store.Update(func(tx *Tx) error {
		var items []*entity.Item
		if err := tx.Get(KeyItems, &items); err != nil {
			return err
		}
		for i, it := range items {
			if it.ID == item.ID {
				items[i] = item
				return tx.Set(KeyItems, items)
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina por ID.
func (r *ItemRepository) Delete(id string) error {
	n, err := r.DeleteBatch([]string{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteBatch elimina un lote de IDs y devuelve cuántos existían.
func (r *ItemRepository) DeleteBatch(ids []string) (int, error) {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	removed := 0
	err := r.store.Update(func(tx *Tx) error {
		var items []*entity.Item
		if err := tx.Get(KeyItems, &items); err != nil {
			return err
		}
		kept := items[:0]
		for _, it := range items {
			if drop[it.ID] {
				removed++
				continue
			}
			kept = append(kept, it)
		}
		if removed == 0 {
			return nil
		}
		return tx.Set(KeyItems, kept)
	})
	return removed, err
}

func (r *ItemRepository) all() ([]*entity.Item, error) {
	var items []*entity.Item
	if err := r.store.Get(KeyItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}
