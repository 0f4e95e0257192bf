package localstore

import (
	"strings"

	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// ClientRepository implementa repository.ClientRepository sobre el Store.
// Borrar un cliente no toca los documentos que copiaron sus Details por valor.
type ClientRepository struct {
	store *Store
}

// NewClientRepository construye el repositorio.
func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

// Create agrega un cliente al registro.
func (r *ClientRepository) Create(client *entity.Client) error {
	return r.store.Update(func(tx *Tx) error {
		var clients []*entity.Client
		if err := tx.Get(KeyClients, &clients); err != nil {
			return err
		}
		clients = append(clients, client)
		return tx.Set(KeyClients, clients)
	})
}

// GetByID busca por identificador.
func (r *ClientRepository) GetByID(id string) (*entity.Client, error) {
	clients, err := r.all()
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// GetByIdentity busca por la llave de duplicado (nombre+email normalizados).
func (r *ClientRepository) GetByIdentity(name, email string) (*entity.Client, error) {
	key := entity.ClientIdentityKey(name, email)
	clients, err := r.all()
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		if c.IdentityKey() == key {
			return c, nil
		}
	}
	return nil, nil
}

// List devuelve clientes, opcionalmente filtrados por subcadena
// case-insensitive sobre nombre, email o teléfono.
func (r *ClientRepository) List(search string) ([]*entity.Client, error) {
	clients, err := r.all()
	if err != nil {
		return nil, err
	}
	if search == "" {
		return clients, nil
	}
	q := strings.ToLower(search)
	out := make([]*entity.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Details.Name), q) ||
			strings.Contains(strings.ToLower(c.Details.Email), q) ||
			strings.Contains(strings.ToLower(c.Details.Phone), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Update reemplaza el cliente con el mismo ID.
func (r *ClientRepository) Update(client *entity.Client) error {
	return r.store.Update(func(tx *Tx) error {
		var clients []*entity.Client
		if err := tx.Get(KeyClients, &clients); err != nil {
			return err
		}
		for i, c := range clients {
			if c.ID == client.ID {
				clients[i] = client
				return tx.Set(KeyClients, clients)
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina por ID.
func (r *ClientRepository) Delete(id string) error {
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
func (r *ClientRepository) DeleteBatch(ids []string) (int, error) {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	removed := 0
	err := r.store.Update(func(tx *Tx) error {
		var clients []*entity.Client
		if err := tx.Get(KeyClients, &clients); err != nil {
			return err
		}
		kept := clients[:0]
		for _, c := range clients {
			if drop[c.ID] {
				removed++
				continue
			}
			kept = append(kept, c)
		}
		if removed == 0 {
			return nil
		}
		return tx.Set(KeyClients, kept)
	})
	return removed, err
}

func (r *ClientRepository) all() ([]*entity.Client, error) {
	var clients []*entity.Client
	if err := r.store.Get(KeyClients, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}
