package repository

import "github.com/jhoicas/Facturador-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para el registro de clientes.
// List con search filtra por subcadena case-insensitive sobre nombre/email/teléfono.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	// GetByIdentity busca por la llave de duplicado (nombre+email normalizados).
	GetByIdentity(name, email string) (*entity.Client, error)
	List(search string) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
	DeleteBatch(ids []string) (int, error)
}
