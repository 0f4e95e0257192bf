package repository

import "github.com/jhoicas/Facturador-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para perfiles de empresa.
// GetActive resuelve la empresa activa (la marcada, o la primera si no hay marca).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List() ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id string) error
	GetActive() (*entity.Company, error)
	SetActive(id string) error
}
