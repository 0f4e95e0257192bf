package localstore

import (
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// CompanyRepository implementa repository.CompanyRepository sobre el Store.
// La marca de empresa activa vive bajo su propia llave, fuera del contrato de
// respaldo, de modo que un import no cambia cuál empresa está activa.
type CompanyRepository struct {
	store *Store
}

// NewCompanyRepository construye el repositorio.
func NewCompanyRepository(store *Store) *CompanyRepository {
	return &CompanyRepository{store: store}
}

// Create agrega un perfil de empresa.
func (r *CompanyRepository) Create(company *entity.Company) error {
	return r.store.Update(func(tx *Tx) error {
		var companies []*entity.Company
		if err := tx.Get(KeyCompanies, &companies); err != nil {
			return err
		}
		companies = append(companies, company)
		return tx.Set(KeyCompanies, companies)
	})
}

// GetByID busca por identificador.
func (r *CompanyRepository) GetByID(id string) (*entity.Company, error) {
	companies, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, c := range companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// List devuelve todos los perfiles.
func (r *CompanyRepository) List() ([]*entity.Company, error) {
	var companies []*entity.Company
	if err := r.store.Get(KeyCompanies, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// Update reemplaza el perfil con el mismo ID.
func (r *CompanyRepository) Update(company *entity.Company) error {
	return r.store.Update(func(tx *Tx) error {
		var companies []*entity.Company
		if err := tx.Get(KeyCompanies, &companies); err != nil {
			return err
		}
		for i, c := range companies {
			if c.ID == company.ID {
				companies[i] = company
				return tx.Set(KeyCompanies, companies)
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina por ID; si era la activa, la marca queda apuntando a nada
// y GetActive cae a la primera empresa restante.
func (r *CompanyRepository) Delete(id string) error {
	return r.store.Update(func(tx *Tx) error {
		var companies []*entity.Company
		if err := tx.Get(KeyCompanies, &companies); err != nil {
			return err
		}
		for i, c := range companies {
			if c.ID == id {
				companies = append(companies[:i], companies[i+1:]...)
				return tx.Set(KeyCompanies, companies)
			}
		}
		return domain.ErrNotFound
	})
}

// GetActive devuelve la empresa marcada como activa, o la primera si la marca
// no existe o quedó colgando. Sin empresas devuelve nil.
func (r *CompanyRepository) GetActive() (*entity.Company, error) {
	var activeID string
	if err := r.store.Get(KeyActiveCompany, &activeID); err != nil {
		return nil, err
	}
	companies, err := r.List()
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, nil
	}
	for _, c := range companies {
		if c.ID == activeID {
			return c, nil
		}
	}
	return companies[0], nil
}

// SetActive marca la empresa activa; el ID debe existir.
func (r *CompanyRepository) SetActive(id string) error {
	return r.store.Update(func(tx *Tx) error {
		var companies []*entity.Company
		if err := tx.Get(KeyCompanies, &companies); err != nil {
			return err
		}
		for _, c := range companies {
			if c.ID == id {
				return tx.Set(KeyActiveCompany, id)
			}
		}
		return domain.ErrNotFound
	})
}
