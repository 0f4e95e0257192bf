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

// CompanyUseCase CRUD de perfiles de empresa. La empresa activa siembra los
// documentos nuevos (logo, notas por defecto, impuesto, moneda, plantilla).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea un perfil de empresa. La primera empresa queda activa de facto.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Details.Name) == "" {
		return nil, fmt.Errorf("el nombre de la empresa es requerido: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	company := &entity.Company{
		ID:           entity.NewID(),
		Details:      in.Details,
		Logo:         in.Logo,
		BankQRCode:   in.BankQRCode,
		DefaultNotes: in.DefaultNotes,
		TaxRate:      in.TaxRate,
		Currency:     in.Currency,
		Template:     in.Template,
		AccentColor:  in.AccentColor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return uc.toResponse(company)
}

// GetByID obtiene un perfil por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(company)
}

// List lista todos los perfiles.
func (uc *CompanyUseCase) List() ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	active, err := uc.repo.GetActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		r := companyResponse(c)
		r.Active = active != nil && active.ID == c.ID
		out = append(out, r)
	}
	return out, nil
}

// Update aplica cambios parciales a un perfil (campos nil no se tocan).
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Details != nil {
		company.Details = *in.Details
	}
	if in.Logo != nil {
		company.Logo = *in.Logo
	}
	if in.BankQRCode != nil {
		company.BankQRCode = *in.BankQRCode
	}
	if in.DefaultNotes != nil {
		company.DefaultNotes = *in.DefaultNotes
	}
	if in.TaxRate != nil {
		company.TaxRate = *in.TaxRate
	}
	if in.Currency != nil {
		company.Currency = *in.Currency
	}
	if in.Template != nil {
		company.Template = *in.Template
	}
	if in.AccentColor != nil {
		company.AccentColor = *in.AccentColor
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return uc.toResponse(company)
}

// Delete elimina un perfil; exige confirmación explícita.
func (uc *CompanyUseCase) Delete(id string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	return uc.repo.Delete(id)
}

// GetActive devuelve la empresa activa (o ErrNotFound si no hay empresas).
func (uc *CompanyUseCase) GetActive() (*dto.CompanyResponse, error) {
	active, err := uc.repo.GetActive()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, domain.ErrNotFound
	}
	r := companyResponse(active)
	r.Active = true
	return &r, nil
}

// SetActive marca la empresa activa.
func (uc *CompanyUseCase) SetActive(in dto.SetActiveCompanyRequest) error {
	if in.CompanyID == "" {
		return fmt.Errorf("company_id es requerido: %w", domain.ErrInvalidInput)
	}
	return uc.repo.SetActive(in.CompanyID)
}

func (uc *CompanyUseCase) toResponse(c *entity.Company) (*dto.CompanyResponse, error) {
	active, err := uc.repo.GetActive()
	if err != nil {
		return nil, err
	}
	r := companyResponse(c)
	r.Active = active != nil && active.ID == c.ID
	return &r, nil
}

func companyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:           c.ID,
		Details:      c.Details,
		Logo:         c.Logo,
		BankQRCode:   c.BankQRCode,
		DefaultNotes: c.DefaultNotes,
		TaxRate:      c.TaxRate,
		Currency:     c.Currency,
		Template:     c.Template,
		AccentColor:  c.AccentColor,
		Active:       false,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
