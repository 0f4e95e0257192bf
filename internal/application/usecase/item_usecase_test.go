package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/application/usecase"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/infrastructure/localstore"
	"github.com/jhoicas/Facturador-api/pkg/logger"
)

func newItemUC(t *testing.T) *usecase.ItemUseCase {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "data.json"), logger.Nop())
	require.NoError(t, err)
	return usecase.NewItemUseCase(localstore.NewItemRepository(store))
}

func TestItem_CRUD(t *testing.T) {
	uc := newItemUC(t)

	creado, err := uc.Create(dto.SaveItemRequest{
		Description: "Hora de asesoría",
		CostPrice:   decimal.NewFromInt(20),
		Price:       decimal.NewFromInt(50),
		Category:    "Servicios",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, creado.ID)

	actualizado, err := uc.Update(creado.ID, dto.SaveItemRequest{
		Description: "Hora de asesoría técnica",
		Price:       decimal.NewFromInt(60),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hora de asesoría técnica", actualizado.Description)
	assert.True(t, actualizado.Price.Equal(decimal.NewFromInt(60)))

	require.NoError(t, uc.Delete(creado.ID, true))
	_, err = uc.GetByID(creado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItem_RechazaDescripcionVacia(t *testing.T) {
	uc := newItemUC(t)
	_, err := uc.Create(dto.SaveItemRequest{Description: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItem_BusquedaPorDescripcionYCategoria(t *testing.T) {
	uc := newItemUC(t)
	_, err := uc.Create(dto.SaveItemRequest{Description: "Visita en sitio", Category: "Campo", Price: decimal.NewFromInt(25)})
	require.NoError(t, err)
	_, err = uc.Create(dto.SaveItemRequest{Description: "Informe técnico", Category: "Oficina", Price: decimal.NewFromInt(40)})
	require.NoError(t, err)

	list, err := uc.List("visita")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = uc.List("oficina")
	require.NoError(t, err)
	assert.Len(t, list, 1, "también busca por categoría")
}
