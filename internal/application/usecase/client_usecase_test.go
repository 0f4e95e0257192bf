package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/application/usecase"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/infrastructure/localstore"
	"github.com/jhoicas/Facturador-api/pkg/logger"
)

func newClientUC(t *testing.T) *usecase.ClientUseCase {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "data.json"), logger.Nop())
	require.NoError(t, err)
	return usecase.NewClientUseCase(localstore.NewClientRepository(store))
}

func cliente(name, email string) dto.SaveClientRequest {
	return dto.SaveClientRequest{Details: entity.Details{Name: name, Email: email}}
}

func TestClientCreate_YGet(t *testing.T) {
	uc := newClientUC(t)

	creado, err := uc.Create(cliente("Acme SAS", "ventas@acme.co"))
	require.NoError(t, err)
	assert.NotEmpty(t, creado.ID)

	got, err := uc.GetByID(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme SAS", got.Details.Name)
}

// Duplicado = mismo par (nombre, email) ignorando mayúsculas y espacios.
func TestClientCreate_RechazaIdentidadDuplicada(t *testing.T) {
	uc := newClientUC(t)
	_, err := uc.Create(cliente("Acme SAS", "ventas@acme.co"))
	require.NoError(t, err)

	_, err = uc.Create(cliente("  acme sas ", "VENTAS@ACME.CO"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Mismo nombre con otro email sí es otro cliente.
	_, err = uc.Create(cliente("Acme SAS", "otro@acme.co"))
	assert.NoError(t, err)
}

func TestClientCreate_RechazaNombreVacio(t *testing.T) {
	uc := newClientUC(t)
	_, err := uc.Create(cliente("   ", "x@y.co"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La búsqueda filtra por subcadena sobre nombre, email o teléfono.
func TestClientList_Busqueda(t *testing.T) {
	uc := newClientUC(t)
	_, err := uc.Create(cliente("Constructora del Norte", "compras@norte.co"))
	require.NoError(t, err)
	_, err = uc.Create(dto.SaveClientRequest{Details: entity.Details{Name: "Ferretería Sur", Phone: "301-555"}})
	require.NoError(t, err)

	list, err := uc.List("norte")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Constructora del Norte", list[0].Details.Name)

	list, err = uc.List("301")
	require.NoError(t, err)
	assert.Len(t, list, 1, "también busca por teléfono")

	list, err = uc.List("")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestClientDeleteBatch(t *testing.T) {
	uc := newClientUC(t)
	a, err := uc.Create(cliente("Uno", "uno@t.co"))
	require.NoError(t, err)
	b, err := uc.Create(cliente("Dos", "dos@t.co"))
	require.NoError(t, err)

	// Sin confirmación no pasa nada.
	_, err = uc.DeleteBatch(dto.DeleteBatchRequest{IDs: []string{a.ID}, Confirm: false})
	require.ErrorIs(t, err, domain.ErrConfirmationRequired)

	// IDs inexistentes no cuentan en el resultado.
	res, err := uc.DeleteBatch(dto.DeleteBatchRequest{IDs: []string{a.ID, b.ID, "fantasma"}, Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Deleted)

	list, err := uc.List("")
	require.NoError(t, err)
	assert.Empty(t, list)
}
