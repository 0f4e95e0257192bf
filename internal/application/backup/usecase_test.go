package backup_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturador-api/internal/application/backup"
	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/infrastructure/localstore"
	"github.com/jhoicas/Facturador-api/pkg/logger"
)

func newStore(t *testing.T) *localstore.Store {
	t.Helper()
	s, err := localstore.Open(filepath.Join(t.TempDir(), "data.json"), logger.Nop())
	require.NoError(t, err)
	return s
}

// Export siempre trae las cinco llaves, aunque estén vacías.
func TestExport_CincoLlaves(t *testing.T) {
	store := newStore(t)
	store.SetRaw(localstore.KeyClients, json.RawMessage(`[{"id":"1"}]`))
	uc := backup.NewUseCase(store, nil)

	p, err := uc.Export()
	require.NoError(t, err)

	m := p.AsMap()
	for _, key := range localstore.BackupKeys {
		assert.Contains(t, m, key)
	}
	assert.JSONEq(t, `[{"id":"1"}]`, string(m[localstore.KeyClients]))
	assert.JSONEq(t, `[]`, string(m[localstore.KeyInvoices]))
}

// Export seguido de Import en un almacén limpio reproduce el mismo estado.
func TestExportImport_RoundTrip(t *testing.T) {
	origen := newStore(t)
	origen.SetRaw(localstore.KeyClients, json.RawMessage(`[{"id":"1","name":"Acme"}]`))
	origen.SetRaw(localstore.KeyInvoices, json.RawMessage(`[{"id":"9"}]`))

	p, err := backup.NewUseCase(origen, nil).Export()
	require.NoError(t, err)

	destino := newStore(t)
	result, err := backup.NewUseCase(destino, nil).Import(p.AsMap(), true)
	require.NoError(t, err)
	assert.ElementsMatch(t, localstore.BackupKeys, result.ImportedKeys)

	raw, _ := destino.Raw(localstore.KeyClients)
	assert.JSONEq(t, `[{"id":"1","name":"Acme"}]`, string(raw))
	raw, _ = destino.Raw(localstore.KeyInvoices)
	assert.JSONEq(t, `[{"id":"9"}]`, string(raw))
}

// Import parcial: solo las llaves presentes sobrescriben; el resto queda intacto.
func TestImport_Parcial(t *testing.T) {
	store := newStore(t)
	store.SetRaw(localstore.KeyItems, json.RawMessage(`[{"id":"viejo"}]`))
	store.SetRaw(localstore.KeyClients, json.RawMessage(`[{"id":"c1"}]`))
	uc := backup.NewUseCase(store, nil)

	result, err := uc.Import(map[string]json.RawMessage{
		"items":      json.RawMessage(`[{"id":"nuevo"}]`),
		"desconocida": json.RawMessage(`[1,2]`), // se ignora
	}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"items"}, result.ImportedKeys)

	raw, _ := store.Raw(localstore.KeyItems)
	assert.JSONEq(t, `[{"id":"nuevo"}]`, string(raw), "la llave presente se sobrescribe completa")
	raw, _ = store.Raw(localstore.KeyClients)
	assert.JSONEq(t, `[{"id":"c1"}]`, string(raw), "la llave ausente no se toca")
}

// Payloads inválidos: sin llaves reconocidas, o con valores que no son arreglos.
func TestImport_PayloadInvalido(t *testing.T) {
	uc := backup.NewUseCase(newStore(t), nil)

	_, err := uc.Import(map[string]json.RawMessage{"otra": json.RawMessage(`[]`)}, true)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin llaves reconocidas")

	_, err = uc.Import(map[string]json.RawMessage{"clients": json.RawMessage(`{"id":"1"}`)}, true)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el valor debe ser un arreglo")

	_, err = uc.Import(nil, true)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Importar exige confirmación; un rechazo no muta el almacén.
func TestImport_ExigeConfirmacion(t *testing.T) {
	store := newStore(t)
	uc := backup.NewUseCase(store, nil)

	_, err := uc.Import(map[string]json.RawMessage{"clients": json.RawMessage(`[{"id":"x"}]`)}, false)
	require.ErrorIs(t, err, domain.ErrConfirmationRequired)

	raw, _ := store.Raw(localstore.KeyClients)
	assert.JSONEq(t, `[]`, string(raw))
}

// ── sincronización remota ─────────────────────────────────────────────────────

type fakeSync struct {
	saved map[string]*dto.BackupPayload
	fetch *dto.BackupPayload
}

func (f *fakeSync) Save(_ context.Context, userID string, p *dto.BackupPayload) error {
	if f.saved == nil {
		f.saved = map[string]*dto.BackupPayload{}
	}
	f.saved[userID] = p
	return nil
}

func (f *fakeSync) Fetch(_ context.Context, _ string) (*dto.BackupPayload, error) {
	return f.fetch, nil
}

// Sin servicio configurado, push y pull devuelven ErrSyncDisabled.
func TestSync_Deshabilitada(t *testing.T) {
	uc := backup.NewUseCase(newStore(t), nil)

	err := uc.Push(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrSyncDisabled)

	_, err = uc.Pull(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrSyncDisabled)
}

// Push exporta el estado actual hacia el colaborador remoto.
func TestPush_EnviaElExport(t *testing.T) {
	store := newStore(t)
	store.SetRaw(localstore.KeyItems, json.RawMessage(`[{"id":"i1"}]`))
	remoto := &fakeSync{}
	uc := backup.NewUseCase(store, remoto)

	require.NoError(t, uc.Push(context.Background(), "u1"))
	require.Contains(t, remoto.saved, "u1")
	assert.JSONEq(t, `[{"id":"i1"}]`, string(remoto.saved["u1"].Items))

	err := uc.Push(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "user_id vacío")
}

// Pull devuelve el respaldo remoto sin aplicarlo al almacén.
func TestPull_NoAplicaElRespaldo(t *testing.T) {
	store := newStore(t)
	remoto := &fakeSync{fetch: &dto.BackupPayload{Clients: json.RawMessage(`[{"id":"r1"}]`)}}
	uc := backup.NewUseCase(store, remoto)

	p, err := uc.Pull(context.Background(), "u1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"r1"}]`, string(p.Clients))

	raw, _ := store.Raw(localstore.KeyClients)
	assert.JSONEq(t, `[]`, string(raw), "pull no toca el almacén local")
}
