package localstore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturador-api/internal/infrastructure/localstore"
	"github.com/jhoicas/Facturador-api/pkg/logger"
)

func abrir(t *testing.T, path string) *localstore.Store {
	t.Helper()
	s, err := localstore.Open(path, logger.Nop())
	require.NoError(t, err)
	return s
}

// Primer arranque: sin archivo, las cinco colecciones quedan como arreglos vacíos.
func TestOpen_PrimerArranque(t *testing.T) {
	s := abrir(t, filepath.Join(t.TempDir(), "data.json"))

	for _, key := range localstore.BackupKeys {
		raw, ok := s.Raw(key)
		require.True(t, ok, "la llave %q debe existir", key)
		assert.JSONEq(t, "[]", string(raw))
	}
}

// Lo escrito sobrevive a cerrar y reabrir el archivo.
func TestStore_PersisteEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	s := abrir(t, path)
	require.NoError(t, s.Set(localstore.KeyClients, []map[string]string{{"id": "1", "name": "Acme"}}))
	require.NoError(t, s.Set(localstore.KeyActiveCompany, "co-7"))

	s2 := abrir(t, path)
	var clients []map[string]string
	require.NoError(t, s2.Get(localstore.KeyClients, &clients))
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme", clients[0]["name"])

	var active string
	require.NoError(t, s2.Get(localstore.KeyActiveCompany, &active))
	assert.Equal(t, "co-7", active)
}

// Un archivo con llaves de colección ausentes se normaliza al abrir.
func TestOpen_NormalizaLlavesAusentes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	contenido := `{"schema_version":1,"data":{"clients":[{"id":"1"}]}}`
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))

	s := abrir(t, path)

	raw, ok := s.Raw(localstore.KeyClients)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1"}]`, string(raw))

	raw, ok = s.Raw(localstore.KeyInvoices)
	require.True(t, ok, "savedInvoices debe normalizarse a []")
	assert.JSONEq(t, "[]", string(raw))
}

// Versiones de esquema futuras se rechazan al abrir.
func TestOpen_RechazaSchemaFuturo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version":2,"data":{}}`), 0o644))

	_, err := localstore.Open(path, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema_version")
}

// Archivo corrupto: error al abrir, nunca un estado a medias.
func TestOpen_RechazaArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := localstore.Open(path, logger.Nop())
	assert.Error(t, err)
}

// Update es lectura-modificación-escritura bajo el mismo lock.
func TestStore_Update(t *testing.T) {
	s := abrir(t, filepath.Join(t.TempDir(), "data.json"))

	err := s.Update(func(tx *localstore.Tx) error {
		var items []json.RawMessage
		if err := tx.Get(localstore.KeyItems, &items); err != nil {
			return err
		}
		items = append(items, json.RawMessage(`{"id":"a"}`))
		return tx.Set(localstore.KeyItems, items)
	})
	require.NoError(t, err)

	var items []json.RawMessage
	require.NoError(t, s.Get(localstore.KeyItems, &items))
	assert.Len(t, items, 1)
}

// View no admite escrituras.
func TestStore_ViewEsSoloLectura(t *testing.T) {
	s := abrir(t, filepath.Join(t.TempDir(), "data.json"))

	err := s.View(func(tx *localstore.Tx) error {
		return tx.Set(localstore.KeyItems, []string{})
	})
	assert.Error(t, err)
}

// El volcado es atómico: no queda archivo temporal tras escribir.
func TestStore_NoDejaTemporales(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	s := abrir(t, path)
	require.NoError(t, s.Set(localstore.KeyItems, []string{}))

	_, err := os.Stat(path)
	require.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "el temporal debe desaparecer tras el rename")
}
