// Package localstore implementa el adaptador de persistencia del producto:
// un almacén durable por llaves (companies, clients, items, savedInvoices,
// savedQuotations) donde cada llave guarda un arreglo JSON completo. Todo vive
// en un único archivo; cada mutación reemplaza el valor entero de su llave y
// se vuelca de inmediato (no hay escrituras por lotes ni transacciones).
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/Facturador-api/pkg/logger"
)

// Llaves reconocidas del almacén. Las cinco primeras conforman el contrato de
// respaldo (export/import); activeCompanyId es estado local fuera del respaldo.
const (
	KeyCompanies     = "companies"
	KeyClients       = "clients"
	KeyItems         = "items"
	KeyInvoices      = "savedInvoices"
	KeyQuotations    = "savedQuotations"
	KeyActiveCompany = "activeCompanyId"
)

// BackupKeys las cinco llaves del contrato de respaldo, en orden estable.
var BackupKeys = []string{KeyCompanies, KeyClients, KeyItems, KeyInvoices, KeyQuotations}

// SchemaVersion versión del esquema del archivo. Versiones mayores a la
// soportada se rechazan al abrir en lugar de mezclarse silenciosamente.
const SchemaVersion = 1

// storeFile forma en disco: versión + mapa de llaves a JSON crudo.
type storeFile struct {
	SchemaVersion int                        `json:"schema_version"`
	Data          map[string]json.RawMessage `json:"data"`
}

// Store almacén en memoria con volcado síncrono best-effort a disco.
// La memoria es la fuente de verdad: si el volcado falla se registra el error
// y el estado en memoria se conserva (memoria y disco pueden divergir hasta la
// próxima escritura exitosa).
type Store struct {
	mu   sync.RWMutex
	path string
	log  *logger.Logger
	data map[string]json.RawMessage
}

// Open carga (o inicializa) el archivo de datos y normaliza su forma:
// llaves de colección ausentes quedan como arreglos vacíos.
func Open(path string, log *logger.Logger) (*Store, error) {
	s := &Store{
		path: path,
		log:  log,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// primer arranque: archivo nuevo con colecciones vacías
	case err != nil:
		return nil, fmt.Errorf("localstore: leer %s: %w", path, err)
	default:
		var f storeFile
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("localstore: archivo de datos corrupto: %w", err)
		}
		if f.SchemaVersion > SchemaVersion {
			return nil, fmt.Errorf("localstore: schema_version %d no soportado (máximo %d)", f.SchemaVersion, SchemaVersion)
		}
		for k, v := range f.Data {
			s.data[k] = v
		}
	}

	for _, k := range BackupKeys {
		if _, ok := s.data[k]; !ok {
			s.data[k] = json.RawMessage("[]")
		}
	}
	return s, nil
}

// Get deserializa el valor de una llave en out.
func (s *Store) Get(key string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getLocked(key, out)
}

// Set serializa v, lo asigna a la llave y vuelca a disco.
func (s *Store) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(key, v)
}

// Raw devuelve el JSON crudo de una llave (copia) y si la llave existe.
func (s *Store) Raw(key string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[key]
	if !ok {
		return nil, false
	}
	cp := make(json.RawMessage, len(raw))
	copy(cp, raw)
	return cp, true
}

// SetRaw asigna JSON crudo a una llave (usado por el import de respaldos) y vuelca.
func (s *Store) SetRaw(key string, raw json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	s.flushLocked()
}

// Update ejecuta una lectura-modificación-escritura atómica sobre el store.
// fn recibe getters/setters que operan bajo el mismo lock; los repositorios
// del paquete la usan para que dos peticiones no pierdan actualizaciones.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s})
}

// View ejecuta lecturas consistentes bajo el lock de lectura.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{s: s, readOnly: true})
}

// Tx acceso a las llaves dentro de Update/View. No es una transacción real
// (no hay rollback): solo garantiza exclusión mutua durante el callback.
type Tx struct {
	s        *Store
	readOnly bool
}

// Get deserializa el valor de una llave en out.
func (t *Tx) Get(key string, out any) error {
	return t.s.getLocked(key, out)
}

// Set serializa y asigna; en un Tx de solo lectura devuelve error.
func (t *Tx) Set(key string, v any) error {
	if t.readOnly {
		return fmt.Errorf("localstore: escritura en View")
	}
	return t.s.setLocked(key, v)
}

// ── internos (requieren lock tomado) ─────────────────────────────────────────

func (s *Store) getLocked(key string, out any) error {
	raw, ok := s.data[key]
	if !ok {
		raw = json.RawMessage("null")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("localstore: deserializar %q: %w", key, err)
	}
	return nil
}

func (s *Store) setLocked(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: serializar %q: %w", key, err)
	}
	s.data[key] = raw
	s.flushLocked()
	return nil
}

// flushLocked vuelca el estado completo a disco con escritura atómica
// (archivo temporal + rename). Un fallo se registra y no se propaga:
// la memoria sigue siendo la fuente de verdad para el resto de la sesión.
func (s *Store) flushLocked() {
	f := storeFile{SchemaVersion: SchemaVersion, Data: s.data}
	raw, err := json.Marshal(f)
	if err != nil {
		s.log.Error().Err(err).Msg("localstore: serializar archivo de datos")
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("localstore: crear directorio de datos")
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		s.log.Error().Err(err).Str("path", tmp).Msg("localstore: escribir archivo temporal")
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("localstore: reemplazar archivo de datos")
	}
}
