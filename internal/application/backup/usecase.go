// Package backup implementa el contrato de respaldo del almacén: exportar la
// unión de las cinco llaves como un objeto JSON e importar cualquier
// subconjunto de ellas, sobrescribiendo (no mezclando) cada llave presente.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/application/ports"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/infrastructure/localstore"
)

// Store puerto mínimo hacia el almacén por llaves.
type Store interface {
	Raw(key string) (json.RawMessage, bool)
	SetRaw(key string, raw json.RawMessage)
}

// UseCase exportación e importación de respaldos, y la sincronización remota
// opcional construida encima del mismo payload.
type UseCase struct {
	store Store
	sync  ports.SyncService // nil = sincronización deshabilitada
}

// NewUseCase construye el caso de uso. sync puede ser nil.
func NewUseCase(store Store, sync ports.SyncService) *UseCase {
	return &UseCase{store: store, sync: sync}
}

// Export devuelve el respaldo completo: las cinco llaves con sus arreglos crudos.
func (uc *UseCase) Export() (*dto.BackupPayload, error) {
	p := &dto.BackupPayload{}
	for _, key := range localstore.BackupKeys {
		raw, ok := uc.store.Raw(key)
		if !ok {
			raw = json.RawMessage("[]")
		}
		p.SetKey(key, raw)
	}
	return p, nil
}

// Import aplica un respaldo total o parcial. Se acepta si trae al menos una
// llave reconocida con valor de tipo arreglo; cada llave presente sobrescribe
// su colección completa y las ausentes no se tocan. Exige confirmación.
func (uc *UseCase) Import(payload map[string]json.RawMessage, confirm bool) (*dto.ImportResult, error) {
	if !confirm {
		return nil, domain.ErrConfirmationRequired
	}

	recognized := make([]string, 0, len(localstore.BackupKeys))
	for _, key := range localstore.BackupKeys {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		if !isJSONArray(raw) {
			return nil, fmt.Errorf("la llave %q no contiene un arreglo: %w", key, domain.ErrInvalidInput)
		}
		recognized = append(recognized, key)
	}
	if len(recognized) == 0 {
		return nil, fmt.Errorf("el respaldo no contiene ninguna llave reconocida: %w", domain.ErrInvalidInput)
	}

	for _, key := range recognized {
		uc.store.SetRaw(key, payload[key])
	}
	return &dto.ImportResult{ImportedKeys: recognized}, nil
}

// Push exporta el estado actual y lo guarda en el colaborador remoto.
func (uc *UseCase) Push(ctx context.Context, userID string) error {
	if uc.sync == nil {
		return domain.ErrSyncDisabled
	}
	if userID == "" {
		return fmt.Errorf("user_id es requerido: %w", domain.ErrInvalidInput)
	}
	payload, err := uc.Export()
	if err != nil {
		return err
	}
	return uc.sync.Save(ctx, userID, payload)
}

// Pull recupera el respaldo remoto del usuario. No lo aplica: el caller decide
// importarlo (con su confirmación) vía Import.
func (uc *UseCase) Pull(ctx context.Context, userID string) (*dto.BackupPayload, error) {
	if uc.sync == nil {
		return nil, domain.ErrSyncDisabled
	}
	if userID == "" {
		return nil, fmt.Errorf("user_id es requerido: %w", domain.ErrInvalidInput)
	}
	return uc.sync.Fetch(ctx, userID)
}

// isJSONArray valida que el valor sea un arreglo JSON (primer byte útil '[').
func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
