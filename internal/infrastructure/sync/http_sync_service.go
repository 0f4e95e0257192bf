// Package sync implementa el colaborador opaco de respaldo remoto: guardar y
// recuperar el payload de respaldo completo por ID de usuario contra un
// servicio HTTP configurable. El núcleo no conoce el protocolo más allá de
// este contrato guardar/recuperar.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/application/ports"
)

// Verificar en tiempo de compilación que HTTPSyncService implementa SyncService.
var _ ports.SyncService = (*HTTPSyncService)(nil)

// HTTPSyncService adaptador HTTP: PUT/GET {base}/backups/{userID}.
type HTTPSyncService struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSyncService construye el adaptador.
func NewHTTPSyncService(baseURL string) *HTTPSyncService {
	return &HTTPSyncService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Save sube el respaldo del usuario.
func (s *HTTPSyncService) Save(ctx context.Context, userID string, payload *dto.BackupPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sync: serializar respaldo: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.backupURL(userID), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sync: crear HTTP request: %w", err)
	}
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sync: subir respaldo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sync: el servidor respondió HTTP %d", resp.StatusCode)
	}
	return nil
}

// Fetch descarga el respaldo del usuario.
func (s *HTTPSyncService) Fetch(ctx context.Context, userID string) (*dto.BackupPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.backupURL(userID), nil)
	if err != nil {
		return nil, fmt.Errorf("sync: crear HTTP request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sync: descargar respaldo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sync: el servidor respondió HTTP %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("sync: leer respuesta: %w", err)
	}
	var payload dto.BackupPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("sync: respaldo remoto inválido: %w", err)
	}
	return &payload, nil
}

func (s *HTTPSyncService) backupURL(userID string) string {
	return s.baseURL + "/backups/" + url.PathEscape(userID)
}
