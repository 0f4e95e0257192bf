package ports

import (
	"context"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
)

// SyncService puerto hacia el respaldo remoto. El colaborador es opaco:
// guarda y recupera el payload de respaldo completo por ID de usuario.
type SyncService interface {
	Save(ctx context.Context, userID string, payload *dto.BackupPayload) error
	Fetch(ctx context.Context, userID string) (*dto.BackupPayload, error)
}
