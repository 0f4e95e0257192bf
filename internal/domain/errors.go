package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrDocumentFrozen       = errors.New("el documento ya no admite ediciones")
	ErrConfirmationRequired = errors.New("la operación requiere confirmación explícita")
	ErrSyncDisabled         = errors.New("sincronización en la nube no configurada")
)
