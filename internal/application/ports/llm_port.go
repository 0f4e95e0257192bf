package ports

import "context"

// LLMService puerto hacia el generador de texto externo. El adaptador vive en
// internal/infrastructure/ai; el use case impone el timeout de contexto.
type LLMService interface {
	// GenerateItemDescription devuelve una descripción comercial breve para
	// una línea de documento a partir del nombre del ítem y su categoría.
	GenerateItemDescription(ctx context.Context, name, category string) (string, error)
}
