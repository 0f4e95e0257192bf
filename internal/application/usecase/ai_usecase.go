package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/application/ports"
	"github.com/jhoicas/Facturador-api/internal/domain"
)

// aiTimeout tope de espera del use case; el adaptador tiene además su propio
// timeout de red. Una llamada lenta solo afecta al control que la disparó.
const aiTimeout = 10 * time.Second

// AIUseCase generación de descripciones comerciales para líneas de documento.
type AIUseCase struct {
	llm ports.LLMService
}

// NewAIUseCase construye el caso de uso.
func NewAIUseCase(llm ports.LLMService) *AIUseCase {
	return &AIUseCase{llm: llm}
}

// DescribeItem pide al servicio externo una descripción breve para el ítem.
func (uc *AIUseCase) DescribeItem(ctx context.Context, in dto.DescribeItemRequest) (*dto.DescribeItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("el nombre del ítem es requerido: %w", domain.ErrInvalidInput)
	}
	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	text, err := uc.llm.GenerateItemDescription(ctx, in.Name, in.Category)
	if err != nil {
		return nil, err
	}
	return &dto.DescribeItemResponse{Description: strings.TrimSpace(text)}, nil
}
