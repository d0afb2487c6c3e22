package mesa

import (
	"context"

	domain "github.com/BruksfildServices01/mesa-api/internal/domain/mesa"
	"github.com/BruksfildServices01/mesa-api/internal/dto"
	"github.com/BruksfildServices01/mesa-api/internal/models"
)

type ListMesas struct {
	repo domain.Repository
}

func NewListMesas(
	repo domain.Repository,
) *ListMesas {
	return &ListMesas{
		repo: repo,
	}
}

// Execute lista todas as mesas; lista vazia não é erro.
func (uc *ListMesas) Execute(
	ctx context.Context,
) ([]dto.MesaListDTO, error) {

	mesas, err := uc.repo.ListMesas(ctx)
	if err != nil {
		return nil, err
	}

	return toMesaListDTO(mesas), nil
}

func toMesaListDTO(mesas []models.Mesa) []dto.MesaListDTO {
	out := make([]dto.MesaListDTO, 0, len(mesas))
	for _, m := range mesas {
		out = append(out, dto.MesaListDTO{
			ID:         m.ID,
			Capacidade: m.Capacidade,
			Descricao:  m.Descricao,
			Local:      m.Local,
			Status:     m.Status,
			CreatedAt:  m.CreatedAt,
			UpdatedAt:  m.UpdatedAt,
		})
	}
	return out
}
