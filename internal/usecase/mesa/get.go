package mesa

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/mesa-api/internal/domain/mesa"
	"github.com/BruksfildServices01/mesa-api/internal/httperr"
	"github.com/BruksfildServices01/mesa-api/internal/infra/cache"
	"github.com/BruksfildServices01/mesa-api/internal/models"
)

type GetMesa struct {
	repo  domain.Repository
	cache cache.MesaCache
}

func NewGetMesa(
	repo domain.Repository,
	cache cache.MesaCache,
) *GetMesa {
	return &GetMesa{
		repo:  repo,
		cache: cache,
	}
}

// Execute retorna a mesa mesmo quando inativa — desativação
// tira a mesa das mutações, não das leituras.
func (uc *GetMesa) Execute(
	ctx context.Context,
	id uint,
) (*models.Mesa, error) {

	if m, ok := uc.cache.GetMesa(ctx, id); ok {
		return m, nil
	}

	m, err := uc.repo.GetMesaByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("mesa_not_found")
		}
		return nil, err
	}

	uc.cache.SetMesa(ctx, m)
	return m, nil
}
