package mesa

import (
	"context"

	domain "github.com/BruksfildServices01/mesa-api/internal/domain/mesa"
	"github.com/BruksfildServices01/mesa-api/internal/dto"
	"github.com/BruksfildServices01/mesa-api/internal/httperr"
	"github.com/BruksfildServices01/mesa-api/internal/infra/cache"
)

type FindMesasByLocal struct {
	repo  domain.Repository
	cache cache.MesaCache
}

func NewFindMesasByLocal(
	repo domain.Repository,
	cache cache.MesaCache,
) *FindMesasByLocal {
	return &FindMesasByLocal{
		repo:  repo,
		cache: cache,
	}
}

// Execute busca mesas por local (match exato). Ao contrário da
// listagem geral, resultado vazio aqui é erro de negócio.
func (uc *FindMesasByLocal) Execute(
	ctx context.Context,
	local string,
	somenteAtivas bool,
) ([]dto.MesaListDTO, error) {

	if mesas, ok := uc.cache.GetLocal(ctx, local, somenteAtivas); ok {
		return toMesaListDTO(mesas), nil
	}

	mesas, err := uc.repo.ListMesasByLocal(ctx, local, somenteAtivas)
	if err != nil {
		return nil, err
	}

	if len(mesas) == 0 {
		return nil, httperr.ErrBusiness("local_sem_mesas")
	}

	uc.cache.SetLocal(ctx, local, somenteAtivas, mesas)

	return toMesaListDTO(mesas), nil
}
