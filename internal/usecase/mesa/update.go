package mesa

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/mesa-api/internal/audit"
	domain "github.com/BruksfildServices01/mesa-api/internal/domain/mesa"
	"github.com/BruksfildServices01/mesa-api/internal/httperr"
	"github.com/BruksfildServices01/mesa-api/internal/infra/cache"
	"github.com/BruksfildServices01/mesa-api/internal/models"
	"github.com/BruksfildServices01/mesa-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UpdateMesaInput struct {
	Capacidade *int
	Descricao  *string
	Local      *string
	Status     *int
}

// ======================================================
// USE CASE
// ======================================================

type UpdateMesa struct {
	repo  domain.Repository
	cache cache.MesaCache
	audit *audit.Dispatcher
}

func NewUpdateMesa(
	repo domain.Repository,
	cache cache.MesaCache,
	audit *audit.Dispatcher,
) *UpdateMesa {
	return &UpdateMesa{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *UpdateMesa) Execute(
	ctx context.Context,
	id uint,
	in UpdateMesaInput,
) (*models.Mesa, error) {

	m, err := uc.repo.GetMesaByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("mesa_not_found")
		}
		return nil, err
	}

	ch := domain.Changes{
		Capacidade: in.Capacidade,
		Descricao:  in.Descricao,
		Local:      in.Local,
		Status:     in.Status,
	}

	if err := domain.ApplyUpdate(m, ch, timezone.Now()); err != nil {
		return nil, err
	}

	// o write só passa se a mesa continuar ativa no banco
	if err := uc.repo.SaveMesa(ctx, m, domain.StatusAtiva); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, m.ID)

	uc.audit.Dispatch(audit.Event{
		Action:   "mesa_updated",
		Entity:   "mesa",
		EntityID: &m.ID,
	})

	return m, nil
}
