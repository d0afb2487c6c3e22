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

type DeactivateMesa struct {
	repo  domain.Repository
	cache cache.MesaCache
	audit *audit.Dispatcher
}

func NewDeactivateMesa(
	repo domain.Repository,
	cache cache.MesaCache,
	audit *audit.Dispatcher,
) *DeactivateMesa {
	return &DeactivateMesa{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// Execute marca a mesa como inativa (delete lógico). Repetir a
// desativação é idempotente: devolve a mesa como está, sem write.
func (uc *DeactivateMesa) Execute(
	ctx context.Context,
	id uint,
) (*models.Mesa, error) {

	m, err := uc.repo.GetMesaByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("mesa_not_found")
		}
		return nil, err
	}

	if !domain.Deactivate(m, timezone.Now()) {
		return m, nil
	}

	if err := uc.repo.SaveMesa(ctx, m, domain.StatusAtiva); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, m.ID)

	uc.audit.Dispatch(audit.Event{
		Action:   "mesa_deactivated",
		Entity:   "mesa",
		EntityID: &m.ID,
	})

	return m, nil
}
