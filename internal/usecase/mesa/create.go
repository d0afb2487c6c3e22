package mesa

import (
	"context"

	"github.com/BruksfildServices01/mesa-api/internal/audit"
	domain "github.com/BruksfildServices01/mesa-api/internal/domain/mesa"
	"github.com/BruksfildServices01/mesa-api/internal/infra/cache"
	"github.com/BruksfildServices01/mesa-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateMesaInput struct {
	Capacidade int
	Descricao  string
	Local      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateMesa struct {
	repo  domain.Repository
	cache cache.MesaCache
	audit *audit.Dispatcher
}

func NewCreateMesa(
	repo domain.Repository,
	cache cache.MesaCache,
	audit *audit.Dispatcher,
) *CreateMesa {
	return &CreateMesa{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateMesa) Execute(
	ctx context.Context,
	in CreateMesaInput,
) (*models.Mesa, error) {

	// validação acontece antes de qualquer acesso ao storage
	if err := domain.ValidateCreate(in.Capacidade, in.Descricao, in.Local); err != nil {
		return nil, err
	}

	m := &models.Mesa{
		Capacidade: in.Capacidade,
		Descricao:  in.Descricao,
		Local:      in.Local,
		// status do payload nunca é aceito na criação
		Status: int(domain.InitialStatus()),
	}

	if err := uc.repo.CreateMesa(ctx, m); err != nil {
		return nil, err
	}

	// a nova mesa muda as listagens por local já cacheadas
	uc.cache.Invalidate(ctx, m.ID)

	uc.audit.Dispatch(audit.Event{
		Action:   "mesa_created",
		Entity:   "mesa",
		EntityID: &m.ID,
	})

	return m, nil
}
