package mesa

import (
	"context"

	"github.com/BruksfildServices01/mesa-api/internal/models"
)

type Repository interface {
	// -------- Create --------
	CreateMesa(
		ctx context.Context,
		m *models.Mesa,
	) error

	// -------- Read --------
	GetMesaByID(
		ctx context.Context,
		id uint,
	) (*models.Mesa, error)

	ListMesas(
		ctx context.Context,
	) ([]models.Mesa, error)

	ListMesasByLocal(
		ctx context.Context,
		local string,
		somenteAtivas bool,
	) ([]models.Mesa, error)

	// -------- Write (conditional) --------
	// SaveMesa persiste a mesa somente se o status atual no banco
	// ainda for `expected` — fecha a janela entre o read-check e o
	// write nas operações de update/desativação.
	SaveMesa(
		ctx context.Context,
		m *models.Mesa,
		expected Status,
	) error
}
