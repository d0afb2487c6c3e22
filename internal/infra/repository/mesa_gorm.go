package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/mesa-api/internal/domain/mesa"
	"github.com/BruksfildServices01/mesa-api/internal/httperr"
	"github.com/BruksfildServices01/mesa-api/internal/logger"
	"github.com/BruksfildServices01/mesa-api/internal/models"
)

type MesaGormRepository struct {
	db *gorm.DB
}

func NewMesaGormRepository(db *gorm.DB) *MesaGormRepository {
	return &MesaGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *MesaGormRepository) CreateMesa(
	ctx context.Context,
	m *models.Mesa,
) error {

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		logStorageError("insert", err)
		return err
	}
	return nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *MesaGormRepository) GetMesaByID(
	ctx context.Context,
	id uint,
) (*models.Mesa, error) {

	var m models.Mesa
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MesaGormRepository) ListMesas(
	ctx context.Context,
) ([]models.Mesa, error) {

	var mesas []models.Mesa
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&mesas).Error; err != nil {
		logStorageError("list", err)
		return nil, err
	}
	return mesas, nil
}

func (r *MesaGormRepository) ListMesasByLocal(
	ctx context.Context,
	local string,
	somenteAtivas bool,
) ([]models.Mesa, error) {

	// match exato e case-sensitive
	q := r.db.WithContext(ctx).Where("local = ?", local)

	if somenteAtivas {
		q = q.Where("status = ?", int(domain.StatusAtiva))
	}

	var mesas []models.Mesa
	if err := q.
		Order("id ASC").
		Find(&mesas).Error; err != nil {
		logStorageError("list_by_local", err)
		return nil, err
	}
	return mesas, nil
}

// --------------------------------------------------
// Write (compare-and-swap)
// --------------------------------------------------

func (r *MesaGormRepository) SaveMesa(
	ctx context.Context,
	m *models.Mesa,
	expected domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Mesa{}).
		Where("id = ? AND status = ?", m.ID, int(expected)).
		Updates(map[string]any{
			"capacidade": m.Capacidade,
			"descricao":  m.Descricao,
			"local":      m.Local,
			"status":     m.Status,
			"updated_at": m.UpdatedAt,
		})

	if res.Error != nil {
		logStorageError("save", res.Error)
		return res.Error
	}

	if res.RowsAffected == 0 {
		// o status mudou entre o read-check e o write
		// (desativação concorrente)
		return httperr.ErrBusiness("mesa_desativada")
	}

	return nil
}

func logStorageError(op string, err error) {
	if code := httperr.PgCode(err); code != "" {
		logger.Error.Printf("mesa %s failed (sqlstate=%s): %v", op, code, err)
		return
	}
	logger.Error.Printf("mesa %s failed: %v", op, err)
}
