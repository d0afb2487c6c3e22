package mesa

import (
	"time"

	"github.com/BruksfildServices01/mesa-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Deactivate aplica a transição ativa → inativa.
// Retorna false quando a mesa já estava inativa: nada muda,
// nem mesmo o updated_at.
func Deactivate(m *models.Mesa, now time.Time) bool {
	if Status(m.Status) == StatusInativa {
		return false
	}

	m.Status = int(StatusInativa)
	m.UpdatedAt = now
	return true
}

// ApplyUpdate aplica alterações parciais sobre uma mesa ativa.
// Ordem dos guards: estado primeiro, campos depois — uma mesa
// desativada é rejeitada mesmo com payload válido.
func ApplyUpdate(m *models.Mesa, ch Changes, now time.Time) error {
	if err := CanUpdate(Status(m.Status)); err != nil {
		return err
	}

	if err := ValidateChanges(ch); err != nil {
		return err
	}

	if ch.Capacidade != nil {
		m.Capacidade = *ch.Capacidade
	}
	if ch.Descricao != nil {
		m.Descricao = *ch.Descricao
	}
	if ch.Local != nil {
		m.Local = *ch.Local
	}
	if ch.Status != nil {
		m.Status = *ch.Status
	}

	m.UpdatedAt = now
	return nil
}
