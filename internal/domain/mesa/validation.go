package mesa

import (
	"strings"

	"github.com/BruksfildServices01/mesa-api/internal/httperr"
)

// Changes carrega os campos opcionais de uma atualização parcial.
// Campo nil = não alterar.
type Changes struct {
	Capacidade *int
	Descricao  *string
	Local      *string
	Status     *int
}

// ValidateCreate valida o payload de criação: capacidade, descricao
// e local são obrigatórios; capacidade precisa ser positiva.
func ValidateCreate(capacidade int, descricao, local string) error {
	if capacidade == 0 ||
		strings.TrimSpace(descricao) == "" ||
		strings.TrimSpace(local) == "" {
		return httperr.ErrBusiness("missing_required_field")
	}

	if capacidade < 0 {
		return httperr.ErrBusiness("invalid_capacity")
	}

	return nil
}

// ValidateChanges valida apenas os campos presentes — mesmas regras
// da criação, mas nenhum campo é obrigatório.
func ValidateChanges(ch Changes) error {
	if ch.Capacidade != nil && *ch.Capacidade <= 0 {
		return httperr.ErrBusiness("invalid_capacity")
	}

	if ch.Descricao != nil && strings.TrimSpace(*ch.Descricao) == "" {
		return httperr.ErrBusiness("missing_required_field")
	}

	if ch.Local != nil && strings.TrimSpace(*ch.Local) == "" {
		return httperr.ErrBusiness("missing_required_field")
	}

	if ch.Status != nil && !Status(*ch.Status).IsValid() {
		return httperr.ErrBusiness("status_invalido")
	}

	return nil
}
