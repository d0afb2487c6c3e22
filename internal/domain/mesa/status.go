package mesa

import "github.com/BruksfildServices01/mesa-api/internal/httperr"

// ===============================
// Mesa Status
// ===============================

type Status int

const (
	StatusAtiva   Status = 1
	StatusInativa Status = -1
)

func (s Status) IsValid() bool {
	return s == StatusAtiva || s == StatusInativa
}

// ===============================
// Validations
// ===============================

// CanUpdate define se uma mesa pode receber alterações de campos.
// Inativa é estado terminal: nenhuma transição sai dele.
func CanUpdate(current Status) error {
	if current != StatusAtiva {
		return httperr.ErrBusiness("mesa_desativada")
	}
	return nil
}

// InitialStatus é a regra de construção: toda mesa nasce ativa,
// independente do que o payload de criação trouxer.
func InitialStatus() Status {
	return StatusAtiva
}
