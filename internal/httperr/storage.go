package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PgCode extrai o código SQLSTATE de um erro vindo do driver,
// quando houver. Retorna "" para erros que não são do Postgres.
func PgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
