package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que los repositorios traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation ||
		strings.Contains(err.Error(), codeUniqueViolation)
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea
// (inserciones que referencian una empresa inexistente).
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == codeForeignKeyViolation
}
