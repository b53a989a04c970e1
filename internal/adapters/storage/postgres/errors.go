package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// constraintError devuelve el código SQLSTATE y el nombre de la constraint
// si err viene de Postgres.
func constraintError(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", "", false
	}
	return pgErr.Code, pgErr.ConstraintName, true
}

// mapConstraint traduce violaciones conocidas a errores de dominio.
// Lo que no está en byName se devuelve tal cual.
func mapConstraint(err error, byName map[string]error) error {
	if err == nil {
		return nil
	}
	code, name, ok := constraintError(err)
	if !ok {
		return err
	}
	if code != codeUniqueViolation && code != codeForeignKeyViolation {
		return err
	}
	if mapped, ok := byName[name]; ok {
		return mapped
	}
	return err
}

func limitArg(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}

func offsetArg(skip int) int {
	if skip < 0 {
		return 0
	}
	return skip
}

// validID evita mandar a Postgres ids que no son uuid (fallaría con 22P02).
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// likePrefix escapa los comodines de LIKE.
func likePrefix(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
