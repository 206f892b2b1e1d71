package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Asforaa/eBook-Store-API/internal/domain"
)

// translateUniqueViolation traduce una violación de constraint único (23505)
// al error de dominio del campo violado, mirando el nombre del constraint.
// Es el respaldo del pre-chequeo de unicidad del signup: si la carrera
// chequeo-escritura se pierde, el INSERT cae aquí y el caller igual recibe
// un Conflict preciso. Errores que no son 23505 se devuelven sin tocar.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	detail := pgErr.ConstraintName + " " + pgErr.Detail
	switch {
	case strings.Contains(detail, "username"):
		return domain.ErrUsernameTaken
	case strings.Contains(detail, "email"):
		return domain.ErrEmailTaken
	}
	return nil
}
