package pg

import (
	"errors"
	"fmt"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// WrapUnique turns a unique constraint violation into domain.ErrAlreadyExists.
func WrapUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, domain.ErrAlreadyExists)
	}
	return err
}
