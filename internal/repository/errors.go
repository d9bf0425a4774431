package repository

import (
	"errors"
	"fmt"

	apperrors "classroom-market/pkg/app_errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// translatePgError maps constraint violations raised by Postgres onto the
// application error set. Other errors are returned unchanged.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, pgErr.Detail)
	}
	return err
}
