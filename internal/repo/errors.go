package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrContactNotFound is returned when a contact is not found in the repository.
	ErrContactNotFound       = errors.New("contact not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrConfigurationNotFound = errors.New("configuration not found")
	ErrDuplicatedValueUnique = errors.New("unique constraint violation")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
