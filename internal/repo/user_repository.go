package repo

import (
	"context"

	"github.com/rogerio-castellano/inventario-api/internal/models"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (models.User, error)
	// CreateUser returns ErrDuplicatedValueUnique when the username is taken.
	CreateUser(ctx context.Context, u models.User) (models.User, error)
}
