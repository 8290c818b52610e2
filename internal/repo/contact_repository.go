package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/models"
)

type ContactRepository interface {
	Create(ctx context.Context, contact models.Contact) (models.Contact, error)
	List(ctx context.Context, filter ListFilter) ([]models.Contact, error)
	GetByID(ctx context.Context, id string) (models.Contact, error)
	Update(ctx context.Context, id string, patch models.ContactPatch, now time.Time) (models.Contact, error)
	Delete(ctx context.Context, id string) error
}
