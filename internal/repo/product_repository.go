package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	List(ctx context.Context, filter ListFilter) ([]models.Product, error)
	All(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
	Update(ctx context.Context, id string, patch models.ProductPatch, now time.Time) (models.Product, error)
	Delete(ctx context.Context, id string) error
}
