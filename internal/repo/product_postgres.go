package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/models"
)

const queryTimeout = 3 * time.Second

const productColumns = `id, codigo, descripcion, unidad_venta, stock_actual, precio_venta, fecha_ingreso, fecha_vencimiento, created_at, updated_at`

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Code, &p.Description, &p.SaleUnit, &p.Stock, &p.SalePrice,
		&p.IntakeDate, &p.ExpirationDate, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostgresProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	query := `INSERT INTO productos (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Code, p.Description, p.SaleUnit, p.Stock, p.SalePrice,
		p.IntakeDate, p.ExpirationDate, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Product{}, ErrDuplicatedValueUnique
		}
		return models.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepository) List(ctx context.Context, filter ListFilter) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos`
	args := []any{}
	if q := strings.TrimSpace(filter.Query); q != "" {
		query += ` WHERE codigo ILIKE $1 OR descripcion ILIKE $1`
		args = append(args, "%"+q+"%")
	}
	query += fmt.Sprintf(" ORDER BY seq LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.limit(), max(filter.Offset, 0))

	return r.query(ctx, query, args...)
}

func (r *PostgresProductRepository) All(ctx context.Context) ([]models.Product, error) {
	return r.query(ctx, `SELECT `+productColumns+` FROM productos ORDER BY seq`)
}

func (r *PostgresProductRepository) query(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

// Update sets only the supplied columns in a single statement.
func (r *PostgresProductRepository) Update(ctx context.Context, id string, patch models.ProductPatch, now time.Time) (models.Product, error) {
	set := newSetClause()
	if patch.Code != nil {
		set.add("codigo", *patch.Code)
	}
	if patch.Description != nil {
		set.add("descripcion", *patch.Description)
	}
	if patch.SaleUnit != nil {
		set.add("unidad_venta", *patch.SaleUnit)
	}
	if patch.Stock != nil {
		set.add("stock_actual", *patch.Stock)
	}
	if patch.SalePrice != nil {
		set.add("precio_venta", *patch.SalePrice)
	}
	if patch.IntakeDate != nil {
		set.add("fecha_ingreso", *patch.IntakeDate)
	}
	if patch.ExpirationDate != nil {
		set.add("fecha_vencimiento", *patch.ExpirationDate)
	}
	set.add("updated_at", now)

	query := fmt.Sprintf(`UPDATE productos SET %s WHERE id = $%d RETURNING %s`, set.String(), set.next(), productColumns)
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, append(set.args, id)...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM productos WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
