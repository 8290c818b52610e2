package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/models"
)

const configurationColumns = `id, stock_bajo_limite, vencimiento_alerta_meses, updated_at`

type PostgresConfigurationRepository struct {
	db *sql.DB
}

func NewPostgresConfigurationRepository(db *sql.DB) *PostgresConfigurationRepository {
	return &PostgresConfigurationRepository{db: db}
}

func scanConfiguration(row rowScanner) (models.Configuration, error) {
	var c models.Configuration
	err := row.Scan(&c.ID, &c.LowStockThreshold, &c.ExpirationMonths, &c.UpdatedAt)
	return c, err
}

func (r *PostgresConfigurationRepository) Get(ctx context.Context) (models.Configuration, error) {
	query := `SELECT ` + configurationColumns + ` FROM configuracion WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	c, err := scanConfiguration(r.db.QueryRowContext(ctx, query, models.ConfigurationID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Configuration{}, ErrConfigurationNotFound
	}
	return c, err
}

// Create relies on the primary key over the fixed identifier: a concurrent
// first read that loses the insert reads back the winner's record.
func (r *PostgresConfigurationRepository) Create(ctx context.Context, cfg models.Configuration) (models.Configuration, bool, error) {
	query := `INSERT INTO configuracion (` + configurationColumns + `) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, models.ConfigurationID, cfg.LowStockThreshold, cfg.ExpirationMonths, cfg.UpdatedAt)
	if err != nil {
		return models.Configuration{}, false, fmt.Errorf("insert configuration: %w", err)
	}
	inserted, _ := res.RowsAffected()

	stored, err := r.Get(ctx)
	if err != nil {
		return models.Configuration{}, false, err
	}
	return stored, inserted > 0, nil
}

func (r *PostgresConfigurationRepository) Update(ctx context.Context, patch models.ConfigurationPatch, now time.Time) (models.Configuration, error) {
	set := newSetClause()
	if patch.LowStockThreshold != nil {
		set.add("stock_bajo_limite", *patch.LowStockThreshold)
	}
	if patch.ExpirationMonths != nil {
		set.add("vencimiento_alerta_meses", *patch.ExpirationMonths)
	}
	set.add("updated_at", now)

	query := fmt.Sprintf(`UPDATE configuracion SET %s WHERE id = $%d RETURNING %s`, set.String(), set.next(), configurationColumns)
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	c, err := scanConfiguration(r.db.QueryRowContext(ctx, query, append(set.args, models.ConfigurationID)...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Configuration{}, ErrConfigurationNotFound
	}
	return c, err
}
