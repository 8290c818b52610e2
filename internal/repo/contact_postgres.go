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

const contactColumns = `id, nombre, direccion, telefono, correo, tipo, created_at, updated_at`

type PostgresContactRepository struct {
	db *sql.DB
}

func NewPostgresContactRepository(db *sql.DB) *PostgresContactRepository {
	return &PostgresContactRepository{db: db}
}

func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Kind, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *PostgresContactRepository) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	query := `INSERT INTO contactos (` + contactColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Address, c.Phone, c.Email, c.Kind, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Contact{}, ErrDuplicatedValueUnique
		}
		return models.Contact{}, fmt.Errorf("insert contact: %w", err)
	}
	return c, nil
}

func (r *PostgresContactRepository) List(ctx context.Context, filter ListFilter) ([]models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contactos`
	args := []any{}
	if q := strings.TrimSpace(filter.Query); q != "" {
		query += ` WHERE nombre ILIKE $1 OR correo ILIKE $1`
		args = append(args, "%"+q+"%")
	}
	query += fmt.Sprintf(" ORDER BY seq LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.limit(), max(filter.Offset, 0))

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *PostgresContactRepository) GetByID(ctx context.Context, id string) (models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contactos WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	c, err := scanContact(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	return c, err
}

func (r *PostgresContactRepository) Update(ctx context.Context, id string, patch models.ContactPatch, now time.Time) (models.Contact, error) {
	set := newSetClause()
	if patch.Name != nil {
		set.add("nombre", *patch.Name)
	}
	if patch.Address != nil {
		set.add("direccion", *patch.Address)
	}
	if patch.Phone != nil {
		set.add("telefono", *patch.Phone)
	}
	if patch.Email != nil {
		set.add("correo", *patch.Email)
	}
	if patch.Kind != nil {
		set.add("tipo", *patch.Kind)
	}
	set.add("updated_at", now)

	query := fmt.Sprintf(`UPDATE contactos SET %s WHERE id = $%d RETURNING %s`, set.String(), set.next(), contactColumns)
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	c, err := scanContact(r.db.QueryRowContext(ctx, query, append(set.args, id)...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	return c, err
}

func (r *PostgresContactRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM contactos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
