package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mdjukic/inventory-api/internal/modules/core"

	"github.com/eskrenkovic/tql"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db}
}

var _ Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) GetAll(ctx context.Context) ([]Product, error) {
	const query = `
		SELECT
			id, name, sector, description, price
		FROM
			product
		ORDER BY
			name;`

	products, err := tql.Query[Product](ctx, r.db, query)
	if err != nil {
		return nil, &PersistenceError{Op: "select products", Err: err}
	}

	return products, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (Product, bool, error) {
	const query = `
		SELECT
			id, name, sector, description, price
		FROM
			product
		WHERE
			id = $1;`

	product, err := tql.QuerySingle[Product](ctx, r.db, query, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Product{}, false, nil
	case err != nil:
		return Product{}, false, &PersistenceError{Op: "select product", Err: err}
	}

	return product, true, nil
}

func (r *PostgresRepository) Add(ctx context.Context, product Product) (uuid.UUID, error) {
	const stmt = `
		INSERT INTO
			product (id, name, sector, description, price)
		VALUES
			(:id, :name, :sector, :description, :price);`

	if _, err := tql.Exec(ctx, r.db, stmt, product); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return uuid.Nil, &PersistenceError{Op: "insert product", Err: ErrDuplicateID}
		}

		return uuid.Nil, &PersistenceError{Op: "insert product", Err: err}
	}

	return product.ID, nil
}

// Update replaces the stored row matching the entity's identity. The
// existence check and the write share a transaction so a concurrent
// delete cannot slip between them.
func (r *PostgresRepository) Update(ctx context.Context, product Product) error {
	txFn := func(ctx context.Context, tx *sql.Tx) error {
		const existsQuery = `
			SELECT
				id
			FROM
				product
			WHERE
				id = $1
			FOR UPDATE;`

		if _, err := tql.QuerySingle[uuid.UUID](ctx, tx, existsQuery, product.ID); err != nil {
			return err
		}

		const stmt = `
			UPDATE
				product
			SET
				name = $2, sector = $3, description = $4, price = $5
			WHERE
				id = $1;`

		_, err := tql.Exec(
			ctx,
			tx,
			stmt,
			product.ID,
			product.Name,
			product.Sector,
			product.Description,
			product.Price,
		)
		return err
	}

	err := core.Tx(ctx, r.db, txFn)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case err != nil:
		return &PersistenceError{Op: "update product", Err: err}
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const stmt = `
		DELETE FROM
			product
		WHERE
			id = $1;`

	result, err := tql.Exec(ctx, r.db, stmt, id)
	if err != nil {
		return false, &PersistenceError{Op: "delete product", Err: err}
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, &PersistenceError{Op: "delete product", Err: err}
	}

	return deleted > 0, nil
}
