package supplier

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fsj-lavagens/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, s domain.Supplier) (*domain.Supplier, error) {
	const q = `
INSERT INTO suppliers (name, tax_id, address)
VALUES ($1, $2, NULLIF($3, ''))
RETURNING id::text, name, tax_id, COALESCE(address, ''), created_at
`
	res, err := r.scan(r.pool.QueryRow(ctx, q, s.Name, s.TaxID, s.Address))
	if err != nil {
		r.logger.Printf("supplier repo: create tax_id=%s error=%v", s.TaxID, err)
		return nil, err
	}
	r.logger.Printf("supplier repo: created name=%s id=%s", res.Name, res.ID)
	return res, nil
}

func (r *postgresRepo) Update(ctx context.Context, s domain.Supplier) error {
	const q = `
UPDATE suppliers
SET name = $2, tax_id = $3, address = NULLIF($4, '')
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, q, s.ID, s.Name, s.TaxID, s.Address)
	if err != nil {
		r.logger.Printf("supplier repo: update id=%s error=%v", s.ID, err)
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM suppliers WHERE id = $1`
	if _, err := r.pool.Exec(ctx, q, id); err != nil {
		r.logger.Printf("supplier repo: delete id=%s error=%v", id, err)
		return err
	}
	return nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Supplier, error) {
	const q = `
SELECT id::text, name, tax_id, COALESCE(address, ''), created_at
FROM suppliers
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("supplier repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.TaxID, &s.Address, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("supplier repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	const q = `
SELECT id::text, name, tax_id, COALESCE(address, ''), created_at
FROM suppliers
WHERE id = $1
`
	return r.scan(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.TaxID, &s.Address, &s.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrAlreadyExists
	}
	return err
}
