package user

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

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

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (name, email, password_hash, role)
VALUES ($1, $2, $3, $4)
RETURNING id::text, name, email, password_hash, role, created_at
`
	res, err := r.scan(r.pool.QueryRow(ctx, q, u.Name, strings.ToLower(u.Email), u.PasswordHash, u.Role))
	if err != nil {
		r.logger.Printf("user repo: create email=%s error=%v", u.Email, err)
		return nil, err
	}
	r.logger.Printf("user repo: created email=%s id=%s", res.Email, res.ID)
	return res, nil
}

func (r *postgresRepo) Update(ctx context.Context, u domain.User) error {
	const q = `
UPDATE users
SET name = $2, email = $3, role = $4
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, q, u.ID, u.Name, strings.ToLower(u.Email), u.Role)
	if err != nil {
		r.logger.Printf("user repo: update id=%s error=%v", u.ID, err)
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM users WHERE id = $1`
	if _, err := r.pool.Exec(ctx, q, id); err != nil {
		r.logger.Printf("user repo: delete id=%s error=%v", id, err)
		return err
	}
	return nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.User, error) {
	const q = `
SELECT id::text, name, email, password_hash, role, created_at
FROM users
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("user repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("user repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `
SELECT id::text, name, email, password_hash, role, created_at
FROM users
WHERE id = $1
`
	return r.scan(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id::text, name, email, password_hash, role, created_at
FROM users
WHERE lower(email) = lower($1)
LIMIT 1
`
	return r.scan(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) SetPassword(ctx context.Context, id, passwordHash string) error {
	const q = `UPDATE users SET password_hash = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id, passwordHash)
	if err != nil {
		r.logger.Printf("user repo: set password id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SetRole(ctx context.Context, id, role string) error {
	const q = `UPDATE users SET role = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id, role)
	if err != nil {
		r.logger.Printf("user repo: set role id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &u, nil
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
