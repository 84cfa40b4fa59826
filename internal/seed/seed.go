package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"fsj-lavagens/internal/domain"
)

// Fixed first-run admin credentials. This is a first-run convenience for a
// single-tenant tool, not a security measure: change the password after the
// first login.
const (
	AdminName     = "Administrator"
	AdminEmail    = "admin@fsjlavagens.com.br"
	AdminPassword = "admin123"
)

// Apply seeds the bootstrap admin account. It is idempotent: an existing
// account with the same email is left untouched, so a changed password
// survives re-seeding.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	const q = `
INSERT INTO users (name, email, password_hash, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO NOTHING
`
	if _, err := pool.Exec(ctx, q, AdminName, AdminEmail, string(hash), domain.RoleAdmin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
