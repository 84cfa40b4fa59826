package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fsj-lavagens/internal/domain"
)

type stubRepo struct {
	byEmail   map[string]domain.User
	created   []domain.User
	createErr error
}

func (s *stubRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	u.ID = "u1"
	s.created = append(s.created, u)
	return &u, nil
}

func (s *stubRepo) Update(_ context.Context, _ domain.User) error { return nil }
func (s *stubRepo) Delete(_ context.Context, _ string) error      { return nil }
func (s *stubRepo) List(_ context.Context) ([]domain.User, error) { return s.created, nil }
func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (s *stubRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return &u, nil
	}
	return nil, domain.ErrNotFound
}
func (s *stubRepo) SetPassword(_ context.Context, _, _ string) error { return nil }
func (s *stubRepo) SetRole(_ context.Context, _, _ string) error     { return nil }

func repoWithUser(t *testing.T, email, password string) *stubRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &stubRepo{byEmail: map[string]domain.User{
		email: {ID: "u1", Name: "Operator One", Email: email, PasswordHash: string(hash), Role: domain.RoleOperator},
	}}
}

func TestAuthenticateExactMatch(t *testing.T) {
	repo := repoWithUser(t, "op@example.com", "secret123")
	svc := New(repo, "test-secret", time.Hour)

	u, err := svc.Authenticate(context.Background(), "op@example.com", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.Name != "Operator One" || u.Role != domain.RoleOperator {
		t.Fatalf("unexpected identity %q/%q", u.Name, u.Role)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := repoWithUser(t, "op@example.com", "secret123")
	svc := New(repo, "test-secret", time.Hour)

	if _, err := svc.Authenticate(context.Background(), "op@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := New(&stubRepo{}, "test-secret", time.Hour)
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginTokenRoundTrip(t *testing.T) {
	repo := repoWithUser(t, "op@example.com", "secret123")
	svc := New(repo, "test-secret", time.Hour)

	token, u, err := svc.Login(context.Background(), "op@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != u.Role || claims.Name != u.Name {
		t.Fatalf("claims mismatch: %+v vs %+v", claims, u)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	repo := repoWithUser(t, "op@example.com", "secret123")
	issuer := New(repo, "secret-a", time.Hour)
	verifier := New(repo, "secret-b", time.Hour)

	token, _, err := issuer.Login(context.Background(), "op@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := verifier.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := New(&stubRepo{}, "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "", "x@example.com", "secret123", domain.RoleOperator); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if _, err := svc.Create(ctx, "X", "x@example.com", "secret123", "boss"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := svc.Create(ctx, "X", "x@example.com", "123", domain.RoleOperator); !errors.Is(err, domain.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for short password, got %v", err)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc := New(&stubRepo{createErr: domain.ErrAlreadyExists}, "test-secret", time.Hour)
	if _, err := svc.Create(context.Background(), "X", "x@example.com", "secret123", domain.RoleOperator); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateLowercasesEmailAndHashes(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, "test-secret", time.Hour)

	u, err := svc.Create(context.Background(), "X", "Op@Example.COM", "secret123", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Email != "op@example.com" {
		t.Fatalf("expected lowercased email, got %q", u.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created[0].PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}
