package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fsj-lavagens/internal/domain"
	userrepo "fsj-lavagens/internal/repository/user"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles user accounts and login tokens.
type Service struct {
	repo        userrepo.Repository
	jwtSecret   []byte
	tokenTTL    time.Duration
	passwordMin int
}

// New creates a Service with sane defaults.
func New(repo userrepo.Repository, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		repo:        repo,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
		passwordMin: 6,
	}
}

// Claims carried by issued login tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Create registers a new user account.
func (s *Service) Create(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("name and email: %w", domain.ErrMissingField)
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("role %q: %w", role, domain.ErrInvalidRole)
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
}

// Update changes name, email and role. Email collisions surface as
// domain.ErrAlreadyExists.
func (s *Service) Update(ctx context.Context, id, name, email, role string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" {
		return fmt.Errorf("name and email: %w", domain.ErrMissingField)
	}
	if !domain.ValidRole(role) {
		return fmt.Errorf("role %q: %w", role, domain.ErrInvalidRole)
	}
	return s.repo.Update(ctx, domain.User{ID: id, Name: name, Email: email, Role: role})
}

// Delete removes a user; absent ids are a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// List returns all users, newest first.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Get returns one user by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// SetPassword replaces the stored password hash.
func (s *Service) SetPassword(ctx context.Context, id, password string) error {
	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.SetPassword(ctx, id, hash)
}

// SetRole changes a user's role.
func (s *Service) SetRole(ctx context.Context, id, role string) error {
	if !domain.ValidRole(role) {
		return fmt.Errorf("role %q: %w", role, domain.ErrInvalidRole)
	}
	return s.repo.SetRole(ctx, id, role)
}

// Authenticate checks the credentials and returns the matching user, or
// ErrInvalidCredentials when either the email is unknown or the password
// does not match.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and issues a signed token for the API.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	claims := Claims{
		UserID: u.ID,
		Name:   u.Name,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, u, nil
}

// ValidateToken parses and verifies a token issued by Login.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	password = strings.TrimSpace(password)
	if len(password) < s.passwordMin {
		return "", fmt.Errorf("password shorter than %d characters: %w", s.passwordMin, domain.ErrInvalidFormat)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
