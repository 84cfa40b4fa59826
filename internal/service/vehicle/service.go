package vehicle

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"fsj-lavagens/internal/domain"
	vehiclerepo "fsj-lavagens/internal/repository/vehicle"
)

// Mercosul / Brazilian plate layout: three letters, one digit, one
// alphanumeric, two digits.
var platePattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)

// Service enforces vehicle registration rules over the repository.
type Service struct {
	repo  vehiclerepo.Repository
	enums domain.Enumerations
}

// New creates a Service validating against the configured enumerations.
func New(repo vehiclerepo.Repository, enums domain.Enumerations) *Service {
	return &Service{repo: repo, enums: enums}
}

// NormalizePlate strips separators and spaces and uppercases the rest.
func NormalizePlate(plate string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(plate)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPlate reports whether the normalized plate matches the required layout.
func ValidPlate(normalized string) bool {
	return platePattern.MatchString(normalized)
}

// Register validates and inserts a new vehicle.
func (s *Service) Register(ctx context.Context, plate, class, makeModel string) (*domain.Vehicle, error) {
	v, err := s.validate(plate, class, makeModel)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, *v)
}

// Update applies the same validation as Register against an existing record.
func (s *Service) Update(ctx context.Context, id, plate, class, makeModel string) error {
	v, err := s.validate(plate, class, makeModel)
	if err != nil {
		return err
	}
	v.ID = id
	return s.repo.Update(ctx, *v)
}

// Delete removes a vehicle; absent ids are a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// List returns all vehicles, newest registration first.
func (s *Service) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.repo.List(ctx)
}

// Get returns one vehicle by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByPlate normalizes the plate and looks the vehicle up.
func (s *Service) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	return s.repo.GetByPlate(ctx, NormalizePlate(plate))
}

func (s *Service) validate(plate, class, makeModel string) (*domain.Vehicle, error) {
	normalized := NormalizePlate(plate)
	if !ValidPlate(normalized) {
		return nil, fmt.Errorf("plate %q: %w", plate, domain.ErrInvalidFormat)
	}
	class = strings.ToUpper(strings.TrimSpace(class))
	if !s.enums.HasClass(class) {
		return nil, fmt.Errorf("class %q: %w", class, domain.ErrInvalidClass)
	}
	return &domain.Vehicle{
		Plate:     normalized,
		Class:     class,
		MakeModel: strings.TrimSpace(makeModel),
	}, nil
}
