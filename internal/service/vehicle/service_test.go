package vehicle

import (
	"context"
	"errors"
	"testing"

	"fsj-lavagens/internal/domain"
)

type stubRepo struct {
	created    []domain.Vehicle
	createErr  error
	updated    []domain.Vehicle
	updateErr  error
	byPlate    *domain.Vehicle
	byPlateErr error
}

func (s *stubRepo) Create(_ context.Context, v domain.Vehicle) (*domain.Vehicle, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, v)
	return &v, nil
}

func (s *stubRepo) Update(_ context.Context, v domain.Vehicle) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = append(s.updated, v)
	return nil
}

func (s *stubRepo) Delete(_ context.Context, _ string) error { return nil }

func (s *stubRepo) List(_ context.Context) ([]domain.Vehicle, error) { return s.created, nil }

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Vehicle, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) GetByPlate(_ context.Context, _ string) (*domain.Vehicle, error) {
	return s.byPlate, s.byPlateErr
}

func testEnums() domain.Enumerations {
	return domain.Enumerations{
		VehicleClasses: []string{"TRUCK", "TRACTOR", "TRAILER", domain.ClassTractorTrailerSet, domain.ClassDoubleTrailerSet},
		Services:       []string{"COMPLETE WASH", "CHASSIS WASH"},
	}
}

func TestNormalizePlate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"abc1d23", "ABC1D23"},
		{"ABC-1D23", "ABC1D23"},
		{" abc 1d23 ", "ABC1D23"},
		{"ABC.1D.23", "ABC1D23"},
	}
	for _, tc := range cases {
		if got := NormalizePlate(tc.in); got != tc.want {
			t.Errorf("NormalizePlate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRegisterValidPlates(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, testEnums())

	for _, plate := range []string{"ABC1D23", "XYZ9A88", "QWE1234"} {
		if _, err := svc.Register(context.Background(), plate, "TRUCK", ""); err != nil {
			t.Fatalf("register %s: %v", plate, err)
		}
	}
	if len(repo.created) != 3 {
		t.Fatalf("expected 3 created, got %d", len(repo.created))
	}
}

func TestRegisterInvalidPlate(t *testing.T) {
	svc := New(&stubRepo{}, testEnums())

	for _, plate := range []string{"", "AB1234", "1BC1D23", "ABCDD23", "ABC1D2", "ABC1D234"} {
		_, err := svc.Register(context.Background(), plate, "TRUCK", "")
		if !errors.Is(err, domain.ErrInvalidFormat) {
			t.Errorf("register %q: expected ErrInvalidFormat, got %v", plate, err)
		}
	}
}

func TestRegisterInvalidClass(t *testing.T) {
	svc := New(&stubRepo{}, testEnums())
	_, err := svc.Register(context.Background(), "ABC1D23", "SUBMARINE", "")
	if !errors.Is(err, domain.ErrInvalidClass) {
		t.Fatalf("expected ErrInvalidClass, got %v", err)
	}
}

func TestRegisterClassUppercased(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, testEnums())
	if _, err := svc.Register(context.Background(), "ABC1D23", "  truck ", "Volvo FH"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if repo.created[0].Class != "TRUCK" {
		t.Fatalf("expected class TRUCK, got %q", repo.created[0].Class)
	}
}

func TestRegisterDuplicatePlate(t *testing.T) {
	repo := &stubRepo{createErr: domain.ErrAlreadyExists}
	svc := New(repo, testEnums())
	_, err := svc.Register(context.Background(), "ABC1D23", "TRUCK", "")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUpdateValidatesBeforeRepo(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, testEnums())
	if err := svc.Update(context.Background(), "id-1", "bad", "TRUCK", ""); !errors.Is(err, domain.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatalf("repo should not be touched on validation failure")
	}
}

func TestUpdateNotFound(t *testing.T) {
	repo := &stubRepo{updateErr: domain.ErrNotFound}
	svc := New(repo, testEnums())
	if err := svc.Update(context.Background(), "missing", "ABC1D23", "TRUCK", ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
