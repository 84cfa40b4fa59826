package supplier

import (
	"context"
	"errors"
	"testing"

	"fsj-lavagens/internal/domain"
)

type stubSupplierRepo struct {
	created   []domain.Supplier
	createErr error
}

func (s *stubSupplierRepo) Create(_ context.Context, sup domain.Supplier) (*domain.Supplier, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, sup)
	return &sup, nil
}

func (s *stubSupplierRepo) Update(_ context.Context, _ domain.Supplier) error { return nil }
func (s *stubSupplierRepo) Delete(_ context.Context, _ string) error          { return nil }
func (s *stubSupplierRepo) List(_ context.Context) ([]domain.Supplier, error) { return nil, nil }
func (s *stubSupplierRepo) GetByID(_ context.Context, _ string) (*domain.Supplier, error) {
	return nil, domain.ErrNotFound
}

type stubPriceRepo struct {
	created []domain.PriceEntry
}

func (s *stubPriceRepo) Create(_ context.Context, p domain.PriceEntry) (*domain.PriceEntry, error) {
	s.created = append(s.created, p)
	return &p, nil
}

func (s *stubPriceRepo) Update(_ context.Context, _ domain.PriceEntry) error { return nil }
func (s *stubPriceRepo) Delete(_ context.Context, _ string) error            { return nil }
func (s *stubPriceRepo) ListBySupplier(_ context.Context, _ string) ([]domain.PriceEntry, error) {
	return s.created, nil
}
func (s *stubPriceRepo) ListBySupplierClass(_ context.Context, _, _ string) ([]domain.PriceEntry, error) {
	return s.created, nil
}

func testEnums() domain.Enumerations {
	return domain.Enumerations{
		VehicleClasses: []string{"TRUCK", domain.ClassTractorTrailerSet, domain.ClassDoubleTrailerSet},
		Services:       []string{"COMPLETE WASH", "CHASSIS WASH"},
	}
}

func TestNormalizeTaxID(t *testing.T) {
	if got := NormalizeTaxID("12.345.678/0001-95"); got != "12345678000195" {
		t.Fatalf("NormalizeTaxID = %q", got)
	}
}

func TestRegisterTaxIDProjection(t *testing.T) {
	repo := &stubSupplierRepo{}
	svc := New(repo, &stubPriceRepo{}, testEnums())

	// Succeeds iff the digit-only projection has exactly 14 digits.
	if _, err := svc.Register(context.Background(), "Lava Jato Norte", "12.345.678/0001-95", ""); err != nil {
		t.Fatalf("register with formatted tax id: %v", err)
	}
	if repo.created[0].TaxID != "12345678000195" {
		t.Fatalf("expected normalized tax id, got %q", repo.created[0].TaxID)
	}

	for _, taxID := range []string{"", "1234567800019", "123456780001955", "abc"} {
		_, err := svc.Register(context.Background(), "X", taxID, "")
		if !errors.Is(err, domain.ErrInvalidFormat) {
			t.Errorf("tax id %q: expected ErrInvalidFormat, got %v", taxID, err)
		}
	}
}

func TestRegisterMissingName(t *testing.T) {
	svc := New(&stubSupplierRepo{}, &stubPriceRepo{}, testEnums())
	if _, err := svc.Register(context.Background(), "  ", "12345678000195", ""); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestRegisterDuplicateTaxID(t *testing.T) {
	svc := New(&stubSupplierRepo{createErr: domain.ErrAlreadyExists}, &stubPriceRepo{}, testEnums())
	if _, err := svc.Register(context.Background(), "X", "12345678000195", ""); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAddPriceValidation(t *testing.T) {
	prices := &stubPriceRepo{}
	svc := New(&stubSupplierRepo{}, prices, testEnums())
	ctx := context.Background()

	if _, err := svc.AddPrice(ctx, "sup-1", "SUBMARINE", "COMPLETE WASH", 100); !errors.Is(err, domain.ErrInvalidClass) {
		t.Fatalf("expected ErrInvalidClass, got %v", err)
	}
	if _, err := svc.AddPrice(ctx, "sup-1", "TRUCK", "DRY CLEAN", 100); !errors.Is(err, domain.ErrInvalidService) {
		t.Fatalf("expected ErrInvalidService, got %v", err)
	}
	if _, err := svc.AddPrice(ctx, "sup-1", "TRUCK", "COMPLETE WASH", 0); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero, got %v", err)
	}
	if _, err := svc.AddPrice(ctx, "sup-1", "TRUCK", "COMPLETE WASH", -500); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for negative, got %v", err)
	}
	if len(prices.created) != 0 {
		t.Fatalf("no entry should be created on validation failure")
	}

	if _, err := svc.AddPrice(ctx, "sup-1", "truck", "complete wash", 15000); err != nil {
		t.Fatalf("valid price: %v", err)
	}
	if prices.created[0].Class != "TRUCK" || prices.created[0].Service != "COMPLETE WASH" {
		t.Fatalf("expected uppercased class/service, got %+v", prices.created[0])
	}
}

func TestAddPriceAllowsDuplicatePairs(t *testing.T) {
	prices := &stubPriceRepo{}
	svc := New(&stubSupplierRepo{}, prices, testEnums())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.AddPrice(ctx, "sup-1", "TRUCK", "COMPLETE WASH", 10000); err != nil {
			t.Fatalf("duplicate pair %d: %v", i, err)
		}
	}
	if len(prices.created) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(prices.created))
	}
}
