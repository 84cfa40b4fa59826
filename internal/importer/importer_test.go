package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fsj-lavagens/internal/domain"
)

// stubRegistrar mimics the vehicle service validation closely enough for
// row-level outcomes.
type stubRegistrar struct {
	registered []string
}

func (s *stubRegistrar) Register(_ context.Context, plate, class, makeModel string) (*domain.Vehicle, error) {
	if len(plate) != 7 {
		return nil, domain.ErrInvalidFormat
	}
	if class != "TRUCK" && class != "TRAILER" {
		return nil, domain.ErrInvalidClass
	}
	for _, p := range s.registered {
		if p == plate {
			return nil, domain.ErrAlreadyExists
		}
	}
	s.registered = append(s.registered, plate)
	return &domain.Vehicle{Plate: plate, Class: class, MakeModel: makeModel}, nil
}

func TestRunPartialSuccess(t *testing.T) {
	csvData := `PLATE,VEHICLE CLASS,MAKE/MODEL
ABC1D23,TRUCK,Volvo FH
DEF2E34,TRUCK,
BAD,TRUCK,Scania R450
GHI3F45,TRAILER,
JKL4G56,truck,Mercedes Axor
`
	reg := &stubRegistrar{}
	result, err := NewCSVImporter(strings.NewReader(csvData), reg).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Imported != 4 {
		t.Fatalf("expected 4 imported, got %d", result.Imported)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly 1 row error, got %d", len(result.Errors))
	}
	if result.Errors[0].Row != 3 {
		t.Fatalf("expected error on row 3, got row %d", result.Errors[0].Row)
	}
	if len(reg.registered) != 4 {
		t.Fatalf("expected 4 registrations, got %d", len(reg.registered))
	}
}

func TestRunMissingColumnFailsWholesale(t *testing.T) {
	csvData := `PLATE,MAKE/MODEL
ABC1D23,Volvo FH
`
	reg := &stubRegistrar{}
	_, err := NewCSVImporter(strings.NewReader(csvData), reg).Run(context.Background())
	if !errors.Is(err, domain.ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
	if len(reg.registered) != 0 {
		t.Fatalf("no rows may be processed on a header failure, got %d", len(reg.registered))
	}
}

func TestRunMissingMakeModelHeaderTolerated(t *testing.T) {
	csvData := `PLATE,VEHICLE CLASS
ABC1D23,TRUCK
`
	reg := &stubRegistrar{}
	result, err := NewCSVImporter(strings.NewReader(csvData), reg).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("expected 1 imported, got %d", result.Imported)
	}
}

func TestRunTrimsAndUppercases(t *testing.T) {
	csvData := `PLATE,VEHICLE CLASS,MAKE/MODEL
 ABC1D23 , truck , Volvo FH
`
	reg := &stubRegistrar{}
	result, err := NewCSVImporter(strings.NewReader(csvData), reg).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("expected 1 imported, got %d (errors: %+v)", result.Imported, result.Errors)
	}
}

func TestRunDuplicateRowReported(t *testing.T) {
	csvData := `PLATE,VEHICLE CLASS,MAKE/MODEL
ABC1D23,TRUCK,
ABC1D23,TRUCK,
`
	reg := &stubRegistrar{}
	result, err := NewCSVImporter(strings.NewReader(csvData), reg).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Imported != 1 || len(result.Errors) != 1 || result.Errors[0].Row != 2 {
		t.Fatalf("expected second row rejected as duplicate, got %+v", result)
	}
}
