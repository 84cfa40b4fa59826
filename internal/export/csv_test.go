package export

import (
	"strings"
	"testing"
	"time"

	"fsj-lavagens/internal/domain"
)

func TestVehiclesRoundTripHeaders(t *testing.T) {
	var sb strings.Builder
	vehicles := []domain.Vehicle{
		{Plate: "ABC1D23", Class: "TRUCK", MakeModel: "Volvo FH", CreatedAt: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)},
	}
	if err := Vehicles(&sb, vehicles); err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	// The header matches the bulk-import contract so exports re-import.
	if lines[0] != "PLATE,VEHICLE CLASS,MAKE/MODEL,REGISTERED AT" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "ABC1D23,TRUCK,Volvo FH,") {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestUsersExportOmitsPassword(t *testing.T) {
	var sb strings.Builder
	users := []domain.User{
		{Name: "Admin", Email: "admin@example.com", PasswordHash: "$2a$10$secret", Role: "admin", CreatedAt: time.Now()},
	}
	if err := Users(&sb, users); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := sb.String()
	if strings.Contains(out, "secret") || strings.Contains(strings.ToUpper(out), "PASSWORD") {
		t.Fatalf("password material leaked into export: %q", out)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[int64]string{
		25000: "250.00",
		105:   "1.05",
		9:     "0.09",
	}
	for cents, want := range cases {
		if got := FormatAmount(cents); got != want {
			t.Errorf("FormatAmount(%d) = %q, want %q", cents, got, want)
		}
	}
}

func TestOrdersExportColumns(t *testing.T) {
	var sb strings.Builder
	orders := []domain.WashOrder{
		{
			OrderNumber:     "ORD-20250601-001",
			PlateExpression: "ABC1D23 + TRL1A11",
			Driver:          "NOT INFORMED",
			OperationLabel:  "TRACTOR-TRAILER SET - COMPLETE WASH",
			Date:            "2025-06-01",
			Status:          domain.StatusPending,
			AmountCents:     40000,
			CreatedBy:       "Operator One",
		},
	}
	if err := Orders(&sb, orders); err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if lines[0] != "ORDER NUMBER,PLATES,DRIVER,OPERATION,DATE,START,END,STATUS,AMOUNT,NOTES,CREATED BY" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "ORD-20250601-001") || !strings.Contains(lines[1], "400.00") {
		t.Fatalf("unexpected row %q", lines[1])
	}
}
