package config

import (
	"os"
	"path/filepath"
	"testing"

	"fsj-lavagens/internal/domain"
)

func TestLoadEnumsDefaults(t *testing.T) {
	enums, err := LoadEnums("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	for _, class := range []string{"TRUCK", domain.ClassTractorTrailerSet, domain.ClassDoubleTrailerSet, "LOWBOY"} {
		if !enums.HasClass(class) {
			t.Errorf("default classes missing %q", class)
		}
	}
	if !enums.HasService("COMPLETE WASH") {
		t.Errorf("default services missing COMPLETE WASH")
	}
	if enums.HasClass("SUBMARINE") {
		t.Errorf("membership check must reject unknown values")
	}
}

func TestLoadEnumsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enums.yaml")
	content := `vehicle_classes:
  - TRUCK
  - TRACTOR-TRAILER SET
  - DOUBLE-TRAILER SET
services:
  - QUICK WASH
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	enums, err := LoadEnums(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !enums.HasService("QUICK WASH") || enums.HasService("COMPLETE WASH") {
		t.Fatalf("file contents must replace defaults: %+v", enums)
	}
}

func TestLoadEnumsRejectsMissingComposites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enums.yaml")
	content := `vehicle_classes:
  - TRUCK
services:
  - QUICK WASH
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadEnums(path); err == nil {
		t.Fatalf("expected error for missing composite classes")
	}
}
