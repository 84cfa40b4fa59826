package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"fsj-lavagens/internal/domain"
)

//go:embed enums.yaml
var defaultEnums []byte

type enumsFile struct {
	VehicleClasses []string `yaml:"vehicle_classes"`
	Services       []string `yaml:"services"`
}

// LoadEnums reads the vehicle-class and service enumerations from the YAML
// file at path, or from the embedded defaults when path is empty. The two
// composite classes must be present since order composition assigns them.
func LoadEnums(path string) (domain.Enumerations, error) {
	raw := defaultEnums
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return domain.Enumerations{}, fmt.Errorf("read enums file: %w", err)
		}
		raw = b
	}

	var f enumsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return domain.Enumerations{}, fmt.Errorf("parse enums file: %w", err)
	}
	if len(f.VehicleClasses) == 0 || len(f.Services) == 0 {
		return domain.Enumerations{}, fmt.Errorf("enums file must define vehicle_classes and services")
	}

	e := domain.Enumerations{
		VehicleClasses: f.VehicleClasses,
		Services:       f.Services,
	}
	for _, composite := range []string{domain.ClassTractorTrailerSet, domain.ClassDoubleTrailerSet} {
		if !e.HasClass(composite) {
			return domain.Enumerations{}, fmt.Errorf("enums file must include composite class %q", composite)
		}
	}
	return e, nil
}
