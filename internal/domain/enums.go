package domain

// Enumerations holds the configured vehicle-class and service sets. The
// members come from configuration, not from constants scattered across call
// sites; validation everywhere goes through these two lookups.
type Enumerations struct {
	VehicleClasses []string
	Services       []string
}

// HasClass reports whether class is a member of the configured class set.
func (e Enumerations) HasClass(class string) bool {
	return contains(e.VehicleClasses, class)
}

// HasService reports whether service is a member of the configured service set.
func (e Enumerations) HasService(service string) bool {
	return contains(e.Services, service)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
