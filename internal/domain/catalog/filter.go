package catalog

import "strings"

// Availability is the tri-state availability selector.
type Availability string

const (
	AvailabilityAll         Availability = "all"
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
)

// Valid reports whether the selector is one of the three known values.
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAll, AvailabilityAvailable, AvailabilityUnavailable:
		return true
	}
	return false
}

// SpecialtyAll is the sentinel that disables specialty filtering.
const SpecialtyAll = "all"

// FilterParams holds the three independent filter criteria. Zero values
// ("" search, "" specialty, "" availability) match everything.
type FilterParams struct {
	Search       string
	Specialty    string
	Availability Availability
}

// Filter returns the doctors matching all three criteria, preserving the
// input order. It never mutates its input and an empty result is a valid
// outcome, not an error.
func Filter(doctors []Doctor, p FilterParams) []Doctor {
	search := strings.ToLower(p.Search)

	var out []Doctor
	for _, d := range doctors {
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Specialty), search) {
			continue
		}
		if p.Specialty != "" && p.Specialty != SpecialtyAll && d.Specialty != p.Specialty {
			continue
		}
		switch p.Availability {
		case AvailabilityAvailable:
			if d.AvailableSlots == 0 {
				continue
			}
		case AvailabilityUnavailable:
			if d.AvailableSlots > 0 {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}

// Specialties returns the distinct specialties present in the catalog, in
// order of first appearance, with the "all" sentinel prepended.
func Specialties(doctors []Doctor) []string {
	out := []string{SpecialtyAll}
	seen := make(map[string]bool, len(doctors))
	for _, d := range doctors {
		if seen[d.Specialty] {
			continue
		}
		seen[d.Specialty] = true
		out = append(out, d.Specialty)
	}
	return out
}
