package kernel

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// cities is the closed set of locations an order may be delivered to.
var cities = []string{
	"Nablus",
	"Ramallah",
	"Hebron",
	"Jenin",
	"Tulkarm",
	"Qalqilya",
	"Bethlehem",
	"Jericho",
	"Salfit",
	"Tubas",
	"Jerusalem",
}

// City is an optional order destination. The zero value means "no city".
//
// Example:
//
//	city, err := kernel.NewCity("nablus")
//	// city.String() == "Nablus"
type City struct {
	name string
}

// NewCity resolves name against the closed set, ignoring case and surrounding spaces.
// An empty name yields the zero City; an unknown name is a validation error.
func NewCity(name string) (City, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return City{}, nil
	}

	for _, known := range cities {
		if strings.EqualFold(known, trimmed) {
			return City{name: known}, nil
		}
	}

	return City{}, errs.NewValueIsInvalidErrorWithCause("city",
		fmt.Errorf("%q is not one of the supported cities", trimmed))
}

// MustCity is NewCity for compile-time known names; it panics on unknown ones.
func MustCity(name string) City {
	city, err := NewCity(name)
	if err != nil {
		panic(err)
	}
	return city
}

// Cities lists the supported city names in their canonical spelling.
func Cities() []string {
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

// IsZero reports whether no city is set.
func (c City) IsZero() bool {
	return c.name == ""
}

func (c City) String() string {
	return c.name
}

func (c City) IsEqual(other City) bool {
	return c.name == other.name
}
