package entity

import "strings"

// Gender is the stringly-typed gender of a person.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists every valid gender option.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// ParseGender converts s to a Gender ignoring case.
func ParseGender(s string) (Gender, bool) {
	for _, g := range Genders {
		if equalFold(string(g), s) {
			return g, true
		}
	}

	return "", false
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
