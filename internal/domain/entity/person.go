// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PINLength is the exact length a personal identification number must have when present.
const PINLength = 4

// Person is a single contact managed by the application.
type Person struct {
	ID                 uuid.UUID  // Assigned by the application when the person is added.
	Name               string     // Display name, at most 45 characters.
	Email              string     // Contact email, at most 30 characters.
	DateOfBirth        *time.Time // Optional date of birth.
	Gender             Gender     // One of Male, Female or Other.
	CountryID          *uuid.UUID // Optional reference to the person's country.
	Country            *Country   // Loaded together with the person when available.
	Address            string     // Free-text postal address, at most 65 characters.
	ReceiveNewsLetters bool       // Newsletter opt-in.
	PIN                *string    // Optional PIN, exactly PINLength characters when set.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CountryName returns the name of the loaded country or an empty string.
func (p *Person) CountryName() string {
	if p == nil || p.Country == nil {
		return ""
	}

	return p.Country.Name
}

// PersonField names a searchable attribute of a person.
type PersonField string

const (
	PersonFieldName        PersonField = "PersonName"
	PersonFieldEmail       PersonField = "Email"
	PersonFieldDateOfBirth PersonField = "DateOfBirth"
	PersonFieldGender      PersonField = "Gender"
	PersonFieldCountry     PersonField = "CountryID"
	PersonFieldAddress     PersonField = "Address"
)

// SearchablePersonFields lists the searchable fields in display order.
var SearchablePersonFields = []PersonField{
	PersonFieldName,
	PersonFieldEmail,
	PersonFieldDateOfBirth,
	PersonFieldGender,
	PersonFieldCountry,
	PersonFieldAddress,
}

// Label returns the human readable label of the field.
func (f PersonField) Label() string {
	switch f {
	case PersonFieldName:
		return "Person Name"
	case PersonFieldDateOfBirth:
		return "Date of Birth"
	case PersonFieldCountry:
		return "Country"
	default:
		return string(f)
	}
}

// ParsePersonField matches s against the searchable fields ignoring case.
func ParsePersonField(s string) (PersonField, bool) {
	for _, field := range SearchablePersonFields {
		if equalFold(string(field), s) {
			return field, true
		}
	}

	return "", false
}
