// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"contacts/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PersonAddRequest carries the fields of a new person.
type PersonAddRequest struct {
	PersonName         string        `json:"person_name" validate:"required,max=45"`
	Email              string        `json:"email" validate:"required,email,max=30"`
	DateOfBirth        *time.Time    `json:"date_of_birth" validate:"omitempty,adult"`
	Gender             entity.Gender `json:"gender" validate:"required,oneof=Male Female Other"`
	CountryID          *uuid.UUID    `json:"country_id"`
	Address            string        `json:"address" validate:"max=65"`
	ReceiveNewsLetters *bool         `json:"receive_news_letters" validate:"required"`
	PIN                *string       `json:"pin" validate:"omitempty,pin"`
}

// Normalize trims text fields and canonicalises the gender spelling.
// A blank PIN counts as no PIN.
func (r *PersonAddRequest) Normalize() {
	r.PersonName = strings.TrimSpace(r.PersonName)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
	if g, ok := entity.ParseGender(string(r.Gender)); ok {
		r.Gender = g
	}
	if r.CountryID != nil && *r.CountryID == uuid.Nil {
		r.CountryID = nil
	}
	if r.PIN != nil && strings.TrimSpace(*r.PIN) == "" {
		r.PIN = nil
	}
}

// ToPerson builds a person entity without an ID.
func (r *PersonAddRequest) ToPerson() *entity.Person {
	person := &entity.Person{
		Name:        r.PersonName,
		Email:       r.Email,
		DateOfBirth: r.DateOfBirth,
		Gender:      r.Gender,
		CountryID:   r.CountryID,
		Address:     r.Address,
		PIN:         r.PIN,
	}
	if r.ReceiveNewsLetters != nil {
		person.ReceiveNewsLetters = *r.ReceiveNewsLetters
	}

	return person
}

// PersonUpdateRequest carries the full replacement of an existing person.
type PersonUpdateRequest struct {
	PersonID uuid.UUID `json:"person_id" validate:"required"`
	PersonAddRequest
}

// ToPerson builds the updated person entity.
func (r *PersonUpdateRequest) ToPerson() *entity.Person {
	person := r.PersonAddRequest.ToPerson()
	person.ID = r.PersonID

	return person
}

// --- Output DTOs ---

// PersonResponse is the person as returned to clients and written to reports.
type PersonResponse struct {
	PersonID           uuid.UUID  `json:"person_id"`
	PersonName         string     `json:"person_name"`
	Email              string     `json:"email"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Age                *string    `json:"age,omitempty"`
	Gender             string     `json:"gender"`
	CountryID          *uuid.UUID `json:"country_id,omitempty"`
	Country            string     `json:"country,omitempty"`
	Address            string     `json:"address"`
	ReceiveNewsLetters bool       `json:"receive_news_letters"`
}

// NewPersonResponse maps a person to its response, computing the age at now.
func NewPersonResponse(person *entity.Person, now time.Time) *PersonResponse {
	return &PersonResponse{
		PersonID:           person.ID,
		PersonName:         person.Name,
		Email:              person.Email,
		DateOfBirth:        person.DateOfBirth,
		Age:                Age(person.DateOfBirth, now),
		Gender:             person.Gender.String(),
		CountryID:          person.CountryID,
		Country:            person.CountryName(),
		Address:            person.Address,
		ReceiveNewsLetters: person.ReceiveNewsLetters,
	}
}

// NewPersonResponses maps a list of persons.
func NewPersonResponses(persons []*entity.Person, now time.Time) []*PersonResponse {
	responses := make([]*PersonResponse, 0, len(persons))
	for _, p := range persons {
		responses = append(responses, NewPersonResponse(p, now))
	}

	return responses
}

// ToUpdateRequest turns the response back into an update request for the edit form.
// The PIN is not part of the response and stays empty.
func (r *PersonResponse) ToUpdateRequest() *PersonUpdateRequest {
	gender, _ := entity.ParseGender(r.Gender)
	newsletters := r.ReceiveNewsLetters

	return &PersonUpdateRequest{
		PersonID: r.PersonID,
		PersonAddRequest: PersonAddRequest{
			PersonName:         r.PersonName,
			Email:              r.Email,
			DateOfBirth:        r.DateOfBirth,
			Gender:             gender,
			CountryID:          r.CountryID,
			Address:            r.Address,
			ReceiveNewsLetters: &newsletters,
		},
	}
}

// Age renders the whole number of 365-day years between dob and now,
// rounded half away from zero, as "<n> years". A nil dob yields nil.
func Age(dob *time.Time, now time.Time) *string {
	if dob == nil {
		return nil
	}

	days := now.Sub(*dob).Hours() / 24
	age := fmt.Sprintf("%d years", int64(math.Round(days/365)))

	return &age
}

// SortOrder is the direction of a person list sort.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "ASC"
	SortOrderDesc SortOrder = "DESC"
)

// ParseSortOrder accepts ASC or DESC in any case.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(SortOrderAsc):
		return SortOrderAsc, true
	case string(SortOrderDesc):
		return SortOrderDesc, true
	default:
		return "", false
	}
}

// ExcelColumns selects which person columns go into the Excel report.
type ExcelColumns int

const (
	// ExcelColumnsFull writes every person column.
	ExcelColumnsFull ExcelColumns = iota
	// ExcelColumnsReduced writes name, email, date of birth and age only.
	ExcelColumnsReduced
)

// ParseExcelColumns maps "reduced" to ExcelColumnsReduced and anything else to full.
func ParseExcelColumns(s string) ExcelColumns {
	if strings.EqualFold(strings.TrimSpace(s), "reduced") {
		return ExcelColumnsReduced
	}

	return ExcelColumnsFull
}
