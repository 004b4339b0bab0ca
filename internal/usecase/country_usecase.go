package usecase

import (
	"context"
	"io"

	"contacts/internal/domain/entity"

	"github.com/google/uuid"
)

// CountryAddRequest carries the name of a new country.
type CountryAddRequest struct {
	CountryName string `json:"country_name"`
}

// CountryResponse is a country as returned to clients.
type CountryResponse struct {
	CountryID   uuid.UUID `json:"country_id"`
	CountryName string    `json:"country_name"`
}

// NewCountryResponse maps a country entity.
func NewCountryResponse(country *entity.Country) *CountryResponse {
	return &CountryResponse{CountryID: country.ID, CountryName: country.Name}
}

// NewCountryResponses maps a list of countries.
func NewCountryResponses(countries []*entity.Country) []*CountryResponse {
	responses := make([]*CountryResponse, 0, len(countries))
	for _, c := range countries {
		responses = append(responses, NewCountryResponse(c))
	}

	return responses
}

// CountriesUsecase manages the country catalogue.
type CountriesUsecase interface {
	AddCountry(ctx context.Context, req *CountryAddRequest) (*CountryResponse, error)
	GetAllCountries(ctx context.Context) ([]*CountryResponse, error)

	// GetCountryByID returns nil without an error when id is nil or unknown.
	GetCountryByID(ctx context.Context, id *uuid.UUID) (*CountryResponse, error)

	// UploadCountriesFromExcel inserts the new names listed in the "Countries"
	// worksheet and returns how many were inserted.
	UploadCountriesFromExcel(ctx context.Context, r io.Reader) (int, error)
}
