package repository

import (
	"context"

	"contacts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCountryNotFound is returned when no country matches the lookup.
	ErrCountryNotFound = errors.New("country not found")
	// ErrCountryDuplicate is returned when the unique name index rejects an insert.
	ErrCountryDuplicate = errors.New("country already exists")
)

// CountryRepository defines the persistence operations for countries.
type CountryRepository interface {
	Create(ctx context.Context, country *entity.Country) error

	// FindAll returns every country ordered by name.
	FindAll(ctx context.Context) ([]*entity.Country, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Country, error)

	// FindByName matches the name exactly.
	FindByName(ctx context.Context, name string) (*entity.Country, error)
}
