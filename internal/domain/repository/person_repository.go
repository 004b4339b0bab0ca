// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"contacts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPersonNotFound is returned when no person matches the given ID.
var ErrPersonNotFound = errors.New("person not found")

// PersonRepository defines the persistence operations for persons.
// Every read loads the person's country.
type PersonRepository interface {
	// Create persists a new person.
	Create(ctx context.Context, person *entity.Person) error

	// FindAll returns every person ordered by name.
	FindAll(ctx context.Context) ([]*entity.Person, error)

	// FindByID returns ErrPersonNotFound when the ID is unknown.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error)

	// FindContaining returns persons whose field contains value, ignoring case.
	// PersonFieldCountry matches against the country name. Fields that cannot
	// be matched in the database (date of birth) return every person.
	FindContaining(ctx context.Context, field entity.PersonField, value string) ([]*entity.Person, error)

	// Update overwrites every column of an existing person.
	Update(ctx context.Context, person *entity.Person) error

	// Delete removes the person and returns ErrPersonNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
