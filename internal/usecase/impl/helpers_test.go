package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var (
	anyTxFunc = mock.AnythingOfType("func(repository.RepositoryFactory) error")
	fixedNow  = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time { return fixedNow }

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return &t
}

func samplePerson(name string) *entity.Person {
	countryID := uuid.New()

	return &entity.Person{
		ID:                 uuid.New(),
		Name:               name,
		Email:              name + "@example.com",
		DateOfBirth:        date(1990, time.March, 14),
		Gender:             entity.GenderFemale,
		CountryID:          &countryID,
		Country:            &entity.Country{ID: countryID, Name: "Japan"},
		Address:            "1 Main Street",
		ReceiveNewsLetters: true,
	}
}

// runTx executes the transaction body against factory.
func runTx(factory repository.RepositoryFactory) func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}
