package postgres

import (
	"context"
	"testing"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryRepository_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCountryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "countries" ORDER BY "countries"."name"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(uuid.New(), "Canada").
			AddRow(uuid.New(), "India"))

	countries, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Canada", countries[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountryRepository_FindByName(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCountryRepository(db)

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "countries" WHERE "countries"."name" = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id, "India"))

		country, err := repo.FindByName(context.Background(), "India")

		require.NoError(t, err)
		assert.Equal(t, id, country.ID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCountryRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "countries" WHERE "countries"."name" = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		country, err := repo.FindByName(context.Background(), "Atlantis")

		assert.Nil(t, country)
		assert.ErrorIs(t, err, repository.ErrCountryNotFound)
	})
}

func TestCountryRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCountryRepository(db)

	mock.ExpectExec(`INSERT INTO "countries"`).
		WillReturnError(&pgconn.PgError{Code: pgCodeUniqueViolation})

	err := repo.Create(context.Background(), &entity.Country{ID: uuid.New(), Name: "India"})

	assert.ErrorIs(t, err, repository.ErrCountryDuplicate)
}
