package postgres

import (
	"context"
	"testing"
	"time"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_WithRoles(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "user_roles"`).WillReturnResult(sqlmock.NewResult(0, 1))

	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", Roles: entity.Roles{entity.RoleAdmin}}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_EmailTaken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: pgCodeUniqueViolation})

	err := repo.Create(context.Background(), &entity.User{ID: uuid.New(), Email: "ann@example.com"})

	assert.ErrorIs(t, err, repository.ErrUserEmailTaken)
}

func TestUserRepository_FindByEmail_LoadsRoles(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE LOWER\(email\) = LOWER\(\$1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "person_name", "phone_number", "created_at", "updated_at"}).
			AddRow(id, "ann@example.com", "Ann", "555", now, now))
	mock.ExpectQuery(`SELECT \* FROM "user_roles" WHERE "user_roles"."user_id" = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "role_name"}).AddRow(id, "User"))

	user, err := repo.FindByEmail(context.Background(), "ANN@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Ann", user.PersonName)
	assert.True(t, user.Roles.Contains(entity.RoleUser))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestRoleRepository_EnsureRoles(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleRepository(db)

	mock.ExpectExec(`INSERT INTO "roles" .* ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureRoles(context.Background(), entity.AllRoles))
	require.NoError(t, repo.EnsureRoles(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_DeleteByHash_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)

	mock.ExpectExec(`DELETE FROM "refresh_tokens" WHERE "refresh_tokens"."token_hash" = \$1`).
		WithArgs("hash").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteRefreshTokenByHash(context.Background(), "hash")

	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestRefreshTokenRepository_FindByHash(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)

	id, userID := uuid.New(), uuid.New()
	expires := time.Now().Add(time.Hour)
	mock.ExpectQuery(`SELECT \* FROM "refresh_tokens" WHERE "refresh_tokens"."token_hash" = \$1`).
		WithArgs("hash", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at"}).
			AddRow(id, userID, "hash", expires, time.Now()))

	token, err := repo.FindRefreshTokenByHash(context.Background(), "hash")

	require.NoError(t, err)
	assert.Equal(t, id, token.ID)
	assert.Equal(t, userID, token.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_DeleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)

	mock.ExpectExec(`DELETE FROM "refresh_tokens" WHERE "refresh_tokens"."expires_at" < \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpiredRefreshTokens(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepository_FindAuthentication(t *testing.T) {
	t.Run("found ignoring case", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAuthRepository(db)

		id, userID := uuid.New(), uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "user_authentications" WHERE "user_authentications"."provider" = \$1 AND LOWER\(provider_user_id\) = LOWER\(\$2\)`).
			WithArgs(string(entity.ProviderTypeEmail), "ANN@example.com", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "provider", "provider_user_id", "password_hash", "created_at"}).
				AddRow(id, userID, string(entity.ProviderTypeEmail), "ann@example.com", "hashed", time.Now()))

		auth, err := repo.FindAuthentication(context.Background(), entity.ProviderTypeEmail, "ANN@example.com")

		require.NoError(t, err)
		assert.Equal(t, userID, auth.UserID)
		assert.Equal(t, "hashed", auth.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAuthRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "user_authentications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindAuthentication(context.Background(), entity.ProviderTypeEmail, "nobody@example.com")

		assert.ErrorIs(t, err, repository.ErrAuthNotFound)
	})
}

func TestActivityRepository_FindRecent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "activities" ORDER BY "activities"."recorded_at" DESC LIMIT \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "event_type", "summary", "occurred_at", "recorded_at"}).
			AddRow(uuid.New(), uuid.New(), "person.created", "Ann added", time.Now(), time.Now()))

	activities, err := repo.FindRecent(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "person.created", activities[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	mock.ExpectExec(`INSERT INTO "activities"`).
		WillReturnError(&pgconn.PgError{Code: pgCodeUniqueViolation})

	err := repo.Create(context.Background(), &entity.Activity{ID: uuid.New(), EventID: uuid.New(), EventType: "person.created"})

	assert.ErrorIs(t, err, repository.ErrActivityDuplicate)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := repository.ErrCountryDuplicate
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		assert.NotNil(t, f.NewCountryRepository())

		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "countries"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.NewCountryRepository().Create(context.Background(), &entity.Country{ID: uuid.New(), Name: "Peru"})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `%50\% off\_now%`, containsPattern("50% off_now"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
