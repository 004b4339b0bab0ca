package impl

import (
	"context"
	"testing"
	"time"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	mockRepo "contacts/internal/mocks/repository"
	mockSvc "contacts/internal/mocks/service"
	"contacts/internal/usecase"
	"contacts/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service          usecase.AccountUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	f := accountServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}
	srv := NewAccountService(AccountServiceParams{
		TxManager:        f.txManager,
		UserRepo:         f.userRepo,
		AuthRepo:         f.authRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		Validator:        validation.New(),
		Logger:           testLogger(),
	}).(*accountService)
	srv.clock = fixedClock
	f.service = srv

	return f
}

func (f accountServiceFixtures) expectSignIn(ctx context.Context, userID interface{}) {
	f.tokenService.EXPECT().GenerateTokens(userID, mock.Anything).Return("access", "refresh", nil)
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	f.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)
	f.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	f.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.TokenHash == "refresh-hash" && token.ExpiresAt.Equal(fixedNow.Add(7*24*time.Hour))
		})).
		Return(nil)
}

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		PersonName:      "Ada Lovelace",
		Email:           "ada@example.com",
		PhoneNumber:     "555-0100",
		Password:        "secret",
		ConfirmPassword: "secret",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, anyTxFunc).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, user *entity.User) {
					assert.NotEqual(t, uuid.Nil, user.ID)
					assert.Equal(t, entity.Roles{entity.RoleUser}, user.Roles)
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
					return auth.PasswordHash == "hashed_password" && auth.Provider == entity.ProviderTypeEmail
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
	fx.expectSignIn(ctx, mock.AnythingOfType("uuid.UUID"))

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, fixedNow.Add(15*time.Minute), output.AccessTokenExpiresAt)
	assert.Equal(t, input.Email, output.User.Email)
}

func TestAccountService_Register_Rejected(t *testing.T) {
	ctx := context.Background()

	t.Run("password mismatch", func(t *testing.T) {
		fx := createTestAccountService(t)
		input := registerInput()
		input.ConfirmPassword = "other"

		_, err := fx.service.Register(ctx, input)

		assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
	})

	t.Run("invalid role", func(t *testing.T) {
		fx := createTestAccountService(t)
		input := registerInput()
		input.Role = "Root"

		_, err := fx.service.Register(ctx, input)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
	})

	t.Run("weak password", func(t *testing.T) {
		fx := createTestAccountService(t)
		input := registerInput()
		fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).
			Return(domainerrors.ErrPasswordStrength.WithMessage("password must be at least 8 characters long"))

		_, err := fx.service.Register(ctx, input)

		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	})

	t.Run("email taken", func(t *testing.T) {
		fx := createTestAccountService(t)
		input := registerInput()
		fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
		fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

		mockFactory := mockRepo.NewMockRepositoryFactory(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
		mockFactory.EXPECT().NewAuthRepository().Return(mockRepo.NewMockAuthRepository(t))
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: uuid.New()}, nil)
		fx.txManager.EXPECT().Execute(ctx, anyTxFunc).RunAndReturn(runTx(mockFactory))

		_, err := fx.service.Register(ctx, input)

		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "hashed", Provider: entity.ProviderTypeEmail}

	t.Run("success", func(t *testing.T) {
		fx := createTestAccountService(t)
		user := &entity.User{ID: userID, Email: "ada@example.com", Roles: entity.Roles{entity.RoleAdmin}}

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "ada@example.com").Return(authRecord, nil)
		fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		fx.expectSignIn(ctx, userID)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: " ada@example.com ", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, user, output.User)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "who@example.com").Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "who@example.com", Password: "secret"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "ada@example.com").Return(authRecord, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAccountService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.tokenService.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fixedNow.Add(time.Hour)}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Roles: entity.Roles{entity.RoleUser}}, nil)
		fx.tokenService.EXPECT().GenerateAccessToken(userID, []string{"User"}).Return("new-access", nil)

		output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", output.AccessToken)
	})

	t.Run("access token is refused", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.tokenService.EXPECT().ValidateToken("access").Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "access"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("revoked", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.tokenService.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("expired", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.tokenService.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fixedNow.Add(-time.Second)}, nil)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}

func TestAccountService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token is not an error", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.tokenService.EXPECT().HashToken("gone").Return("gone-hash")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "gone-hash").Return(repository.ErrRefreshTokenNotFound)

		require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "gone"}))
	})

	t.Run("empty token", func(t *testing.T) {
		fx := createTestAccountService(t)

		require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{}))
	})

	t.Run("database error", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.tokenService.EXPECT().HashToken("t").Return("h")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "h").Return(errors.New("timeout"))

		assert.Error(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "t"}))
	})
}

func TestAccountService_PurgeExpiredSessions(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fx.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(3), nil)

	removed, err := fx.service.PurgeExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
