package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"
	"contacts/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	validator        *validation.Validator
	logger           *slog.Logger
	clock            clock
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Validator        *validation.Validator
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		validator:        params.Validator,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user, its role and its email credential in one
// transaction and then signs the new user in.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrNilRequest)
	}

	input.Email = strings.TrimSpace(input.Email)
	input.PersonName = strings.TrimSpace(input.PersonName)
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	if input.Password != input.ConfirmPassword {
		return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidRole)
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", input.Email))

	newUser := &entity.User{
		ID:          uuid.New(),
		Email:       input.Email,
		PersonName:  input.PersonName,
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		Roles:       entity.Roles{role},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		_, err := userRepo.FindByEmail(ctx, newUser.Email)
		if err == nil {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up user by email")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrUserEmailTaken) {
				return errors.WithStack(domainerrors.ErrUserAlreadyExists)
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			ID:             uuid.New(),
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: newUser.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	output, err := srv.signIn(ctx, newUser)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{LoginOutput: *output}, nil
}

// Login checks the email credential and issues a new token pair.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrNilRequest)
	}
	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
	if errors.Is(err, repository.ErrAuthNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// bcrypt is CPU-bound, so the check runs outside any transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load login user")
	}

	output, err := srv.signIn(ctx, user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return output, nil
}

func (srv *accountService) signIn(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := srv.clock.now()
	refreshExpiresAt := now.Add(srv.tokenService.GetRefreshTokenDuration())

	refreshToken := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: refreshExpiresAt,
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.LoginOutput{
		AccessToken:           accessToken,
		RefreshToken:          refreshTokenString,
		AccessTokenExpiresAt:  now.Add(srv.tokenService.GetAccessTokenDuration()),
		RefreshTokenExpiresAt: refreshExpiresAt,
		User:                  user,
	}, nil
}

// RefreshToken issues a new access token. The refresh token itself is not rotated.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	if input == nil || input.RefreshToken == "" {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		srv.log(ctx).Warn("Refresh with invalid token", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if !stored.ExpiresAt.After(srv.clock.now()) {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	user, err := srv.userRepo.FindByID(ctx, stored.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout deletes the session stored for the refresh token.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input == nil || input.RefreshToken == "" {
		return nil
	}

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Debug("Logout with unknown refresh token")

		return nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// PurgeExpiredSessions removes refresh tokens past their expiry.
func (srv *accountService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired sessions")
	}
	if removed > 0 {
		srv.log(ctx).Info("Expired sessions purged", slog.Int64("count", removed))
	}

	return removed, nil
}
