package usecase

import (
	"context"
	"time"

	"contacts/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	PersonName      string      `json:"person_name" validate:"required,max=100"`
	Email           string      `json:"email" validate:"required,email,max=255"`
	PhoneNumber     string      `json:"phone_number" validate:"required,max=30"`
	Password        string      `json:"password" validate:"required"`
	ConfirmPassword string      `json:"confirm_password" validate:"required"`
	Role            entity.Role `json:"role"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries the refresh token to exchange.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutInput carries the refresh token of the session to end.
type LogoutInput struct {
	RefreshToken string `json:"refresh_token"`
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful sign in.
type LoginOutput struct {
	AccessToken           string       `json:"access_token"`
	RefreshToken          string       `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	User                  *entity.User `json:"user"`
}

// RegisterOutput returns the new account, already signed in.
type RegisterOutput struct {
	LoginOutput
}

// RefreshTokenOutput returns a fresh access token.
type RefreshTokenOutput struct {
	AccessToken string `json:"access_token"`
}

// AccountUsecase defines the identity operations.
type AccountUsecase interface {
	// Register creates the account and signs it in.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	// Logout ends the session; an unknown token is not an error.
	Logout(ctx context.Context, input *LogoutInput) error
	// PurgeExpiredSessions deletes expired refresh tokens and returns how many were removed.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// RoleSeeder makes sure the application roles exist.
type RoleSeeder interface {
	Seed(ctx context.Context) error
}
