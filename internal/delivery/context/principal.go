package context

import (
	"context"

	"contacts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the echo.Context key of the authenticated user id.
	KeyUserID ContextKey = "user_id"

	// KeyRoles is the echo.Context key of the authenticated user's roles.
	KeyRoles ContextKey = "roles"
)

// Principal is the caller resolved from an access token.
type Principal struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// SetPrincipal stores the caller in both echo.Context and the request context.
func SetPrincipal(c echo.Context, p Principal) {
	c.Set(string(KeyUserID), p.UserID)
	c.Set(string(KeyRoles), p.Roles)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), p)))
}

// GetPrincipal returns the caller stored by the auth middleware.
func GetPrincipal(c echo.Context) (Principal, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)
	if !ok {
		return Principal{}, false
	}
	roles, _ := c.Get(string(KeyRoles)).(entity.Roles)

	return Principal{UserID: userID, Roles: roles}, true
}

type principalKey struct{}

// WithPrincipal returns a new context carrying the caller.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the caller from a standard context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)

	return p, ok
}
