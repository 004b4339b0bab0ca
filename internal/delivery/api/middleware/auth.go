package middleware

import (
	"strings"

	"contacts/internal/delivery/api/response"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/constants"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates callers by JWT and checks their roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate accepts an access token from the Authorization header or the
// Auth-Key cookie. A missing token is 401. An invalid bearer token is 401 and
// an invalid cookie is 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
			tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
			if !ok || tokenString == "" {
				return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
			}

			principal, ok := m.principal(tokenString)
			if !ok {
				return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
			}
			deliverycontext.SetPrincipal(c, principal)

			return next(c)
		}

		cookie, err := c.Cookie(constants.AuthCookieName)
		if err != nil || cookie.Value == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication is required")
		}

		principal, ok := m.principal(cookie.Value)
		if !ok {
			return response.Forbidden(c, "INVALID_AUTH_COOKIE", "The authentication cookie is not valid")
		}
		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

func (m *AuthMiddleware) principal(token string) (deliverycontext.Principal, bool) {
	claims, err := m.tokenSvc.ValidateToken(token)
	if err != nil || claims.Type != service.TokenTypeAccess {
		return deliverycontext.Principal{}, false
	}

	return deliverycontext.Principal{
		UserID: claims.UserID,
		Roles:  entity.RolesFromStrings(claims.Roles),
	}, true
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !principal.Roles.Contains(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
