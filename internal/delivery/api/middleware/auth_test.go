package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/constants"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"
	mockSvc "contacts/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func newAuthContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	validClaims := &service.Claims{UserID: userID, Roles: []string{"User"}, Type: service.TokenTypeAccess}

	tests := []struct {
		name       string
		setup      func(req *http.Request, tokens *mockSvc.MockTokenService)
		wantStatus int
		wantUser   bool
	}{
		{
			name:       "missing credentials",
			setup:      func(*http.Request, *mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "valid bearer token",
			setup: func(req *http.Request, tokens *mockSvc.MockTokenService) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer good")
				tokens.EXPECT().ValidateToken("good").Return(validClaims, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name: "malformed authorization header",
			setup: func(req *http.Request, _ *mockSvc.MockTokenService) {
				req.Header.Set(echo.HeaderAuthorization, "Token abc")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid bearer token",
			setup: func(req *http.Request, tokens *mockSvc.MockTokenService) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
				tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "refresh token used as access token",
			setup: func(req *http.Request, tokens *mockSvc.MockTokenService) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer refresh")
				tokens.EXPECT().ValidateToken("refresh").
					Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "valid cookie",
			setup: func(req *http.Request, tokens *mockSvc.MockTokenService) {
				req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: "good"})
				tokens.EXPECT().ValidateToken("good").Return(validClaims, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name: "invalid cookie is forbidden",
			setup: func(req *http.Request, tokens *mockSvc.MockTokenService) {
				req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: "stale"})
				tokens.EXPECT().ValidateToken("stale").Return(nil, errors.New("bad signature"))
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			req := httptest.NewRequest(http.MethodGet, "/persons", nil)
			tt.setup(req, tokens)
			c, rec := newAuthContext(req)

			err := NewAuthMiddleware(tokens).Authenticate(okHandler)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			principal, ok := deliverycontext.GetPrincipal(c)
			assert.Equal(t, tt.wantUser, ok)
			if tt.wantUser {
				assert.Equal(t, userID, principal.UserID)
				assert.Equal(t, entity.Roles{entity.RoleUser}, principal.Roles)

				fromCtx, ok := deliverycontext.PrincipalFromContext(c.Request().Context())
				require.True(t, ok)
				assert.Equal(t, userID, fromCtx.UserID)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	t.Run("no principal", func(t *testing.T) {
		c, rec := newAuthContext(httptest.NewRequest(http.MethodDelete, "/persons/1", nil))
		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role", func(t *testing.T) {
		c, rec := newAuthContext(httptest.NewRequest(http.MethodDelete, "/persons/1", nil))
		deliverycontext.SetPrincipal(c, deliverycontext.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}})
		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Admin")
	})

	t.Run("has role", func(t *testing.T) {
		c, rec := newAuthContext(httptest.NewRequest(http.MethodDelete, "/persons/1", nil))
		deliverycontext.SetPrincipal(c, deliverycontext.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}})
		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
