package handler

import (
	"net/http"
	"testing"
	"time"

	"contacts/config"
	"contacts/internal/domain/constants"
	domainerrors "contacts/internal/domain/errors"
	mockUsecase "contacts/internal/mocks/usecase"
	"contacts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func TestAccountHandler_Login(t *testing.T) {
	t.Run("sets auth cookie", func(t *testing.T) {
		uc := mockUsecase.NewMockAccountUsecase(t)
		h := NewAccountHandler(uc, &config.Config{Auth: &config.AuthConfig{SecureCookie: true}})
		expires := time.Now().Add(15 * time.Minute)

		c, rec := newJSONContext(http.MethodPost, "/account/login", `{"email":"ann@example.com","password":"secret"}`)
		uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ann@example.com", Password: "secret"}).
			Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", AccessTokenExpiresAt: expires}, nil)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		cookie := findCookie(rec.Result().Cookies(), constants.AuthCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "access", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, "/", cookie.Path)
	})

	t.Run("bad credentials", func(t *testing.T) {
		uc := mockUsecase.NewMockAccountUsecase(t)
		h := NewAccountHandler(uc, &config.Config{})

		c, rec := newJSONContext(http.MethodPost, "/account/login", `{"email":"ann@example.com","password":"wrong"}`)
		uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		assert.ErrorIs(t, h.Login(c), domainerrors.ErrInvalidCredentials)
		assert.Nil(t, findCookie(rec.Result().Cookies(), constants.AuthCookieName))
	})
}

func TestAccountHandler_Register(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, &config.Config{})

	c, rec := newJSONContext(http.MethodPost, "/account/register",
		`{"person_name":"Ann","email":"ann@example.com","phone_number":"123","password":"pw","confirm_password":"pw"}`)
	uc.EXPECT().Register(mock.Anything, mock.Anything).
		Return(&usecase.RegisterOutput{LoginOutput: usecase.LoginOutput{AccessToken: "access"}}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, findCookie(rec.Result().Cookies(), constants.AuthCookieName))
}

func TestAccountHandler_Logout(t *testing.T) {
	t.Run("clears cookie without body", func(t *testing.T) {
		uc := mockUsecase.NewMockAccountUsecase(t)
		h := NewAccountHandler(uc, &config.Config{})

		c, rec := newJSONContext(http.MethodPost, "/account/logout", "")
		uc.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{}).Return(nil)

		require.NoError(t, h.Logout(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		cookie := findCookie(rec.Result().Cookies(), constants.AuthCookieName)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Equal(t, -1, cookie.MaxAge)
	})

	t.Run("revokes refresh token", func(t *testing.T) {
		uc := mockUsecase.NewMockAccountUsecase(t)
		h := NewAccountHandler(uc, &config.Config{})

		c, _ := newJSONContext(http.MethodPost, "/account/logout", `{"refresh_token":"refresh"}`)
		uc.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "refresh"}).Return(nil)

		require.NoError(t, h.Logout(c))
	})
}
