package handler

import (
	"net/http"
	"time"

	"contacts/config"
	"contacts/internal/delivery/api/response"
	"contacts/internal/domain/constants"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AccountHandler serves registration and the token lifecycle.
type AccountHandler struct {
	uc           usecase.AccountUsecase
	secureCookie bool
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, cfg *config.Config) *AccountHandler {
	h := &AccountHandler{uc: uc}
	if cfg.Auth != nil {
		h.secureCookie = cfg.Auth.SecureCookie
	}

	return h
}

// Register creates an account and signs it in.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}
	h.setAuthCookie(c, output.AccessToken, output.AccessTokenExpiresAt)

	return response.Success(c, http.StatusCreated, output)
}

// Login signs a user in and sets the Auth-Key cookie.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}
	h.setAuthCookie(c, output.AccessToken, output.AccessTokenExpiresAt)

	return response.Success(c, http.StatusOK, output)
}

// RefreshToken exchanges a refresh token for a new access token.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var input usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Logout ends the session and clears the Auth-Key cookie.
func (h *AccountHandler) Logout(c echo.Context) error {
	var input usecase.LogoutInput
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&input); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid logout input")
		}
	}

	if err := h.uc.Logout(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}
	h.clearAuthCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

func (h *AccountHandler) setAuthCookie(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AccountHandler) clearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
