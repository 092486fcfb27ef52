package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Zackrieg/PruebaImagineApps/internal/auth"
)

type AuthHandler struct {
	tokenService *auth.TokenService
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(tokenService *auth.TokenService) *AuthHandler {
	return &AuthHandler{tokenService: tokenService}
}

// IssueToken exchanges form-encoded credentials for a bearer token --> POST /token/
func (h *AuthHandler) IssueToken(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, err := h.tokenService.IssueToken(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "incorrect username or password",
				"kind":  "invalid_credentials",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "internal server error",
			"kind":  "store_unavailable",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
