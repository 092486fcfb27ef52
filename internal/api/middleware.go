package api

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Zackrieg/PruebaImagineApps/internal/auth"
)

// AccessGate guards every entity route: it extracts the bearer token,
// validates it through the token service, and stores the subject as
// the acting principal under the "username" context key. Failures get
// a 401 with a bearer challenge and stop the request.
func AccessGate(tokens *auth.TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			username, err := tokens.ValidateToken(tokenString)
			if err != nil {
				return nil, err
			}
			return username, nil
		},
		SuccessHandler: func(c echo.Context) {
			if username, ok := c.Get("user").(string); ok {
				c.Set("username", username)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "could not validate credentials",
				"kind":  "invalid_token",
			})
		},
	})
}
