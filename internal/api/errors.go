package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Zackrieg/PruebaImagineApps/internal/service"
)

var validate = validator.New()

// errorJSON maps a service error to its HTTP status and a structured
// body with a stable kind. Internal failures never leak their cause.
func errorJSON(c echo.Context, entityName string, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": entityName + " not found",
			"kind":  "not_found",
		})
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": ve.Message,
			"kind":  "validation",
		})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "internal server error",
			"kind":  "store_unavailable",
		})
	}
}

func invalidPayload(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{
		"error": msg,
		"kind":  "validation",
	})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("%s is required", strings.ToLower(verrs[0].Field()))
	}
	return "invalid request payload"
}
