// Package httperr maps service errors onto the JSON error responses the
// controllers return.
package httperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropplan/pkg/analytics"
)

// Status picks the HTTP status for err.
func Status(err error) int {
	var ve *analytics.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, analytics.ErrNotImplemented):
		return http.StatusNotImplemented
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// JSON writes {"error": ...} with the status matching err. Validation
// errors also carry the offending field.
func JSON(c echo.Context, err error) error {
	status := Status(err)
	body := map[string]string{"error": err.Error()}
	var ve *analytics.ValidationError
	if errors.As(err, &ve) && ve.Field != "" {
		body["field"] = ve.Field
	}
	if status == http.StatusNotFound {
		body["error"] = "not found"
	}
	return c.JSON(status, body)
}

func BadJSON(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
}
