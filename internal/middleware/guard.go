package middleware

import (
	"net/http"
	"unicode/utf8"

	"github.com/deppfellow/portal-api/internal/errs"
	"github.com/labstack/echo/v4"
)

const (
	IDParam = "id"
	// MinIDLength is the length of a canonical UUID.
	MinIDLength = 36

	InvalidIDMessage = "Parámetro id inválido"
)

// RequireIDParam rejects requests whose :id path parameter is missing or
// shorter than a UUID, before any binding or handler runs. It is a cheap
// shape check only; the handler still validates the full UUID.
func RequireIDParam(entity string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Param(IDParam)
			if utf8.RuneCountInString(id) < MinIDLength {
				GetLogger(c).Warn().
					Str("entity", entity).
					Str("id", id).
					Msg("rejected request with invalid id parameter")

				return c.JSON(http.StatusBadRequest, errs.Message{Message: InvalidIDMessage})
			}

			return next(c)
		}
	}
}
