package server

import (
	"errors"
	"fmt"
	"net/http"

	"connectvault/internal/apperr"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// httpErrorHandler maps the apperr taxonomy onto status codes in one place
// so handlers just return errors. Store failures are logged server-side
// and presented as retryable without internal detail.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		validationErr *apperr.ValidationError
		notFoundErr   *apperr.NotFoundError
		conflictErr   *apperr.ConflictError
		storeErr      *apperr.StoreError
		httpErr       *echo.HTTPError
	)

	var code int
	var body errorResponse

	switch {
	case errors.As(err, &validationErr):
		code = http.StatusBadRequest
		body = errorResponse{Error: validationErr.Message, Field: validationErr.Field}
	case errors.As(err, &notFoundErr):
		code = http.StatusNotFound
		body = errorResponse{Error: notFoundErr.Error()}
	case errors.As(err, &conflictErr):
		code = http.StatusConflict
		body = errorResponse{Error: conflictErr.Error()}
	case errors.As(err, &storeErr):
		c.Logger().Error(err)
		code = http.StatusServiceUnavailable
		body = errorResponse{Error: "storage temporarily unavailable, please retry"}
	case errors.As(err, &httpErr):
		code = httpErr.Code
		body = errorResponse{Error: fmt.Sprintf("%v", httpErr.Message)}
	default:
		c.Logger().Error(err)
		code = http.StatusInternalServerError
		body = errorResponse{Error: "internal server error"}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, body)
}
