package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lugo/pkg/logger"
	"lugo/pkg/serrors"
)

type handler struct {
	deps Deps
}

// httpStatus maps a semantic error kind to its HTTP status code.
func httpStatus(err error) int {
	switch serrors.KindOf(err) {
	case serrors.ErrInvalid:
		return http.StatusBadRequest
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError translates a service error into a JSON error body. Internal
// failures are logged and their details kept out of the response.
func respondError(c echo.Context, err error) error {
	status := httpStatus(err)

	if status == http.StatusInternalServerError {
		logger.Error(c.Request().Context(), "Request failed", zap.Error(err))

		return c.JSON(status, errorResponse{Error: "internal error"})
	}

	var serr *serrors.Error
	msg := err.Error()
	if errors.As(err, &serr) {
		msg = serr.Message()
	}

	return c.JSON(status, errorResponse{Error: msg})
}
