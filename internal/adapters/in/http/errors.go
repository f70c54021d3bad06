package http

import (
	"errors"
	"log/slog"
	"net/http"

	"frosty/internal/pkg/errs"
	"frosty/internal/pkg/validation"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// writeError maps err to a status code:
//
//	*validation.NotificationError   422 with every message
//	errs.ErrObjectNotFound          404
//	invalid, missing, out of range  400
//	anything else                   500
func (s *Server) writeError(c echo.Context, err error) error {
	var notification *validation.NotificationError
	switch {
	case errors.As(err, &notification):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: notification.Message(),
			Errors:  notification.Messages(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	default:
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
	}
}

func badRequest(c echo.Context, message string, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Message: message, Errors: []string{err.Error()}})
}
