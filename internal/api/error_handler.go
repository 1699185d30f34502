package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopdesk/store-admin/internal/core/currency"
	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/form"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Passes the catalog API's own message through for rejected writes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, fields := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg, Fields: fields})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, map[string]string) {
	// Echo's own errors (bind failures, 404 from router, etc.) and errors a
	// handler already translated.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError && he.Internal != nil {
			logError(log, c, he.Internal, "request failed")
		}
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	var verr *form.ValidationError
	if errors.As(err, &verr) {
		return http.StatusUnprocessableEntity, "invalid form", verr.Fields
	}
	var ferr currency.FieldErrors
	if errors.As(err, &ferr) {
		return http.StatusUnprocessableEntity, "invalid exchange rates", ferr
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrSessionLoading):
		return http.StatusServiceUnavailable, "session is loading", nil
	case errors.Is(err, domain.ErrNotLoggedIn):
		return http.StatusUnauthorized, "not logged in", nil
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, domain.PublicMessage(err, "session expired"), nil
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusPreconditionRequired, "deletion must be confirmed with confirm=true", nil
	case errors.Is(err, domain.ErrDuplicateSubmission):
		return http.StatusConflict, "duplicate submission", nil
	case errors.Is(err, domain.ErrDeleteFailed):
		logError(log, c, err, "delete failed")
		return http.StatusBadGateway, "Failed to delete record", nil
	case errors.Is(err, domain.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, domain.ErrImageTooLarge.Error(), nil
	case errors.Is(err, domain.ErrInvalidImageType):
		return http.StatusUnsupportedMediaType, domain.ErrInvalidImageType.Error(), nil
	case errors.Is(err, domain.ErrEmptyImageURL),
		errors.Is(err, domain.ErrIndexOutOfRange):
		return http.StatusUnprocessableEntity, err.Error(), nil
	}

	// Rejected or failed catalog calls carry a message meant for the operator.
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.Status
		if code < http.StatusBadRequest || code >= http.StatusInternalServerError {
			logError(log, c, err, "catalog api call failed")
			code = http.StatusBadGateway
		}
		return code, apiErr.Error(), nil
	}

	// Unexpected error: log the real cause, return a generic message.
	logError(log, c, err, "unhandled error")
	return http.StatusInternalServerError, "internal server error", nil
}

func logError(log zerolog.Logger, c echo.Context, err error, msg string) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg(msg)
}
