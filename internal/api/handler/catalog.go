package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shopdesk/store-admin/internal/api/metrics"
	"github.com/shopdesk/store-admin/internal/core/domain"
)

const headerIdempotencyKey = "Idempotency-Key"

// idempotencyKey returns the client's key, or a fresh one so the catalog API
// still receives a key for this attempt.
func idempotencyKey(c echo.Context) string {
	if key := c.Request().Header.Get(headerIdempotencyKey); key != "" {
		return key
	}
	return uuid.NewString()
}

// confirmed reads the ?confirm= flag of a delete.
func confirmed(c echo.Context) bool {
	ok, _ := strconv.ParseBool(c.QueryParam("confirm"))
	return ok
}

// sessionError reports whether a failed list read must end the request as an
// authentication problem rather than as an error state.
func sessionError(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized) ||
		errors.Is(err, domain.ErrNotLoggedIn) ||
		errors.Is(err, domain.ErrSessionLoading)
}

// writeFailed counts duplicate submissions before handing err to the error handler.
func writeFailed(resource string, err error) error {
	if errors.Is(err, domain.ErrDuplicateSubmission) {
		metrics.DuplicateSubmissionsTotal.WithLabelValues(resource).Inc()
	}
	return err
}

// deleteFailed turns a failed delete into the generic blocking notice.
func deleteFailed(resource string, err error) error {
	if errors.Is(err, domain.ErrDeleteFailed) {
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to delete "+resource).SetInternal(err)
	}
	return err
}
