package http

import (
	"context"
	"errors"
	"net/http"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/settings"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/generated/servers"
	"courierhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps a use case error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrStorageUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNoCandidate),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, services.ErrTokenMalformed),
		errors.Is(err, services.ErrTokenInvalidSignature),
		errors.Is(err, services.ErrTokenExpired),
		errors.Is(err, order.ErrScanTokenNotActive),
		errors.Is(err, settings.ErrWeightsOutOfTolerance),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := StatusFor(err)
	message := err.Error()
	switch {
	case status == http.StatusServiceUnavailable:
		s.logger.WarnContext(ctx.Request().Context(), "storage unavailable",
			"path", ctx.Path(), "error", err)
		message = "Storage is temporarily unavailable, retry later"
	case status >= http.StatusInternalServerError:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"path", ctx.Path(), "error", err)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

func scanFailureReason(err error) string {
	switch {
	case errors.Is(err, services.ErrTokenExpired):
		return "expired"
	case errors.Is(err, services.ErrTokenInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, services.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, order.ErrScanTokenNotActive):
		return "superseded"
	case errors.Is(err, order.ErrInvalidTransition):
		return "invalid_transition"
	default:
		return "failed"
	}
}
