package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pathwise/career-advisor/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors: a stable
// machine-readable kind plus a human-readable message. Internals never leak.
type errorResponse struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"kind": "...", "error": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, kind, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Kind: kind, Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, middleware 401s).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, kindForStatus(he.Code), fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "validation_error", "missing required fields"
	case errors.Is(err, domain.ErrEmptyMessage):
		return http.StatusBadRequest, "validation_error", "message is empty"
	case errors.Is(err, domain.ErrMessageTooLong):
		return http.StatusBadRequest, "validation_error", "message too long"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "invalid_credentials", "invalid email or password"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "conflict", "email already registered"
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "not_found", "account not found"
	case errors.Is(err, domain.ErrAdvisorRateLimited):
		return http.StatusTooManyRequests, "upstream_rate_limited", "advisor is receiving too many requests, try again shortly"
	case errors.Is(err, domain.ErrAdvisorUnavailable):
		return http.StatusServiceUnavailable, "upstream_unavailable", "advisor is unavailable"
	case errors.Is(err, domain.ErrTokenMissing),
		errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenSignatureInvalid):
		return http.StatusUnauthorized, "unauthenticated", "invalid or missing token"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal", "internal server error"
}

func kindForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnauthorized:
		return "unauthenticated"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusTooManyRequests:
		return "upstream_rate_limited"
	case http.StatusServiceUnavailable:
		return "upstream_unavailable"
	default:
		return "internal"
	}
}
