package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pathwise/career-advisor/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		kind   string
	}{
		{domain.ErrMissingFields, http.StatusBadRequest, "validation_error"},
		{domain.ErrEmptyMessage, http.StatusBadRequest, "validation_error"},
		{domain.ErrMessageTooLong, http.StatusBadRequest, "validation_error"},
		{domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid_credentials"},
		{domain.ErrEmailTaken, http.StatusConflict, "conflict"},
		{domain.ErrAccountNotFound, http.StatusNotFound, "not_found"},
		{domain.ErrAdvisorRateLimited, http.StatusTooManyRequests, "upstream_rate_limited"},
		{domain.ErrAdvisorUnavailable, http.StatusServiceUnavailable, "upstream_unavailable"},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "unauthenticated"},
		{domain.ErrTokenSignatureInvalid, http.StatusUnauthorized, "unauthenticated"},
	}

	for _, tc := range cases {
		status, resp := renderError(t, tc.err)
		if status != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, status)
		}
		if resp.Kind != tc.kind {
			t.Fatalf("%v: expected kind %q, got %q", tc.err, tc.kind, resp.Kind)
		}
		if resp.Error == "" {
			t.Fatalf("%v: missing human-readable message", tc.err)
		}
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	status, resp := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"))
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if resp.Kind != "unauthenticated" || resp.Error != "invalid token" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	status, resp := renderError(t, errors.New("pq: connection reset deep inside the driver"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if resp.Kind != "internal" {
		t.Fatalf("expected kind internal, got %q", resp.Kind)
	}
	if resp.Error != "internal server error" {
		t.Fatalf("internal details leaked: %q", resp.Error)
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	status, resp := renderError(t, errors.Join(errors.New("context"), domain.ErrEmailTaken))
	if status != http.StatusConflict || resp.Kind != "conflict" {
		t.Fatalf("wrapped sentinel not recognized: %d %+v", status, resp)
	}
}
