package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pathwise/career-advisor/internal/api/middleware"
	"github.com/pathwise/career-advisor/internal/core/domain"
)

type stubProfileService struct {
	getFn func(ctx context.Context, accountID string) (*domain.Account, error)
}

func (s *stubProfileService) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.getFn(ctx, accountID)
}

func TestProfileHandler_Get_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProfileService{
		getFn: func(_ context.Context, accountID string) (*domain.Account, error) {
			if accountID != "acc-1" {
				t.Fatalf("unexpected account id: %s", accountID)
			}
			return &domain.Account{ID: accountID, Email: "ann@x.com", FirstName: "Ann"}, nil
		},
	}
	handler := NewProfileHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.AccountIDKey, "acc-1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ann@x.com") {
		t.Fatalf("profile missing from response: %s", rec.Body.String())
	}
}

func TestProfileHandler_Get_NoIdentity(t *testing.T) {
	e := newTestEcho()
	handler := NewProfileHandler(&stubProfileService{
		getFn: func(context.Context, string) (*domain.Account, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestProfileHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	handler := NewProfileHandler(&stubProfileService{
		getFn: func(context.Context, string) (*domain.Account, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.AccountIDKey, "acc-gone")

	if err := handler.Get(c); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
