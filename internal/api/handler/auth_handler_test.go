package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pathwise/career-advisor/internal/core/domain"
	"github.com/pathwise/career-advisor/internal/core/ports"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, input ports.SignupInput) (string, *domain.Account, error)
	loginFn  func(ctx context.Context, email, password string) (string, *domain.Account, error)
}

func (s *stubAuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.Account, error) {
	return s.signupFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	return s.loginFn(ctx, email, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(_ context.Context, input ports.SignupInput) (string, *domain.Account, error) {
			if input.Email != "ann@x.com" || input.FirstName != "Ann" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "tok-123", &domain.Account{
				ID:           "acc-1",
				Email:        input.Email,
				FirstName:    input.FirstName,
				LastName:     input.LastName,
				PasswordHash: "should-never-appear",
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"ann@x.com","password":"secret-pass","first_name":"Ann","last_name":"Lee"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	raw := rec.Body.String()
	if strings.Contains(raw, "should-never-appear") || strings.Contains(raw, "password") {
		t.Fatalf("response leaks the password hash: %s", raw)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok-123" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "ann@x.com" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Signup_ValidationFailures(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(context.Context, ports.SignupInput) (string, *domain.Account, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	cases := []string{
		`{"password":"secret-pass","first_name":"Ann","last_name":"Lee"}`,
		`{"email":"not-an-email","password":"secret-pass","first_name":"Ann","last_name":"Lee"}`,
		`{"email":"ann@x.com","password":"short","first_name":"Ann","last_name":"Lee"}`,
		`{"email":"ann@x.com","password":"secret-pass","last_name":"Lee"}`,
		`not-json`,
	}
	for i, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Signup(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400 HTTPError, got %v", i, err)
		}
	}
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(context.Context, ports.SignupInput) (string, *domain.Account, error) {
			return "", nil, domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"ann@x.com","password":"secret-pass","first_name":"Ann","last_name":"Lee"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// The central error handler maps ErrEmailTaken to 409; the handler just
	// propagates the sentinel.
	if err := handler.Signup(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.Account, error) {
			if email != "ann@x.com" || password != "secret-pass" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "tok-456", &domain.Account{ID: "acc-1", Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"ann@x.com","password":"secret-pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok-456" {
		t.Fatalf("expected token, got %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.Account, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"ann@x.com","password":"wrong-pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
