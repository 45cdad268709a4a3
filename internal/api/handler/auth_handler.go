package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pathwise/career-advisor/internal/api/metrics"
	"github.com/pathwise/career-advisor/internal/core/domain"
	"github.com/pathwise/career-advisor/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new account and returns a token plus the public view.
//
// @Summary      Sign up a new student
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, account, err := h.authService.Signup(c.Request().Context(), toSignupInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.SignupsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: account})
}

// Login authenticates a student and returns a token plus the public view.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, account, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: account})
}

// Logout is a stateless no-op: tokens are self-contained and cannot be
// revoked server-side, a known limitation. Clients discard the token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  logoutResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, logoutResponse{
		Message: "logged out; discard the token client-side",
	})
}

func toSignupInput(req signupRequest) ports.SignupInput {
	interests := make([]domain.Interest, len(req.Interests))
	for i, in := range req.Interests {
		interests[i] = domain.Interest{
			Name:     in.Name,
			Category: domain.InterestCategory(in.Category),
		}
	}
	return ports.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		School:    req.School,
		Grade:     req.Grade,
		Interests: interests,
	}
}
