package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pathwise/career-advisor/internal/core/ports"
)

// ProfileHandler serves the authenticated student's profile.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /user/profile.
//
// @Summary      Get the authenticated student's profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Account
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	account, err := h.service.Get(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, account)
}
