package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pathwise/career-advisor/internal/api/metrics"
	"github.com/pathwise/career-advisor/internal/core/domain"
	"github.com/pathwise/career-advisor/internal/core/ports"
)

// ChatHandler relays student questions to the advisor model.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Ask handles POST /user/chat.
//
// @Summary      Ask the career advisor a question
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      chatRequest  true  "Student message"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /user/chat [post]
func (h *ChatHandler) Ask(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		metrics.ChatRequestsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	answer, err := h.service.Ask(c.Request().Context(), accountID, req.Message)
	if err != nil {
		metrics.ChatRequestsTotal.WithLabelValues(chatResult(err)).Inc()
		return err
	}

	metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, chatResponse{Response: answer})
}

// History handles GET /user/chat/history.
//
// @Summary      Recent advisor exchanges, newest first
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum exchanges to return"
// @Success      200    {object}  historyResponse
// @Failure      401    {object}  map[string]string
// @Router       /user/chat/history [get]
func (h *ChatHandler) History(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	exchanges, err := h.service.History(c.Request().Context(), accountID, limit)
	if err != nil {
		return err
	}
	if exchanges == nil {
		exchanges = []domain.ChatExchange{}
	}

	return c.JSON(http.StatusOK, historyResponse{Exchanges: exchanges})
}

func chatResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyMessage), errors.Is(err, domain.ErrMessageTooLong):
		return "invalid"
	case errors.Is(err, domain.ErrAdvisorRateLimited):
		return "rate_limited"
	case errors.Is(err, domain.ErrAdvisorUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
