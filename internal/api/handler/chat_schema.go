package handler

import "github.com/pathwise/career-advisor/internal/core/domain"

type chatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type historyResponse struct {
	Exchanges []domain.ChatExchange `json:"exchanges"`
}
