package domain

import (
	"errors"
	"time"
)

var ErrEmptyMessage = errors.New("message is empty")
var ErrMessageTooLong = errors.New("message too long")

// Advisor upstream failures, kept distinct so the API can answer 503 vs 429.
var ErrAdvisorUnavailable = errors.New("advisor unavailable")
var ErrAdvisorRateLimited = errors.New("advisor rate limited")

// ChatExchange is one question/answer pair with the advisor.
type ChatExchange struct {
	AccountID string    `json:"account_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	AskedAt   time.Time `json:"asked_at"`
}
