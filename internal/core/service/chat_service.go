package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pathwise/career-advisor/internal/core/domain"
	"github.com/pathwise/career-advisor/internal/core/ports"
)

const maxMessageLen = 2000

// ChatService relays one student question to the advisor model and records
// the exchange. The model is a synchronous external collaborator; everything
// beyond prompt assembly and transcript bookkeeping lives behind
// ports.AdvisorClient.
type ChatService struct {
	accounts ports.AccountRepository
	advisor  ports.AdvisorClient
	recorder ports.TranscriptRecorder
	history  ports.TranscriptStore
	logger   zerolog.Logger
}

func NewChatService(accounts ports.AccountRepository, advisor ports.AdvisorClient, recorder ports.TranscriptRecorder, history ports.TranscriptStore, logger zerolog.Logger) *ChatService {
	return &ChatService{accounts: accounts, advisor: advisor, recorder: recorder, history: history, logger: logger}
}

// Ask validates the message, personalizes the prompt with the student's
// profile, and returns the advisor's cleaned answer.
func (s *ChatService) Ask(ctx context.Context, accountID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", domain.ErrEmptyMessage
	}
	if len(message) > maxMessageLen {
		return "", domain.ErrMessageTooLong
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return "", err
	}

	answer, err := s.advisor.Complete(ctx, buildPrompt(account, message))
	if err != nil {
		s.logger.Warn().Err(err).Str("account_id", accountID).Msg("advisor call failed")
		return "", err
	}

	if s.recorder != nil {
		s.recorder.Record(domain.ChatExchange{
			AccountID: accountID,
			Message:   message,
			Response:  answer,
			AskedAt:   time.Now().UTC(),
		})
	}

	return answer, nil
}

// History returns the student's most recent exchanges, newest first.
func (s *ChatService) History(ctx context.Context, accountID string, limit int) ([]domain.ChatExchange, error) {
	return s.history.Recent(ctx, accountID, limit)
}

// buildPrompt frames the student's question for the advisor persona. Profile
// fields are included only when present.
func buildPrompt(account *domain.Account, message string) string {
	var b strings.Builder
	b.WriteString("You are a friendly career advisor for secondary-school students. ")
	b.WriteString("Give practical, encouraging guidance about studies, universities and careers. ")
	fmt.Fprintf(&b, "The student's name is %s.", account.FirstName)
	if account.Grade != "" {
		fmt.Fprintf(&b, " They are in grade %s.", account.Grade)
	}
	if len(account.Interests) > 0 {
		names := make([]string, len(account.Interests))
		for i, interest := range account.Interests {
			names[i] = interest.Name
		}
		fmt.Fprintf(&b, " Their interests include: %s.", strings.Join(names, ", "))
	}
	b.WriteString("\n\nStudent: ")
	b.WriteString(message)
	b.WriteString("\nAdvisor:")
	return b.String()
}
