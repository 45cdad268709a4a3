package ports

import (
	"context"

	"github.com/pathwise/career-advisor/internal/core/domain"
)

// ChatService answers one student message via the advisor model.
type ChatService interface {
	Ask(ctx context.Context, accountID, message string) (string, error)
	History(ctx context.Context, accountID string, limit int) ([]domain.ChatExchange, error)
}

// AdvisorClient is the boundary to the locally hosted inference endpoint.
// The model itself is an opaque text-completion service.
type AdvisorClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TranscriptRecorder accepts completed exchanges for asynchronous
// persistence. Recording must not block the chat request path.
type TranscriptRecorder interface {
	Record(exchange domain.ChatExchange)
}

// TranscriptStore keeps recent chat exchanges per account.
type TranscriptStore interface {
	Append(ctx context.Context, exchange domain.ChatExchange) error
	Recent(ctx context.Context, accountID string, limit int) ([]domain.ChatExchange, error)
}
