package ports

import (
	"context"

	"github.com/pathwise/career-advisor/internal/core/domain"
)

type ProfileService interface {
	Get(ctx context.Context, accountID string) (*domain.Account, error)
}
