package ports

import (
	"context"

	"github.com/pathwise/career-advisor/internal/core/domain"
)

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	// Create inserts a new account and returns it with its assigned ID.
	// A colliding email fails with domain.ErrEmailTaken.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)

	// FindByEmail looks an account up by its (lowercased) email. The password
	// hash is excluded from the projection unless includeSecret is set; only
	// the login path asks for it.
	FindByEmail(ctx context.Context, email string, includeSecret bool) (*domain.Account, error)

	FindByID(ctx context.Context, id string) (*domain.Account, error)
}
