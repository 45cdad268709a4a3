package service

import (
	"context"

	"github.com/pathwise/career-advisor/internal/core/domain"
	"github.com/pathwise/career-advisor/internal/core/ports"
)

// ProfileService serves the authenticated student's own profile.
type ProfileService struct {
	repo ports.AccountRepository
}

func NewProfileService(repo ports.AccountRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the public account view for accountID. The identity comes from
// a verified token, but the backing record can still be gone (e.g. a stale
// token after manual cleanup) — that surfaces as domain.ErrAccountNotFound.
func (s *ProfileService) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = ""
	return account, nil
}
