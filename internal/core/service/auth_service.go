package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pathwise/career-advisor/internal/core/domain"
	"github.com/pathwise/career-advisor/internal/core/ports"
)

// AuthService implements signup and login. It orchestrates the credential
// store, the password hasher and the token issuer; the store never sees a
// plaintext password and no caller ever sees the stored hash.
type AuthService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, issuer: issuer, logger: logger}
}

// Signup creates an account and returns a fresh token plus the public account
// view. A colliding email fails with domain.ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.Account, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return "", nil, domain.ErrMissingFields
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:        strings.ToLower(input.Email),
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Age:          input.Age,
		School:       input.School,
		Grade:        input.Grade,
		Interests:    input.Interests,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issuer.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("account_id", created.ID).Msg("account created")

	created.PasswordHash = ""
	return token, created, nil
}

// Login verifies credentials and returns a fresh token plus the public
// account view. An unknown email and a wrong password both fail with the
// same domain.ErrInvalidCredentials so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	account, err := s.repo.FindByEmail(ctx, strings.ToLower(email), true)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(account.ID)
	if err != nil {
		return "", nil, err
	}

	account.PasswordHash = ""
	return token, account, nil
}
