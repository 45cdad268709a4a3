package ports

import (
	"context"

	"github.com/pathwise/career-advisor/internal/core/domain"
)

// SignupInput carries everything the signup operation accepts. Only Email,
// Password, FirstName and LastName are required; the rest seeds the profile.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string

	Age       int
	School    string
	Grade     string
	Interests []domain.Interest
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (string, *domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}

// PasswordHasher is the one-way adaptive hashing contract guarding stored
// credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A wrong-but-well-formed
	// password is false, not an error.
	Verify(password, hash string) bool
}

// TokenIssuer mints and validates signed, time-bounded identity claims.
// Verification is stateless: it never consults storage.
type TokenIssuer interface {
	Issue(accountID string) (string, error)
	// Verify returns the account ID the token asserts, or one of the
	// domain.ErrToken* sentinels.
	Verify(token string) (string, error)
}
