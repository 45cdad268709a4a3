package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pathwise/career-advisor/internal/core/domain"
)

// JWTIssuer mints and verifies HS256 identity claims. The signing secret is
// process-wide and read-only after startup; rotating it invalidates every
// outstanding token (accepted tradeoff — there is no revocation list).
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a claim for accountID expiring ttl from now.
func (i *JWTIssuer) Issue(accountID string) (string, error) {
	now := i.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify validates the token and returns the account ID it asserts. Failures
// map onto the domain token sentinels; verification never touches storage.
func (i *JWTIssuer) Verify(token string) (string, error) {
	if token == "" {
		return "", domain.ErrTokenMissing
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return i.now() }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", domain.ErrTokenSignatureInvalid
		default:
			return "", domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrTokenMalformed
	}
	return claims.Subject, nil
}

// TTL returns the lifetime applied to newly issued tokens.
func (i *JWTIssuer) TTL() time.Duration {
	return i.ttl
}
