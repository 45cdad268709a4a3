package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements ports.PasswordHasher with golang.org/x/crypto/bcrypt.
// bcrypt embeds a random salt and the cost factor in the hash itself, so two
// hashes of the same password never match and the cost can be raised without
// breaking stored credentials.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost factor. Costs outside
// bcrypt's valid range fall back to the default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. Any mismatch, including a
// malformed stored hash, is false.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
