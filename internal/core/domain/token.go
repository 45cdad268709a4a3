package domain

import "errors"

// Token verification failures. The auth middleware collapses all of these to
// a single 401 for clients; they stay distinct for logs and metrics.
var (
	ErrTokenMissing          = errors.New("token missing")
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)
