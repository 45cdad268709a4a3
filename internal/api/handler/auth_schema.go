package handler

import "github.com/pathwise/career-advisor/internal/core/domain"

// --- Request / Response types ---

type interestRequest struct {
	Name     string `json:"name"     validate:"required"`
	Category string `json:"category" validate:"required,oneof=academic artistic athletic technical social other"`
}

type signupRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`

	Age       int               `json:"age,omitempty"    validate:"omitempty,gte=10,lte=120"`
	School    string            `json:"school,omitempty"`
	Grade     string            `json:"grade,omitempty"`
	Interests []interestRequest `json:"interests,omitempty" validate:"omitempty,dive"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse carries the signed token and the public account view. The
// account's password hash is never serialized (json:"-" on the field).
type authResponse struct {
	Token string          `json:"token"`
	User  *domain.Account `json:"user"`
}

type logoutResponse struct {
	Message string `json:"message"`
}
