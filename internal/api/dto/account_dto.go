package dto

import (
	"github.com/spec-kit/dental-records/internal/domain"
	"github.com/spec-kit/dental-records/internal/service"
)

// SignupRequest payload for new accounts.
type SignupRequest struct {
	FirstName string      `json:"firstname" validate:"required,min=1,max=100"`
	LastName  string      `json:"lastname" validate:"required,min=1,max=100"`
	Email     string      `json:"email" validate:"required,email,max=255"`
	Password  string      `json:"password" validate:"required,min=8,max=100,maxbytes=72"`
	Role      domain.Role `json:"role" validate:"omitempty,role"`
}

// ToInput converts the payload into a service call.
func (r SignupRequest) ToInput() service.RegisterInput {
	return service.RegisterInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Role:      r.Role,
	}
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by a successful login. The session id is also
// set as a cookie.
type LoginResponse struct {
	User      *domain.AccountView `json:"user"`
	SessionID string              `json:"session_id"`
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
