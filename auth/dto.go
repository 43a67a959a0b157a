// Package auth provides authentication and authorization functionality
// This file, `dto.go` (Data Transfer Object), defines structures used for
// transferring data in API requests and responses related to authentication.
// The `validate` tags are checked by the validate package before any service call.
package auth

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,nonul" example:"Ann"`
	Email    string `json:"email" validate:"required,nonul" example:"ann@x.com"`
	Password string `json:"password" validate:"required,nonul" example:"secret123"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,nonul" example:"ann@x.com"`
	Password string `json:"password" validate:"required,nonul" example:"secret123"`
}

// SessionResponse is written by the SessionResponder after a successful
// registration or login. The same token is also set as the `token` cookie.
type SessionResponse struct {
	Success bool       `json:"success" example:"true"`
	User    PublicUser `json:"user"`
	Token   string     `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// MessageResponse is a success body that carries only a message.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Logged out"`
}
