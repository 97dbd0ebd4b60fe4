package models

import (
	"strings"
	"time"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
)

// User owns the fridge data. All entity rows are scoped by UserID.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest is the request body for creating an account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token and the user it belongs to.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (r *RegisterRequest) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return apperrors.NewValidation("a valid email is required")
	}
	if len(r.Password) < 8 {
		return apperrors.NewValidation("password must be at least 8 characters")
	}
	return nil
}
