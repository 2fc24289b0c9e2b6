package model

import "time"

// User represents a back-office account identified by phone number
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ChangePasswordRequest carries the old and new password for a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UpdatePhoneRequest carries a new phone number plus the current password
type UpdatePhoneRequest struct {
	NewPhone string `json:"newPhone"`
	Password string `json:"password"`
}
