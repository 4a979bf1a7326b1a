package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID                  int64      `json:"id" db:"id"`                         // Primary key
	Username            string     `json:"username" db:"username"`             // Unique username
	Email               string     `json:"email" db:"email"`                   // Unique email, token subject
	PasswordHash        string     `json:"-" db:"password_hash"`               // bcrypt digest
	EmailVerified       bool       `json:"email_verified" db:"email_verified"` // Set by the verification flow
	VerificationToken   *string    `json:"-" db:"verification_token"`          // Pending email verification token
	ResetPasswordToken  *string    `json:"-" db:"reset_password_token"`        // Pending reset token
	ResetTokenExpiresAt *time.Time `json:"-" db:"reset_token_expires_at"`      // Set together with ResetPasswordToken
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`         // Creation timestamp
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`         // Last update timestamp
}

// SetResetToken stores a reset token and its expiry together.
func (u *UserDB) SetResetToken(token string, expiresAt time.Time) {
	u.ResetPasswordToken = &token
	u.ResetTokenExpiresAt = &expiresAt
}

// ClearResetToken removes the reset token and its expiry together.
func (u *UserDB) ClearResetToken() {
	u.ResetPasswordToken = nil
	u.ResetTokenExpiresAt = nil
}

// ProfileResponse is the public view of the authenticated user.
type ProfileResponse struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
}
