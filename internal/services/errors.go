package services

import (
	"errors"
	"fmt"
)

// Error variables
var (
	ErrNotFound                 = errors.New("resource not found")
	ErrUserNotFound             = errors.New("user not found")
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrHumanVerificationFailed  = errors.New("human verification failed")
	ErrInvalidResetToken        = errors.New("invalid password reset token")
	ErrExpiredResetToken        = errors.New("password reset token has expired")
	ErrInvalidVerificationToken = errors.New("invalid email verification token")

	ErrUsernameTaken = &ConflictError{Field: "username"}
	ErrEmailTaken    = &ConflictError{Field: "email"}
)

// ConflictError reports that a unique user attribute is already in use.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s is already taken", e.Field)
}
