package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/JP-maker/gamegauge-api/internal/services"
)

//go:generate mockgen -source=password.go -destination=mock_password.go -package=handlers

// forgotPasswordMessage is returned whether or not the email is known.
const forgotPasswordMessage = "If the email exists, a link has been sent."

// PasswordResetter runs the two steps of the password reset flow.
type PasswordResetter interface {
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ForgotPasswordRequest represents the JSON body for requesting a reset link
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// ResetPasswordRequest represents the JSON body for choosing a new password
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Token received by email
	// required: true
	Token string `json:"token"`

	// required: true
	NewPassword string `json:"newPassword"`
}

// NewForgotPasswordHandler returns an HTTP handler that emails a reset link.
// @Summary Request a password reset link
// @Description Always answers the same message so that registered emails cannot be probed.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Email of the account"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /api/auth/forgot-password [post]
func NewForgotPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil && !errors.Is(err, services.ErrUserNotFound) {
			logger.FromContext(r.Context()).Errorw("forgot password failed", "err", err)
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: forgotPasswordMessage})
	}
}

// NewResetPasswordHandler returns an HTTP handler that consumes a reset token.
// @Summary Reset a password
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Router /api/auth/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		fe := fieldErrors{}
		fe.required("token", req.Token)
		fe.password("newPassword", req.NewPassword)
		if fe.write(w) {
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password changed successfully"})
	}
}
