package handlers

import (
	"context"
	"net/http"

	"github.com/JP-maker/gamegauge-api/internal/models"
)

//go:generate mockgen -source=account.go -destination=mock_account.go -package=handlers

// EmailVerifier confirms the address of an account.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, email, token string) error
}

// ProfileGetter loads the public profile of the caller.
type ProfileGetter interface {
	GetProfile(ctx context.Context, email string) (*models.ProfileResponse, error)
}

// VerifyEmailRequest carries the pair sent in the verification link
// swagger:model VerifyEmailRequest
type VerifyEmailRequest struct {
	// required: true
	Email string `json:"email"`

	// required: true
	Token string `json:"token"`
}

// NewVerifyEmailHandler returns an HTTP handler that marks an email verified.
// @Summary Verify an email address
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyEmailRequest body handlers.VerifyEmailRequest true "Email and token from the link"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid token"
// @Router /api/auth/verify-email [post]
func NewVerifyEmailHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyEmailRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		fe := fieldErrors{}
		fe.required("email", req.Email)
		fe.required("token", req.Token)
		if fe.write(w) {
			return
		}

		if err := svc.VerifyEmail(r.Context(), req.Email, req.Token); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Email verified"})
	}
}

// NewProfileHandler returns the profile of the authenticated user.
// @Summary Get the current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse
// @Failure 401 "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/profile [get]
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), email)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
