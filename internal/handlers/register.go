package handlers

import (
	"context"
	"net/http"

	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/JP-maker/gamegauge-api/internal/models"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password, humanToken string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// reCAPTCHA token issued to the client
	// required: true
	RecaptchaToken string `json:"recaptchaToken"`
}

func (req RegisterRequest) validate() fieldErrors {
	fe := fieldErrors{}
	fe.username(req.Username)
	fe.email(req.Email)
	fe.password("password", req.Password)
	return fe
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an unverified account and emails a verification link. Username and email must be unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.MessageResponse "User successfully registered"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Human verification failed"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.validate().write(w) {
			return
		}

		logger.FromContext(r.Context()).Infow("register request", "username", req.Username)

		if _, err := svc.Register(r.Context(), req.Username, req.Email, req.Password, req.RecaptchaToken); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User registered successfully"})
	}
}
