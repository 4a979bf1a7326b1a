package handlers

import (
	"context"
	"net/http"

	"github.com/JP-maker/gamegauge-api/internal/logger"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password, humanToken string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// reCAPTCHA token issued to the client
	RecaptchaToken string `json:"recaptchaToken"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	AccessToken string `json:"accessToken"`

	// default: Bearer
	TokenType string `json:"tokenType"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return a bearer token whose subject is the email
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		fe := fieldErrors{}
		fe.email(req.Email)
		fe.required("password", req.Password)
		if fe.write(w) {
			return
		}

		logger.FromContext(r.Context()).Infow("login request", "email", req.Email)

		token, err := svc.Login(r.Context(), req.Email, req.Password, req.RecaptchaToken)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{AccessToken: token, TokenType: "Bearer"})
	}
}
