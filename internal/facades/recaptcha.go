package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JP-maker/gamegauge-api/internal/logger"
)

// DefaultRecaptchaURL is Google's siteverify endpoint.
const DefaultRecaptchaURL = "https://www.google.com/recaptcha/api/siteverify"

type recaptchaResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

// RecaptchaVerifier asks reCAPTCHA v3 whether a client token belongs to a human.
type RecaptchaVerifier struct {
	client    *http.Client
	secret    string
	verifyURL string
	threshold float64
}

func NewRecaptchaVerifier(secret, verifyURL string, threshold float64) *RecaptchaVerifier {
	if verifyURL == "" {
		verifyURL = DefaultRecaptchaURL
	}
	return &RecaptchaVerifier{
		client:    &http.Client{Timeout: 5 * time.Second},
		secret:    secret,
		verifyURL: verifyURL,
		threshold: threshold,
	}
}

// Check returns true when the token is valid and its score reaches the threshold.
// Transport and decoding failures count as a failed check.
func (v *RecaptchaVerifier) Check(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	form := url.Values{"secret": {v.secret}, "response": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to build recaptcha request", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		logger.FromContext(ctx).Errorw("recaptcha verification request failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	var body recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.FromContext(ctx).Errorw("failed to decode recaptcha response", "error", err)
		return false
	}

	logger.FromContext(ctx).Infow("recaptcha verified",
		"success", body.Success, "score", body.Score, "action", body.Action, "errors", body.ErrorCodes)

	return body.Success && body.Score >= v.threshold
}
