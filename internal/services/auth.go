package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/JP-maker/gamegauge-api/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// dummyHash is compared against when the email is unknown so that a failed
// login costs the same bcrypt round whether or not the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

const (
	defaultResetTokenTTL = 30 * time.Minute
	defaultFrontendURL   = "https://gamegauge.fr"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByResetToken(ctx context.Context, token string) (*models.UserDB, error)
	GetByVerificationToken(ctx context.Context, token string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, user *models.UserDB) error
}

// PasswordHasher hashes and compares passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, digest string) bool
}

// TokenGenerator issues bearer tokens for a subject.
type TokenGenerator interface {
	Generate(ctx context.Context, subject string, extraClaims map[string]any) (string, error)
}

// HumanVerifier checks a client-side anti-bot token.
type HumanVerifier interface {
	Check(ctx context.Context, token string) bool
}

// Notifier delivers account links to users.
type Notifier interface {
	SendResetLink(ctx context.Context, to, link string) error
	SendVerificationLink(ctx context.Context, to, link string) error
}

// ResetThrottle limits how often a reset can be requested for one email.
type ResetThrottle interface {
	Acquire(ctx context.Context, email string) (bool, error)
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithResetThrottle limits forgot-password requests per email.
func WithResetThrottle(throttle ResetThrottle) AuthOption {
	return func(s *AuthService) { s.throttle = throttle }
}

// WithFrontendURL sets the base URL of links sent by email.
func WithFrontendURL(frontendURL string) AuthOption {
	return func(s *AuthService) {
		if frontendURL != "" {
			s.frontendURL = strings.TrimRight(frontendURL, "/")
		}
	}
}

// WithResetTokenTTL sets how long a password reset token stays valid.
func WithResetTokenTTL(ttl time.Duration) AuthOption {
	return func(s *AuthService) {
		if ttl > 0 {
			s.resetTTL = ttl
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) {
		s.now = now
		s.events.now = now
	}
}

// WithEventWriter publishes account events to Kafka.
func WithEventWriter(writer KafkaWriter) AuthOption {
	return func(s *AuthService) { s.events.writer = writer }
}

// AuthService handles registration, login and the password reset and
// email verification flows.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	hasher      PasswordHasher
	tokens      TokenGenerator
	verifier    HumanVerifier
	notifier    Notifier
	throttle    ResetThrottle
	events      eventPublisher
	frontendURL string
	resetTTL    time.Duration
	now         func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	tokens TokenGenerator,
	verifier HumanVerifier,
	notifier Notifier,
	opts ...AuthOption,
) *AuthService {
	svc := &AuthService{
		reader:      reader,
		writer:      writer,
		hasher:      hasher,
		tokens:      tokens,
		verifier:    verifier,
		notifier:    notifier,
		events:      eventPublisher{now: time.Now},
		frontendURL: defaultFrontendURL,
		resetTTL:    defaultResetTokenTTL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Register creates an unverified account and emails a verification link.
func (svc *AuthService) Register(ctx context.Context, username, email, password, humanToken string) (*models.UserDB, error) {
	log := logger.FromContext(ctx)

	if !svc.verifier.Check(ctx, humanToken) {
		log.Warnw("human verification failed on register", "username", username)
		return nil, ErrHumanVerificationFailed
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		log.Errorw("failed to check username", "err", err)
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		log.Infow("username already taken", "username", username)
		return nil, ErrUsernameTaken
	}

	existing, err = svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to check email", "err", err)
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		log.Infow("email already taken", "email", email)
		return nil, ErrEmailTaken
	}

	hashed, err := svc.hasher.Hash(password)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	verification := uuid.NewString()
	user := &models.UserDB{
		Username:          username,
		Email:             email,
		PasswordHash:      hashed,
		EmailVerified:     false,
		VerificationToken: &verification,
	}
	if err := svc.writer.Create(ctx, user); err != nil {
		var dup *models.DuplicateKeyError
		if errors.As(err, &dup) {
			log.Infow("unique constraint hit on register", "field", dup.Field)
			if dup.Field == "email" {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		log.Errorw("failed to save user", "err", err)
		return nil, fmt.Errorf("save user: %w", err)
	}

	link := fmt.Sprintf("%s/verify-email?token=%s&email=%s",
		svc.frontendURL, url.QueryEscape(verification), url.QueryEscape(email))
	if err := svc.notifier.SendVerificationLink(ctx, email, link); err != nil {
		log.Errorw("failed to send verification email", "email", email, "err", err)
	}

	svc.events.publish(ctx, models.EventUserRegistered, email, 0, user.ID)
	return user, nil
}

// Login checks the credentials and returns a bearer token whose subject is the email.
func (svc *AuthService) Login(ctx context.Context, email, password, humanToken string) (string, error) {
	log := logger.FromContext(ctx)

	if !svc.verifier.Check(ctx, humanToken) {
		log.Warnw("human verification failed on login", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := svc.authenticate(ctx, email, password); err != nil {
		return "", err
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to reload user", "err", err)
		return "", fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.Email, map[string]any{"username": user.Username})
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}

func (svc *AuthService) authenticate(ctx context.Context, email, password string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "err", err)
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		svc.hasher.Matches(password, dummyHash)
		logger.FromContext(ctx).Infow("login for unknown email", "email", email)
		return ErrInvalidCredentials
	}
	if !svc.hasher.Matches(password, user.PasswordHash) {
		logger.FromContext(ctx).Infow("invalid credentials", "email", email)
		return ErrInvalidCredentials
	}
	return nil
}

// ForgotPassword stores a fresh reset token and emails the reset link.
// A throttled request is accepted without changing anything.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		log.Infow("password reset requested for unknown email", "email", email)
		return ErrUserNotFound
	}

	if svc.throttle != nil {
		ok, err := svc.throttle.Acquire(ctx, email)
		if err != nil {
			log.Errorw("reset throttle unavailable, continuing", "err", err)
		} else if !ok {
			log.Infow("password reset throttled", "email", email)
			return nil
		}
	}

	token := uuid.NewString()
	user.SetResetToken(token, svc.now().Add(svc.resetTTL))
	if err := svc.writer.Update(ctx, user); err != nil {
		log.Errorw("failed to save reset token", "err", err)
		return fmt.Errorf("save reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", svc.frontendURL, url.QueryEscape(token))
	if err := svc.notifier.SendResetLink(ctx, email, link); err != nil {
		log.Errorw("failed to send reset email", "email", email, "err", err)
	}

	return nil
}

// ResetPassword replaces the password of the user holding token and
// consumes the token. Expired tokens are left in place.
func (svc *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByResetToken(ctx, token)
	if err != nil {
		log.Errorw("failed to get user by reset token", "err", err)
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return ErrInvalidResetToken
	}
	if user.ResetTokenExpiresAt == nil || svc.now().After(*user.ResetTokenExpiresAt) {
		log.Infow("expired reset token used", "email", user.Email)
		return ErrExpiredResetToken
	}

	hashed, err := svc.hasher.Hash(newPassword)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = hashed
	user.ClearResetToken()
	if err := svc.writer.Update(ctx, user); err != nil {
		log.Errorw("failed to save new password", "err", err)
		return fmt.Errorf("save password: %w", err)
	}

	svc.events.publish(ctx, models.EventPasswordReset, user.Email, 0, user.ID)
	return nil
}

// VerifyEmail marks the account verified when token matches the one sent to email.
func (svc *AuthService) VerifyEmail(ctx context.Context, email, token string) error {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByVerificationToken(ctx, token)
	if err != nil {
		log.Errorw("failed to get user by verification token", "err", err)
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil || !strings.EqualFold(user.Email, email) {
		return ErrInvalidVerificationToken
	}

	user.EmailVerified = true
	user.VerificationToken = nil
	if err := svc.writer.Update(ctx, user); err != nil {
		log.Errorw("failed to mark email verified", "err", err)
		return fmt.Errorf("save user: %w", err)
	}

	svc.events.publish(ctx, models.EventUserEmailVerified, user.Email, 0, user.ID)
	return nil
}

// GetProfile returns the account identified by email.
func (svc *AuthService) GetProfile(ctx context.Context, email string) (*models.ProfileResponse, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "err", err)
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &models.ProfileResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
	}, nil
}
