package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration is the lifetime of an issued token.
const DefaultExpiration = 24 * time.Hour

const bearerPrefix = "Bearer "

var (
	ErrTokenInvalid    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
	ErrSubjectMismatch = errors.New("token subject mismatch")
	ErrNoBearerToken   = errors.New("bearer token missing")
)

// Claims is the verified content of a token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// JWT provides methods to generate and validate HS256 tokens.
type JWT struct {
	secretKey []byte
	exp       time.Duration
	now       func() time.Time
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.secretKey = []byte(secret) }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.exp = exp }
}

// WithClock replaces time.Now for issuing and verifying tokens.
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) { j.now = now }
}

// New creates a new JWT instance.
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp: DefaultExpiration,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate issues a token for subject. Extra claims are copied into the
// payload but never override sub, iat or exp.
func (j *JWT) Generate(ctx context.Context, subject string, extraClaims map[string]any) (string, error) {
	now := j.now()

	claims := jwt.MapClaims{}
	for k, v := range extraClaims {
		claims[k] = v
	}
	claims["sub"] = subject
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(j.exp))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// GetClaims fully verifies the token (signature and expiry) and returns its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	registered, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}
	return toClaims(registered), nil
}

// GetSubject returns the subject of a correctly signed token without
// checking its expiry. Malformed or forged tokens yield ErrTokenInvalid.
func (j *JWT) GetSubject(ctx context.Context, tokenString string) (string, error) {
	registered, err := j.parse(tokenString, jwt.WithoutClaimsValidation())
	if err != nil {
		return "", err
	}
	if registered.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}
	return registered.Subject, nil
}

// Validate verifies the signature, the expiry and that the token was issued
// for expectedSubject.
func (j *JWT) Validate(ctx context.Context, tokenString, expectedSubject string) error {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return err
	}
	if claims.Subject != expectedSubject {
		return ErrSubjectMismatch
	}
	return nil
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrNoBearerToken
	}
	return strings.TrimSpace(token), nil
}

func (j *JWT) parse(tokenString string, extra ...jwt.ParserOption) (*jwt.RegisteredClaims, error) {
	opts := append([]jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
	}, extra...)

	registered := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, registered, func(*jwt.Token) (any, error) {
		return j.secretKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return registered, nil
}

func toClaims(registered *jwt.RegisteredClaims) *Claims {
	claims := &Claims{Subject: registered.Subject}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}
	return claims
}
