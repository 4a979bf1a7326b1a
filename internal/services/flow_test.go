package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/JP-maker/gamegauge-api/internal/jwt"
	"github.com/JP-maker/gamegauge-api/internal/models"
	"github.com/JP-maker/gamegauge-api/internal/password"
	"github.com/JP-maker/gamegauge-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterLoginCreateBoard(t *testing.T) {
	ctx := context.Background()
	db := newMemDB()
	users := memUsers{db}
	tokens := jwt.New(jwt.WithSecretKey("test-secret"))
	notifier := &recordingNotifier{}

	auth := services.NewAuthService(users, users, password.NewBcryptHasher(bcrypt.MinCost), tokens,
		stubVerifier{valid: "valid-token"}, notifier)
	boards := services.NewBoardService(users, memBoards{db}, memBoards{db}, memParticipants{db}, memParticipants{db},
		memScores{db}, memScores{db}, passThroughTx{}, nil)

	_, err := auth.Register(ctx, "alice", "a@x.com", "password123", "valid-token")
	require.NoError(t, err)

	stored, err := users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.False(t, stored.EmailVerified)

	token, err := auth.Login(ctx, "a@x.com", "password123", "valid-token")
	require.NoError(t, err)

	subject, err := tokens.GetSubject(ctx, token)
	require.NoError(t, err)
	require.NoError(t, tokens.Validate(ctx, token, subject))

	board, err := boards.CreateBoard(ctx, subject, models.BoardRequest{Name: "Game Night"})
	require.NoError(t, err)
	assert.Equal(t, "alice", board.OwnerUsername)
	assert.Equal(t, 0, board.DisplayOrder)
	assert.Equal(t, "Game Night", board.Name)
}

func TestRegisterTwiceWritesOnce(t *testing.T) {
	ctx := context.Background()
	db := newMemDB()
	users := memUsers{db}
	auth := services.NewAuthService(users, users, password.NewBcryptHasher(bcrypt.MinCost),
		jwt.New(jwt.WithSecretKey("test-secret")), stubVerifier{valid: "ok"}, &recordingNotifier{})

	_, err := auth.Register(ctx, "alice", "a@x.com", "password123", "ok")
	require.NoError(t, err)
	writes := db.writes

	_, err = auth.Register(ctx, "alice", "other@x.com", "password123", "ok")
	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "username", conflict.Field)
	assert.Equal(t, writes, db.writes)
}

func TestPasswordResetFlow(t *testing.T) {
	ctx := context.Background()
	db := newMemDB()
	users := memUsers{db}
	notifier := &recordingNotifier{}
	now := time.Now()
	clock := func() time.Time { return now }

	auth := services.NewAuthService(users, users, password.NewBcryptHasher(bcrypt.MinCost),
		jwt.New(jwt.WithSecretKey("test-secret")), stubVerifier{valid: "ok"}, notifier,
		services.WithClock(clock), services.WithFrontendURL("https://app.test"))

	_, err := auth.Register(ctx, "alice", "a@x.com", "password123", "ok")
	require.NoError(t, err)

	require.Len(t, notifier.verifyLinks, 1)
	verifyToken := strings.TrimPrefix(strings.Split(notifier.verifyLinks[0], "&")[0], "https://app.test/verify-email?token=")
	require.NoError(t, auth.VerifyEmail(ctx, "a@x.com", verifyToken))
	profile, err := auth.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, profile.EmailVerified)

	require.NoError(t, auth.ForgotPassword(ctx, "a@x.com"))
	require.Len(t, notifier.resetLinks, 1)
	resetToken := strings.TrimPrefix(notifier.resetLinks[0], "https://app.test/reset-password?token=")

	now = now.Add(31 * time.Minute)
	assert.ErrorIs(t, auth.ResetPassword(ctx, resetToken, "newpassword1"), services.ErrExpiredResetToken)

	now = now.Add(-2 * time.Minute)
	require.NoError(t, auth.ResetPassword(ctx, resetToken, "newpassword1"))
	assert.ErrorIs(t, auth.ResetPassword(ctx, resetToken, "newpassword2"), services.ErrInvalidResetToken)

	_, err = auth.Login(ctx, "a@x.com", "password123", "ok")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	_, err = auth.Login(ctx, "a@x.com", "newpassword1", "ok")
	assert.NoError(t, err)
}
