package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/JP-maker/gamegauge-api/internal/config"
	"github.com/JP-maker/gamegauge-api/internal/handlers"
	"github.com/JP-maker/gamegauge-api/internal/jwt"
	"github.com/JP-maker/gamegauge-api/internal/middlewares"
	"github.com/JP-maker/gamegauge-api/internal/models"
	"github.com/JP-maker/gamegauge-api/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

type authMocks struct {
	*handlers.MockRegisterer
	*handlers.MockLoginer
	*handlers.MockPasswordResetter
	*handlers.MockEmailVerifier
	*handlers.MockProfileGetter
}

type boardMocks struct {
	*handlers.MockBoardManager
	*handlers.MockBoardActions
	*handlers.MockParticipantManager
}

type routerFixture struct {
	handler http.Handler
	dbMock  sqlmock.Sqlmock
	users   *middlewares.MockUserLoader
	auth    authMocks
	boards  boardMocks
	tokens  *jwt.JWT
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	f := &routerFixture{
		dbMock: dbMock,
		users:  middlewares.NewMockUserLoader(ctrl),
		auth: authMocks{
			handlers.NewMockRegisterer(ctrl),
			handlers.NewMockLoginer(ctrl),
			handlers.NewMockPasswordResetter(ctrl),
			handlers.NewMockEmailVerifier(ctrl),
			handlers.NewMockProfileGetter(ctrl),
		},
		boards: boardMocks{
			handlers.NewMockBoardManager(ctrl),
			handlers.NewMockBoardActions(ctrl),
			handlers.NewMockParticipantManager(ctrl),
		},
		tokens: jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Hour)),
	}
	f.handler = newRouter(sqlx.NewDb(mockDB, "sqlmock"), f.tokens, f.users, f.auth, f.boards, "/swagger/doc.json")
	return f
}

func (f *routerFixture) do(t *testing.T, method, target, body, email string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if email != "" {
		token, err := f.tokens.Generate(context.Background(), email, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func TestRouter_ProtectedRoutesRequireIdentity(t *testing.T) {
	f := newRouterFixture(t)

	for _, route := range []struct{ method, target string }{
		{http.MethodGet, "/api/boards"},
		{http.MethodGet, "/api/boards/1"},
		{http.MethodPut, "/api/boards/order"},
		{http.MethodDelete, "/api/boards/1/participants/2/scores/3"},
		{http.MethodGet, "/api/users/profile"},
	} {
		rr := f.do(t, route.method, route.target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", route.method, route.target)
	}

	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestRouter_PublicAuthRoutes(t *testing.T) {
	f := newRouterFixture(t)
	f.auth.MockPasswordResetter.EXPECT().ForgotPassword(gomock.Any(), "nobody@example.com").Return(services.ErrUserNotFound)

	rr := f.do(t, http.MethodPost, "/api/auth/forgot-password", `{"email":"nobody@example.com"}`, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"If the email exists, a link has been sent."}`, rr.Body.String())
}

func TestRouter_BoardRoutesRunInTransaction(t *testing.T) {
	const email = "alice@example.com"
	alice := &models.UserDB{ID: 1, Username: "alice", Email: email}

	t.Run("success commits", func(t *testing.T) {
		f := newRouterFixture(t)
		f.users.EXPECT().GetByEmail(gomock.Any(), email).Return(alice, nil)
		f.dbMock.ExpectBegin()
		f.dbMock.ExpectCommit()
		f.boards.MockBoardManager.EXPECT().GetBoard(gomock.Any(), email, int64(7)).
			Return(&models.BoardResponse{ID: 7, Name: "Game Night"}, nil)

		rr := f.do(t, http.MethodGet, "/api/boards/7", "", email)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NoError(t, f.dbMock.ExpectationsWereMet())
	})

	t.Run("foreign board rolls back", func(t *testing.T) {
		f := newRouterFixture(t)
		f.users.EXPECT().GetByEmail(gomock.Any(), email).Return(alice, nil)
		f.dbMock.ExpectBegin()
		f.dbMock.ExpectRollback()
		f.boards.MockParticipantManager.EXPECT().SetScore(gomock.Any(), email, int64(7), int64(3), 10, 1).
			Return(nil, services.ErrNotFound)

		rr := f.do(t, http.MethodPut, "/api/boards/7/participants/3/scores", `{"scoreValue":10,"roundNumber":1}`, email)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.NoError(t, f.dbMock.ExpectationsWereMet())
	})

	t.Run("token of a deleted account", func(t *testing.T) {
		f := newRouterFixture(t)
		f.users.EXPECT().GetByEmail(gomock.Any(), email).Return(nil, nil)

		rr := f.do(t, http.MethodGet, "/api/boards", "", email)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.NoError(t, f.dbMock.ExpectationsWereMet())
	})
}

func TestRouter_Swagger(t *testing.T) {
	f := newRouterFixture(t)

	rr := f.do(t, http.MethodGet, "/swagger/index.html", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15-alpine",
			Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")
	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := &config.Config{
		AppHost:              "127.0.0.1",
		AppPort:              "0",
		LogLevel:             "debug",
		PostgresHost:         pgHost,
		PostgresPort:         pgPort.Int(),
		PostgresUser:         "user",
		PostgresPassword:     "password",
		PostgresDB:           "testdb",
		PostgresMaxOpenConns: 5,
		PostgresMaxIdleConns: 2,
		RedisHost:            redisHost,
		RedisPort:            redisPort.Int(),
		RedisPoolSize:        10,
		RedisMinIdleConns:    2,
		JWTSecretKey:         "testsecret",
		JWTExpiration:        time.Hour,
		BcryptCost:           4,
		ResetTokenTTL:        30 * time.Minute,
		ResetThrottleTTL:     time.Minute,
	}

	testCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(testCtx, cfg) }()

	select {
	case <-time.After(30 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err, fmt.Sprintf("run against %s", cfg.PostgresDSN()))
	}
}

func TestNewEventWriter_DoesNotBlockRequests(t *testing.T) {
	// No broker listens here; an async write must still return at once.
	w := newEventWriter(&config.Config{KafkaBrokers: []string{"127.0.0.1:1"}, KafkaTopic: "gamegauge.activity"})

	assert.True(t, w.Async)
	assert.LessOrEqual(t, w.BatchTimeout, 10*time.Millisecond)
	assert.Equal(t, "gamegauge.activity", w.Topic)
	assert.NotNil(t, w.Completion)

	start := time.Now()
	err := w.WriteMessages(context.Background(), kafka.Message{Key: []byte("1"), Value: []byte(`{}`)})
	assert.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
