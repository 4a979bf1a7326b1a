package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JP-maker/gamegauge-api/internal/config"
	"github.com/JP-maker/gamegauge-api/internal/facades"
	"github.com/JP-maker/gamegauge-api/internal/handlers"
	"github.com/JP-maker/gamegauge-api/internal/jwt"
	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/JP-maker/gamegauge-api/internal/middlewares"
	"github.com/JP-maker/gamegauge-api/internal/migrations"
	"github.com/JP-maker/gamegauge-api/internal/password"
	"github.com/JP-maker/gamegauge-api/internal/repositories"
	"github.com/JP-maker/gamegauge-api/internal/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title GameGauge API
// @version 1.0.0
// @description Scoreboards for board games and card games: accounts, boards, participants and round scores
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// authAPI is everything the account routes need from the auth service.
type authAPI interface {
	handlers.Registerer
	handlers.Loginer
	handlers.PasswordResetter
	handlers.EmailVerifier
	handlers.ProfileGetter
}

// boardAPI is everything the board routes need from the board service.
type boardAPI interface {
	handlers.BoardManager
	handlers.BoardActions
	handlers.ParticipantManager
}

// newRouter mounts the public auth routes, the protected user and board
// routes and the API docs. Board routes run in one transaction per request.
func newRouter(
	db *sqlx.DB,
	tokens middlewares.Tokener,
	users middlewares.UserLoader,
	auth authAPI,
	boards boardAPI,
	swaggerURL string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.AuthMiddleware(tokens, users))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(auth))
		r.Post("/login", handlers.NewLoginHandler(auth))
		r.Post("/forgot-password", handlers.NewForgotPasswordHandler(auth))
		r.Post("/reset-password", handlers.NewResetPasswordHandler(auth))
		r.Post("/verify-email", handlers.NewVerifyEmailHandler(auth))
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAuth)

		r.Get("/api/users/profile", handlers.NewProfileHandler(auth))

		r.Route("/api/boards", func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))

			r.Get("/", handlers.NewListBoardsHandler(boards))
			r.Post("/", handlers.NewCreateBoardHandler(boards))
			r.Put("/order", handlers.NewUpdateBoardsOrderHandler(boards))
			r.Post("/import", handlers.NewImportBoardHandler(boards))

			r.Route("/{boardID}", func(r chi.Router) {
				r.Get("/", handlers.NewGetBoardHandler(boards))
				r.Put("/", handlers.NewUpdateBoardHandler(boards))
				r.Delete("/", handlers.NewDeleteBoardHandler(boards))
				r.Post("/restart", handlers.NewRestartBoardHandler(boards))
				r.Post("/duplicate", handlers.NewDuplicateBoardHandler(boards))

				r.Post("/participants", handlers.NewAddParticipantHandler(boards))
				r.Put("/participants/{participantID}", handlers.NewUpdateParticipantHandler(boards))
				r.Delete("/participants/{participantID}", handlers.NewRemoveParticipantHandler(boards))
				r.Put("/participants/{participantID}/scores", handlers.NewSetScoreHandler(boards))
				r.Delete("/participants/{participantID}/scores/{scoreID}", handlers.NewDeleteScoreHandler(boards))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// newEventWriter returns an async Kafka writer: WriteMessages only queues,
// delivery failures are logged from the completion callback.
func newEventWriter(cfg *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchTimeout: 10 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("failed to deliver activity events", "count", len(messages), "error", err)
			}
		},
	}
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PostgresHost, "db", cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka is optional
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer := newEventWriter(cfg)
		defer writer.Close()
		events = writer
		logger.Log.Infow("Publishing activity events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExpiration),
	)
	hasher := password.NewBcryptHasher(cfg.BcryptCost)

	// Initialize repositories
	getTx := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, getTx)
	userWriteRepo := repositories.NewUserWriteRepository(db, getTx)
	boardReadRepo := repositories.NewBoardReadRepository(db, getTx)
	boardWriteRepo := repositories.NewBoardWriteRepository(db, getTx)
	participantReadRepo := repositories.NewParticipantReadRepository(db, getTx)
	participantWriteRepo := repositories.NewParticipantWriteRepository(db, getTx)
	scoreReadRepo := repositories.NewScoreReadRepository(db, getTx)
	scoreWriteRepo := repositories.NewScoreWriteRepository(db, getTx)
	transactor := repositories.NewTransactor(db, getTx, middlewares.SetTxToContext)
	resetThrottle := repositories.NewResetThrottleRepository(rdb, cfg.ResetThrottleTTL)

	// Initialize facades
	verifier := facades.NewRecaptchaVerifier(cfg.RecaptchaSecretKey, cfg.RecaptchaVerifyURL, cfg.RecaptchaScoreThreshold)
	mailer := facades.NewSendGridMailer(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName,
		facades.WithResetLinkTTL(cfg.ResetTokenTTL))

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, hasher, tokens, verifier, mailer,
		services.WithResetThrottle(resetThrottle),
		services.WithFrontendURL(cfg.FrontendURL),
		services.WithResetTokenTTL(cfg.ResetTokenTTL),
		services.WithEventWriter(events),
	)
	boardService := services.NewBoardService(userReadRepo,
		boardReadRepo, boardWriteRepo,
		participantReadRepo, participantWriteRepo,
		scoreReadRepo, scoreWriteRepo,
		transactor, events,
	)

	router := newRouter(db, tokens, userReadRepo, authService, boardService,
		fmt.Sprintf("http://%s/swagger/doc.json", cfg.HTTPAddr()))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
