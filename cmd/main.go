package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/jackc/pgx/v5/stdlib"

	_ "github.com/sbilibin2017/second-brain/docs"
	"github.com/sbilibin2017/second-brain/internal/config"
	"github.com/sbilibin2017/second-brain/internal/events"
	"github.com/sbilibin2017/second-brain/internal/handlers"
	"github.com/sbilibin2017/second-brain/internal/hashgen"
	"github.com/sbilibin2017/second-brain/internal/health"
	"github.com/sbilibin2017/second-brain/internal/jwt"
	"github.com/sbilibin2017/second-brain/internal/logger"
	"github.com/sbilibin2017/second-brain/internal/middlewares"
	"github.com/sbilibin2017/second-brain/internal/repositories"
	"github.com/sbilibin2017/second-brain/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	shutdownTimeout    = 10 * time.Second
	healthCheckTimeout = 2 * time.Second
)

// @title second-brain API
// @version 1.0.0
// @description Bookmarking backend: content, categories, tags and shareable short links
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
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects the stores, builds the HTTP and gRPC health servers and
// blocks until ctx is done or a shutdown signal arrives.
func run(ctx context.Context, cfg config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka is optional
	var publisher services.EventPublisher
	if cfg.KafkaEnabled() {
		kp := events.NewKafkaPublisher(newKafkaWriter(cfg))
		defer kp.Close()
		publisher = kp
		logger.Log.Infow("Publishing link events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, link events are not published")
	}

	checker := health.NewChecker(healthCheckTimeout).
		Register("postgres", db.PingContext).
		Register("redis", func(ctx context.Context) error { return rdb.Ping(ctx).Err() })

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           newRouter(cfg, db, rdb, publisher, checker),
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcSrv := health.NewGRPCServer(checker)
	grpcLis, err := net.Listen("tcp", cfg.GRPCHealthAddr())
	if err != nil {
		return fmt.Errorf("gRPC health listen failed: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go grpcSrv.Watch(ctxShutdown, cfg.HealthInterval())

	go func() {
		if err := grpcSrv.Serve(grpcLis); err != nil {
			errChan <- fmt.Errorf("gRPC health server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		logger.Log.Errorw("Server failed, shutting down", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcSrv.Stop()

	logger.Log.Info("Servers stopped gracefully")
	return serveErr
}

// newKafkaWriter builds an async writer: WriteMessages never waits on the
// brokers, delivery failures are reported through Completion.
func newKafkaWriter(cfg config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
		Topic:                  cfg.Kafka.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("Failed to deliver link events", "count", len(messages), "error", err)
			}
		},
	}
}

// newRouter wires repositories, services and handlers into the HTTP routes.
func newRouter(
	cfg config.Config,
	db *sqlx.DB,
	rdb redis.Cmdable,
	publisher services.EventPublisher,
	checker *health.Checker,
) http.Handler {
	jwtManager := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWTExpiration()),
	)

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db, txGetter)
	tagRepo := repositories.NewTagRepository(db, txGetter)
	contentRepo := repositories.NewContentRepository(db, txGetter)
	linkRepo := repositories.NewLinkRepository(db)
	visitRepo := repositories.NewLinkVisitRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtManager)
	categoryService := services.NewCategoryService(categoryRepo)
	contentService := services.NewContentService(contentRepo, categoryRepo, tagRepo)
	linkService := services.NewLinkService(linkRepo, contentRepo, hashgen.New(), visitRepo, publisher, cfg.App.BaseURL)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORSMiddleware(cfg.App.CORSOrigins))

	// Public routes
	r.Route("/api/auth", func(r chi.Router) {
		handlers.RegisterRegisterHandler(r, handlers.NewRegisterHandler(authService))
		handlers.RegisterLoginHandler(r, handlers.NewLoginHandler(authService))
	})
	handlers.RegisterRedirectHandler(r, handlers.NewRedirectHandler(linkService))
	r.Get("/healthz", health.NewHandler(checker))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwtManager, authService)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Route("/api/category", func(r chi.Router) {
			handlers.RegisterCategoryHandlers(r,
				handlers.NewCreateCategoryHandler(categoryService),
				handlers.NewListCategoriesHandler(categoryService),
				handlers.NewUpdateCategoryHandler(categoryService),
				handlers.NewDeleteCategoryHandler(categoryService),
			)
		})

		r.Route("/api/content", func(r chi.Router) {
			handlers.RegisterContentHandlers(r, middlewares.TxMiddleware(db),
				handlers.NewCreateContentHandler(contentService),
				handlers.NewListContentHandler(contentService),
				handlers.NewUpdateContentHandler(contentService),
				handlers.NewDeleteContentHandler(contentService),
			)
		})

		r.Route("/api/links", func(r chi.Router) {
			handlers.RegisterLinkHandlers(r,
				handlers.NewCreateLinkHandler(linkService),
				handlers.NewListLinksHandler(linkService),
				handlers.NewLinkStatsHandler(linkService),
			)
		})
	})

	return r
}
