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
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/jackc/pgx/v5/stdlib"

	_ "github.com/sbilibin2017/psiarze/docs"
	"github.com/sbilibin2017/psiarze/internal/config"
	"github.com/sbilibin2017/psiarze/internal/facades"
	"github.com/sbilibin2017/psiarze/internal/handlers"
	"github.com/sbilibin2017/psiarze/internal/health"
	"github.com/sbilibin2017/psiarze/internal/jwt"
	"github.com/sbilibin2017/psiarze/internal/logger"
	"github.com/sbilibin2017/psiarze/internal/metrics"
	"github.com/sbilibin2017/psiarze/internal/middlewares"
	"github.com/sbilibin2017/psiarze/internal/migrations"
	"github.com/sbilibin2017/psiarze/internal/repositories"
	"github.com/sbilibin2017/psiarze/internal/services"
	"github.com/sbilibin2017/psiarze/internal/uow"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	probeTimeout      = 3 * time.Second
	// Events are written one at a time inside request handling.
	kafkaBatchTimeout = 10 * time.Millisecond
)

// @title Psiarze API
// @version 1.0.0
// @description Backend for dog owners: accounts, dogs, friends, chat and location sharing
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, probeAddr := parseFlags()

	if probeAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		if err := probe(ctx, probeAddr); err != nil {
			log.Fatalf("health probe failed: %v", err)
		}
		return
	}

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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags returns the config file path and, when set, the gRPC health
// address to probe instead of starting the server.
func parseFlags() (string, string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	p := flag.String("probe", "", "Check a running instance over gRPC health (host:port) and exit")
	flag.Parse()
	return *c, *p
}

// probe asks a running instance whether it is serving.
func probe(ctx context.Context, addr string) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	serving, err := facades.NewHealthGRPCFacade(healthpb.NewHealthClient(conn), health.ServiceName).Serving(ctx)
	if err != nil {
		return err
	}
	if !serving {
		return errors.New("service is not serving")
	}
	return nil
}

// newKafkaWriter builds the activity event writer. Messages are keyed by actor,
// so one user's events stay ordered within a partition.
func newKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.ActivityTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    1,
		BatchTimeout: kafkaBatchTimeout,
	}
}

// run initializes the logger, database, optional Redis and Kafka, and the HTTP
// and gRPC health servers. It blocks until ctx is done or a signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.Env); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Log
	log.Infow("Logger initialized", "level", cfg.App.LogLevel, "env", cfg.App.Env)

	// PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(cfg.Postgres.DSN()); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	log.Info("Database schema is up to date")

	// JWT, with Redis-backed revocation when configured
	jwtOpts := []jwt.Opt{
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Exp),
	}
	var revoker services.TokenRevoker
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()

		blacklist := repositories.NewTokenBlacklistRepository(rdb)
		revoker = blacklist
		jwtOpts = append(jwtOpts, jwt.WithRevoker(blacklist))
		log.Infow("Token revocation enabled", "redis", cfg.Redis.Addr())
	} else {
		log.Warn("REDIS_HOST not set, logout will not revoke tokens")
	}
	tokens := jwt.New(jwtOpts...)

	// Kafka activity events
	appMetrics := metrics.New()
	var kafkaWriter services.KafkaWriter
	if cfg.Kafka.Enabled() {
		w := newKafkaWriter(cfg.Kafka)
		defer w.Close()
		kafkaWriter = w
		log.Infow("Activity events enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.ActivityTopic)
	}
	publisher := services.NewActivityPublisher(kafkaWriter).WithObserver(appMetrics)

	// Repositories
	unitOfWork := uow.New(db)
	userReadRepo := repositories.NewUserReadRepository(db, uow.TxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, uow.TxFromContext)
	dogReadRepo := repositories.NewDogReadRepository(db, uow.TxFromContext)
	dogWriteRepo := repositories.NewDogWriteRepository(db, uow.TxFromContext)
	requestReadRepo := repositories.NewFriendRequestReadRepository(db, uow.TxFromContext)
	requestWriteRepo := repositories.NewFriendRequestWriteRepository(db, uow.TxFromContext)
	chatReadRepo := repositories.NewChatReadRepository(db, uow.TxFromContext)
	chatWriteRepo := repositories.NewChatWriteRepository(db, uow.TxFromContext)
	locationReadRepo := repositories.NewLocationReadRepository(db, uow.TxFromContext)
	locationWriteRepo := repositories.NewLocationWriteRepository(db, uow.TxFromContext)

	// Services
	authService := services.NewAuthService(unitOfWork, userReadRepo, userWriteRepo, tokens, revoker)
	userService := services.NewUserService(unitOfWork, userReadRepo)
	dogService := services.NewDogService(unitOfWork, dogReadRepo, dogWriteRepo)
	friendService := services.NewFriendService(unitOfWork, userReadRepo, requestReadRepo, requestWriteRepo, requestReadRepo, publisher)
	chatService := services.NewChatService(unitOfWork, userReadRepo, chatReadRepo, chatWriteRepo, publisher)
	locationService := services.NewLocationService(unitOfWork, requestReadRepo, locationReadRepo, locationWriteRepo)

	checker := health.NewChecker(db, cfg.App.Name, cfg.App.Env)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware(appMetrics))
	r.Use(middlewares.CORSMiddleware(cfg.App.CORSOrigins))

	r.Get("/health", handlers.NewHealthHandler(checker))
	r.Method(http.MethodGet, "/metrics", appMetrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.App.Host, cfg.App.Port)),
	))

	r.Route(cfg.App.BasePath, func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, userReadRepo))

			r.Post("/auth/logout", handlers.NewLogoutHandler(authService))

			r.Get("/users/me", handlers.NewMeHandler())
			r.Get("/users/discover", handlers.NewDiscoverHandler(userService))

			r.Get("/dogs/mine", handlers.NewListDogsHandler(dogService))
			r.Post("/dogs/mine", handlers.NewCreateDogHandler(dogService))
			r.Put("/dogs/mine/{id}", handlers.NewUpdateDogHandler(dogService))
			r.Delete("/dogs/mine/{id}", handlers.NewDeleteDogHandler(dogService))

			r.Get("/friends", handlers.NewListFriendsHandler(friendService))
			r.Get("/friends/requests", handlers.NewListFriendRequestsHandler(friendService))
			r.Post("/friends/requests", handlers.NewSendFriendRequestHandler(friendService))
			r.Post("/friends/requests/{id}/accept", handlers.NewAcceptFriendRequestHandler(friendService))
			r.Post("/friends/requests/{id}/reject", handlers.NewRejectFriendRequestHandler(friendService))

			r.Post("/chats/rooms", handlers.NewCreateRoomHandler(chatService))
			r.Get("/chats/rooms", handlers.NewListRoomsHandler(chatService))
			r.Get("/chats/rooms/{id}/messages", handlers.NewListMessagesHandler(chatService))
			r.Post("/chats/rooms/{id}/messages", handlers.NewSendMessageHandler(chatService))

			r.Put("/locations/me", handlers.NewUpsertLocationHandler(locationService))
			r.Get("/locations/friends", handlers.NewListFriendLocationsHandler(locationService))
			r.Get("/locations/friends/{id}", handlers.NewGetFriendLocationHandler(locationService))
		})
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.App.Host, cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var grpcServer *grpc.Server
	if cfg.GRPCHealthPort != "" {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.App.Host, cfg.GRPCHealthPort))
		if err != nil {
			return fmt.Errorf("gRPC health listener failed: %w", err)
		}
		grpcServer = grpc.NewServer()
		checker.Register(grpcServer)

		go func() {
			log.Infof("gRPC health server listening on %s", lis.Addr())
			if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errChan <- fmt.Errorf("gRPC health server failed: %w", err)
			}
		}()
	}

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		if grpcServer != nil {
			grpcServer.Stop()
		}
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	log.Info("Servers stopped gracefully")
	return nil
}
