package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-directory/config"
	deliveryHttp "doctor-directory/internal/delivery/http"
	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/internal/infrastructure/cache"
	"doctor-directory/internal/infrastructure/remote"
	doctorRepository "doctor-directory/internal/repository"
	"doctor-directory/internal/service"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	DoctorRepo  repository.DoctorRepository
	Loader      *service.DoctorLoaderService
	Listing     usecase.DoctorListingUsecase
	Server      *http.Server
}

// Option adjusts the loaded configuration before dependencies are built.
type Option func(*config.Config)

// New creates a new App instance with all dependencies initialized
func New(opts ...Option) (*App, error) {
	app := &App{}

	// Setup logger
	log := setupLogger()
	app.Log = log

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	for _, opt := range opts {
		opt(cfg)
	}
	app.Config = cfg
	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		log.SetLevel(level)
	}
	log.Info("Configuration loaded successfully")

	// Initialize Redis (optional snapshot mirror)
	var mirror service.PayloadMirror
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warnf("Redis unavailable, running without snapshot mirror: %+v", err)
		} else {
			app.RedisClient = redisClient
			mirror = cache.NewSnapshotMirror(redisClient, cfg.Redis.SnapshotTTL)
			log.Info("Redis connected successfully")
		}
	}

	customValidator := validator.NewValidator()

	// Initialize repository and loader
	app.DoctorRepo = doctorRepository.NewDoctorRepository()
	source := remote.NewDoctorSource(cfg.Source, log)
	app.Loader = service.NewDoctorLoaderService(source, mirror, app.DoctorRepo, customValidator, log)

	// Initialize usecases
	match, ok := entity.ParseSpecialtyMatch(cfg.Listing.SpecialtyMatch)
	if !ok {
		log.Warnf("Unknown SPECIALTY_MATCH %q, using %q", cfg.Listing.SpecialtyMatch, match)
	}
	app.Listing = usecase.NewDoctorListingUsecase(log, app.DoctorRepo, match, cfg.Listing.SuggestionLimit)

	server, err := initializeServer(cfg, log, app.Listing, customValidator)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	return logrus.StandardLogger()
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, listing usecase.DoctorListingUsecase, customValidator *validator.CustomValidator) (*http.Server, error) {
	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(listing, customValidator)
	pageHandler := handler.NewPageHandler(listing, log)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLoggerMiddleware := middleware.NewRequestLoggerMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, pageHandler, corsMiddleware, requestLoggerMiddleware)
	httpRouter, err := router.Setup()
	if err != nil {
		return nil, fmt.Errorf("failed to set up router: %w", err)
	}

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the doctor fetch and the HTTP server, and blocks until an
// interrupt signal triggers a graceful shutdown.
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The list is fetched once per process; the page renders empty until then.
	app.Loader.Start(ctx)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Log.Info("Shutting down server...")

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			app.Log.Errorf("Server forced to shutdown: %v", err)
		}
		return nil
	})

	err := g.Wait()
	app.Loader.Wait()
	app.Close()

	app.Log.Info("Server shutdown complete")
	return err
}

// Close closes all connections
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
