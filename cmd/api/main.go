package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"thriftbay/internal/adapter/api"
	"thriftbay/internal/adapter/api/handler"
	apimiddleware "thriftbay/internal/adapter/api/middleware"
	"thriftbay/internal/adapter/api/router"
	"thriftbay/internal/adapter/repository"
	domainrepo "thriftbay/internal/domain/repository"
	"thriftbay/internal/domain/service"
	"thriftbay/internal/infrastructure/auth"
	"thriftbay/internal/infrastructure/events"
	"thriftbay/internal/infrastructure/revocation"
	"thriftbay/internal/infrastructure/storage"
	"thriftbay/internal/usecase"
	"thriftbay/pkg/config"
	"thriftbay/pkg/logger"
	"thriftbay/pkg/response"
)

type repositories struct {
	users    domainrepo.UserRepository
	items    domainrepo.ItemRepository
	orders   domainrepo.OrderRepository
	contacts domainrepo.ContactRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
		}); err != nil {
			logger.Error("Sentry init failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	credentials := googleCredentials(cfg)

	repos, closeStore, err := openStore(ctx, cfg, credentials)
	if err != nil {
		logger.Error("Failed to open %s store: %v", cfg.StoreBackend, err)
		os.Exit(1)
	}
	defer closeStore()

	objects, err := openObjectStorage(ctx, cfg, credentials)
	if err != nil {
		logger.Error("Failed to initialize object storage: %v", err)
		os.Exit(1)
	}
	defer objects.Close()

	revoker := openRevoker(cfg)
	defer revoker.Close()

	publisher := openPublisher(cfg)
	defer publisher.Close()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	hasher := usecase.NewBcryptHasher(cfg.BcryptCost)

	authUseCase := usecase.NewAuthUseCase(repos.users, hasher, tokens, revoker)
	userUseCase := usecase.NewUserUseCase(repos.users, repos.items, objects, hasher, revoker)
	itemUseCase := usecase.NewItemUseCase(repos.items, repos.users, objects, publisher)
	orderUseCase := usecase.NewOrderUseCase(repos.orders, repos.items, repos.users, publisher)
	contactUseCase := usecase.NewContactUseCase(repos.contacts, publisher)

	handler.Setup(
		authUseCase,
		userUseCase,
		itemUseCase,
		orderUseCase,
		contactUseCase,
		handler.NewCookieConfig(cfg.IsProduction(), tokens.Expiry()),
		cfg.MaxUploadBytes,
	)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.HTTPErrorHandler
	e.Validator = api.NewValidator()

	e.Use(middleware.Recover())
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	e.Use(requestLogger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))
	// Leave headroom above the file limit for the other multipart fields.
	e.Use(middleware.BodyLimit(strconv.FormatInt(cfg.MaxUploadBytes+1<<20, 10)))

	authMiddleware := apimiddleware.NewAuthMiddleware(tokens, revoker)
	limiters := apimiddleware.NewLimiters()
	limiters.Strict.StartCleanupRoutine(ctx, 10*time.Minute)
	limiters.General.StartCleanupRoutine(ctx, 10*time.Minute)

	router.Setup(e, cfg.APIPrefix, authMiddleware, limiters)
	if local, ok := objects.(*storage.LocalDiskStorage); ok {
		router.SetupUploadsRouter(e, local.Root())
	}

	go func() {
		logger.Info("Starting server on port %s (%s store)...", cfg.ServerPort, cfg.StoreBackend)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error: %v", err)
	}
}

// googleCredentials prefers inline service account JSON (production) over a
// key file (local development). Without either, application default
// credentials are used.
func googleCredentials(cfg *config.Config) []option.ClientOption {
	if cfg.FirebaseServiceAccountJSON != "" {
		logger.Info("Using service account from FIREBASE_SERVICE_ACCOUNT_JSON")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountJSON))}
	}
	if cfg.FirebaseServiceAccountPath != "" {
		logger.Info("Using service account file %s", cfg.FirebaseServiceAccountPath)
		return []option.ClientOption{option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)}
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, credentials []option.ClientOption) (*repositories, func(), error) {
	if cfg.StoreBackend == config.StoreMemory {
		logger.Warn("Using in-memory store; data is lost on restart")
		return &repositories{
			users:    repository.NewMemoryUserRepository(),
			items:    repository.NewMemoryItemRepository(),
			orders:   repository.NewMemoryOrderRepository(),
			contacts: repository.NewMemoryContactRepository(),
		}, func() {}, nil
	}

	client, err := firestore.NewClient(ctx, cfg.FirebaseProject, credentials...)
	if err != nil {
		return nil, nil, fmt.Errorf("create firestore client: %w", err)
	}

	return &repositories{
		users:    repository.NewFirestoreUserRepository(client),
		items:    repository.NewFirestoreItemRepository(client),
		orders:   repository.NewFirestoreOrderRepository(client),
		contacts: repository.NewFirestoreContactRepository(client),
	}, func() { client.Close() }, nil
}

func openObjectStorage(ctx context.Context, cfg *config.Config, credentials []option.ClientOption) (service.ObjectStorage, error) {
	if cfg.StorageBucket != "" {
		gcs, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentials...)
		if err != nil {
			return nil, err
		}
		return gcs, nil
	}

	if cfg.IsProduction() {
		logger.Warn("STORAGE_BUCKET not set; uploads go to local disk at %s", cfg.UploadDir)
	}
	local, err := storage.NewLocalDiskStorage(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return nil, err
	}
	return local, nil
}

func openRevoker(cfg *config.Config) service.TokenRevoker {
	if cfg.RedisAddr == "" {
		return revocation.NoopRevoker{}
	}
	r, err := revocation.NewRedisRevoker(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Error("Redis unavailable, token revocation disabled: %v", err)
		return revocation.NoopRevoker{}
	}
	return r
}

func openPublisher(cfg *config.Config) service.EventPublisher {
	if cfg.NATSURL == "" {
		return events.LogPublisher{}
	}
	p, err := events.NewNATSPublisher(cfg.NATSURL)
	if err != nil {
		logger.Error("NATS unavailable, events are only logged: %v", err)
		return events.LogPublisher{}
	}
	return p
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:     true,
		LogURI:        true,
		LogStatus:     true,
		LogLatency:    true,
		LogRemoteIP:   true,
		LogError:      true,
		HandleError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				logger.L().Warn("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.L().Info("request", fields...)
			return nil
		},
	})
}
