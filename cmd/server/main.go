// @title           Print Kiosk Backend API
// @version         1.0.0
// @description     Backend API for the print kiosk. Customers upload a PDF, pay through a Yoco hosted checkout and collect their prints with a pickup code.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"print-kiosk-backend/docs"
	"print-kiosk-backend/internal/config"
	"print-kiosk-backend/internal/database"
	"print-kiosk-backend/internal/events"
	"print-kiosk-backend/internal/services"
	"print-kiosk-backend/internal/supabase"
	"print-kiosk-backend/internal/yoco"
)

const shutdownTimeout = 10 * time.Second

type publisher interface {
	services.EventPublisher
	Close() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	configureSwagger(cfg)

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize Supabase client: %w", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.SupabaseStorageBucket)
	if err != nil {
		return fmt.Errorf("failed to initialize storage client: %w", err)
	}

	store, closeStore, err := newOrderStore(cfg, supabaseClient, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	pub := newPublisher(cfg, logger)
	defer pub.Close()

	yocoClient := yoco.NewClient(cfg.YocoAPIBaseURL, cfg.YocoSecretKey)

	orderService := services.NewOrderService(cfg, store, storageClient, yocoClient, pub, logger)
	router, err := setupRouter(cfg, logger, orderService)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", zap.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// configureSwagger points the served document at the public base URL.
func configureSwagger(cfg *config.Config) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil || baseURL.Host == "" {
		return
	}
	docs.SwaggerInfo.Host = baseURL.Host
	if baseURL.Scheme == "https" {
		docs.SwaggerInfo.Schemes = []string{"https", "http"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http", "https"}
	}
}

// newOrderStore uses a direct Postgres connection when DATABASE_URL is set,
// running migrations first, and the Supabase REST API otherwise.
func newOrderStore(cfg *config.Config, client *supabase.Client, logger *zap.Logger) (services.OrderStore, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set, using Supabase REST order store; migrations skipped",
			zap.String("table", cfg.OrdersTable))
		return supabase.NewTableClient(client, cfg.OrdersTable), func() {}, nil
	}

	migrator, err := database.NewMigrator(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Warn("failed to initialize migrator", zap.Error(err))
	} else {
		if err := migrator.Run(); err != nil {
			logger.Warn("migration failed", zap.Error(err))
		}
		migrator.Close()
	}

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL, cfg.OrdersTable)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database client: %w", err)
	}
	logger.Info("using Postgres order store", zap.String("table", cfg.OrdersTable))

	return dbClient, func() { dbClient.Close() }, nil
}

// newPublisher connects to RabbitMQ when configured. Order events are
// best-effort, so a broker that cannot be reached only disables them.
func newPublisher(cfg *config.Config, logger *zap.Logger) publisher {
	if cfg.RabbitMQURL == "" {
		return events.NewNoopPublisher(logger)
	}

	pub, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, order events disabled", zap.Error(err))
		return events.NewNoopPublisher(logger)
	}
	logger.Info("publishing order events", zap.String("exchange", cfg.RabbitMQExchange))
	return pub
}
