package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dailypulse/newspaper-service/internal/config"
	"github.com/dailypulse/newspaper-service/internal/feed"
	"github.com/dailypulse/newspaper-service/internal/handler"
	"github.com/dailypulse/newspaper-service/internal/middleware"
	"github.com/dailypulse/newspaper-service/internal/repository"
	"github.com/dailypulse/newspaper-service/internal/router"
	"github.com/dailypulse/newspaper-service/internal/scheduler"
	"github.com/dailypulse/newspaper-service/internal/service"
	"github.com/dailypulse/newspaper-service/internal/token"
	"github.com/dailypulse/newspaper-service/internal/utils/email"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := run(logger); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}

// run serves until SIGINT or SIGTERM, then drains requests and pending
// notifications before the store client is closed.
func run(logger *logrus.Logger) error {
	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	logger.Debugf("Loaded %s", cfg)

	// Initialize database. The client reconnects on its own, so an unreachable
	// cluster at startup is logged and the server still starts.
	clientOpts := options.Client().
		ApplyURI(cfg.MongoURI()).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true))
	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer client.Disconnect(context.Background())

	repo := repository.NewRepository(client.Database(cfg.DBName))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	connected := true
	if err := repo.Ping(ctx); err != nil {
		connected = false
		logger.Errorf("Failed to ping database: %v", err)
	} else {
		logger.Info("Pinged your deployment. You successfully connected to MongoDB!")
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Warnf("Index setup skipped: %v", err)
		}
	}
	cancel()

	// Indexes skipped during a startup outage are created once the store answers.
	health, err := scheduler.NewHealthCheck(repo, logger, cfg.HealthCheckSchedule, connected)
	if err != nil {
		return err
	}
	health.OnRecover(repo.EnsureIndexes)
	health.Start()
	defer health.Stop()

	// Initialize layers
	var notifier service.Notifier
	if cfg.NotificationsEnabled() {
		notifier = email.NewSender(cfg, logger)
	}
	svc := service.NewService(repo, notifier, logger)
	tokens := token.NewManager(cfg.AccessTokenSecret, cfg.TokenTTL)
	h := handler.NewHandler(svc, tokens, feed.NewBuilder(cfg.SiteTitle, cfg.SiteURL), logger, cfg.CookieName)
	guards := middleware.Guards{
		Session: middleware.Session(tokens, cfg.CookieName),
		Admin:   middleware.Admin(svc, logger),
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.New(h, guards, cfg.AllowedOrigins, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	logger.Infof("Newspaper server is running at %s", cfg.Port)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-sigCtx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Shutdown: %v", err)
		}
	}
	svc.Wait()
	return nil
}
