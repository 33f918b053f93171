package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/common/id"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/common/logger"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/common/otel"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/db"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/db/migrations"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/middleware"
	httprouter "github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/router"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/issue_tracker"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/spam"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger.Setup(cfg)

	err = run(ctx, cfg)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if telemetry != nil {
		if terr := telemetry.Shutdown(shutdownCtx); terr != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", terr)
		}
	}

	if err != nil {
		slog.ErrorContext(ctx, "feedback relay stopped", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "shutdown complete")
}

func run(ctx context.Context, cfg config.Config) error {
	slog.InfoContext(ctx, "feedback relay starting",
		"env", cfg.Env,
		"service", cfg.OTel.ServiceName,
		"otel", cfg.OTel.Enabled())

	if err := id.Init(1); err != nil {
		return fmt.Errorf("initializing snowflake ids: %w", err)
	}

	database, err := openPostgres(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer database.Close()

	redisClient, err := openRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	services, err := buildServices(ctx, cfg, database, redisClient)
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(cfg, services),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-sigCtx.Done():
	}

	slog.InfoContext(ctx, "shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// openPostgres connects and brings the schema up to date before anything reads it.
func openPostgres(ctx context.Context, cfg db.Config) (*db.DB, error) {
	database, err := db.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	applied, err := migrations.Up(ctx, database.Pool())
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}
	slog.InfoContext(ctx, "database ready", "applied_migrations", applied)
	return database, nil
}

func openRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	slog.InfoContext(ctx, "redis connected", "panel_key", cfg.PanelKey)
	return client, nil
}

func buildServices(ctx context.Context, cfg config.Config, database *db.DB, redisClient *redis.Client) (*service.Services, error) {
	gate := issue_tracker.NewGate(cfg.GitHub)
	if !gate.HasCredentials() {
		slog.WarnContext(ctx, "no GitHub token configured, issues will not be filed")
	}

	classifier := spam.NewClassifier(cfg.Spam, spam.NewJudge(ctx, cfg.Spam.LLM))
	tracker, err := issue_tracker.NewGitHubIssueTrackerService(cfg.GitHub, gate, classifier, nil)
	if err != nil {
		return nil, fmt.Errorf("creating github client: %w", err)
	}

	stores := store.NewStores(database, redisClient, cfg.Redis.PanelKey)
	return service.NewServices(stores, tracker, classifier, gate, cfg), nil
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		AdminAPIKey: cfg.AdminAPIKey,
	})

	return router
}

const banner = `
  __               _ _                _                  _
 / _| ___  ___  __| | |__   __ _  ___| | __   _ __ ___| | __ _ _   _
| |_ / _ \/ _ \/ _' | '_ \ / _' |/ __| |/ /  | '__/ _ \ |/ _' | | | |
|  _|  __/  __/ (_| | |_) | (_| | (__|   <   | | |  __/ | (_| | |_| |
|_|  \___|\___|\__,_|_.__/ \__,_|\___|_|\_\  |_|  \___|_|\__,_|\__, |
                                                               |___/
`
