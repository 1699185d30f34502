package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/shopdesk/store-admin/docs" // swagger docs

	goredis "github.com/redis/go-redis/v9"

	"github.com/shopdesk/store-admin/internal/api"
	"github.com/shopdesk/store-admin/internal/api/handler"
	"github.com/shopdesk/store-admin/internal/core/imagelist"
	"github.com/shopdesk/store-admin/internal/core/ports"
	"github.com/shopdesk/store-admin/internal/core/service"
	"github.com/shopdesk/store-admin/internal/infrastructure/catalogapi"
	"github.com/shopdesk/store-admin/internal/infrastructure/config"
	"github.com/shopdesk/store-admin/internal/infrastructure/db/bolt"
	"github.com/shopdesk/store-admin/internal/infrastructure/db/mongo"
	"github.com/shopdesk/store-admin/internal/infrastructure/db/redis"
	"github.com/shopdesk/store-admin/internal/infrastructure/queue"
	"github.com/shopdesk/store-admin/pkg/logger"
)

const (
	serviceName     = "store-admin"
	shutdownTimeout = 10 * time.Second
)

// @title Store Admin Panel API
// @version 1.0
// @description Operator panel for the store catalog.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{Pretty: true})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	// --- Infrastructure ---
	mongoClient, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, AppName: serviceName})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo unavailable")
	}
	defer func() { _ = mongoClient.Close(context.Background()) }()

	auditRepo := mongo.NewAuditRepository(mongoClient.Database())
	if err := auditRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("audit indexes not created")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB, ClientName: serviceName})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer func() { _ = rdb.Close() }()

	tokens, closeTokens, err := tokenStore(cfg, rdb)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Session.Store).Msg("session store unavailable")
	}
	defer closeTokens()

	catalog := catalogapi.New(catalogapi.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}, logger.Component("catalogapi"))

	audit := queue.NewAuditDispatcher(0, auditRepo, logger.Component("audit"))
	auditCtx, stopAudit := context.WithCancel(context.Background())
	audit.Start(auditCtx)

	// --- Services ---
	guard := redis.NewSubmissionGuard(rdb, cfg.Panel.IdempotencyTTL)
	session := service.NewSessionService(catalog, tokens, logger.Component("session"))
	settings := service.NewSettingsService(catalog, session, audit, logger.Component("settings"))
	products := service.NewProductService(catalog, session, guard, audit, logger.Component("products"))
	categories := service.NewCategoryService(catalog, session, guard, audit, logger.Component("categories"))

	go session.Restore(ctx)

	e := api.NewRouter(api.Deps{
		Log:           log,
		Session:       session,
		Products:      products,
		Categories:    categories,
		Settings:      settings,
		Ingester:      imagelist.NewIngester(cfg.Panel.MaxImageBytes),
		MaxImageBytes: cfg.Panel.MaxImageBytes,
		Readiness: map[string]handler.Pinger{
			"mongodb": mongoClient.Ping,
			"redis":   func(ctx context.Context) error { return redis.Ping(ctx, rdb) },
		},
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("catalog_api", cfg.API.BaseURL).Msg("store admin panel listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	stopAudit()
	audit.Wait()
}

// tokenStore picks the configured persistence for the session token.
func tokenStore(cfg *config.Config, rdb *goredis.Client) (ports.TokenStore, func(), error) {
	if cfg.Session.Store == config.SessionStoreRedis {
		return redis.NewTokenStore(rdb), func() {}, nil
	}

	db, err := bolt.Open(bolt.Config{Path: cfg.Session.File})
	if err != nil {
		return nil, nil, err
	}
	return bolt.NewTokenStore(db), func() { _ = db.Close() }, nil
}
