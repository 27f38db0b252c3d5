package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ethanaturner/libretexts-pts/internal/config"
	dbRedis "github.com/ethanaturner/libretexts-pts/internal/db/redis"
	"github.com/ethanaturner/libretexts-pts/internal/domain"
	logpkg "github.com/ethanaturner/libretexts-pts/internal/logger"
	"github.com/ethanaturner/libretexts-pts/internal/metrics"
	assetrepo "github.com/ethanaturner/libretexts-pts/internal/repository/asset"
	bookrepo "github.com/ethanaturner/libretexts-pts/internal/repository/book"
	"github.com/ethanaturner/libretexts-pts/internal/repository/catalog"
	homeworkrepo "github.com/ethanaturner/libretexts-pts/internal/repository/homework"
	projectrepo "github.com/ethanaturner/libretexts-pts/internal/repository/project"
	userrepo "github.com/ethanaturner/libretexts-pts/internal/repository/user"
	chiTransport "github.com/ethanaturner/libretexts-pts/internal/transport/chi"
	healthuc "github.com/ethanaturner/libretexts-pts/internal/usecase/health"
	searchuc "github.com/ethanaturner/libretexts-pts/internal/usecase/search"
	"github.com/ethanaturner/libretexts-pts/internal/version"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println(version.String())
		return
	}

	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting conductor-search API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("org_id", cfg.Org.OrgID),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	if err := catalog.EnsureIndexes(ctx, store); err != nil {
		logger.Fatal("Failed to ensure search indexes", zap.Error(err))
	}
	logger.Info("Search indexes ready")

	// Create repositories
	projectRepo := projectrepo.New(store)
	bookRepo := bookrepo.New(store)
	homeworkRepo := homeworkrepo.New(store)
	userRepo := userrepo.New(store)
	assetRepo := assetrepo.New(store)

	// Create use case services
	searchSvc := searchuc.New(
		projectRepo, bookRepo, homeworkRepo, userRepo, assetRepo,
		domain.OrgContext{OrgID: cfg.Org.OrgID},
		searchuc.WithThresholds(thresholdsFromConfig(cfg.Search)),
	)
	healthSvc := healthuc.New(store)

	resolver, err := chiTransport.NewStaticResolver(credentialsFromConfig(cfg.Auth))
	if err != nil {
		logger.Fatal("Failed to build identity resolver", zap.Error(err))
	}

	server := chiTransport.NewServer(searchSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.IdentityMiddleware(resolver))
	r.Use(metrics.Middleware())
	server.RegisterRoutes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// thresholdsFromConfig maps configured score floors onto the service
// defaults, keeping defaults where the config leaves a floor unset.
func thresholdsFromConfig(cfg config.SearchConfig) searchuc.Thresholds {
	t := searchuc.DefaultThresholds()
	if cfg.DirectScoreFloor > 0 {
		t.Direct = cfg.DirectScoreFloor
	}
	if cfg.TagScoreFloor > 0 {
		t.Tag = cfg.TagScoreFloor
	}
	if cfg.AuthorScoreFloor > 0 {
		t.Author = cfg.AuthorScoreFloor
	}
	return t
}

func credentialsFromConfig(cfg config.AuthConfig) []chiTransport.Credential {
	creds := make([]chiTransport.Credential, len(cfg.Tokens))
	for i, t := range cfg.Tokens {
		creds[i] = chiTransport.Credential{
			Token:      t.Token,
			UUID:       t.UUID,
			SuperAdmin: t.SuperAdmin,
		}
	}
	return creds
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]any{
						"err":    true,
						"errMsg": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
