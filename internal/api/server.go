// Copyright (c) 2026 Moving Bridge. All rights reserved.

/*
Package api composes the HTTP server: router, middleware chain, and the
wiring between stores, services, and handlers.

# Request Pipeline

	RequestID -> StructuredLogger -> PanicRecovery -> RateLimit -> CleanPath
	-> Timeout -> CORS -> ResolveSession -> route handlers

ResolveSession sits last so every route handler (and the Require* gates)
sees the resolved principal in the request context.
*/
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/nakknock/movingbridge/internal/auth"
	"github.com/nakknock/movingbridge/internal/company"
	"github.com/nakknock/movingbridge/internal/content"
	"github.com/nakknock/movingbridge/internal/platform/config"
	"github.com/nakknock/movingbridge/internal/platform/constants"
	"github.com/nakknock/movingbridge/internal/platform/middleware"
	"github.com/nakknock/movingbridge/internal/users"
	"github.com/nakknock/movingbridge/internal/worker"
)

// Server bundles the HTTP router with its infrastructure dependencies.
type Server struct {
	config *config.Config
	logger *slog.Logger
	router chi.Router
	pool   *pgxpool.Pool
	redis  *goredis.Client
}

/*
New wires stores, services, handlers, and the middleware chain into a
ready-to-serve [Server].

Parameters:
  - baseContext: context.Context (owns background goroutines, e.g. the rate limiter cleanup)
  - cfg: *config.Config
  - logger: *slog.Logger
  - pool: *pgxpool.Pool
  - redisClient: *goredis.Client

Returns:
  - *Server: Fully wired server
*/
func New(baseContext context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, redisClient *goredis.Client) *Server {

	// 1. Stores
	userStore := users.NewStore(pool)
	companyStore := company.NewStore(pool)
	workerStore := worker.NewStore(pool)
	contentStore := content.NewStore(pool)
	sessionStore := auth.NewRedisStore(redisClient)

	// 2. Services
	userService := users.NewService(userStore)
	companyService := company.NewService(companyStore)
	workerService := worker.NewService(workerStore)
	contentService := content.NewService(contentStore)
	authService := auth.NewService(sessionStore, userStore, companyStore, cfg.AdminUsername, cfg.AdminPassword)

	// 3. Handlers
	secureCookies := cfg.IsProduction()
	userHandler := users.NewHandler(userService)
	companyHandler := company.NewHandler(companyService)
	workerHandler := worker.NewHandler(workerService, authService, secureCookies)
	contentHandler := content.NewHandler(contentService)
	authHandler := auth.NewHandler(authService, secureCookies)

	// 4. Router + middleware chain
	router := chi.NewRouter()
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.PanicRecovery(logger))
	router.Use(middleware.RateLimit(baseContext))
	router.Use(chimiddleware.CleanPath)
	router.Use(chimiddleware.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.ResolveSession(authService))

	server := &Server{
		config: cfg,
		logger: logger,
		router: router,
		pool:   pool,
		redis:  redisClient,
	}

	// 5. Routes
	router.Get("/health", server.health)
	router.Get("/ready", server.ready)

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Mount("/auth", authHandler.Routes())
		v1.Mount("/users", userHandler.Routes())
		v1.Mount("/companies", companyHandler.Routes())
		v1.Mount("/workers", workerHandler.Routes())
		v1.Mount("/", contentHandler.Routes())
	})

	return server
}

// Handler exposes the composed router, mainly for tests.
func (server *Server) Handler() http.Handler {
	return server.router
}

/*
Run serves HTTP until ctx is cancelled, then drains in-flight requests.

Parameters:
  - ctx: context.Context (cancellation triggers graceful shutdown)

Returns:
  - error: Listener failures or a shutdown that exceeded its deadline
*/
func (server *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              ":" + server.config.ServerPort,
		Handler:           server.router,
		ReadTimeout:       constants.DefaultReadTimeout,
		ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		WriteTimeout:      constants.DefaultWriteTimeout,
		IdleTimeout:       constants.DefaultIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		server.logger.Info("http server listening",
			slog.String("addr", httpServer.Addr),
			slog.String("environment", server.config.Environment),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	server.logger.Info("shutting down http server",
		slog.Duration("timeout", constants.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	start := time.Now()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	server.logger.Info("http server stopped",
		slog.Duration("drain_time", time.Since(start)),
	)
	return nil
}
