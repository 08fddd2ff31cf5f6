// Package server boots the CRM: config, logging sinks, database,
// migrations, Redis, the GraphQL schema, queue workers, scheduled jobs, and
// finally the HTTP listener.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/crm/app/graph"
	"github.com/shashiranjanraj/crm/config"
	"github.com/shashiranjanraj/crm/internal/jobs"
	"github.com/shashiranjanraj/crm/pkg/cache"
	"github.com/shashiranjanraj/crm/pkg/database"
	"github.com/shashiranjanraj/crm/pkg/logger"
	"github.com/shashiranjanraj/crm/pkg/metrics"
	"github.com/shashiranjanraj/crm/pkg/middleware"
	"github.com/shashiranjanraj/crm/pkg/migration"
	"github.com/shashiranjanraj/crm/pkg/queue"
	"github.com/shashiranjanraj/crm/pkg/reqid"
	"github.com/shashiranjanraj/crm/pkg/schedule"
)

// NewRouter builds the chi router serving the CRM's three routes behind the
// standard middleware chain, outermost first: metrics, recovery, request ID,
// logger, CORS, rate limiter.
func NewRouter(schema graphql.Schema) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	r.Handle("/graphql", GraphQLHandler(schema))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/metrics", metrics.Handler())

	return r
}

// Start boots every subsystem and blocks serving HTTP until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	// Optional MongoDB log sink.
	if uri := config.LogMongoURI(); uri != "" {
		h, err := logger.NewMongoHandler(uri, config.LogMongoDB())
		if err != nil {
			logger.Warn("server: mongo log sink unavailable", "error", err)
		} else {
			logger.AttachHandler(h)
			defer h.Close()
		}
	}

	if err := database.Connect(); err != nil {
		return err
	}

	if err := migration.New(database.DB).Run(); err != nil {
		return err
	}

	// Redis is optional: queue and rate limiting degrade without it.
	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, using in-process fallbacks", "error", err)
	} else {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.UseDB(database.DB)

	resolver := graph.NewResolver(database.DB)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobs.Register(schema)
	schedule.Start(ctx)
	queue.StartWorkers(ctx, 2)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           NewRouter(schema),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
