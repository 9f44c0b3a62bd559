// Package server initializes and runs the app party: it decodes the
// pre-shared envelope key, wires the storage backend and services, and
// serves the HTTP endpoint until shut down.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/cryptox"
	"github.com/dmitrijs2005/voyagegate/internal/logging"
	"github.com/dmitrijs2005/voyagegate/internal/server/config"
	"github.com/dmitrijs2005/voyagegate/internal/server/httpapi"
	"github.com/dmitrijs2005/voyagegate/internal/server/profiles"
	"github.com/dmitrijs2005/voyagegate/internal/server/replay"
	"github.com/dmitrijs2005/voyagegate/internal/server/shared/db"
	"github.com/dmitrijs2005/voyagegate/internal/server/trips"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager db.RepositoryManager
	handler http.Handler
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	// a missing or malformed shared key is fatal at startup
	sharedKey, err := cryptox.ParseKey(cfg.SharedKeyHex)
	if err != nil {
		return nil, fmt.Errorf("shared key: %w", err)
	}

	var manager db.RepositoryManager
	if cfg.UseInMemoryStore {
		manager = db.NewInMemoryRepositoryManager()
	} else {
		manager, err = db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	var nonceStore replay.NonceStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		nonceStore = replay.NewRedisNonceStore(client)
	}
	guard := replay.NewGuard(cfg.ReplayWindow, nonceStore)

	ps := profiles.NewService(manager.Profiles(), guard, sharedKey, cfg)
	ts := trips.NewService(manager.Trips())

	registry := prometheus.NewRegistry()
	metrics := httpapi.NewMetrics(registry)

	handler := httpapi.NewHandler(ps, ts, logger, metrics)
	router := httpapi.NewRouter(handler, []byte(cfg.JWTSecret), logger, registry)

	return &App{config: cfg, logger: logger, manager: manager, handler: router}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.handler,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.EndpointAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.manager.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, fmt.Sprintf("migrations failed: %v", err))
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
