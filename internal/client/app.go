// Package client initializes and runs the client party: it decodes the
// pre-shared envelope key, wires the launch-token minter, and serves the
// HTTP endpoint until shut down.
package client

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

	"github.com/dmitrijs2005/voyagegate/internal/client/cards"
	"github.com/dmitrijs2005/voyagegate/internal/client/config"
	"github.com/dmitrijs2005/voyagegate/internal/client/httpapi"
	"github.com/dmitrijs2005/voyagegate/internal/client/launch"
	"github.com/dmitrijs2005/voyagegate/internal/cryptox"
	"github.com/dmitrijs2005/voyagegate/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
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

	minter := launch.NewMinter(sharedKey)
	handler := httpapi.NewHandler(minter, cards.NewDemoSource(), cfg.VoyageURL, logger)
	router := httpapi.NewRouter(handler, logger)

	return &App{config: cfg, logger: logger, handler: router}, nil
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

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
