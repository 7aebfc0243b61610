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

	"tracker/api"
	"tracker/cmd"
	tracker_http "tracker/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs, err := cmd.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, echoLevel := cmd.NewLogger(os.Stdout, configs.LogLevel)
	slog.SetDefault(logger)

	app := cmd.NewCompositionRoot(configs, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := newWebServer(&app, logger, echoLevel)
	if err != nil {
		log.Fatalf("Failed to build web server: %v", err)
	}

	startWebServer(ctx, e, configs, logger)
}

func newWebServer(app *cmd.CompositionRoot, logger *slog.Logger, level log.Lvl) (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}

	return tracker_http.NewRouter(tracker_http.RouterConfig{
		Server:   app.CreateServer(),
		Document: doc,
		Metrics:  app.Metrics(),
		Gatherer: app.Registry(),
		Logger:   logger,
		LogLevel: level,
	})
}

func startWebServer(ctx context.Context, e *echo.Echo, configs cmd.Config, logger *slog.Logger) {
	go func() {
		address := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		logger.Info("HTTP server started", "address", address)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
