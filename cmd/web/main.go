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

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"finitefield.org/mindcard/internal/card"
	"finitefield.org/mindcard/internal/config"
	"finitefield.org/mindcard/internal/handlers"
	"finitefield.org/mindcard/internal/i18n"
	"finitefield.org/mindcard/internal/middleware"
	"finitefield.org/mindcard/internal/observability"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	startedAt := time.Now().UTC()

	cfg, err := config.Load()
	if err != nil {
		var vErr *config.ValidationError
		if errors.As(err, &vErr) {
			fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", vErr.Fields())
		} else {
			fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		}
		os.Exit(1)
	}

	baseLogger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()
	logger := baseLogger.Named("web")

	// Spans are not exported; the provider mints trace ids for log and
	// error correlation and continues ids sent by the load balancer.
	tracerProvider := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tracerProvider)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(closeCtx); err != nil {
			logger.Warn("tracer provider shutdown error", zap.Error(err))
		}
	}()

	bundle := i18n.Default()
	renderer := card.New(
		card.WithBundle(bundle),
		card.WithLocale(cfg.Card.Locale),
		card.WithLocation(cfg.Card.Location),
	)
	cards := handlers.NewCardHandlers(
		handlers.WithCardRenderer(renderer),
		handlers.WithCardDefaultTemplate(cfg.Card.DefaultTemplate),
		handlers.WithCardMaxPayloadBytes(cfg.Card.MaxPayloadBytes),
	)
	health := handlers.NewHealthHandlers(
		handlers.WithHealthStartedAt(startedAt),
		handlers.WithHealthVersion(version),
	)

	router := handlers.NewRouter(
		handlers.WithMiddlewares(
			observability.InjectLoggerMiddleware(logger),
			observability.TraceMiddleware(tracerProvider),
			observability.RequestLoggerMiddleware(),
			observability.RecoveryMiddleware(),
			middleware.VaryLocale,
			middleware.Locale(bundle, cfg.Card.Locale),
		),
		handlers.WithHealthHandlers(health),
		handlers.WithCardRoutes(cards.Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("mindcard web listening",
			zap.String("version", version),
			zap.String("default_template", string(cfg.Card.DefaultTemplate)),
			zap.String("locale", cfg.Card.Locale),
			zap.String("timezone", cfg.Card.Timezone),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
