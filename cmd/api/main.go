package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/thrackle-io/curve-estimator/internal/config"
	"github.com/thrackle-io/curve-estimator/internal/eth"
	"github.com/thrackle-io/curve-estimator/internal/handler"
	"github.com/thrackle-io/curve-estimator/internal/logging"
	"github.com/thrackle-io/curve-estimator/internal/metrics"
	"github.com/thrackle-io/curve-estimator/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	app := fiber.New()
	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	quoteService := service.NewQuoteService(logger, metrics.NewMetrics(reg), cfg.BatchWorkers, cfg.MaxBatchSize)
	quoteHandler := handler.NewQuoteHandler(logger, quoteService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var estimateHandler *handler.EstimateHandler
	closeEth := func() {}
	if cfg.RPCEndpoint != "" {
		ethereumClient, err := eth.Dial(ctx, cfg.RPCEndpoint)
		if err != nil {
			return fmt.Errorf("failed to connect to Ethereum node: %w", err)
		}
		closeEth = ethereumClient.Close
		estimateService := service.NewEstimateService(logger, eth.NewPairReader(ethereumClient))
		estimateHandler = handler.NewEstimateHandler(logger, estimateService)
	} else {
		logger.Info("ETH_RPC_URL not set; pool estimates disabled")
	}
	defer closeEth()

	handler.Register(app, quoteHandler, estimateHandler)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return app.ShutdownWithContext(shutdownCtx)
}
