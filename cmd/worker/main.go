// Command worker consumes queued feed URLs, fetches and parses each feed,
// and writes deduplicated entries to the search index and the graph store.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsfeed/internal/config"
	"newsfeed/internal/infra/broker/rabbit"
	"newsfeed/internal/infra/feed"
	"newsfeed/internal/infra/sink/elastic"
	"newsfeed/internal/infra/sink/graph"
	workerPkg "newsfeed/internal/infra/worker"
	"newsfeed/internal/observability/logging"
	"newsfeed/internal/usecase/ingest"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg := config.Load()
	workerCfg := workerPkg.LoadConfigFromEnv()
	if err := workerCfg.Validate(); err != nil {
		logger.Error("invalid worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.Int("pool_size", workerCfg.PoolSize),
		slog.Duration("process_timeout", workerCfg.ProcessTimeout),
		slog.String("health_addr", workerCfg.HealthAddr))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	searchSink, err := elastic.NewSearchSink(cfg.SearchAddr, cfg.SearchIndex)
	if err != nil {
		logger.Error("failed to build search sink", slog.Any("error", err))
		os.Exit(1)
	}

	graphSink, err := graph.NewGraphSink(cfg.GraphAddr, cfg.GraphUser, cfg.GraphPassword)
	if err != nil {
		logger.Error("failed to build graph sink", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := graphSink.Close(context.Background()); err != nil {
			logger.Error("failed to close graph driver", slog.Any("error", err))
		}
	}()

	broker, err := rabbit.Dial(cfg.BrokerAddr, logger)
	if err != nil {
		logger.Error("failed to connect to broker", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := broker.Close(); err != nil {
			logger.Error("failed to close broker", slog.Any("error", err))
		}
	}()

	if err := broker.DeclareQueue(cfg.QueueName); err != nil {
		logger.Error("failed to declare queue", slog.Any("error", err))
		os.Exit(1)
	}

	fetcher := feed.NewRSSFetcher(&http.Client{Timeout: 30 * time.Second})
	ingestSvc := ingest.NewService(fetcher, searchSink, graphSink, logger)

	healthServer := workerPkg.NewHealthServer(workerCfg.HealthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	startMetricsServer(ctx, logger, cfg.MetricsAddr)

	handler := func(ctx context.Context, body []byte) error {
		ctx, cancel := context.WithTimeout(ctx, workerCfg.ProcessTimeout)
		defer cancel()
		_, err := ingestSvc.ProcessURL(ctx, string(body))
		return err
	}

	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("queue", cfg.QueueName))

	err = broker.Consume(ctx, cfg.QueueName, workerCfg.PoolSize, handler)
	healthServer.SetReady(false)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumer stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker stopped")
}
