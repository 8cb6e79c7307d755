// Command api serves the HTTP facade: read endpoints over the search
// index and the graph store, and a submission endpoint that forwards feed
// URLs to the submission service over gRPC.
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

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsfeed/internal/config"
	hhttp "newsfeed/internal/handler/http"
	"newsfeed/internal/handler/http/news"
	"newsfeed/internal/handler/http/requestid"
	infragrpc "newsfeed/internal/infra/grpc"
	"newsfeed/internal/infra/sink/elastic"
	"newsfeed/internal/infra/sink/graph"
	"newsfeed/internal/observability/logging"
	"newsfeed/internal/observability/tracing"
	"newsfeed/internal/usecase/browse"
)

const maxRequestBody = 1 << 20 // 1 MiB

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg := config.Load()

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

	submission, err := infragrpc.NewSubmissionClient(cfg.GRPCAddr, logger)
	if err != nil {
		logger.Error("failed to build submission client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := submission.Close(); err != nil {
			logger.Error("failed to close submission client", slog.Any("error", err))
		}
	}()

	browseSvc := browse.NewService(searchSink, graphSink, logger)

	mux := http.NewServeMux()
	news.Register(mux, browseSvc, submission, logger)
	mux.HandleFunc("GET /healthz", hhttp.Healthz())
	mux.HandleFunc("GET /readyz", hhttp.Readyz(map[string]hhttp.Pinger{
		"search": searchSink,
		"graph":  graphSink,
	}))
	mux.Handle("GET /metrics", promhttp.Handler())

	rateLimiter := hhttp.NewRateLimiter(10, 20)
	handler := hhttp.Chain(mux,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.Metrics(),
		hhttp.LimitRequestBody(maxRequestBody),
		rateLimiter.Middleware,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down api server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("api server shutdown failed", slog.Any("error", err))
		}
	}()

	logger.Info("api server listening", slog.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("api server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
