// Command submission runs the gRPC service that accepts feed URL
// submissions, records them in the durable ledger, and enqueues new URLs
// for the ingestion worker.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"newsfeed/internal/config"
	"newsfeed/internal/infra/adapter/persistence/postgres"
	"newsfeed/internal/infra/broker/rabbit"
	"newsfeed/internal/infra/db"
	grpciface "newsfeed/internal/interface/grpc"
	pb "newsfeed/internal/interface/grpc/pb/newsfeed"
	"newsfeed/internal/observability/logging"
	"newsfeed/internal/usecase/submit"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.LedgerDSN)
	if err != nil {
		logger.Error("failed to open ledger database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.Migrate(ctx, database); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

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

	ledger := postgres.NewSubmissionLedger(database)
	submitSvc := submit.NewService(ledger, broker, cfg.QueueName, logger)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", slog.String("addr", cfg.GRPCAddr), slog.Any("error", err))
		os.Exit(1)
	}

	server := grpc.NewServer()
	pb.RegisterNewsServiceServer(server, grpciface.NewNewsServer(submitSvc))

	go func() {
		<-ctx.Done()
		logger.Info("shutting down submission server")
		server.GracefulStop()
	}()

	logger.Info("submission server listening",
		slog.String("addr", cfg.GRPCAddr),
		slog.String("queue", cfg.QueueName))
	if err := server.Serve(lis); err != nil {
		logger.Error("submission server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
