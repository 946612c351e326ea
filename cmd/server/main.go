package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nemanja-m/wordfreq/internal/analyzer/api/grpc"
	"github.com/nemanja-m/wordfreq/internal/analyzer/api/rest"
	"github.com/nemanja-m/wordfreq/internal/analyzer/service"
	"github.com/nemanja-m/wordfreq/internal/shared/config"
	"github.com/nemanja-m/wordfreq/internal/shared/logging"
	"github.com/nemanja-m/wordfreq/pkg/mapreduce"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.LoadServer(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.NewSlogLoggerWithWriter(os.Stdout, logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)

	engine := mapreduce.NewEngine(mapreduce.Config{
		MaxInputBytes:     cfg.Analysis.MaxInputBytes,
		NumMappers:        cfg.Analysis.NumMappers,
		NumReducers:       cfg.Analysis.NumReducers,
		ParallelThreshold: cfg.Analysis.ParallelThreshold,
		Logger:            logger,
	})
	analysisService := service.NewAnalysisService(engine, logger)

	restServer := rest.NewServer(cfg.REST, analysisService, logger)
	grpcServer := grpc.NewServer(cfg.GRPC, analysisService, logger)

	go func() {
		logger.Info("Starting REST server", "addr", cfg.REST.Addr)
		if err := restServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("REST server error", "error", err)
		}
	}()

	go func() {
		logger.Info("Starting gRPC server", "addr", cfg.GRPC.Addr)
		if err := grpcServer.Start(); err != nil {
			logger.Fatal("gRPC server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down servers...")

	// Give servers 30 seconds to finish serving ongoing requests
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		grpcServer.Stop()
		close(stopped)
	}()

	if err := restServer.Shutdown(ctx); err != nil {
		logger.Error("REST server forced to shutdown", "error", err)
	}

	select {
	case <-stopped:
	case <-ctx.Done():
		logger.Error("gRPC server did not stop in time")
	}

	logger.Info("Servers stopped")
}
