package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/cliptube/cliptube/internal/config"
	"github.com/cliptube/cliptube/internal/domain/repository"
	"github.com/cliptube/cliptube/internal/infrastructure/queue"
	"github.com/cliptube/cliptube/internal/infrastructure/storage"
	"github.com/cliptube/cliptube/internal/probe"
	"github.com/cliptube/cliptube/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	storageClient, err := storage.NewClient(ctx, storage.ClientConfig{
		Endpoint:       cfg.MinIO.Endpoint,
		PublicEndpoint: cfg.MinIO.PublicEndpoint,
		AccessKey:      cfg.MinIO.AccessKey,
		SecretKey:      cfg.MinIO.SecretKey,
		Bucket:         cfg.MinIO.Bucket,
		UseSSL:         cfg.MinIO.UseSSL,
	}, probe.NewFFprobe(probe.DefaultFFprobeConfig()))
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	logger.Info("connected to MinIO")

	queueClient, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()
	logger.Info("connected to RabbitMQ")

	processor := usecase.NewCleanupProcessor(storageClient, usecase.CleanupProcessorConfig{
		MaxAttempts: cfg.Worker.MaxAttempts,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// WaitGroup to track in-flight tasks
	var wg sync.WaitGroup

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting worker, consuming cleanup tasks")
		err := queueClient.ConsumeCleanupTasks(ctx, func(task repository.CleanupTask) error {
			wg.Add(1)
			defer wg.Done()

			return processor.HandleTask(ctx, task)
		})
		if err != nil && ctx.Err() == nil {
			errCh <- fmt.Errorf("consumer error: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down worker", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Worker.ShutdownTimeout)
	defer shutdownCancel()

	// Stop consuming new messages, then drain in-flight tasks.
	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("all in-flight tasks completed")
	case <-shutdownCtx.Done():
		logger.Warn("shutdown timeout exceeded, some tasks may not have completed")
	}

	logger.Info("worker stopped")
	return nil
}
