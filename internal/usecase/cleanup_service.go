package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cliptube/cliptube/internal/domain/repository"
	"github.com/cliptube/cliptube/internal/infrastructure/metrics"
)

// CleanupProcessorConfig holds configuration for the cleanup processor.
type CleanupProcessorConfig struct {
	// MaxAttempts caps retries per task. A task arriving at the cap is
	// dropped and the remote object stays orphaned until manual cleanup.
	MaxAttempts int
}

// DefaultCleanupProcessorConfig returns the default configuration.
func DefaultCleanupProcessorConfig() CleanupProcessorConfig {
	return CleanupProcessorConfig{
		MaxAttempts: 5,
	}
}

// CleanupProcessor executes deferred asset-cleanup tasks on the worker.
type CleanupProcessor struct {
	store       repository.MediaStore
	maxAttempts int
}

// NewCleanupProcessor creates a new CleanupProcessor instance.
func NewCleanupProcessor(store repository.MediaStore, cfg CleanupProcessorConfig) *CleanupProcessor {
	return &CleanupProcessor{
		store:       store,
		maxAttempts: cfg.MaxAttempts,
	}
}

// HandleTask deletes the remote object a task references. Returning an
// error makes the consumer republish the task with an incremented
// attempt count, so exhausted tasks must return nil to be acked away.
func (p *CleanupProcessor) HandleTask(ctx context.Context, task repository.CleanupTask) error {
	if task.Attempts >= p.maxAttempts {
		metrics.CleanupTasksTotal.WithLabelValues(metrics.CleanupStatusDropped).Inc()
		slog.Error("cleanup task exhausted its attempts, dropping",
			"locator", task.Locator,
			"reason", task.Reason,
			"attempts", task.Attempts,
		)
		return nil
	}

	if err := p.store.DeleteByLocator(ctx, task.Locator); err != nil {
		metrics.CleanupTasksTotal.WithLabelValues(metrics.CleanupStatusRetried).Inc()
		return fmt.Errorf("delete asset: %w", err)
	}

	metrics.CleanupTasksTotal.WithLabelValues(metrics.CleanupStatusSuccess).Inc()
	slog.Info("cleaned up remote asset",
		"locator", task.Locator,
		"reason", task.Reason,
		"attempts", task.Attempts,
	)
	return nil
}
