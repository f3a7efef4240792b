package repository

import "context"

// CleanupTask is a deferred request to remove a remote asset whose inline
// deletion failed or whose owning operation was rolled back. The worker
// retries it with an attempt cap.
type CleanupTask struct {
	Locator  string `json:"locator"`
	Reason   string `json:"reason"`
	Attempts int    `json:"attempts"`
}

// Cleanup task reasons recorded for observability.
const (
	CleanupReasonReplace        = "replace_previous_asset"
	CleanupReasonPartialUpload  = "partial_upload_rollback"
	CleanupReasonResourceDelete = "resource_deletion"
)

// CleanupQueue defines the interface for the deferred asset-cleanup queue.
// Implementations should be provided by the infrastructure layer.
type CleanupQueue interface {
	// PublishCleanupTask enqueues a deferred remote deletion.
	PublishCleanupTask(ctx context.Context, task CleanupTask) error

	// ConsumeCleanupTasks delivers tasks to the handler until ctx is done.
	// A handler error requeues the task.
	ConsumeCleanupTasks(ctx context.Context, handler func(task CleanupTask) error) error

	// Close gracefully closes the connection to the queue.
	Close() error
}
