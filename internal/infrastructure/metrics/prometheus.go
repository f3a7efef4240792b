// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cliptube"

var (
	// CacheOperationsTotal tracks cache operations (get, set, delete).
	// Labels:
	//   - operation: get, set, delete
	//   - status: hit, miss, success, error
	//   - cache_type: redis
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Total number of cache operations",
		},
		[]string{"operation", "status", "cache_type"},
	)

	// ToggleOperationsTotal tracks like and subscription toggles.
	// Labels:
	//   - relation: like, subscription
	//   - outcome: added, removed
	ToggleOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "toggle_operations_total",
			Help:      "Total number of relation toggle operations",
		},
		[]string{"relation", "outcome"},
	)

	// AssetUploadsTotal tracks remote asset uploads.
	// Labels:
	//   - kind: video, image
	//   - status: success, error
	AssetUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_uploads_total",
			Help:      "Total number of remote asset uploads",
		},
		[]string{"kind", "status"},
	)

	// CleanupTasksTotal tracks deferred asset cleanup processing.
	// Labels:
	//   - status: success, retried, dropped
	CleanupTasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleanup_tasks_total",
			Help:      "Total number of processed asset cleanup tasks",
		},
		[]string{"status"},
	)

	// SingleflightRequestsTotal tracks singleflight behavior.
	// Labels:
	//   - result: initiated (new execution), shared (reused result)
	SingleflightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "singleflight_requests_total",
			Help:      "Total number of singleflight requests",
		},
		[]string{"result"},
	)
)

// Cache operation status constants.
const (
	CacheStatusHit     = "hit"
	CacheStatusMiss    = "miss"
	CacheStatusSuccess = "success"
	CacheStatusError   = "error"
)

// Cache operation type constants.
const (
	CacheOpGet    = "get"
	CacheOpSet    = "set"
	CacheOpDelete = "delete"
)

// Cache type constants.
const (
	CacheTypeRedis = "redis"
)

// Toggle relation constants.
const (
	ToggleRelationLike         = "like"
	ToggleRelationSubscription = "subscription"
)

// Toggle outcome constants.
const (
	ToggleOutcomeAdded   = "added"
	ToggleOutcomeRemoved = "removed"
)

// Upload kind constants.
const (
	UploadKindVideo = "video"
	UploadKindImage = "image"
)

// Upload status constants.
const (
	UploadStatusSuccess = "success"
	UploadStatusError   = "error"
)

// Cleanup task status constants.
const (
	CleanupStatusSuccess = "success"
	CleanupStatusRetried = "retried"
	CleanupStatusDropped = "dropped"
)

// Singleflight result constants.
const (
	SingleflightInitiated = "initiated"
	SingleflightShared    = "shared"
)
