package cache

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
)

// VideoCache defines the interface for caching video detail reads.
// Implementations should handle serialization/deserialization transparently.
type VideoCache interface {
	// Get retrieves a video with its owner from cache by ID.
	// Returns nil, nil if the video is not found in cache (cache miss).
	Get(ctx context.Context, videoID uuid.UUID) (*model.VideoWithOwner, error)

	// Set stores a video with its owner in cache with the specified TTL.
	Set(ctx context.Context, video *model.VideoWithOwner, ttl time.Duration) error

	// Delete removes a video from cache by ID.
	// Returns nil if the video was not in cache.
	Delete(ctx context.Context, videoID uuid.UUID) error
}
