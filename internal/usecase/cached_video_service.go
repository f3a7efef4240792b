package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
	"github.com/cliptube/cliptube/internal/infrastructure/cache"
	"github.com/cliptube/cliptube/internal/infrastructure/metrics"
)

// CachedVideoServiceConfig holds configuration for CachedVideoService.
type CachedVideoServiceConfig struct {
	// CacheTTL is the TTL for cached video detail records.
	CacheTTL time.Duration
}

// DefaultCachedVideoServiceConfig returns the default configuration.
func DefaultCachedVideoServiceConfig() CachedVideoServiceConfig {
	return CachedVideoServiceConfig{
		CacheTTL: 5 * time.Minute,
	}
}

// cachedVideoService wraps VideoService with caching capabilities.
// It implements the decorator pattern to add caching without modifying the original service.
type cachedVideoService struct {
	delegate VideoService
	cache    cache.VideoCache
	sfGroup  singleflight.Group

	cacheTTL time.Duration
}

// NewCachedVideoService creates a new CachedVideoService wrapping the provided VideoService.
func NewCachedVideoService(
	delegate VideoService,
	videoCache cache.VideoCache,
	cfg CachedVideoServiceConfig,
) VideoService {
	return &cachedVideoService{
		delegate: delegate,
		cache:    videoCache,
		cacheTTL: cfg.CacheTTL,
	}
}

// PublishVideo delegates to the underlying service.
// No caching for publish - the video is immediately returned.
func (s *cachedVideoService) PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error) {
	return s.delegate.PublishVideo(ctx, input)
}

// GetVideo retrieves the video detail record with caching.
// Uses singleflight to prevent cache stampede on concurrent requests for the same video.
func (s *cachedVideoService) GetVideo(ctx context.Context, videoID uuid.UUID) (*model.VideoWithOwner, error) {
	key := videoID.String()
	result, err, shared := s.sfGroup.Do(key, func() (any, error) {
		return s.getVideoWithCache(ctx, videoID)
	})

	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		return nil, err
	}

	return result.(*model.VideoWithOwner), nil
}

// getVideoWithCache implements the cache-aside pattern.
func (s *cachedVideoService) getVideoWithCache(ctx context.Context, videoID uuid.UUID) (*model.VideoWithOwner, error) {
	video, err := s.cache.Get(ctx, videoID)
	if err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError, metrics.CacheTypeRedis).Inc()
		slog.Warn("cache get failed, falling back to database",
			"video_id", videoID,
			"error", err,
		)
	}

	if video != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusHit, metrics.CacheTypeRedis).Inc()
		return video, nil
	}
	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss, metrics.CacheTypeRedis).Inc()

	video, err = s.delegate.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, video, s.cacheTTL); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusError, metrics.CacheTypeRedis).Inc()
		slog.Warn("failed to cache video",
			"video_id", videoID,
			"error", err,
		)
	} else {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusSuccess, metrics.CacheTypeRedis).Inc()
	}

	return video, nil
}

// Feed delegates to the underlying service. Pages are not cached; only
// the per-video detail record is.
func (s *cachedVideoService) Feed(ctx context.Context, q repository.VideoFeedQuery) (*repository.VideoPage, error) {
	return s.delegate.Feed(ctx, q)
}

// UpdateDetails invalidates the cached record after a successful update.
func (s *cachedVideoService) UpdateDetails(ctx context.Context, videoID, byUser uuid.UUID, title, description string) (*model.Video, error) {
	video, err := s.delegate.UpdateDetails(ctx, videoID, byUser, title, description)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, videoID)
	return video, nil
}

// ReplaceThumbnail invalidates the cached record after a successful swap.
func (s *cachedVideoService) ReplaceThumbnail(ctx context.Context, videoID, byUser uuid.UUID, thumbnailPath string) (*model.Video, error) {
	video, err := s.delegate.ReplaceThumbnail(ctx, videoID, byUser, thumbnailPath)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, videoID)
	return video, nil
}

// DeleteVideo invalidates the cached record after a successful delete.
func (s *cachedVideoService) DeleteVideo(ctx context.Context, videoID, byUser uuid.UUID) error {
	if err := s.delegate.DeleteVideo(ctx, videoID, byUser); err != nil {
		return err
	}
	s.invalidate(ctx, videoID)
	return nil
}

// TogglePublish invalidates the cached record after a successful flip.
func (s *cachedVideoService) TogglePublish(ctx context.Context, videoID, byUser uuid.UUID) (*model.Video, error) {
	video, err := s.delegate.TogglePublish(ctx, videoID, byUser)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, videoID)
	return video, nil
}

// invalidate removes a video from the cache. Failures are logged, not
// propagated: the TTL bounds how long a stale record can be served.
func (s *cachedVideoService) invalidate(ctx context.Context, videoID uuid.UUID) {
	if err := s.cache.Delete(ctx, videoID); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpDelete, metrics.CacheStatusError, metrics.CacheTypeRedis).Inc()
		slog.Warn("failed to invalidate cached video",
			"video_id", videoID,
			"error", err,
		)
		return
	}
	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpDelete, metrics.CacheStatusSuccess, metrics.CacheTypeRedis).Inc()
}
