package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
	"github.com/cliptube/cliptube/internal/infrastructure/metrics"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 100
)

// PublishVideoInput contains the input parameters for publishing a video.
// VideoPath and ThumbnailPath are local scratch files; the media store
// removes them on every exit path.
type PublishVideoInput struct {
	OwnerID       uuid.UUID
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// VideoService defines the interface for video business logic operations.
type VideoService interface {
	// PublishVideo uploads both assets and persists the video. If either
	// upload fails, no video row is written and any asset that did upload
	// is handed to the cleanup queue.
	PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error)

	// GetVideo retrieves a video joined with its owner's public profile.
	GetVideo(ctx context.Context, videoID uuid.UUID) (*model.VideoWithOwner, error)

	// Feed runs the filtered, sorted, paginated video listing.
	Feed(ctx context.Context, q repository.VideoFeedQuery) (*repository.VideoPage, error)

	// UpdateDetails changes a video's title and description.
	// Only the owner may update; others get ErrForbidden.
	UpdateDetails(ctx context.Context, videoID, byUser uuid.UUID, title, description string) (*model.Video, error)

	// ReplaceThumbnail uploads a new thumbnail and releases the previous
	// one. A failed release is deferred to the cleanup queue; the update
	// itself still succeeds.
	ReplaceThumbnail(ctx context.Context, videoID, byUser uuid.UUID, thumbnailPath string) (*model.Video, error)

	// DeleteVideo removes the video row together with its dependent
	// relations, then releases both remote assets.
	DeleteVideo(ctx context.Context, videoID, byUser uuid.UUID) error

	// TogglePublish flips the video's publish flag.
	TogglePublish(ctx context.Context, videoID, byUser uuid.UUID) (*model.Video, error)
}

type videoService struct {
	repo  repository.VideoRepository
	store repository.MediaStore
	queue repository.CleanupQueue
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(
	repo repository.VideoRepository,
	store repository.MediaStore,
	queue repository.CleanupQueue,
) VideoService {
	return &videoService{
		repo:  repo,
		store: store,
		queue: queue,
	}
}

// PublishVideo validates the draft, uploads the video and thumbnail
// concurrently, then persists the row.
//
// Rollback discipline: the row is written only after both uploads
// succeed. On a partial failure the surviving remote object is enqueued
// for deferred deletion so nothing leaks; the scratch files are already
// gone because the media store removes them unconditionally.
func (s *videoService) PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error) {
	video, err := model.NewVideo(input.OwnerID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	var videoResult, thumbResult *repository.UploadResult

	// A plain group, not WithContext: both uploads run to completion so
	// the survivor of a partial failure is known and can be released.
	var g errgroup.Group
	g.Go(func() error {
		r, err := s.store.UploadFile(ctx, input.VideoPath, repository.AssetVideo)
		if err != nil {
			metrics.AssetUploadsTotal.WithLabelValues(metrics.UploadKindVideo, metrics.UploadStatusError).Inc()
			return fmt.Errorf("upload video: %w", err)
		}
		metrics.AssetUploadsTotal.WithLabelValues(metrics.UploadKindVideo, metrics.UploadStatusSuccess).Inc()
		videoResult = r
		return nil
	})
	g.Go(func() error {
		r, err := s.store.UploadFile(ctx, input.ThumbnailPath, repository.AssetImage)
		if err != nil {
			metrics.AssetUploadsTotal.WithLabelValues(metrics.UploadKindImage, metrics.UploadStatusError).Inc()
			return fmt.Errorf("upload thumbnail: %w", err)
		}
		metrics.AssetUploadsTotal.WithLabelValues(metrics.UploadKindImage, metrics.UploadStatusSuccess).Inc()
		thumbResult = r
		return nil
	})

	if err := g.Wait(); err != nil {
		for _, r := range []*repository.UploadResult{videoResult, thumbResult} {
			if r != nil {
				s.enqueueCleanup(ctx, r.Locator, repository.CleanupReasonPartialUpload)
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	video.SetAssets(videoResult.Locator, thumbResult.Locator, videoResult.Duration)

	if err := s.repo.Create(ctx, video); err != nil {
		s.enqueueCleanup(ctx, videoResult.Locator, repository.CleanupReasonPartialUpload)
		s.enqueueCleanup(ctx, thumbResult.Locator, repository.CleanupReasonPartialUpload)
		return nil, fmt.Errorf("create video: %w", err)
	}

	return video, nil
}

func (s *videoService) GetVideo(ctx context.Context, videoID uuid.UUID) (*model.VideoWithOwner, error) {
	return s.repo.GetByIDWithOwner(ctx, videoID)
}

// Feed normalizes the page request and delegates to the repository
// pipeline. Out-of-range page numbers past the end are legal and yield an
// empty page.
func (s *videoService) Feed(ctx context.Context, q repository.VideoFeedQuery) (*repository.VideoPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultFeedLimit
	}
	if q.Limit > maxFeedLimit {
		q.Limit = maxFeedLimit
	}
	return s.repo.Feed(ctx, q)
}

func (s *videoService) UpdateDetails(ctx context.Context, videoID, byUser uuid.UUID, title, description string) (*model.Video, error) {
	video, err := s.ownedVideo(ctx, videoID, byUser)
	if err != nil {
		return nil, err
	}

	if title == "" {
		return nil, model.ErrEmptyTitle
	}
	if description == "" {
		return nil, model.ErrEmptyDescription
	}

	video.Title = title
	video.Description = description

	if err := s.repo.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("update video: %w", err)
	}
	return video, nil
}

// ReplaceThumbnail swaps a video's thumbnail in two phases: upload the
// new object, then release the old one. A failed release does not undo
// the swap; the stale object is deferred to the cleanup queue instead.
func (s *videoService) ReplaceThumbnail(ctx context.Context, videoID, byUser uuid.UUID, thumbnailPath string) (*model.Video, error) {
	video, err := s.ownedVideo(ctx, videoID, byUser)
	if err != nil {
		return nil, err
	}

	result, err := s.store.UploadFile(ctx, thumbnailPath, repository.AssetImage)
	if err != nil {
		metrics.AssetUploadsTotal.WithLabelValues(metrics.UploadKindImage, metrics.UploadStatusError).Inc()
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	metrics.AssetUploadsTotal.WithLabelValues(metrics.UploadKindImage, metrics.UploadStatusSuccess).Inc()

	previous := video.ThumbnailURL
	video.SetThumbnail(result.Locator)

	if err := s.repo.Update(ctx, video); err != nil {
		// The new object is orphaned; release it before reporting failure.
		if cleanupErr := s.releaseAsset(ctx, result.Locator, repository.CleanupReasonPartialUpload); cleanupErr != nil {
			return nil, cleanupErr
		}
		return nil, fmt.Errorf("update video: %w", err)
	}

	if previous != "" {
		if err := s.releaseAsset(ctx, previous, repository.CleanupReasonReplace); err != nil {
			return nil, err
		}
	}

	return video, nil
}

// DeleteVideo releases both remote objects concurrently, then removes
// the row together with its dependent relations. An absent remote
// object counts as released, so retrying a delete is safe; a hard
// release failure is deferred to the cleanup queue instead of blocking
// the user's delete.
func (s *videoService) DeleteVideo(ctx context.Context, videoID, byUser uuid.UUID) error {
	video, err := s.ownedVideo(ctx, videoID, byUser)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, locator := range []string{video.VideoURL, video.ThumbnailURL} {
		if locator == "" {
			continue
		}
		g.Go(func() error {
			return s.releaseAsset(ctx, locator, repository.CleanupReasonResourceDelete)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, videoID); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}

	return nil
}

func (s *videoService) TogglePublish(ctx context.Context, videoID, byUser uuid.UUID) (*model.Video, error) {
	video, err := s.ownedVideo(ctx, videoID, byUser)
	if err != nil {
		return nil, err
	}

	video.TogglePublished()

	if err := s.repo.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("update video: %w", err)
	}
	return video, nil
}

// ownedVideo loads a video and verifies ownership.
func (s *videoService) ownedVideo(ctx context.Context, videoID, byUser uuid.UUID) (*model.Video, error) {
	video, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.IsOwnedBy(byUser) {
		return nil, ErrForbidden
	}
	return video, nil
}

// releaseAsset deletes a remote object, falling back to the deferred
// cleanup queue when the inline delete fails. Only a queue that also
// refuses the task surfaces as ErrCleanupFailed.
func (s *videoService) releaseAsset(ctx context.Context, locator, reason string) error {
	err := s.store.DeleteByLocator(ctx, locator)
	if err == nil {
		return nil
	}
	slog.Warn("inline asset delete failed, deferring to cleanup queue",
		"locator", locator,
		"reason", reason,
		"error", err,
	)

	task := repository.CleanupTask{Locator: locator, Reason: reason}
	if err := s.queue.PublishCleanupTask(ctx, task); err != nil {
		return fmt.Errorf("%w: %v", ErrCleanupFailed, err)
	}
	return nil
}

// enqueueCleanup publishes a cleanup task on a best-effort basis. Used
// on rollback paths where the primary failure is already being reported.
func (s *videoService) enqueueCleanup(ctx context.Context, locator, reason string) {
	task := repository.CleanupTask{Locator: locator, Reason: reason}
	if err := s.queue.PublishCleanupTask(ctx, task); err != nil {
		slog.Error("failed to enqueue cleanup task",
			"locator", locator,
			"reason", reason,
			"error", err,
		)
	}
}
