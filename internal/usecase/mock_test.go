package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
)

// mockVideoRepository provides a configurable mock for VideoRepository.
type mockVideoRepository struct {
	createFn           func(ctx context.Context, video *model.Video) error
	getByIDFn          func(ctx context.Context, id uuid.UUID) (*model.Video, error)
	getByIDWithOwnerFn func(ctx context.Context, id uuid.UUID) (*model.VideoWithOwner, error)
	feedFn             func(ctx context.Context, q repository.VideoFeedQuery) (*repository.VideoPage, error)
	updateFn           func(ctx context.Context, video *model.Video) error
	deleteFn           func(ctx context.Context, id uuid.UUID) error
	listLikedByFn      func(ctx context.Context, actorID uuid.UUID) ([]*model.VideoWithOwner, error)
	listByOwnerFn      func(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error)
}

func (m *mockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	if m.createFn != nil {
		return m.createFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockVideoRepository) GetByIDWithOwner(ctx context.Context, id uuid.UUID) (*model.VideoWithOwner, error) {
	if m.getByIDWithOwnerFn != nil {
		return m.getByIDWithOwnerFn(ctx, id)
	}
	return nil, nil
}

func (m *mockVideoRepository) Feed(ctx context.Context, q repository.VideoFeedQuery) (*repository.VideoPage, error) {
	if m.feedFn != nil {
		return m.feedFn(ctx, q)
	}
	return nil, nil
}

func (m *mockVideoRepository) Update(ctx context.Context, video *model.Video) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockVideoRepository) ListLikedBy(ctx context.Context, actorID uuid.UUID) ([]*model.VideoWithOwner, error) {
	if m.listLikedByFn != nil {
		return m.listLikedByFn(ctx, actorID)
	}
	return nil, nil
}

func (m *mockVideoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

// mockUserRepository provides a configurable mock for UserRepository.
type mockUserRepository struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*model.User, error)
	existsFn  func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return true, nil
}

// mockCommentRepository provides a configurable mock for CommentRepository.
type mockCommentRepository struct {
	createFn      func(ctx context.Context, comment *model.Comment) error
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	listByVideoFn func(ctx context.Context, videoID uuid.UUID, page repository.PageRequest) (*repository.CommentPage, error)
	updateFn      func(ctx context.Context, comment *model.Comment) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, page repository.PageRequest) (*repository.CommentPage, error) {
	if m.listByVideoFn != nil {
		return m.listByVideoFn(ctx, videoID, page)
	}
	return nil, nil
}

func (m *mockCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockTweetRepository provides a configurable mock for TweetRepository.
type mockTweetRepository struct {
	createFn      func(ctx context.Context, tweet *model.Tweet) error
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*model.Tweet, error)
	listByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error)
	updateFn      func(ctx context.Context, tweet *model.Tweet) error
	deleteFn      func(ctx context.Context, id, ownerID uuid.UUID) error
}

func (m *mockTweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	if m.createFn != nil {
		return m.createFn(ctx, tweet)
	}
	return nil
}

func (m *mockTweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTweetRepository) Update(ctx context.Context, tweet *model.Tweet) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, tweet)
	}
	return nil
}

func (m *mockTweetRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, ownerID)
	}
	return nil
}

// mockPlaylistRepository provides a configurable mock for PlaylistRepository.
type mockPlaylistRepository struct {
	createFn      func(ctx context.Context, playlist *model.Playlist) error
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*model.Playlist, error)
	listByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error)
	addVideoFn    func(ctx context.Context, playlistID, ownerID, videoID uuid.UUID) (*model.Playlist, error)
	removeVideoFn func(ctx context.Context, playlistID, ownerID, videoID uuid.UUID) (*model.Playlist, error)
	updateFn      func(ctx context.Context, playlist *model.Playlist) error
	deleteFn      func(ctx context.Context, id, ownerID uuid.UUID) error
}

func (m *mockPlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	if m.createFn != nil {
		return m.createFn(ctx, playlist)
	}
	return nil
}

func (m *mockPlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPlaylistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockPlaylistRepository) AddVideo(ctx context.Context, playlistID, ownerID, videoID uuid.UUID) (*model.Playlist, error) {
	if m.addVideoFn != nil {
		return m.addVideoFn(ctx, playlistID, ownerID, videoID)
	}
	return nil, nil
}

func (m *mockPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, ownerID, videoID uuid.UUID) (*model.Playlist, error) {
	if m.removeVideoFn != nil {
		return m.removeVideoFn(ctx, playlistID, ownerID, videoID)
	}
	return nil, nil
}

func (m *mockPlaylistRepository) Update(ctx context.Context, playlist *model.Playlist) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, playlist)
	}
	return nil
}

func (m *mockPlaylistRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, ownerID)
	}
	return nil
}

// mockLikeRepository provides a configurable mock for LikeRepository.
type mockLikeRepository struct {
	findFn          func(ctx context.Context, kind model.SubjectKind, subjectID, actorID uuid.UUID) (*model.Like, error)
	createFn        func(ctx context.Context, like *model.Like) error
	deleteFn        func(ctx context.Context, kind model.SubjectKind, subjectID, actorID uuid.UUID) error
	countForOwnerFn func(ctx context.Context, kind model.SubjectKind, ownerID uuid.UUID) (int64, error)
}

func (m *mockLikeRepository) Find(ctx context.Context, kind model.SubjectKind, subjectID, actorID uuid.UUID) (*model.Like, error) {
	if m.findFn != nil {
		return m.findFn(ctx, kind, subjectID, actorID)
	}
	return nil, nil
}

func (m *mockLikeRepository) Create(ctx context.Context, like *model.Like) error {
	if m.createFn != nil {
		return m.createFn(ctx, like)
	}
	return nil
}

func (m *mockLikeRepository) Delete(ctx context.Context, kind model.SubjectKind, subjectID, actorID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, kind, subjectID, actorID)
	}
	return nil
}

func (m *mockLikeRepository) CountForOwner(ctx context.Context, kind model.SubjectKind, ownerID uuid.UUID) (int64, error) {
	if m.countForOwnerFn != nil {
		return m.countForOwnerFn(ctx, kind, ownerID)
	}
	return 0, nil
}

// mockSubscriptionRepository provides a configurable mock for SubscriptionRepository.
type mockSubscriptionRepository struct {
	findFn                   func(ctx context.Context, channelID, subscriberID uuid.UUID) (*model.Subscription, error)
	createFn                 func(ctx context.Context, sub *model.Subscription) error
	deleteFn                 func(ctx context.Context, channelID, subscriberID uuid.UUID) error
	listSubscribersFn        func(ctx context.Context, channelID uuid.UUID) ([]*model.PublicUser, error)
	listSubscribedChannelsFn func(ctx context.Context, subscriberID uuid.UUID) ([]*model.PublicUser, error)
	countSubscribersFn       func(ctx context.Context, channelID uuid.UUID) (int64, error)
}

func (m *mockSubscriptionRepository) Find(ctx context.Context, channelID, subscriberID uuid.UUID) (*model.Subscription, error) {
	if m.findFn != nil {
		return m.findFn(ctx, channelID, subscriberID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	if m.createFn != nil {
		return m.createFn(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) Delete(ctx context.Context, channelID, subscriberID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, channelID, subscriberID)
	}
	return nil
}

func (m *mockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*model.PublicUser, error) {
	if m.listSubscribersFn != nil {
		return m.listSubscribersFn(ctx, channelID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*model.PublicUser, error) {
	if m.listSubscribedChannelsFn != nil {
		return m.listSubscribedChannelsFn(ctx, subscriberID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	if m.countSubscribersFn != nil {
		return m.countSubscribersFn(ctx, channelID)
	}
	return 0, nil
}

// mockMediaStore provides a configurable mock for MediaStore.
type mockMediaStore struct {
	uploadFileFn      func(ctx context.Context, localPath string, kind repository.AssetKind) (*repository.UploadResult, error)
	deleteByLocatorFn func(ctx context.Context, locator string) error
}

func (m *mockMediaStore) UploadFile(ctx context.Context, localPath string, kind repository.AssetKind) (*repository.UploadResult, error) {
	if m.uploadFileFn != nil {
		return m.uploadFileFn(ctx, localPath, kind)
	}
	return &repository.UploadResult{Locator: "https://minio.local/media/" + kind.String() + "/" + uuid.NewString()}, nil
}

func (m *mockMediaStore) DeleteByLocator(ctx context.Context, locator string) error {
	if m.deleteByLocatorFn != nil {
		return m.deleteByLocatorFn(ctx, locator)
	}
	return nil
}

// mockCleanupQueue provides a configurable mock for CleanupQueue.
type mockCleanupQueue struct {
	publishFn func(ctx context.Context, task repository.CleanupTask) error
	consumeFn func(ctx context.Context, handler func(task repository.CleanupTask) error) error
	closeFn   func() error
}

func (m *mockCleanupQueue) PublishCleanupTask(ctx context.Context, task repository.CleanupTask) error {
	if m.publishFn != nil {
		return m.publishFn(ctx, task)
	}
	return nil
}

func (m *mockCleanupQueue) ConsumeCleanupTasks(ctx context.Context, handler func(task repository.CleanupTask) error) error {
	if m.consumeFn != nil {
		return m.consumeFn(ctx, handler)
	}
	return nil
}

func (m *mockCleanupQueue) Close() error {
	if m.closeFn != nil {
		return m.closeFn()
	}
	return nil
}

// mockVideoCache provides a configurable mock for cache.VideoCache.
type mockVideoCache struct {
	getFn    func(ctx context.Context, videoID uuid.UUID) (*model.VideoWithOwner, error)
	setFn    func(ctx context.Context, video *model.VideoWithOwner, ttl time.Duration) error
	deleteFn func(ctx context.Context, videoID uuid.UUID) error
}

func (m *mockVideoCache) Get(ctx context.Context, videoID uuid.UUID) (*model.VideoWithOwner, error) {
	if m.getFn != nil {
		return m.getFn(ctx, videoID)
	}
	return nil, nil
}

func (m *mockVideoCache) Set(ctx context.Context, video *model.VideoWithOwner, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, video, ttl)
	}
	return nil
}

func (m *mockVideoCache) Delete(ctx context.Context, videoID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, videoID)
	}
	return nil
}
