package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
)

func TestCachedVideoService_GetVideo_CacheHit(t *testing.T) {
	videoID := uuid.New()
	cached := &model.VideoWithOwner{Video: model.Video{ID: videoID, Title: "cached"}}

	delegateCalled := false
	repo := &mockVideoRepository{
		getByIDWithOwnerFn: func(ctx context.Context, id uuid.UUID) (*model.VideoWithOwner, error) {
			delegateCalled = true
			return nil, errors.New("should not reach the database")
		},
	}

	videoCache := &mockVideoCache{
		getFn: func(ctx context.Context, id uuid.UUID) (*model.VideoWithOwner, error) {
			return cached, nil
		},
	}

	svc := NewCachedVideoService(
		NewVideoService(repo, &mockMediaStore{}, &mockCleanupQueue{}),
		videoCache,
		DefaultCachedVideoServiceConfig(),
	)

	got, err := svc.GetVideo(context.Background(), videoID)
	if err != nil {
		t.Fatalf("GetVideo() unexpected error = %v", err)
	}
	if got.Title != "cached" {
		t.Errorf("Title = %v, want cached", got.Title)
	}
	if delegateCalled {
		t.Error("delegate was called on a cache hit")
	}
}

func TestCachedVideoService_GetVideo_CacheMissPopulatesCache(t *testing.T) {
	videoID := uuid.New()
	fromDB := &model.VideoWithOwner{Video: model.Video{ID: videoID, Title: "from db"}}

	repo := &mockVideoRepository{
		getByIDWithOwnerFn: func(ctx context.Context, id uuid.UUID) (*model.VideoWithOwner, error) {
			return fromDB, nil
		},
	}

	var storedTTL time.Duration
	var stored *model.VideoWithOwner
	videoCache := &mockVideoCache{
		setFn: func(ctx context.Context, video *model.VideoWithOwner, ttl time.Duration) error {
			stored = video
			storedTTL = ttl
			return nil
		},
	}

	cfg := CachedVideoServiceConfig{CacheTTL: 2 * time.Minute}
	svc := NewCachedVideoService(
		NewVideoService(repo, &mockMediaStore{}, &mockCleanupQueue{}),
		videoCache,
		cfg,
	)

	got, err := svc.GetVideo(context.Background(), videoID)
	if err != nil {
		t.Fatalf("GetVideo() unexpected error = %v", err)
	}
	if got.Title != "from db" {
		t.Errorf("Title = %v, want from db", got.Title)
	}
	if stored == nil {
		t.Fatal("cache was not populated on a miss")
	}
	if stored.ID != videoID {
		t.Errorf("cached ID = %v, want %v", stored.ID, videoID)
	}
	if storedTTL != cfg.CacheTTL {
		t.Errorf("TTL = %v, want %v", storedTTL, cfg.CacheTTL)
	}
}

func TestCachedVideoService_GetVideo_CacheErrorFallsThrough(t *testing.T) {
	videoID := uuid.New()
	fromDB := &model.VideoWithOwner{Video: model.Video{ID: videoID, Title: "from db"}}

	repo := &mockVideoRepository{
		getByIDWithOwnerFn: func(ctx context.Context, id uuid.UUID) (*model.VideoWithOwner, error) {
			return fromDB, nil
		},
	}

	videoCache := &mockVideoCache{
		getFn: func(ctx context.Context, id uuid.UUID) (*model.VideoWithOwner, error) {
			return nil, errors.New("redis down")
		},
	}

	svc := NewCachedVideoService(
		NewVideoService(repo, &mockMediaStore{}, &mockCleanupQueue{}),
		videoCache,
		DefaultCachedVideoServiceConfig(),
	)

	got, err := svc.GetVideo(context.Background(), videoID)
	if err != nil {
		t.Fatalf("GetVideo() unexpected error = %v", err)
	}
	if got.Title != "from db" {
		t.Errorf("Title = %v, want from db", got.Title)
	}
}

func TestCachedVideoService_MutationsInvalidate(t *testing.T) {
	ownerID := uuid.New()
	videoID := uuid.New()

	repo := &mockVideoRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Video, error) {
			return &model.Video{ID: videoID, OwnerID: ownerID, Title: "t", Description: "d"}, nil
		},
	}

	tests := []struct {
		name string
		call func(svc VideoService) error
	}{
		{
			name: "update details",
			call: func(svc VideoService) error {
				_, err := svc.UpdateDetails(context.Background(), videoID, ownerID, "new", "new")
				return err
			},
		},
		{
			name: "replace thumbnail",
			call: func(svc VideoService) error {
				_, err := svc.ReplaceThumbnail(context.Background(), videoID, ownerID, "/tmp/scratch/new.png")
				return err
			},
		},
		{
			name: "toggle publish",
			call: func(svc VideoService) error {
				_, err := svc.TogglePublish(context.Background(), videoID, ownerID)
				return err
			},
		},
		{
			name: "delete",
			call: func(svc VideoService) error {
				return svc.DeleteVideo(context.Background(), videoID, ownerID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invalidated := false
			videoCache := &mockVideoCache{
				deleteFn: func(ctx context.Context, id uuid.UUID) error {
					if id == videoID {
						invalidated = true
					}
					return nil
				},
			}

			store := &mockMediaStore{
				uploadFileFn: func(ctx context.Context, localPath string, kind repository.AssetKind) (*repository.UploadResult, error) {
					return &repository.UploadResult{Locator: "https://minio.local/media/image/n.png"}, nil
				},
			}

			svc := NewCachedVideoService(
				NewVideoService(repo, store, &mockCleanupQueue{}),
				videoCache,
				DefaultCachedVideoServiceConfig(),
			)

			if err := tt.call(svc); err != nil {
				t.Fatalf("unexpected error = %v", err)
			}
			if !invalidated {
				t.Error("cache entry was not invalidated")
			}
		})
	}
}
