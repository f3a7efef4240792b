package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
)

func TestDashboardService_GetChannelStats(t *testing.T) {
	channelID := uuid.New()

	videos := &mockVideoRepository{
		listByOwnerFn: func(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error) {
			return []*model.Video{
				{ID: uuid.New(), Views: 100},
				{ID: uuid.New(), Views: 250},
				{ID: uuid.New(), Views: 0},
			}, nil
		},
	}

	likes := &mockLikeRepository{
		countForOwnerFn: func(ctx context.Context, kind model.SubjectKind, ownerID uuid.UUID) (int64, error) {
			switch kind {
			case model.SubjectVideo:
				return 40, nil
			case model.SubjectComment:
				return 7, nil
			case model.SubjectTweet:
				return 3, nil
			}
			return 0, errors.New("unexpected kind")
		},
	}

	subs := &mockSubscriptionRepository{
		countSubscribersFn: func(ctx context.Context, channelID uuid.UUID) (int64, error) {
			return 12, nil
		},
	}

	svc := NewDashboardService(videos, likes, subs, &mockUserRepository{})

	stats, err := svc.GetChannelStats(context.Background(), channelID)
	if err != nil {
		t.Fatalf("GetChannelStats() unexpected error = %v", err)
	}

	if stats.TotalVideos != 3 {
		t.Errorf("TotalVideos = %d, want 3", stats.TotalVideos)
	}
	if stats.TotalViews != 350 {
		t.Errorf("TotalViews = %d, want 350", stats.TotalViews)
	}
	if stats.TotalSubscribers != 12 {
		t.Errorf("TotalSubscribers = %d, want 12", stats.TotalSubscribers)
	}
	if stats.TotalLikes != 50 {
		t.Errorf("TotalLikes = %d, want 50", stats.TotalLikes)
	}
}

func TestDashboardService_GetChannelStats_MissingChannel(t *testing.T) {
	users := &mockUserRepository{
		existsFn: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return false, nil
		},
	}

	svc := NewDashboardService(&mockVideoRepository{}, &mockLikeRepository{}, &mockSubscriptionRepository{}, users)

	if _, err := svc.GetChannelStats(context.Background(), uuid.New()); !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("error = %v, want %v", err, repository.ErrUserNotFound)
	}
}

func TestDashboardService_GetChannelStats_CountFailure(t *testing.T) {
	likes := &mockLikeRepository{
		countForOwnerFn: func(ctx context.Context, kind model.SubjectKind, ownerID uuid.UUID) (int64, error) {
			return 0, errors.New("connection refused")
		},
	}

	svc := NewDashboardService(&mockVideoRepository{}, likes, &mockSubscriptionRepository{}, &mockUserRepository{})

	if _, err := svc.GetChannelStats(context.Background(), uuid.New()); err == nil {
		t.Error("GetChannelStats() expected error when a count fails")
	}
}

func TestDashboardService_GetChannelVideos(t *testing.T) {
	channelID := uuid.New()

	videos := &mockVideoRepository{
		listByOwnerFn: func(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error) {
			return []*model.Video{
				{ID: uuid.New(), IsPublished: true},
				{ID: uuid.New(), IsPublished: false},
			}, nil
		},
	}

	svc := NewDashboardService(videos, &mockLikeRepository{}, &mockSubscriptionRepository{}, &mockUserRepository{})

	got, err := svc.GetChannelVideos(context.Background(), channelID)
	if err != nil {
		t.Fatalf("GetChannelVideos() unexpected error = %v", err)
	}
	// The dashboard shows drafts too; nothing may be filtered out.
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}
