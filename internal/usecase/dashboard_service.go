package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
)

// ChannelStats aggregates a channel's reach across all its content.
type ChannelStats struct {
	TotalVideos      int64
	TotalViews       int64
	TotalSubscribers int64
	TotalLikes       int64
}

// DashboardService provides channel-level aggregates for owners.
type DashboardService interface {
	// GetChannelStats returns the channel's video, view, subscriber, and
	// like totals. Likes are summed across videos, comments, and tweets.
	GetChannelStats(ctx context.Context, channelID uuid.UUID) (*ChannelStats, error)

	// GetChannelVideos returns all of the channel's videos, including
	// unpublished ones, newest first.
	GetChannelVideos(ctx context.Context, channelID uuid.UUID) ([]*model.Video, error)
}

type dashboardService struct {
	videos repository.VideoRepository
	likes  repository.LikeRepository
	subs   repository.SubscriptionRepository
	users  repository.UserRepository
}

// NewDashboardService creates a new DashboardService instance.
func NewDashboardService(
	videos repository.VideoRepository,
	likes repository.LikeRepository,
	subs repository.SubscriptionRepository,
	users repository.UserRepository,
) DashboardService {
	return &dashboardService{
		videos: videos,
		likes:  likes,
		subs:   subs,
		users:  users,
	}
}

// GetChannelStats gathers the independent aggregates concurrently.
func (s *dashboardService) GetChannelStats(ctx context.Context, channelID uuid.UUID) (*ChannelStats, error) {
	exists, err := s.users.Exists(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("check channel: %w", err)
	}
	if !exists {
		return nil, repository.ErrUserNotFound
	}

	stats := &ChannelStats{}
	likeCounts := make([]int64, 3)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		videos, err := s.videos.ListByOwner(gctx, channelID)
		if err != nil {
			return fmt.Errorf("list videos: %w", err)
		}
		stats.TotalVideos = int64(len(videos))
		for _, v := range videos {
			stats.TotalViews += v.Views
		}
		return nil
	})

	g.Go(func() error {
		n, err := s.subs.CountSubscribers(gctx, channelID)
		if err != nil {
			return fmt.Errorf("count subscribers: %w", err)
		}
		stats.TotalSubscribers = n
		return nil
	})

	for i, kind := range []model.SubjectKind{model.SubjectVideo, model.SubjectComment, model.SubjectTweet} {
		g.Go(func() error {
			n, err := s.likes.CountForOwner(gctx, kind, channelID)
			if err != nil {
				return fmt.Errorf("count %s likes: %w", kind, err)
			}
			likeCounts[i] = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, n := range likeCounts {
		stats.TotalLikes += n
	}

	return stats, nil
}

func (s *dashboardService) GetChannelVideos(ctx context.Context, channelID uuid.UUID) ([]*model.Video, error) {
	exists, err := s.users.Exists(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("check channel: %w", err)
	}
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return s.videos.ListByOwner(ctx, channelID)
}
