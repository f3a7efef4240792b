package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
	"github.com/cliptube/cliptube/internal/infrastructure/metrics"
)

// ToggleResult reports the direction a toggle resolved to.
type ToggleResult struct {
	// Added is true when the relation now exists, false when it was removed.
	Added bool
}

// ToggleService flips like and subscription relations. A toggle never
// fails because of its own prior state: liking twice removes the like,
// and two concurrent likes resolve to a single relation row.
type ToggleService interface {
	// ToggleLike flips the actor's like on the given subject.
	// The subject must exist; its kind selects the existence check.
	ToggleLike(ctx context.Context, kind model.SubjectKind, subjectID, actorID uuid.UUID) (*ToggleResult, error)

	// ToggleSubscription flips the subscriber's subscription to a channel.
	// Self-subscription is rejected with model.ErrSelfSubscription.
	ToggleSubscription(ctx context.Context, channelID, subscriberID uuid.UUID) (*ToggleResult, error)

	// ListLikedVideos returns the videos the actor has liked, newest like
	// first, each joined with its owner's public profile.
	ListLikedVideos(ctx context.Context, actorID uuid.UUID) ([]*model.VideoWithOwner, error)

	// ListSubscribers returns the public profiles of a channel's subscribers.
	ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*model.PublicUser, error)

	// ListSubscribedChannels returns the public profiles of the channels the
	// user is subscribed to.
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*model.PublicUser, error)
}

type toggleService struct {
	likes    repository.LikeRepository
	subs     repository.SubscriptionRepository
	videos   repository.VideoRepository
	comments repository.CommentRepository
	tweets   repository.TweetRepository
	users    repository.UserRepository
}

// NewToggleService creates a new ToggleService instance.
func NewToggleService(
	likes repository.LikeRepository,
	subs repository.SubscriptionRepository,
	videos repository.VideoRepository,
	comments repository.CommentRepository,
	tweets repository.TweetRepository,
	users repository.UserRepository,
) ToggleService {
	return &toggleService{
		likes:    likes,
		subs:     subs,
		videos:   videos,
		comments: comments,
		tweets:   tweets,
		users:    users,
	}
}

// ToggleLike flips the actor's like on a subject.
//
// The flow is find-then-act: absent creates, present deletes. The
// check-then-act race between two concurrent creates is resolved by the
// unique index: the loser's ErrDuplicateRelation is treated as a
// successful "added" outcome, so the pair converges on one relation row.
func (s *toggleService) ToggleLike(ctx context.Context, kind model.SubjectKind, subjectID, actorID uuid.UUID) (*ToggleResult, error) {
	like, err := model.NewLike(kind, subjectID, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.checkSubjectExists(ctx, kind, subjectID); err != nil {
		return nil, err
	}

	existing, err := s.likes.Find(ctx, kind, subjectID, actorID)
	if err != nil {
		return nil, fmt.Errorf("find like: %w", err)
	}

	if existing == nil {
		if err := s.likes.Create(ctx, like); err != nil {
			if !errors.Is(err, repository.ErrDuplicateRelation) {
				return nil, fmt.Errorf("create like: %w", err)
			}
			// Lost the race to a concurrent toggle; the relation exists,
			// which is the state this call wanted.
		}
		metrics.ToggleOperationsTotal.WithLabelValues(metrics.ToggleRelationLike, metrics.ToggleOutcomeAdded).Inc()
		return &ToggleResult{Added: true}, nil
	}

	if err := s.likes.Delete(ctx, kind, subjectID, actorID); err != nil {
		return nil, fmt.Errorf("delete like: %w", err)
	}
	metrics.ToggleOperationsTotal.WithLabelValues(metrics.ToggleRelationLike, metrics.ToggleOutcomeRemoved).Inc()
	return &ToggleResult{Added: false}, nil
}

// ToggleSubscription flips the subscriber's subscription to a channel
// using the same find-then-act flow as likes.
func (s *toggleService) ToggleSubscription(ctx context.Context, channelID, subscriberID uuid.UUID) (*ToggleResult, error) {
	sub, err := model.NewSubscription(channelID, subscriberID)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.Exists(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("check channel: %w", err)
	}
	if !exists {
		return nil, repository.ErrUserNotFound
	}

	existing, err := s.subs.Find(ctx, channelID, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("find subscription: %w", err)
	}

	if existing == nil {
		if err := s.subs.Create(ctx, sub); err != nil {
			if !errors.Is(err, repository.ErrDuplicateRelation) {
				return nil, fmt.Errorf("create subscription: %w", err)
			}
		}
		metrics.ToggleOperationsTotal.WithLabelValues(metrics.ToggleRelationSubscription, metrics.ToggleOutcomeAdded).Inc()
		return &ToggleResult{Added: true}, nil
	}

	if err := s.subs.Delete(ctx, channelID, subscriberID); err != nil {
		return nil, fmt.Errorf("delete subscription: %w", err)
	}
	metrics.ToggleOperationsTotal.WithLabelValues(metrics.ToggleRelationSubscription, metrics.ToggleOutcomeRemoved).Inc()
	return &ToggleResult{Added: false}, nil
}

func (s *toggleService) ListLikedVideos(ctx context.Context, actorID uuid.UUID) ([]*model.VideoWithOwner, error) {
	if actorID == uuid.Nil {
		return nil, model.ErrInvalidActorID
	}
	return s.videos.ListLikedBy(ctx, actorID)
}

func (s *toggleService) ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*model.PublicUser, error) {
	exists, err := s.users.Exists(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("check channel: %w", err)
	}
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return s.subs.ListSubscribers(ctx, channelID)
}

func (s *toggleService) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*model.PublicUser, error) {
	exists, err := s.users.Exists(ctx, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("check subscriber: %w", err)
	}
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return s.subs.ListSubscribedChannels(ctx, subscriberID)
}

// checkSubjectExists verifies the like target before toggling so a like
// never references a missing resource.
func (s *toggleService) checkSubjectExists(ctx context.Context, kind model.SubjectKind, subjectID uuid.UUID) error {
	switch kind {
	case model.SubjectVideo:
		_, err := s.videos.GetByID(ctx, subjectID)
		return err
	case model.SubjectComment:
		_, err := s.comments.GetByID(ctx, subjectID)
		return err
	case model.SubjectTweet:
		_, err := s.tweets.GetByID(ctx, subjectID)
		return err
	default:
		return model.ErrInvalidSubjectKind
	}
}
