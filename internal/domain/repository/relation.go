package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
)

// LikeRepository defines persistence operations for like relations.
// Uniqueness per (subject kind, subject, actor) is enforced by a database
// unique index; Create surfaces a violation as ErrDuplicateRelation so the
// toggle flow can resolve the check-then-act race.
type LikeRepository interface {
	// Find returns the like for the given subject and actor.
	// Returns a nil like when absent.
	Find(ctx context.Context, kind model.SubjectKind, subjectID, actorID uuid.UUID) (*model.Like, error)

	// Create persists a new like.
	// Returns ErrDuplicateRelation if the pair already exists.
	Create(ctx context.Context, like *model.Like) error

	// Delete removes the like for the given subject and actor. Deleting an
	// absent like is not an error; removal is idempotent by pair.
	Delete(ctx context.Context, kind model.SubjectKind, subjectID, actorID uuid.UUID) error

	// CountForOwner counts likes on all subjects of the given kind owned by
	// ownerID. Used by the channel dashboard.
	CountForOwner(ctx context.Context, kind model.SubjectKind, ownerID uuid.UUID) (int64, error)
}

// SubscriptionRepository defines persistence operations for subscriptions.
// Uniqueness per (channel, subscriber) is enforced by a database unique index.
type SubscriptionRepository interface {
	// Find returns the subscription for the given channel and subscriber.
	// Returns a nil subscription when absent.
	Find(ctx context.Context, channelID, subscriberID uuid.UUID) (*model.Subscription, error)

	// Create persists a new subscription.
	// Returns ErrDuplicateRelation if the pair already exists.
	Create(ctx context.Context, sub *model.Subscription) error

	// Delete removes the subscription for the given channel and subscriber.
	// Deleting an absent subscription is not an error.
	Delete(ctx context.Context, channelID, subscriberID uuid.UUID) error

	// ListSubscribers returns the public profiles of a channel's subscribers.
	ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*model.PublicUser, error)

	// ListSubscribedChannels returns the public profiles of the channels a
	// user has subscribed to.
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*model.PublicUser, error)

	// CountSubscribers counts a channel's subscribers.
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error)
}
