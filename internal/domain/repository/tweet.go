package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
)

// TweetRepository defines persistence operations for tweets.
type TweetRepository interface {
	// Create persists a new tweet.
	Create(ctx context.Context, tweet *model.Tweet) error

	// GetByID retrieves a tweet by ID.
	// Returns ErrTweetNotFound if the tweet does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error)

	// ListByOwner returns a user's tweets, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error)

	// Update persists changes to a tweet, scoped to its owner.
	// Returns ErrTweetNotFound if no tweet matches the id and owner.
	Update(ctx context.Context, tweet *model.Tweet) error

	// Delete removes a tweet, scoped to its owner.
	// Returns ErrTweetNotFound if no tweet matches the id and owner.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
