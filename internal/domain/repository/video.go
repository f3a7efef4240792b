package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
)

// VideoFeedQuery describes the filter and sort stages of the video feed
// pipeline. The owner filter targets the joined owner's identity, so
// implementations must apply it after the owner join.
type VideoFeedQuery struct {
	// Search is a case-insensitive substring match on the title.
	Search string
	// OwnerID, when non-nil, restricts the feed to one owner's videos.
	OwnerID *uuid.UUID
	// PublishedOnly hides unpublished videos (anonymous listing).
	PublishedOnly bool
	// SortBy is a whitelisted column name; empty means creation time.
	SortBy string
	// SortAsc selects ascending order; default is descending.
	SortAsc bool

	PageRequest
}

// VideoPage is one page of enriched video records.
type VideoPage struct {
	Items []*model.VideoWithOwner
	PageInfo
}

// VideoRepository defines persistence operations for videos.
// Implementations should be provided by the infrastructure layer.
type VideoRepository interface {
	// Create persists a new video entity.
	Create(ctx context.Context, video *model.Video) error

	// GetByID retrieves a video by its unique identifier.
	// Returns ErrVideoNotFound if the video does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)

	// GetByIDWithOwner retrieves a video joined with its owner's public
	// profile fields. Returns ErrVideoNotFound if the video does not exist.
	GetByIDWithOwner(ctx context.Context, id uuid.UUID) (*model.VideoWithOwner, error)

	// Feed runs the filter/join/sort/paginate pipeline and returns one page
	// of enriched records plus page metadata. A non-existent owner filter
	// target yields an empty page, not an error.
	Feed(ctx context.Context, q VideoFeedQuery) (*VideoPage, error)

	// Update persists changes to an existing video entity.
	// Returns ErrVideoNotFound if the video does not exist.
	Update(ctx context.Context, video *model.Video) error

	// Delete removes a video. Relation rows referencing it (likes, comments,
	// playlist memberships) are removed by the schema's cascade rules.
	// Returns ErrVideoNotFound if the video does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListLikedBy returns the videos an actor has liked, newest like first.
	ListLikedBy(ctx context.Context, actorID uuid.UUID) ([]*model.VideoWithOwner, error)

	// ListByOwner returns all videos belonging to an owner, newest first,
	// including unpublished ones. Used by the channel dashboard.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error)
}
