package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
)

// CommentPage is one page of enriched comment records.
type CommentPage struct {
	Items []*model.CommentWithOwner
	PageInfo
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *model.Comment) error

	// GetByID retrieves a comment by ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// ListByVideo returns one page of a video's comments joined with their
	// owners' public profile fields, newest first.
	ListByVideo(ctx context.Context, videoID uuid.UUID, page PageRequest) (*CommentPage, error)

	// Update persists changes to an existing comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	Update(ctx context.Context, comment *model.Comment) error

	// Delete removes a comment and, via cascade, its likes.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
