package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
)

// CommentService defines the interface for comment business logic.
type CommentService interface {
	// AddComment creates a comment on an existing video.
	AddComment(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*model.Comment, error)

	// ListComments returns one page of a video's comments, newest first.
	ListComments(ctx context.Context, videoID uuid.UUID, page repository.PageRequest) (*repository.CommentPage, error)

	// UpdateComment changes a comment's content.
	// Only the owner may update; others get ErrForbidden.
	UpdateComment(ctx context.Context, commentID, byUser uuid.UUID, content string) (*model.Comment, error)

	// DeleteComment removes a comment together with its likes.
	// Only the owner may delete; others get ErrForbidden.
	DeleteComment(ctx context.Context, commentID, byUser uuid.UUID) error
}

type commentService struct {
	comments repository.CommentRepository
	videos   repository.VideoRepository
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(comments repository.CommentRepository, videos repository.VideoRepository) CommentService {
	return &commentService{
		comments: comments,
		videos:   videos,
	}
}

func (s *commentService) AddComment(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*model.Comment, error) {
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	comment, err := model.NewComment(videoID, ownerID, content)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context, videoID uuid.UUID, page repository.PageRequest) (*repository.CommentPage, error) {
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = defaultFeedLimit
	}
	if page.Limit > maxFeedLimit {
		page.Limit = maxFeedLimit
	}

	return s.comments.ListByVideo(ctx, videoID, page)
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, byUser uuid.UUID, content string) (*model.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !comment.IsOwnedBy(byUser) {
		return nil, ErrForbidden
	}

	if err := comment.SetContent(content); err != nil {
		return nil, err
	}

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, byUser uuid.UUID) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !comment.IsOwnedBy(byUser) {
		return ErrForbidden
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
