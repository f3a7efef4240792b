package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyContent    = errors.New("content cannot be empty")
	ErrInvalidVideoRef = errors.New("video ID cannot be nil")
)

// Comment represents a user comment on a video.
type Comment struct {
	ID        uuid.UUID
	VideoID   uuid.UUID
	OwnerID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewComment creates a comment with trimmed content.
func NewComment(videoID, ownerID uuid.UUID, content string) (*Comment, error) {
	if videoID == uuid.Nil {
		return nil, ErrInvalidVideoRef
	}
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	now := time.Now()
	return &Comment{
		ID:        uuid.New(),
		VideoID:   videoID,
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetContent replaces the comment body with trimmed content.
func (c *Comment) SetContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyContent
	}
	c.Content = content
	c.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy reports whether userID owns this comment.
func (c *Comment) IsOwnedBy(userID uuid.UUID) bool {
	return c.OwnerID == userID
}

// CommentWithOwner is an enriched comment record with the owner's public
// profile fields.
type CommentWithOwner struct {
	Comment
	Owner PublicUser
}
