package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tweet represents a short text post attached to a channel.
type Tweet struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTweet creates a tweet with trimmed content.
func NewTweet(ownerID uuid.UUID, content string) (*Tweet, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	now := time.Now()
	return &Tweet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetContent replaces the tweet body with trimmed content.
func (t *Tweet) SetContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyContent
	}
	t.Content = content
	t.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy reports whether userID owns this tweet.
func (t *Tweet) IsOwnedBy(userID uuid.UUID) bool {
	return t.OwnerID == userID
}
