package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidOwnerID   = errors.New("owner ID cannot be nil")
	ErrTitleTooLong     = errors.New("title exceeds maximum length of 255 characters")
)

const maxTitleLength = 255

// Video represents a published or draft video entity.
// VideoURL and ThumbnailURL are locators into remote object storage; the
// video owns both remote objects until they are replaced or the video is
// deleted.
type Video struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Duration     float64
	Views        int64
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewVideo creates a video draft. Asset locators and duration are set by the
// media lifecycle once the uploads have been confirmed.
func NewVideo(ownerID uuid.UUID, title, description string) (*Video, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}

	now := time.Now()
	return &Video{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetAssets records the remote locators and reported duration after upload.
func (v *Video) SetAssets(videoURL, thumbnailURL string, duration float64) {
	v.VideoURL = videoURL
	v.ThumbnailURL = thumbnailURL
	v.Duration = duration
	v.UpdatedAt = time.Now()
}

// SetThumbnail replaces the thumbnail locator.
func (v *Video) SetThumbnail(thumbnailURL string) {
	v.ThumbnailURL = thumbnailURL
	v.UpdatedAt = time.Now()
}

// TogglePublished flips the publish flag.
func (v *Video) TogglePublished() {
	v.IsPublished = !v.IsPublished
	v.UpdatedAt = time.Now()
}

// IsOwnedBy reports whether userID owns this video.
func (v *Video) IsOwnedBy(userID uuid.UUID) bool {
	return v.OwnerID == userID
}

// VideoWithOwner is an enriched feed record: a video merged with its owner's
// public profile fields.
type VideoWithOwner struct {
	Video
	Owner PublicUser
}
