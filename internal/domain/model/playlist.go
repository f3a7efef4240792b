package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyPlaylistName = errors.New("playlist name cannot be empty")

// Playlist represents a named, ordered collection of videos owned by a user.
// Names are unique per owner, case-insensitively.
type Playlist struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	VideoIDs    []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPlaylist creates a playlist. The name is lowercased and trimmed so the
// per-owner uniqueness check is case-insensitive.
func NewPlaylist(ownerID uuid.UUID, name, description string) (*Playlist, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, ErrEmptyPlaylistName
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	now := time.Now()
	return &Playlist{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsOwnedBy reports whether userID owns this playlist.
func (p *Playlist) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// Contains reports whether videoID is already in the playlist.
func (p *Playlist) Contains(videoID uuid.UUID) bool {
	for _, id := range p.VideoIDs {
		if id == videoID {
			return true
		}
	}
	return false
}
