package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
)

// PlaylistRepository defines persistence operations for playlists.
type PlaylistRepository interface {
	// Create persists a new playlist.
	// Returns ErrDuplicatePlaylistName if the owner already has a playlist
	// with the same case-insensitive name.
	Create(ctx context.Context, playlist *model.Playlist) error

	// GetByID retrieves a playlist, including its video membership.
	// Returns ErrPlaylistNotFound if the playlist does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error)

	// ListByOwner returns all playlists belonging to a user.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error)

	// AddVideo adds a video to an owner's playlist; adding a video that is
	// already a member is a no-op. Returns ErrPlaylistNotFound if no playlist
	// matches the id and owner.
	AddVideo(ctx context.Context, playlistID, ownerID, videoID uuid.UUID) (*model.Playlist, error)

	// RemoveVideo removes a video from an owner's playlist.
	// Returns ErrPlaylistNotFound if no playlist matches the id and owner.
	RemoveVideo(ctx context.Context, playlistID, ownerID, videoID uuid.UUID) (*model.Playlist, error)

	// Update persists name/description changes, scoped to the owner.
	// Returns ErrPlaylistNotFound if no playlist matches; returns
	// ErrDuplicatePlaylistName on a case-insensitive name collision.
	Update(ctx context.Context, playlist *model.Playlist) error

	// Delete removes an owner's playlist.
	// Returns ErrPlaylistNotFound if no playlist matches the id and owner.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
