package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
)

// PlaylistService defines the interface for playlist business logic.
type PlaylistService interface {
	// CreatePlaylist creates a named playlist for the owner. Names are
	// unique per owner, case-insensitively; a collision returns
	// repository.ErrDuplicatePlaylistName.
	CreatePlaylist(ctx context.Context, ownerID uuid.UUID, name, description string) (*model.Playlist, error)

	// GetPlaylist retrieves a playlist, including its video membership.
	GetPlaylist(ctx context.Context, playlistID uuid.UUID) (*model.Playlist, error)

	// ListUserPlaylists returns an existing user's playlists.
	ListUserPlaylists(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error)

	// AddVideo adds an existing video to the caller's playlist. Adding a
	// video that is already a member is a no-op.
	AddVideo(ctx context.Context, playlistID, byUser, videoID uuid.UUID) (*model.Playlist, error)

	// RemoveVideo removes a video from the caller's playlist.
	RemoveVideo(ctx context.Context, playlistID, byUser, videoID uuid.UUID) (*model.Playlist, error)

	// UpdatePlaylist changes a playlist's name and description.
	UpdatePlaylist(ctx context.Context, playlistID, byUser uuid.UUID, name, description string) (*model.Playlist, error)

	// DeletePlaylist removes a playlist and its memberships. The videos
	// themselves are untouched.
	DeletePlaylist(ctx context.Context, playlistID, byUser uuid.UUID) error
}

type playlistService struct {
	playlists repository.PlaylistRepository
	videos    repository.VideoRepository
	users     repository.UserRepository
}

// NewPlaylistService creates a new PlaylistService instance.
func NewPlaylistService(
	playlists repository.PlaylistRepository,
	videos repository.VideoRepository,
	users repository.UserRepository,
) PlaylistService {
	return &playlistService{
		playlists: playlists,
		videos:    videos,
		users:     users,
	}
}

func (s *playlistService) CreatePlaylist(ctx context.Context, ownerID uuid.UUID, name, description string) (*model.Playlist, error) {
	playlist, err := model.NewPlaylist(ownerID, name, description)
	if err != nil {
		return nil, err
	}

	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}
	return playlist, nil
}

func (s *playlistService) GetPlaylist(ctx context.Context, playlistID uuid.UUID) (*model.Playlist, error) {
	return s.playlists.GetByID(ctx, playlistID)
}

func (s *playlistService) ListUserPlaylists(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error) {
	exists, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return s.playlists.ListByOwner(ctx, ownerID)
}

func (s *playlistService) AddVideo(ctx context.Context, playlistID, byUser, videoID uuid.UUID) (*model.Playlist, error) {
	if err := s.requireOwned(ctx, playlistID, byUser); err != nil {
		return nil, err
	}
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return s.playlists.AddVideo(ctx, playlistID, byUser, videoID)
}

func (s *playlistService) RemoveVideo(ctx context.Context, playlistID, byUser, videoID uuid.UUID) (*model.Playlist, error) {
	if err := s.requireOwned(ctx, playlistID, byUser); err != nil {
		return nil, err
	}
	return s.playlists.RemoveVideo(ctx, playlistID, byUser, videoID)
}

func (s *playlistService) UpdatePlaylist(ctx context.Context, playlistID, byUser uuid.UUID, name, description string) (*model.Playlist, error) {
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if !playlist.IsOwnedBy(byUser) {
		return nil, ErrForbidden
	}

	updated, err := model.NewPlaylist(byUser, name, description)
	if err != nil {
		return nil, err
	}
	playlist.Name = updated.Name
	playlist.Description = updated.Description
	playlist.UpdatedAt = updated.UpdatedAt

	if err := s.playlists.Update(ctx, playlist); err != nil {
		return nil, fmt.Errorf("update playlist: %w", err)
	}
	return playlist, nil
}

func (s *playlistService) DeletePlaylist(ctx context.Context, playlistID, byUser uuid.UUID) error {
	if err := s.requireOwned(ctx, playlistID, byUser); err != nil {
		return err
	}

	if err := s.playlists.Delete(ctx, playlistID, byUser); err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	return nil
}

// requireOwned distinguishes a missing playlist from one owned by someone
// else, so callers can map the two to different failures.
func (s *playlistService) requireOwned(ctx context.Context, playlistID, byUser uuid.UUID) error {
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if !playlist.IsOwnedBy(byUser) {
		return ErrForbidden
	}
	return nil
}
