package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
)

// PlaylistRepository implements repository.PlaylistRepository using
// PostgreSQL. Per-owner case-insensitive name uniqueness is enforced by a
// unique index on (owner_id, lower(name)).
type PlaylistRepository struct {
	db DBTX
}

// NewPlaylistRepository creates a new PlaylistRepository instance.
func NewPlaylistRepository(db DBTX) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create persists a new playlist.
func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	const query = `
		INSERT INTO playlists (id, owner_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		playlist.ID,
		playlist.OwnerID,
		playlist.Name,
		playlist.Description,
		playlist.CreatedAt,
		playlist.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicatePlaylistName
		}
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	return nil
}

// GetByID retrieves a playlist together with its video membership.
func (r *PlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	const query = `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM playlists
		WHERE id = $1
	`

	var playlist model.Playlist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&playlist.ID,
		&playlist.OwnerID,
		&playlist.Name,
		&playlist.Description,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to get playlist by ID: %w", err)
	}

	videoIDs, err := r.listVideoIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	playlist.VideoIDs = videoIDs

	return &playlist, nil
}

// ListByOwner returns all playlists belonging to a user.
func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error) {
	const query = `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM playlists
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists by owner: %w", err)
	}
	defer rows.Close()

	var playlists []*model.Playlist
	for rows.Next() {
		var playlist model.Playlist
		err := rows.Scan(
			&playlist.ID,
			&playlist.OwnerID,
			&playlist.Name,
			&playlist.Description,
			&playlist.CreatedAt,
			&playlist.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}
		playlists = append(playlists, &playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating playlists: %w", err)
	}

	return playlists, nil
}

// AddVideo adds a video to an owner's playlist. Re-adding a member video is
// a no-op (ON CONFLICT DO NOTHING on the membership primary key).
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, ownerID, videoID uuid.UUID) (*model.Playlist, error) {
	if err := r.requireOwned(ctx, playlistID, ownerID); err != nil {
		return nil, err
	}

	const query = `
		INSERT INTO playlist_videos (playlist_id, video_id, added_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (playlist_id, video_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, playlistID, videoID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to add video to playlist: %w", err)
	}

	return r.GetByID(ctx, playlistID)
}

// RemoveVideo removes a video from an owner's playlist.
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, ownerID, videoID uuid.UUID) (*model.Playlist, error) {
	if err := r.requireOwned(ctx, playlistID, ownerID); err != nil {
		return nil, err
	}

	const query = `
		DELETE FROM playlist_videos
		WHERE playlist_id = $1 AND video_id = $2
	`

	if _, err := r.db.Exec(ctx, query, playlistID, videoID); err != nil {
		return nil, fmt.Errorf("failed to remove video from playlist: %w", err)
	}

	return r.GetByID(ctx, playlistID)
}

// Update persists name/description changes, scoped to the owner.
func (r *PlaylistRepository) Update(ctx context.Context, playlist *model.Playlist) error {
	const query = `
		UPDATE playlists
		SET name = $3, description = $4, updated_at = $5
		WHERE id = $1 AND owner_id = $2
	`

	playlist.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, query,
		playlist.ID,
		playlist.OwnerID,
		playlist.Name,
		playlist.Description,
		playlist.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicatePlaylistName
		}
		return fmt.Errorf("failed to update playlist: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// Delete removes an owner's playlist; memberships cascade.
func (r *PlaylistRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	const query = `DELETE FROM playlists WHERE id = $1 AND owner_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

func (r *PlaylistRepository) requireOwned(ctx context.Context, playlistID, ownerID uuid.UUID) error {
	const query = `SELECT EXISTS (SELECT 1 FROM playlists WHERE id = $1 AND owner_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, playlistID, ownerID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check playlist ownership: %w", err)
	}
	if !exists {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

func (r *PlaylistRepository) listVideoIDs(ctx context.Context, playlistID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT video_id
		FROM playlist_videos
		WHERE playlist_id = $1
		ORDER BY added_at
	`

	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist videos: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan playlist video: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating playlist videos: %w", err)
	}

	return ids, nil
}

// Compile-time verification that PlaylistRepository implements repository.PlaylistRepository.
var _ repository.PlaylistRepository = (*PlaylistRepository)(nil)
