package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
)

// videoColumns is the projection shared by all video queries.
const videoColumns = `v.id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
		v.duration, v.views, v.is_published, v.created_at, v.updated_at`

// ownerColumns is the owner projection for enriched records. Credential
// columns (password, refresh_token) are never selected; stripping happens at
// the query, not afterwards.
const ownerColumns = `u.id, u.username, u.full_name, u.avatar_url`

// feedSortColumns whitelists the dynamic sort fields for the video feed.
var feedSortColumns = map[string]string{
	"created_at": "v.created_at",
	"title":      "v.title",
	"duration":   "v.duration",
	"views":      "v.views",
}

// VideoRepository implements repository.VideoRepository using PostgreSQL.
type VideoRepository struct {
	db DBTX
}

// NewVideoRepository creates a new VideoRepository instance.
func NewVideoRepository(db DBTX) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create persists a new video entity.
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	const query = `
		INSERT INTO videos (id, owner_id, title, description, video_url, thumbnail_url,
			duration, views, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		video.ID,
		video.OwnerID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.ThumbnailURL,
		video.Duration,
		video.Views,
		video.IsPublished,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

// GetByID retrieves a video by its unique identifier.
func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	const query = `
		SELECT ` + videoColumns + `
		FROM videos v
		WHERE v.id = $1
	`

	video, err := scanVideo(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video by ID: %w", err)
	}

	return video, nil
}

// GetByIDWithOwner retrieves a video joined with its owner's public fields.
func (r *VideoRepository) GetByIDWithOwner(ctx context.Context, id uuid.UUID) (*model.VideoWithOwner, error) {
	const query = `
		SELECT ` + videoColumns + `, ` + ownerColumns + `
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE v.id = $1
	`

	record, err := scanVideoWithOwner(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video with owner: %w", err)
	}

	return record, nil
}

// Feed runs the filter/join/sort/paginate pipeline.
//
// Stage order matters: the owner filter references u.id, a field introduced
// by the join, so all filters are applied to the joined shape. Sorting uses a
// whitelisted column with creation time descending as the default.
func (r *VideoRepository) Feed(ctx context.Context, q repository.VideoFeedQuery) (*repository.VideoPage, error) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.PublishedOnly {
		conds = append(conds, "v.is_published = TRUE")
	}
	if q.Search != "" {
		conds = append(conds, fmt.Sprintf("v.title ILIKE '%%' || %s || '%%'", arg(q.Search)))
	}
	if q.OwnerID != nil {
		conds = append(conds, fmt.Sprintf("u.id = %s", arg(*q.OwnerID)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	const from = `FROM videos v JOIN users u ON u.id = v.owner_id`

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s %s", from, where)

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count feed: %w", err)
	}

	sortCol, ok := feedSortColumns[q.SortBy]
	if !ok {
		sortCol = "v.created_at"
	}
	dir := "DESC"
	if q.SortAsc {
		dir = "ASC"
	}

	listQuery := fmt.Sprintf(
		"SELECT %s, %s %s %s ORDER BY %s %s LIMIT %s OFFSET %s",
		videoColumns, ownerColumns, from, where, sortCol, dir,
		arg(q.Limit), arg(q.Offset()),
	)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed: %w", err)
	}
	defer rows.Close()

	items, err := collectVideosWithOwner(rows)
	if err != nil {
		return nil, err
	}

	return &repository.VideoPage{
		Items:    items,
		PageInfo: repository.NewPageInfo(q.PageRequest, total),
	}, nil
}

// Update persists changes to an existing video entity.
func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	const query = `
		UPDATE videos
		SET title = $2, description = $3, video_url = $4, thumbnail_url = $5,
			duration = $6, views = $7, is_published = $8, updated_at = $9
		WHERE id = $1
	`

	video.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, query,
		video.ID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.ThumbnailURL,
		video.Duration,
		video.Views,
		video.IsPublished,
		video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// Delete removes a video together with its like relations. Comments and
// playlist memberships are removed by ON DELETE CASCADE foreign keys; likes
// reference subjects polymorphically and are deleted explicitly, comment
// likes first.
func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const deleteCommentLikes = `
		DELETE FROM likes
		WHERE subject_kind = 'comment'
		  AND subject_id IN (SELECT id FROM comments WHERE video_id = $1)
	`
	const deleteVideoLikes = `
		DELETE FROM likes
		WHERE subject_kind = 'video' AND subject_id = $1
	`
	const deleteVideo = `DELETE FROM videos WHERE id = $1`

	if _, err := r.db.Exec(ctx, deleteCommentLikes, id); err != nil {
		return fmt.Errorf("failed to delete comment likes: %w", err)
	}
	if _, err := r.db.Exec(ctx, deleteVideoLikes, id); err != nil {
		return fmt.Errorf("failed to delete video likes: %w", err)
	}

	tag, err := r.db.Exec(ctx, deleteVideo, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// ListLikedBy returns the videos an actor has liked, newest like first.
func (r *VideoRepository) ListLikedBy(ctx context.Context, actorID uuid.UUID) ([]*model.VideoWithOwner, error) {
	const query = `
		SELECT ` + videoColumns + `, ` + ownerColumns + `
		FROM likes l
		JOIN videos v ON v.id = l.subject_id
		JOIN users u ON u.id = v.owner_id
		WHERE l.subject_kind = 'video' AND l.actor_id = $1
		ORDER BY l.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query liked videos: %w", err)
	}
	defer rows.Close()

	return collectVideosWithOwner(rows)
}

// ListByOwner returns all of an owner's videos, including unpublished ones.
func (r *VideoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error) {
	const query = `
		SELECT ` + videoColumns + `
		FROM videos v
		WHERE v.owner_id = $1
		ORDER BY v.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos by owner: %w", err)
	}
	defer rows.Close()

	var videos []*model.Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating videos: %w", err)
	}

	return videos, nil
}

func scanVideo(row pgx.Row) (*model.Video, error) {
	var video model.Video
	err := row.Scan(
		&video.ID,
		&video.OwnerID,
		&video.Title,
		&video.Description,
		&video.VideoURL,
		&video.ThumbnailURL,
		&video.Duration,
		&video.Views,
		&video.IsPublished,
		&video.CreatedAt,
		&video.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func scanVideoWithOwner(row pgx.Row) (*model.VideoWithOwner, error) {
	var record model.VideoWithOwner
	err := row.Scan(
		&record.ID,
		&record.OwnerID,
		&record.Title,
		&record.Description,
		&record.VideoURL,
		&record.ThumbnailURL,
		&record.Duration,
		&record.Views,
		&record.IsPublished,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.Owner.ID,
		&record.Owner.Username,
		&record.Owner.FullName,
		&record.Owner.AvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func collectVideosWithOwner(rows pgx.Rows) ([]*model.VideoWithOwner, error) {
	var items []*model.VideoWithOwner
	for rows.Next() {
		record, err := scanVideoWithOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enriched video: %w", err)
		}
		items = append(items, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enriched videos: %w", err)
	}

	return items, nil
}

// Compile-time verification that VideoRepository implements repository.VideoRepository.
var _ repository.VideoRepository = (*VideoRepository)(nil)
