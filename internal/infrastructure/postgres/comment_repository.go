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

const commentColumns = `c.id, c.video_id, c.owner_id, c.content, c.created_at, c.updated_at`

// CommentRepository implements repository.CommentRepository using PostgreSQL.
type CommentRepository struct {
	db DBTX
}

// NewCommentRepository creates a new CommentRepository instance.
func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create persists a new comment.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	const query = `
		INSERT INTO comments (id, video_id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		comment.ID,
		comment.VideoID,
		comment.OwnerID,
		comment.Content,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by ID.
func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	const query = `
		SELECT ` + commentColumns + `
		FROM comments c
		WHERE c.id = $1
	`

	var comment model.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.VideoID,
		&comment.OwnerID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment by ID: %w", err)
	}

	return &comment, nil
}

// ListByVideo returns one page of a video's comments joined with their
// owners' public fields, newest first. The same credential-stripping
// projection as the video feed applies.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, page repository.PageRequest) (*repository.CommentPage, error) {
	const countQuery = `SELECT COUNT(*) FROM comments c WHERE c.video_id = $1`

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, videoID).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	const listQuery = `
		SELECT ` + commentColumns + `, ` + ownerColumns + `
		FROM comments c
		JOIN users u ON u.id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, listQuery, videoID, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var items []*model.CommentWithOwner
	for rows.Next() {
		var record model.CommentWithOwner
		err := rows.Scan(
			&record.ID,
			&record.VideoID,
			&record.OwnerID,
			&record.Content,
			&record.CreatedAt,
			&record.UpdatedAt,
			&record.Owner.ID,
			&record.Owner.Username,
			&record.Owner.FullName,
			&record.Owner.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enriched comment: %w", err)
		}
		items = append(items, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return &repository.CommentPage{
		Items:    items,
		PageInfo: repository.NewPageInfo(page, total),
	}, nil
}

// Update persists changes to an existing comment.
func (r *CommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	const query = `
		UPDATE comments
		SET content = $2, updated_at = $3
		WHERE id = $1
	`

	comment.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, query, comment.ID, comment.Content, comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment and its likes.
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const deleteLikes = `
		DELETE FROM likes
		WHERE subject_kind = 'comment' AND subject_id = $1
	`
	const deleteComment = `DELETE FROM comments WHERE id = $1`

	if _, err := r.db.Exec(ctx, deleteLikes, id); err != nil {
		return fmt.Errorf("failed to delete comment likes: %w", err)
	}

	tag, err := r.db.Exec(ctx, deleteComment, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// Compile-time verification that CommentRepository implements repository.CommentRepository.
var _ repository.CommentRepository = (*CommentRepository)(nil)
