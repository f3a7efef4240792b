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

// TweetRepository implements repository.TweetRepository using PostgreSQL.
type TweetRepository struct {
	db DBTX
}

// NewTweetRepository creates a new TweetRepository instance.
func NewTweetRepository(db DBTX) *TweetRepository {
	return &TweetRepository{db: db}
}

// Create persists a new tweet.
func (r *TweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	const query = `
		INSERT INTO tweets (id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		tweet.ID,
		tweet.OwnerID,
		tweet.Content,
		tweet.CreatedAt,
		tweet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}

	return nil
}

// GetByID retrieves a tweet by ID.
func (r *TweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	const query = `
		SELECT id, owner_id, content, created_at, updated_at
		FROM tweets
		WHERE id = $1
	`

	var tweet model.Tweet
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tweet.ID,
		&tweet.OwnerID,
		&tweet.Content,
		&tweet.CreatedAt,
		&tweet.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrTweetNotFound
		}
		return nil, fmt.Errorf("failed to get tweet by ID: %w", err)
	}

	return &tweet, nil
}

// ListByOwner returns a user's tweets, newest first.
func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error) {
	const query = `
		SELECT id, owner_id, content, created_at, updated_at
		FROM tweets
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tweets by owner: %w", err)
	}
	defer rows.Close()

	var tweets []*model.Tweet
	for rows.Next() {
		var tweet model.Tweet
		err := rows.Scan(
			&tweet.ID,
			&tweet.OwnerID,
			&tweet.Content,
			&tweet.CreatedAt,
			&tweet.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tweet: %w", err)
		}
		tweets = append(tweets, &tweet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tweets: %w", err)
	}

	return tweets, nil
}

// Update persists changes to a tweet, scoped to its owner.
func (r *TweetRepository) Update(ctx context.Context, tweet *model.Tweet) error {
	const query = `
		UPDATE tweets
		SET content = $3, updated_at = $4
		WHERE id = $1 AND owner_id = $2
	`

	tweet.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, query, tweet.ID, tweet.OwnerID, tweet.Content, tweet.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update tweet: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}

// Delete removes a tweet and its likes, scoped to its owner.
func (r *TweetRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	const deleteLikes = `
		DELETE FROM likes
		WHERE subject_kind = 'tweet'
		  AND subject_id IN (SELECT id FROM tweets WHERE id = $1 AND owner_id = $2)
	`
	const deleteTweet = `DELETE FROM tweets WHERE id = $1 AND owner_id = $2`

	if _, err := r.db.Exec(ctx, deleteLikes, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete tweet likes: %w", err)
	}

	tag, err := r.db.Exec(ctx, deleteTweet, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}

// Compile-time verification that TweetRepository implements repository.TweetRepository.
var _ repository.TweetRepository = (*TweetRepository)(nil)
