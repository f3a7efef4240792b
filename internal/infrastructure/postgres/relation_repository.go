package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations. The unique indexes on likes and subscriptions are what make
// the toggle's check-then-act sequence safe under concurrency.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// LikeRepository implements repository.LikeRepository using PostgreSQL.
type LikeRepository struct {
	db DBTX
}

// NewLikeRepository creates a new LikeRepository instance.
func NewLikeRepository(db DBTX) *LikeRepository {
	return &LikeRepository{db: db}
}

// Find returns the like for the given subject and actor, or nil when absent.
func (r *LikeRepository) Find(ctx context.Context, kind model.SubjectKind, subjectID, actorID uuid.UUID) (*model.Like, error) {
	const query = `
		SELECT id, subject_kind, subject_id, actor_id, created_at
		FROM likes
		WHERE subject_kind = $1 AND subject_id = $2 AND actor_id = $3
	`

	var (
		like     model.Like
		kindText string
	)
	err := r.db.QueryRow(ctx, query, kind.String(), subjectID, actorID).Scan(
		&like.ID,
		&kindText,
		&like.SubjectID,
		&like.ActorID,
		&like.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find like: %w", err)
	}

	like.SubjectKind = model.SubjectKind(kindText)
	return &like, nil
}

// Create persists a new like. A unique-index rejection is reported as
// ErrDuplicateRelation.
func (r *LikeRepository) Create(ctx context.Context, like *model.Like) error {
	const query = `
		INSERT INTO likes (id, subject_kind, subject_id, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		like.ID,
		like.SubjectKind.String(),
		like.SubjectID,
		like.ActorID,
		like.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateRelation
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

// Delete removes the like for the given subject and actor. Zero affected
// rows is not an error; removal is idempotent by pair.
func (r *LikeRepository) Delete(ctx context.Context, kind model.SubjectKind, subjectID, actorID uuid.UUID) error {
	const query = `
		DELETE FROM likes
		WHERE subject_kind = $1 AND subject_id = $2 AND actor_id = $3
	`

	if _, err := r.db.Exec(ctx, query, kind.String(), subjectID, actorID); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return nil
}

// CountForOwner counts likes on all subjects of the given kind owned by
// ownerID.
func (r *LikeRepository) CountForOwner(ctx context.Context, kind model.SubjectKind, ownerID uuid.UUID) (int64, error) {
	var query string
	switch kind {
	case model.SubjectVideo:
		query = `
			SELECT COUNT(*)
			FROM likes l
			JOIN videos v ON v.id = l.subject_id
			WHERE l.subject_kind = 'video' AND v.owner_id = $1
		`
	case model.SubjectComment:
		query = `
			SELECT COUNT(*)
			FROM likes l
			JOIN comments c ON c.id = l.subject_id
			WHERE l.subject_kind = 'comment' AND c.owner_id = $1
		`
	case model.SubjectTweet:
		query = `
			SELECT COUNT(*)
			FROM likes l
			JOIN tweets t ON t.id = l.subject_id
			WHERE l.subject_kind = 'tweet' AND t.owner_id = $1
		`
	default:
		return 0, model.ErrInvalidSubjectKind
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes for owner: %w", err)
	}

	return count, nil
}

// SubscriptionRepository implements repository.SubscriptionRepository using
// PostgreSQL.
type SubscriptionRepository struct {
	db DBTX
}

// NewSubscriptionRepository creates a new SubscriptionRepository instance.
func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Find returns the subscription for the given channel and subscriber, or nil
// when absent.
func (r *SubscriptionRepository) Find(ctx context.Context, channelID, subscriberID uuid.UUID) (*model.Subscription, error) {
	const query = `
		SELECT id, channel_id, subscriber_id, created_at
		FROM subscriptions
		WHERE channel_id = $1 AND subscriber_id = $2
	`

	var sub model.Subscription
	err := r.db.QueryRow(ctx, query, channelID, subscriberID).Scan(
		&sub.ID,
		&sub.ChannelID,
		&sub.SubscriberID,
		&sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return &sub, nil
}

// Create persists a new subscription. A unique-index rejection is reported
// as ErrDuplicateRelation.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	const query = `
		INSERT INTO subscriptions (id, channel_id, subscriber_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, sub.ID, sub.ChannelID, sub.SubscriberID, sub.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateRelation
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// Delete removes the subscription for the given channel and subscriber.
func (r *SubscriptionRepository) Delete(ctx context.Context, channelID, subscriberID uuid.UUID) error {
	const query = `
		DELETE FROM subscriptions
		WHERE channel_id = $1 AND subscriber_id = $2
	`

	if _, err := r.db.Exec(ctx, query, channelID, subscriberID); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	return nil
}

// ListSubscribers returns the public profiles of a channel's subscribers.
func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*model.PublicUser, error) {
	const query = `
		SELECT ` + ownerColumns + `
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC
	`

	return r.collectUsers(ctx, query, channelID)
}

// ListSubscribedChannels returns the public profiles of subscribed channels.
func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*model.PublicUser, error) {
	const query = `
		SELECT ` + ownerColumns + `
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC
	`

	return r.collectUsers(ctx, query, subscriberID)
}

// CountSubscribers counts a channel's subscribers.
func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, channelID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}

	return count, nil
}

func (r *SubscriptionRepository) collectUsers(ctx context.Context, query string, arg any) ([]*model.PublicUser, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscription users: %w", err)
	}
	defer rows.Close()

	var users []*model.PublicUser
	for rows.Next() {
		var user model.PublicUser
		if err := rows.Scan(&user.ID, &user.Username, &user.FullName, &user.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// Compile-time interface checks.
var (
	_ repository.LikeRepository         = (*LikeRepository)(nil)
	_ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
)
