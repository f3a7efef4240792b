package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cliptube/cliptube/internal/domain/model"
)

const (
	// videoCacheKeyPrefix is the prefix for video cache keys in Redis.
	videoCacheKeyPrefix = "video:"
)

// videoJSON is the JSON representation of a cached video and its owner.
// Using explicit struct avoids coupling to domain model's JSON tags.
type videoJSON struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"owner_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	VideoURL     string  `json:"video_url"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Duration     float64 `json:"duration"`
	Views        int64   `json:"views"`
	IsPublished  bool    `json:"is_published"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`

	OwnerUsername  string `json:"owner_username"`
	OwnerFullName  string `json:"owner_full_name"`
	OwnerAvatarURL string `json:"owner_avatar_url"`
}

// RedisVideoCache implements VideoCache using Redis as the backing store.
type RedisVideoCache struct {
	client *redis.Client
}

// NewRedisVideoCache creates a new Redis-backed video cache.
func NewRedisVideoCache(client *redis.Client) *RedisVideoCache {
	return &RedisVideoCache{
		client: client,
	}
}

// Get retrieves a video from Redis cache.
// Returns nil, nil on cache miss.
func (c *RedisVideoCache) Get(ctx context.Context, videoID uuid.UUID) (*model.VideoWithOwner, error) {
	key := c.buildKey(videoID)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	video, err := c.deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("deserialize video: %w", err)
	}

	return video, nil
}

// Set stores a video in Redis cache with the specified TTL.
func (c *RedisVideoCache) Set(ctx context.Context, video *model.VideoWithOwner, ttl time.Duration) error {
	key := c.buildKey(video.ID)

	data, err := c.serialize(video)
	if err != nil {
		return fmt.Errorf("serialize video: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Delete removes a video from Redis cache.
func (c *RedisVideoCache) Delete(ctx context.Context, videoID uuid.UUID) error {
	key := c.buildKey(videoID)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

// buildKey constructs the Redis key for a video.
func (c *RedisVideoCache) buildKey(videoID uuid.UUID) string {
	return videoCacheKeyPrefix + videoID.String()
}

// serialize converts a VideoWithOwner to JSON bytes.
func (c *RedisVideoCache) serialize(video *model.VideoWithOwner) ([]byte, error) {
	v := videoJSON{
		ID:             video.ID.String(),
		OwnerID:        video.OwnerID.String(),
		Title:          video.Title,
		Description:    video.Description,
		VideoURL:       video.VideoURL,
		ThumbnailURL:   video.ThumbnailURL,
		Duration:       video.Duration,
		Views:          video.Views,
		IsPublished:    video.IsPublished,
		CreatedAt:      video.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:      video.UpdatedAt.Format(time.RFC3339Nano),
		OwnerUsername:  video.Owner.Username,
		OwnerFullName:  video.Owner.FullName,
		OwnerAvatarURL: video.Owner.AvatarURL,
	}
	return json.Marshal(v)
}

// deserialize converts JSON bytes to a VideoWithOwner.
func (c *RedisVideoCache) deserialize(data []byte) (*model.VideoWithOwner, error) {
	var v videoJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(v.ID)
	if err != nil {
		return nil, fmt.Errorf("parse video ID: %w", err)
	}

	ownerID, err := uuid.Parse(v.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("parse owner ID: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, v.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, v.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &model.VideoWithOwner{
		Video: model.Video{
			ID:           id,
			OwnerID:      ownerID,
			Title:        v.Title,
			Description:  v.Description,
			VideoURL:     v.VideoURL,
			ThumbnailURL: v.ThumbnailURL,
			Duration:     v.Duration,
			Views:        v.Views,
			IsPublished:  v.IsPublished,
			CreatedAt:    createdAt,
			UpdatedAt:    updatedAt,
		},
		Owner: model.PublicUser{
			ID:        ownerID,
			Username:  v.OwnerUsername,
			FullName:  v.OwnerFullName,
			AvatarURL: v.OwnerAvatarURL,
		},
	}, nil
}

// Compile-time verification that RedisVideoCache implements VideoCache.
var _ VideoCache = (*RedisVideoCache)(nil)
