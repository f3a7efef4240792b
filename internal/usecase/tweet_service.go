package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
)

// TweetService defines the interface for tweet business logic.
type TweetService interface {
	// CreateTweet posts a new tweet for the owner.
	CreateTweet(ctx context.Context, ownerID uuid.UUID, content string) (*model.Tweet, error)

	// ListUserTweets returns an existing user's tweets, newest first.
	ListUserTweets(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error)

	// UpdateTweet changes a tweet's content.
	// Only the owner may update; others get ErrForbidden.
	UpdateTweet(ctx context.Context, tweetID, byUser uuid.UUID, content string) (*model.Tweet, error)

	// DeleteTweet removes a tweet together with its likes.
	// Only the owner may delete; others get ErrForbidden.
	DeleteTweet(ctx context.Context, tweetID, byUser uuid.UUID) error
}

type tweetService struct {
	tweets repository.TweetRepository
	users  repository.UserRepository
}

// NewTweetService creates a new TweetService instance.
func NewTweetService(tweets repository.TweetRepository, users repository.UserRepository) TweetService {
	return &tweetService{
		tweets: tweets,
		users:  users,
	}
}

func (s *tweetService) CreateTweet(ctx context.Context, ownerID uuid.UUID, content string) (*model.Tweet, error) {
	tweet, err := model.NewTweet(ownerID, content)
	if err != nil {
		return nil, err
	}

	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, fmt.Errorf("create tweet: %w", err)
	}
	return tweet, nil
}

func (s *tweetService) ListUserTweets(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error) {
	exists, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return s.tweets.ListByOwner(ctx, ownerID)
}

func (s *tweetService) UpdateTweet(ctx context.Context, tweetID, byUser uuid.UUID, content string) (*model.Tweet, error) {
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if !tweet.IsOwnedBy(byUser) {
		return nil, ErrForbidden
	}

	if err := tweet.SetContent(content); err != nil {
		return nil, err
	}

	if err := s.tweets.Update(ctx, tweet); err != nil {
		return nil, fmt.Errorf("update tweet: %w", err)
	}
	return tweet, nil
}

func (s *tweetService) DeleteTweet(ctx context.Context, tweetID, byUser uuid.UUID) error {
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if !tweet.IsOwnedBy(byUser) {
		return ErrForbidden
	}

	if err := s.tweets.Delete(ctx, tweetID, byUser); err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}
	return nil
}
