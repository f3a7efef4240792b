package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSubjectKind = errors.New("invalid subject kind")
	ErrInvalidSubjectID   = errors.New("subject ID cannot be nil")
	ErrInvalidActorID     = errors.New("actor ID cannot be nil")
)

// SubjectKind identifies the type of entity a like targets.
type SubjectKind string

const (
	SubjectVideo   SubjectKind = "video"
	SubjectComment SubjectKind = "comment"
	SubjectTweet   SubjectKind = "tweet"
)

func (k SubjectKind) IsValid() bool {
	switch k {
	case SubjectVideo, SubjectComment, SubjectTweet:
		return true
	default:
		return false
	}
}

func (k SubjectKind) String() string {
	return string(k)
}

// Like is a relation entity: at most one may exist per
// (subject kind, subject, actor) triple. Likes are created and removed only
// through the toggle flow and are never updated in place.
type Like struct {
	ID          uuid.UUID
	SubjectKind SubjectKind
	SubjectID   uuid.UUID
	ActorID     uuid.UUID
	CreatedAt   time.Time
}

// NewLike creates a like relation for the given subject and actor.
func NewLike(kind SubjectKind, subjectID, actorID uuid.UUID) (*Like, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidSubjectKind
	}
	if subjectID == uuid.Nil {
		return nil, ErrInvalidSubjectID
	}
	if actorID == uuid.Nil {
		return nil, ErrInvalidActorID
	}
	return &Like{
		ID:          uuid.New(),
		SubjectKind: kind,
		SubjectID:   subjectID,
		ActorID:     actorID,
		CreatedAt:   time.Now(),
	}, nil
}

// Subscription is a relation entity: at most one may exist per
// (channel, subscriber) pair. A user may not subscribe to their own channel.
type Subscription struct {
	ID           uuid.UUID
	ChannelID    uuid.UUID
	SubscriberID uuid.UUID
	CreatedAt    time.Time
}

var ErrSelfSubscription = errors.New("self-subscription is not allowed")

// NewSubscription creates a subscription relation.
func NewSubscription(channelID, subscriberID uuid.UUID) (*Subscription, error) {
	if channelID == uuid.Nil {
		return nil, ErrInvalidSubjectID
	}
	if subscriberID == uuid.Nil {
		return nil, ErrInvalidActorID
	}
	if channelID == subscriberID {
		return nil, ErrSelfSubscription
	}
	return &Subscription{
		ID:           uuid.New(),
		ChannelID:    channelID,
		SubscriberID: subscriberID,
		CreatedAt:    time.Now(),
	}, nil
}
