package repository

import "errors"

var (
	// ErrVideoNotFound is returned when a video cannot be found.
	ErrVideoNotFound = errors.New("video not found")

	// ErrUserNotFound is returned when a user cannot be found.
	ErrUserNotFound = errors.New("user not found")

	// ErrCommentNotFound is returned when a comment cannot be found.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrTweetNotFound is returned when a tweet cannot be found.
	ErrTweetNotFound = errors.New("tweet not found")

	// ErrPlaylistNotFound is returned when a playlist cannot be found.
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrDuplicateRelation is returned when inserting a relation that already
	// exists for its (subject, actor) pair. The unique index is the authority;
	// callers treat this as the "already present" branch of a toggle.
	ErrDuplicateRelation = errors.New("relation already exists")

	// ErrDuplicatePlaylistName is returned when an owner already has a
	// playlist with the same case-insensitive name.
	ErrDuplicatePlaylistName = errors.New("playlist name already exists")

	// ErrObjectNotFound is returned when a remote storage object is absent.
	ErrObjectNotFound = errors.New("object not found")

	// ErrBucketNotFound is returned when the configured bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
)
