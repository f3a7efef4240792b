package usecase

import "errors"

var (
	// ErrForbidden is returned when the acting user does not own the
	// resource they are trying to modify.
	ErrForbidden = errors.New("caller does not own this resource")

	// ErrUploadFailed is returned when a remote asset upload fails during
	// publication. No resource row is written in that case.
	ErrUploadFailed = errors.New("asset upload failed")

	// ErrCleanupFailed is returned when a remote asset could not be deleted
	// inline and the deferred cleanup task could not be enqueued either.
	ErrCleanupFailed = errors.New("asset cleanup failed")
)
