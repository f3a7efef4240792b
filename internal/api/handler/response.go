package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
	"github.com/cliptube/cliptube/internal/usecase"
)

// Envelope is the uniform success response shape.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// ErrorEnvelope is the uniform error response shape.
type ErrorEnvelope struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// JSON writes a success envelope.
func JSON(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Error writes an error envelope.
func Error(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorEnvelope{
		StatusCode: status,
		Message:    message,
		Success:    false,
		Errors:     []string{},
	}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// ServiceError maps service-layer errors to the HTTP envelope.
func ServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrVideoNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrCommentNotFound),
		errors.Is(err, repository.ErrTweetNotFound),
		errors.Is(err, repository.ErrPlaylistNotFound),
		errors.Is(err, repository.ErrObjectNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		Error(w, http.StatusForbidden, "you do not own this resource")
	case errors.Is(err, repository.ErrDuplicatePlaylistName):
		Error(w, http.StatusConflict, "a playlist with this name already exists")
	case errors.Is(err, model.ErrEmptyTitle),
		errors.Is(err, model.ErrTitleTooLong),
		errors.Is(err, model.ErrEmptyDescription),
		errors.Is(err, model.ErrEmptyContent),
		errors.Is(err, model.ErrEmptyPlaylistName),
		errors.Is(err, model.ErrInvalidOwnerID),
		errors.Is(err, model.ErrInvalidVideoRef),
		errors.Is(err, model.ErrInvalidSubjectKind),
		errors.Is(err, model.ErrInvalidSubjectID),
		errors.Is(err, model.ErrInvalidActorID),
		errors.Is(err, model.ErrSelfSubscription):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrUploadFailed):
		Error(w, http.StatusInternalServerError, "failed to upload media asset")
	case errors.Is(err, usecase.ErrCleanupFailed):
		Error(w, http.StatusInternalServerError, "failed to release media asset")
	default:
		Error(w, http.StatusInternalServerError, "an unexpected error occurred")
	}
}
