package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/api/middleware"
	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/usecase"
)

type TweetRequest struct {
	Content string `json:"content"`
}

type TweetResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// TweetHandler handles tweet HTTP requests.
type TweetHandler struct {
	svc usecase.TweetService
}

// NewTweetHandler creates a new TweetHandler.
func NewTweetHandler(svc usecase.TweetService) *TweetHandler {
	return &TweetHandler{svc: svc}
}

// Create handles POST /api/v1/tweets
func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	tweet, err := h.svc.CreateTweet(r.Context(), middleware.GetActorID(r.Context()), req.Content)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toTweetResponse(tweet), "tweet created successfully")
}

// ListByUser handles GET /api/v1/tweets/user/{userId}
func (h *TweetHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "user ID must be a valid UUID")
		return
	}

	tweets, err := h.svc.ListUserTweets(r.Context(), userID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	resp := make([]TweetResponse, 0, len(tweets))
	for _, t := range tweets {
		resp = append(resp, toTweetResponse(t))
	}
	JSON(w, http.StatusOK, resp, "tweets fetched successfully")
}

// Update handles PATCH /api/v1/tweets/{tweetId}
func (h *TweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	tweetID, err := uuid.Parse(chi.URLParam(r, "tweetId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "tweet ID must be a valid UUID")
		return
	}

	var req TweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	tweet, err := h.svc.UpdateTweet(r.Context(), tweetID, middleware.GetActorID(r.Context()), req.Content)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toTweetResponse(tweet), "tweet updated successfully")
}

// Delete handles DELETE /api/v1/tweets/{tweetId}
func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tweetID, err := uuid.Parse(chi.URLParam(r, "tweetId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "tweet ID must be a valid UUID")
		return
	}

	if err := h.svc.DeleteTweet(r.Context(), tweetID, middleware.GetActorID(r.Context())); err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, nil, "tweet deleted successfully")
}

func toTweetResponse(t *model.Tweet) TweetResponse {
	return TweetResponse{
		ID:        t.ID.String(),
		OwnerID:   t.OwnerID.String(),
		Content:   t.Content,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}
