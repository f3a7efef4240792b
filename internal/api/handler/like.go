package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/api/middleware"
	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/usecase"
)

type ToggleResponse struct {
	Added bool `json:"added"`
}

// LikeHandler handles like toggle HTTP requests.
type LikeHandler struct {
	svc usecase.ToggleService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(svc usecase.ToggleService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// ToggleVideoLike handles POST /api/v1/likes/toggle/video/{videoId}
func (h *LikeHandler) ToggleVideoLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.SubjectVideo, "videoId")
}

// ToggleCommentLike handles POST /api/v1/likes/toggle/comment/{commentId}
func (h *LikeHandler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.SubjectComment, "commentId")
}

// ToggleTweetLike handles POST /api/v1/likes/toggle/tweet/{tweetId}
func (h *LikeHandler) ToggleTweetLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.SubjectTweet, "tweetId")
}

func (h *LikeHandler) toggle(w http.ResponseWriter, r *http.Request, kind model.SubjectKind, param string) {
	subjectID, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		Error(w, http.StatusBadRequest, param+" must be a valid UUID")
		return
	}

	result, err := h.svc.ToggleLike(r.Context(), kind, subjectID, middleware.GetActorID(r.Context()))
	if err != nil {
		ServiceError(w, err)
		return
	}

	if result.Added {
		JSON(w, http.StatusCreated, ToggleResponse{Added: true}, "like added")
		return
	}
	JSON(w, http.StatusOK, ToggleResponse{Added: false}, "like removed")
}

// ListLikedVideos handles GET /api/v1/likes/videos
func (h *LikeHandler) ListLikedVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.svc.ListLikedVideos(r.Context(), middleware.GetActorID(r.Context()))
	if err != nil {
		ServiceError(w, err)
		return
	}

	resp := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, toVideoWithOwnerResponse(v))
	}
	JSON(w, http.StatusOK, resp, "liked videos fetched successfully")
}
