package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/api/middleware"
	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
	"github.com/cliptube/cliptube/internal/usecase"
)

type CommentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	ID        string         `json:"id"`
	VideoID   string         `json:"videoId"`
	OwnerID   string         `json:"ownerId"`
	Content   string         `json:"content"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
	Owner     *OwnerResponse `json:"owner,omitempty"`
}

type CommentPageResponse struct {
	Comments   []CommentResponse `json:"comments"`
	TotalDocs  int64             `json:"totalDocs"`
	TotalPages int               `json:"totalPages"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	svc usecase.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(svc usecase.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Add handles POST /api/v1/videos/{videoId}/comments
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "video ID must be a valid UUID")
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	comment, err := h.svc.AddComment(r.Context(), videoID, middleware.GetActorID(r.Context()), req.Content)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toCommentResponse(comment, nil), "comment added successfully")
}

// List handles GET /api/v1/videos/{videoId}/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "video ID must be a valid UUID")
		return
	}

	var page repository.PageRequest
	page.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	page.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.svc.ListComments(r.Context(), videoID, page)
	if err != nil {
		ServiceError(w, err)
		return
	}

	comments := make([]CommentResponse, 0, len(result.Items))
	for _, c := range result.Items {
		comments = append(comments, toCommentResponse(&c.Comment, toOwnerResponse(&c.Owner)))
	}
	JSON(w, http.StatusOK, CommentPageResponse{
		Comments:   comments,
		TotalDocs:  result.TotalDocs,
		TotalPages: result.TotalPages,
		Page:       result.Page,
		Limit:      result.Limit,
	}, "comments fetched successfully")
}

// Update handles PATCH /api/v1/comments/{commentId}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(chi.URLParam(r, "commentId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "comment ID must be a valid UUID")
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	comment, err := h.svc.UpdateComment(r.Context(), commentID, middleware.GetActorID(r.Context()), req.Content)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toCommentResponse(comment, nil), "comment updated successfully")
}

// Delete handles DELETE /api/v1/comments/{commentId}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(chi.URLParam(r, "commentId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "comment ID must be a valid UUID")
		return
	}

	if err := h.svc.DeleteComment(r.Context(), commentID, middleware.GetActorID(r.Context())); err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, nil, "comment deleted successfully")
}

func toCommentResponse(c *model.Comment, owner *OwnerResponse) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		VideoID:   c.VideoID.String(),
		OwnerID:   c.OwnerID.String(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
		Owner:     owner,
	}
}
