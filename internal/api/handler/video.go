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

// Request/Response types

type UpdateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type OwnerResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatar,omitempty"`
}

type VideoResponse struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"ownerId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	VideoFile   string         `json:"videoFile"`
	Thumbnail   string         `json:"thumbnail"`
	Duration    float64        `json:"duration"`
	Views       int64          `json:"views"`
	IsPublished bool           `json:"isPublished"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
	Owner       *OwnerResponse `json:"owner,omitempty"`
}

type VideoPageResponse struct {
	Videos     []VideoResponse `json:"videos"`
	TotalDocs  int64           `json:"totalDocs"`
	TotalPages int             `json:"totalPages"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

// VideoHandler handles video-related HTTP requests.
type VideoHandler struct {
	svc       usecase.VideoService
	tempDir   string
	maxUpload int64
}

// NewVideoHandler creates a new VideoHandler. Uploads are spooled to
// tempDir and request bodies are capped at maxUpload bytes.
func NewVideoHandler(svc usecase.VideoService, tempDir string, maxUpload int64) *VideoHandler {
	return &VideoHandler{
		svc:       svc,
		tempDir:   tempDir,
		maxUpload: maxUpload,
	}
}

// Feed handles GET /api/v1/videos
func (h *VideoHandler) Feed(w http.ResponseWriter, r *http.Request) {
	q := repository.VideoFeedQuery{
		Search:        r.URL.Query().Get("query"),
		SortBy:        r.URL.Query().Get("sortBy"),
		SortAsc:       r.URL.Query().Get("sortType") == "asc",
		PublishedOnly: true,
	}

	if raw := r.URL.Query().Get("userId"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			Error(w, http.StatusBadRequest, "userId must be a valid UUID")
			return
		}
		q.OwnerID = &ownerID
	}

	q.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	page, err := h.svc.Feed(r.Context(), q)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoPageResponse(page), "videos fetched successfully")
}

// Publish handles POST /api/v1/videos
func (h *VideoHandler) Publish(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		Error(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	videoPath, err := saveUpload(r, "videoFile", h.tempDir)
	if err != nil {
		Error(w, http.StatusBadRequest, "videoFile is required")
		return
	}

	thumbPath, err := saveUpload(r, "thumbnail", h.tempDir)
	if err != nil {
		discardScratch(videoPath)
		Error(w, http.StatusBadRequest, "thumbnail is required")
		return
	}

	video, err := h.svc.PublishVideo(r.Context(), usecase.PublishVideoInput{
		OwnerID:       middleware.GetActorID(r.Context()),
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		VideoPath:     videoPath,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		// Validation failures happen before the media store takes over
		// the scratch files; they must not leak into the temp dir.
		discardScratch(videoPath, thumbPath)
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toVideoResponse(video, nil), "video published successfully")
}

// Get handles GET /api/v1/videos/{videoId}
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "video ID must be a valid UUID")
		return
	}

	video, err := h.svc.GetVideo(r.Context(), videoID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoWithOwnerResponse(video), "video fetched successfully")
}

// Update handles PATCH /api/v1/videos/{videoId}
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "video ID must be a valid UUID")
		return
	}

	var req UpdateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	video, err := h.svc.UpdateDetails(r.Context(), videoID, middleware.GetActorID(r.Context()), req.Title, req.Description)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video, nil), "video updated successfully")
}

// ReplaceThumbnail handles PATCH /api/v1/videos/{videoId}/thumbnail
func (h *VideoHandler) ReplaceThumbnail(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "video ID must be a valid UUID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		Error(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	thumbPath, err := saveUpload(r, "thumbnail", h.tempDir)
	if err != nil {
		Error(w, http.StatusBadRequest, "thumbnail is required")
		return
	}

	video, err := h.svc.ReplaceThumbnail(r.Context(), videoID, middleware.GetActorID(r.Context()), thumbPath)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video, nil), "thumbnail updated successfully")
}

// Delete handles DELETE /api/v1/videos/{videoId}
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "video ID must be a valid UUID")
		return
	}

	if err := h.svc.DeleteVideo(r.Context(), videoID, middleware.GetActorID(r.Context())); err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, nil, "video deleted successfully")
}

// TogglePublish handles PATCH /api/v1/videos/{videoId}/toggle-publish
func (h *VideoHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "video ID must be a valid UUID")
		return
	}

	video, err := h.svc.TogglePublish(r.Context(), videoID, middleware.GetActorID(r.Context()))
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video, nil), "publish status toggled successfully")
}

func toOwnerResponse(u *model.PublicUser) *OwnerResponse {
	return &OwnerResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
	}
}

func toVideoResponse(v *model.Video, owner *OwnerResponse) VideoResponse {
	return VideoResponse{
		ID:          v.ID.String(),
		OwnerID:     v.OwnerID.String(),
		Title:       v.Title,
		Description: v.Description,
		VideoFile:   v.VideoURL,
		Thumbnail:   v.ThumbnailURL,
		Duration:    v.Duration,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   v.UpdatedAt.Format(time.RFC3339),
		Owner:       owner,
	}
}

func toVideoWithOwnerResponse(v *model.VideoWithOwner) VideoResponse {
	return toVideoResponse(&v.Video, toOwnerResponse(&v.Owner))
}

func toVideoPageResponse(page *repository.VideoPage) VideoPageResponse {
	videos := make([]VideoResponse, 0, len(page.Items))
	for _, v := range page.Items {
		videos = append(videos, toVideoWithOwnerResponse(v))
	}
	return VideoPageResponse{
		Videos:     videos,
		TotalDocs:  page.TotalDocs,
		TotalPages: page.TotalPages,
		Page:       page.Page,
		Limit:      page.Limit,
	}
}
