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

type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PlaylistResponse struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"ownerId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Videos      []string `json:"videos"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// PlaylistHandler handles playlist HTTP requests.
type PlaylistHandler struct {
	svc usecase.PlaylistService
}

// NewPlaylistHandler creates a new PlaylistHandler.
func NewPlaylistHandler(svc usecase.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc}
}

// Create handles POST /api/v1/playlists
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	playlist, err := h.svc.CreatePlaylist(r.Context(), middleware.GetActorID(r.Context()), req.Name, req.Description)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toPlaylistResponse(playlist), "playlist created successfully")
}

// Get handles GET /api/v1/playlists/{playlistId}
func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	playlistID, err := uuid.Parse(chi.URLParam(r, "playlistId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "playlist ID must be a valid UUID")
		return
	}

	playlist, err := h.svc.GetPlaylist(r.Context(), playlistID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toPlaylistResponse(playlist), "playlist fetched successfully")
}

// ListByUser handles GET /api/v1/playlists/user/{userId}
func (h *PlaylistHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "user ID must be a valid UUID")
		return
	}

	playlists, err := h.svc.ListUserPlaylists(r.Context(), userID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	resp := make([]PlaylistResponse, 0, len(playlists))
	for _, p := range playlists {
		resp = append(resp, toPlaylistResponse(p))
	}
	JSON(w, http.StatusOK, resp, "playlists fetched successfully")
}

// AddVideo handles PATCH /api/v1/playlists/{playlistId}/videos/{videoId}
func (h *PlaylistHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	playlistID, videoID, ok := h.memberIDs(w, r)
	if !ok {
		return
	}

	playlist, err := h.svc.AddVideo(r.Context(), playlistID, middleware.GetActorID(r.Context()), videoID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toPlaylistResponse(playlist), "video added to playlist")
}

// RemoveVideo handles DELETE /api/v1/playlists/{playlistId}/videos/{videoId}
func (h *PlaylistHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	playlistID, videoID, ok := h.memberIDs(w, r)
	if !ok {
		return
	}

	playlist, err := h.svc.RemoveVideo(r.Context(), playlistID, middleware.GetActorID(r.Context()), videoID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toPlaylistResponse(playlist), "video removed from playlist")
}

// Update handles PATCH /api/v1/playlists/{playlistId}
func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	playlistID, err := uuid.Parse(chi.URLParam(r, "playlistId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "playlist ID must be a valid UUID")
		return
	}

	var req PlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	playlist, err := h.svc.UpdatePlaylist(r.Context(), playlistID, middleware.GetActorID(r.Context()), req.Name, req.Description)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toPlaylistResponse(playlist), "playlist updated successfully")
}

// Delete handles DELETE /api/v1/playlists/{playlistId}
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	playlistID, err := uuid.Parse(chi.URLParam(r, "playlistId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "playlist ID must be a valid UUID")
		return
	}

	if err := h.svc.DeletePlaylist(r.Context(), playlistID, middleware.GetActorID(r.Context())); err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, nil, "playlist deleted successfully")
}

func (h *PlaylistHandler) memberIDs(w http.ResponseWriter, r *http.Request) (playlistID, videoID uuid.UUID, ok bool) {
	playlistID, err := uuid.Parse(chi.URLParam(r, "playlistId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "playlist ID must be a valid UUID")
		return uuid.Nil, uuid.Nil, false
	}
	videoID, err = uuid.Parse(chi.URLParam(r, "videoId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "video ID must be a valid UUID")
		return uuid.Nil, uuid.Nil, false
	}
	return playlistID, videoID, true
}

func toPlaylistResponse(p *model.Playlist) PlaylistResponse {
	videos := make([]string, 0, len(p.VideoIDs))
	for _, id := range p.VideoIDs {
		videos = append(videos, id.String())
	}
	return PlaylistResponse{
		ID:          p.ID.String(),
		OwnerID:     p.OwnerID.String(),
		Name:        p.Name,
		Description: p.Description,
		Videos:      videos,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}
