package handler

import (
	"net/http"

	"github.com/cliptube/cliptube/internal/api/middleware"
	"github.com/cliptube/cliptube/internal/usecase"
)

type ChannelStatsResponse struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

// DashboardHandler serves the acting user's channel dashboard.
type DashboardHandler struct {
	svc usecase.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc usecase.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats handles GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetChannelStats(r.Context(), middleware.GetActorID(r.Context()))
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, ChannelStatsResponse{
		TotalVideos:      stats.TotalVideos,
		TotalViews:       stats.TotalViews,
		TotalSubscribers: stats.TotalSubscribers,
		TotalLikes:       stats.TotalLikes,
	}, "channel stats fetched successfully")
}

// Videos handles GET /api/v1/dashboard/videos
func (h *DashboardHandler) Videos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.svc.GetChannelVideos(r.Context(), middleware.GetActorID(r.Context()))
	if err != nil {
		ServiceError(w, err)
		return
	}

	resp := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, toVideoResponse(v, nil))
	}
	JSON(w, http.StatusOK, resp, "channel videos fetched successfully")
}
