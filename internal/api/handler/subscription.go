package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/api/middleware"
	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/usecase"
)

// SubscriptionHandler handles channel subscription HTTP requests.
type SubscriptionHandler struct {
	svc usecase.ToggleService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(svc usecase.ToggleService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// Toggle handles POST /api/v1/subscriptions/toggle/{channelId}
func (h *SubscriptionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	channelID, err := uuid.Parse(chi.URLParam(r, "channelId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "channelId must be a valid UUID")
		return
	}

	result, err := h.svc.ToggleSubscription(r.Context(), channelID, middleware.GetActorID(r.Context()))
	if err != nil {
		ServiceError(w, err)
		return
	}

	if result.Added {
		JSON(w, http.StatusCreated, ToggleResponse{Added: true}, "subscribed")
		return
	}
	JSON(w, http.StatusOK, ToggleResponse{Added: false}, "unsubscribed")
}

// ListSubscribers handles GET /api/v1/subscriptions/{channelId}/subscribers
func (h *SubscriptionHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	channelID, err := uuid.Parse(chi.URLParam(r, "channelId"))
	if err != nil {
		Error(w, http.StatusBadRequest, "channelId must be a valid UUID")
		return
	}

	users, err := h.svc.ListSubscribers(r.Context(), channelID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toOwnerResponses(users), "subscribers fetched successfully")
}

// ListSubscribedChannels handles GET /api/v1/subscriptions/channels
func (h *SubscriptionHandler) ListSubscribedChannels(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListSubscribedChannels(r.Context(), middleware.GetActorID(r.Context()))
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toOwnerResponses(users), "subscribed channels fetched successfully")
}

func toOwnerResponses(users []*model.PublicUser) []OwnerResponse {
	resp := make([]OwnerResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, *toOwnerResponse(u))
	}
	return resp
}
