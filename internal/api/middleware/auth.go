package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

const actorIDKey ctxKey = iota + 1

// actorHeader carries the authenticated user's ID, resolved upstream by
// the API gateway. Session mechanics are out of scope here.
const actorHeader = "X-User-Id"

// Actor resolves the acting user from the request headers and stores it
// in the context. Requests without a valid actor are rejected.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID, err := uuid.Parse(r.Header.Get(actorHeader))
		if err != nil || actorID == uuid.Nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"statusCode": http.StatusBadRequest,
				"message":    "missing or invalid " + actorHeader + " header",
				"success":    false,
				"errors":     []string{},
			})
			return
		}

		ctx := context.WithValue(r.Context(), actorIDKey, actorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActorID retrieves the acting user's ID from context.
// Returns uuid.Nil when no actor was resolved.
func GetActorID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(actorIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
