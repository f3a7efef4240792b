package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestActor(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		wantStatusCode int
	}{
		{
			name:           "valid actor header",
			header:         uuid.New().String(),
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing header",
			header:         "",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "malformed header",
			header:         "not-a-uuid",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "nil UUID",
			header:         uuid.Nil.String(),
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotActor uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotActor = GetActorID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("X-User-Id", tt.header)
			}
			rec := httptest.NewRecorder()

			Actor(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("expected status %d, got %d", tt.wantStatusCode, rec.Code)
			}
			if tt.wantStatusCode == http.StatusOK && gotActor.String() != tt.header {
				t.Errorf("expected actor %s in context, got %s", tt.header, gotActor)
			}
		})
	}
}

func TestGetActorID_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetActorID(req.Context()); got != uuid.Nil {
		t.Errorf("expected uuid.Nil for a request without an actor, got %s", got)
	}
}
