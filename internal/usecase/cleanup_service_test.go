package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/cliptube/cliptube/internal/domain/repository"
)

func TestCleanupProcessor_HandleTask(t *testing.T) {
	tests := []struct {
		name       string
		task       repository.CleanupTask
		deleteErr  error
		wantErr    bool
		wantDelete bool
	}{
		{
			name:       "asset is deleted",
			task:       repository.CleanupTask{Locator: "https://minio.local/media/image/a.png", Reason: repository.CleanupReasonReplace},
			wantDelete: true,
		},
		{
			name:       "delete failure propagates for retry",
			task:       repository.CleanupTask{Locator: "https://minio.local/media/video/b.mp4", Attempts: 2},
			deleteErr:  errors.New("remote unavailable"),
			wantErr:    true,
			wantDelete: true,
		},
		{
			name: "exhausted task is dropped without deleting",
			task: repository.CleanupTask{Locator: "https://minio.local/media/video/c.mp4", Attempts: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleteCalled := false
			store := &mockMediaStore{
				deleteByLocatorFn: func(ctx context.Context, locator string) error {
					deleteCalled = true
					if locator != tt.task.Locator {
						t.Errorf("locator = %v, want %v", locator, tt.task.Locator)
					}
					return tt.deleteErr
				},
			}

			p := NewCleanupProcessor(store, DefaultCleanupProcessorConfig())

			err := p.HandleTask(context.Background(), tt.task)

			if (err != nil) != tt.wantErr {
				t.Errorf("HandleTask() error = %v, wantErr %v", err, tt.wantErr)
			}
			if deleteCalled != tt.wantDelete {
				t.Errorf("delete called = %v, want %v", deleteCalled, tt.wantDelete)
			}
		})
	}
}
