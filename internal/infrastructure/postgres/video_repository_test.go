package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
)

var videoRowColumns = []string{
	"id", "owner_id", "title", "description", "video_url", "thumbnail_url",
	"duration", "views", "is_published", "created_at", "updated_at",
}

var enrichedRowColumns = append(append([]string{}, videoRowColumns...),
	"u_id", "username", "full_name", "avatar_url")

func addEnrichedRow(rows *pgxmock.Rows, video *model.Video, owner *model.PublicUser) {
	rows.AddRow(
		video.ID, video.OwnerID, video.Title, video.Description,
		video.VideoURL, video.ThumbnailURL, video.Duration, video.Views,
		video.IsPublished, video.CreatedAt, video.UpdatedAt,
		owner.ID, owner.Username, owner.FullName, owner.AvatarURL,
	)
}

func storedVideo(owner uuid.UUID) *model.Video {
	now := time.Now()
	return &model.Video{
		ID:           uuid.New(),
		OwnerID:      owner,
		Title:        "stored video",
		Description:  "a description",
		VideoURL:     "https://minio.local/media/videos/abc.mp4",
		ThumbnailURL: "https://minio.local/media/thumbnails/abc.jpg",
		Duration:     30,
		Views:        3,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestVideoRepository_GetByID(t *testing.T) {
	t.Run("existing video", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer mock.Close()

		video := storedVideo(uuid.New())
		rows := pgxmock.NewRows(videoRowColumns).AddRow(
			video.ID, video.OwnerID, video.Title, video.Description,
			video.VideoURL, video.ThumbnailURL, video.Duration, video.Views,
			video.IsPublished, video.CreatedAt, video.UpdatedAt,
		)
		mock.ExpectQuery("SELECT (.+) FROM videos v").
			WithArgs(video.ID).
			WillReturnRows(rows)

		repo := NewVideoRepository(mock)
		got, err := repo.GetByID(context.Background(), video.ID)
		if err != nil {
			t.Fatalf("GetByID() unexpected error = %v", err)
		}
		if got.ID != video.ID || got.Title != video.Title {
			t.Errorf("GetByID() = %+v, want %+v", got, video)
		}
	})

	t.Run("missing video", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer mock.Close()

		id := uuid.New()
		mock.ExpectQuery("SELECT (.+) FROM videos v").
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		repo := NewVideoRepository(mock)
		if _, err := repo.GetByID(context.Background(), id); !errors.Is(err, repository.ErrVideoNotFound) {
			t.Errorf("GetByID() error = %v, want ErrVideoNotFound", err)
		}
	})
}

func TestVideoRepository_Feed(t *testing.T) {
	t.Run("owner filter is applied to the joined shape", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer mock.Close()

		ownerID := uuid.New()
		video := storedVideo(ownerID)
		owner := &model.PublicUser{
			ID:       ownerID,
			Username: "alice",
			FullName: "Alice Example",
		}

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM videos v JOIN users u`).
			WithArgs(ownerID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

		rows := pgxmock.NewRows(enrichedRowColumns)
		addEnrichedRow(rows, video, owner)
		mock.ExpectQuery("SELECT (.+) FROM videos v JOIN users u").
			WithArgs(ownerID, 10, 0).
			WillReturnRows(rows)

		repo := NewVideoRepository(mock)
		page, err := repo.Feed(context.Background(), repository.VideoFeedQuery{
			OwnerID:       &ownerID,
			PublishedOnly: true,
			PageRequest:   repository.PageRequest{Page: 1, Limit: 10},
		})
		if err != nil {
			t.Fatalf("Feed() unexpected error = %v", err)
		}

		if len(page.Items) != 1 {
			t.Fatalf("Feed() returned %d items, want 1", len(page.Items))
		}
		if page.Items[0].Owner.Username != "alice" {
			t.Errorf("Feed() owner username = %s, want alice", page.Items[0].Owner.Username)
		}
		if page.TotalDocs != 1 || page.TotalPages != 1 || page.Page != 1 {
			t.Errorf("Feed() page info = %+v", page.PageInfo)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
	})

	t.Run("search and paging arguments", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer mock.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM videos v JOIN users u`).
			WithArgs("cats").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

		mock.ExpectQuery("SELECT (.+) FROM videos v JOIN users u").
			WithArgs("cats", 5, 5).
			WillReturnRows(pgxmock.NewRows(enrichedRowColumns))

		repo := NewVideoRepository(mock)
		page, err := repo.Feed(context.Background(), repository.VideoFeedQuery{
			Search:      "cats",
			SortBy:      "views",
			PageRequest: repository.PageRequest{Page: 2, Limit: 5},
		})
		if err != nil {
			t.Fatalf("Feed() unexpected error = %v", err)
		}

		if len(page.Items) != 0 {
			t.Errorf("Feed() returned %d items, want 0", len(page.Items))
		}
		if page.Page != 2 {
			t.Errorf("Feed() page = %d, want 2", page.Page)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
	})
}

func TestVideoRepository_Update(t *testing.T) {
	t.Run("zero affected rows reports a missing video", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer mock.Close()

		video := storedVideo(uuid.New())
		mock.ExpectExec("UPDATE videos").
			WithArgs(
				video.ID, video.Title, video.Description, video.VideoURL,
				video.ThumbnailURL, video.Duration, video.Views,
				video.IsPublished, pgxmock.AnyArg(),
			).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := NewVideoRepository(mock)
		if err := repo.Update(context.Background(), video); !errors.Is(err, repository.ErrVideoNotFound) {
			t.Errorf("Update() error = %v, want ErrVideoNotFound", err)
		}
	})
}

func TestVideoRepository_Delete(t *testing.T) {
	t.Run("like relations are removed before the video row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer mock.Close()

		id := uuid.New()
		mock.ExpectExec("DELETE FROM likes").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec("DELETE FROM likes").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 5))
		mock.ExpectExec("DELETE FROM videos").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := NewVideoRepository(mock)
		if err := repo.Delete(context.Background(), id); err != nil {
			t.Fatalf("Delete() unexpected error = %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
	})

	t.Run("missing video", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer mock.Close()

		id := uuid.New()
		mock.ExpectExec("DELETE FROM likes").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec("DELETE FROM likes").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec("DELETE FROM videos").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := NewVideoRepository(mock)
		if err := repo.Delete(context.Background(), id); !errors.Is(err, repository.ErrVideoNotFound) {
			t.Errorf("Delete() error = %v, want ErrVideoNotFound", err)
		}
	})
}

// containsError checks if err's message contains the expected error's message.
func containsError(err, expected error) bool {
	if err == nil || expected == nil {
		return false
	}
	return err.Error() != "" && expected.Error() != "" &&
		len(err.Error()) >= len(expected.Error()) &&
		err.Error()[:len(expected.Error())] == expected.Error()[:len(expected.Error())]
}
