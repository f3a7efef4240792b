package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/cliptube/cliptube/internal/domain/model"
	"github.com/cliptube/cliptube/internal/domain/repository"
)

func TestLikeRepository_Create(t *testing.T) {
	like := &model.Like{
		ID:          uuid.New(),
		SubjectKind: model.SubjectVideo,
		SubjectID:   uuid.New(),
		ActorID:     uuid.New(),
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name    string
		mockFn  func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "successful creation",
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO likes").
					WithArgs(like.ID, "video", like.SubjectID, like.ActorID, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantErr: nil,
		},
		{
			name: "unique index rejection reports a duplicate relation",
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO likes").
					WithArgs(like.ID, "video", like.SubjectID, like.ActorID, pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: repository.ErrDuplicateRelation,
		},
		{
			name: "database error",
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO likes").
					WithArgs(like.ID, "video", like.SubjectID, like.ActorID, pgxmock.AnyArg()).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("failed to create like"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("failed to create mock: %v", err)
			}
			defer mock.Close()

			tt.mockFn(mock)

			repo := NewLikeRepository(mock)
			err = repo.Create(context.Background(), like)

			if tt.wantErr != nil {
				if err == nil {
					t.Errorf("Create() expected error, got nil")
					return
				}
				if !errors.Is(err, tt.wantErr) && !containsError(err, tt.wantErr) {
					t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("Create() unexpected error = %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestLikeRepository_Find(t *testing.T) {
	subjectID := uuid.New()
	actorID := uuid.New()

	t.Run("existing like", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer mock.Close()

		likeID := uuid.New()
		rows := pgxmock.NewRows([]string{"id", "subject_kind", "subject_id", "actor_id", "created_at"}).
			AddRow(likeID, "video", subjectID, actorID, time.Now())
		mock.ExpectQuery("SELECT (.+) FROM likes").
			WithArgs("video", subjectID, actorID).
			WillReturnRows(rows)

		repo := NewLikeRepository(mock)
		like, err := repo.Find(context.Background(), model.SubjectVideo, subjectID, actorID)
		if err != nil {
			t.Fatalf("Find() unexpected error = %v", err)
		}
		if like == nil {
			t.Fatal("Find() expected a like, got nil")
		}
		if like.ID != likeID {
			t.Errorf("Find() ID = %s, want %s", like.ID, likeID)
		}
		if like.SubjectKind != model.SubjectVideo {
			t.Errorf("Find() subject kind = %s, want video", like.SubjectKind)
		}
	})

	t.Run("absent like is nil, not an error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM likes").
			WithArgs("video", subjectID, actorID).
			WillReturnError(pgx.ErrNoRows)

		repo := NewLikeRepository(mock)
		like, err := repo.Find(context.Background(), model.SubjectVideo, subjectID, actorID)
		if err != nil {
			t.Fatalf("Find() unexpected error = %v", err)
		}
		if like != nil {
			t.Errorf("Find() expected nil for an absent like, got %+v", like)
		}
	})
}

func TestLikeRepository_Delete(t *testing.T) {
	subjectID := uuid.New()
	actorID := uuid.New()

	t.Run("zero affected rows is not an error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer mock.Close()

		mock.ExpectExec("DELETE FROM likes").
			WithArgs("video", subjectID, actorID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := NewLikeRepository(mock)
		if err := repo.Delete(context.Background(), model.SubjectVideo, subjectID, actorID); err != nil {
			t.Errorf("Delete() unexpected error = %v", err)
		}
	})
}

func TestSubscriptionRepository_Create(t *testing.T) {
	sub := &model.Subscription{
		ID:           uuid.New(),
		ChannelID:    uuid.New(),
		SubscriberID: uuid.New(),
		CreatedAt:    time.Now(),
	}

	tests := []struct {
		name    string
		mockFn  func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "successful creation",
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO subscriptions").
					WithArgs(sub.ID, sub.ChannelID, sub.SubscriberID, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantErr: nil,
		},
		{
			name: "unique index rejection reports a duplicate relation",
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO subscriptions").
					WithArgs(sub.ID, sub.ChannelID, sub.SubscriberID, pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: repository.ErrDuplicateRelation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("failed to create mock: %v", err)
			}
			defer mock.Close()

			tt.mockFn(mock)

			repo := NewSubscriptionRepository(mock)
			err = repo.Create(context.Background(), sub)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestSubscriptionRepository_CountSubscribers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer mock.Close()

	channelID := uuid.New()
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(channelID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	repo := NewSubscriptionRepository(mock)
	count, err := repo.CountSubscribers(context.Background(), channelID)
	if err != nil {
		t.Fatalf("CountSubscribers() unexpected error = %v", err)
	}
	if count != 12 {
		t.Errorf("CountSubscribers() = %d, want 12", count)
	}
}
