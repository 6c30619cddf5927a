package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"confhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventColumnNames = []string{
	"id", "slug", "title", "description", "start_date", "end_date", "timezone", "format",
	"venue", "address", "region", "online_url", "target_roles", "tech_categories", "design_categories",
	"capacity", "price", "early_bird_price", "early_bird_deadline", "official_url", "ticket_url",
	"twitter_hashtag", "source", "is_premium", "is_featured", "created_at", "updated_at",
}

func eventRow(rows *sqlmock.Rows, id, slug, title string, start time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id, slug, title, nil, start, nil, "Asia/Tokyo", "online",
		nil, nil, nil, nil, []byte(`["エンジニア"]`), []byte(`["バックエンド"]`), []byte(`[]`),
		nil, 0, nil, nil, "https://example.com/"+slug, nil,
		nil, "connpass", false, false, start, start,
	)
}

func TestEventRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mock      func(mock sqlmock.Sqlmock)
		wantSlugs []string
		wantErr   bool
	}{
		{
			name: "success ordered",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(eventColumnNames)
				eventRow(rows, "ev-1", "go-conf", "Go Conference", start)
				eventRow(rows, "ev-2", "rust-meetup", "Rust Meetup", start.Add(2*time.Hour))
				mock.ExpectQuery(`SELECT (.+) FROM events ORDER BY start_date ASC`).
					WillReturnRows(rows)
			},
			wantSlugs: []string{"go-conf", "rust-meetup"},
		},
		{
			name: "success empty",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM events ORDER BY start_date ASC`).
					WillReturnRows(sqlmock.NewRows(eventColumnNames))
			},
			wantSlugs: []string{},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.ListAll(ctx)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			slugs := make([]string, 0, len(got))
			for _, e := range got {
				slugs = append(slugs, e.Slug)
			}
			assert.Equal(t, tt.wantSlugs, slugs)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		slug       string
		mock       func(mock sqlmock.Sqlmock)
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			slug: "go-conf",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(eventColumnNames)
				eventRow(rows, "ev-1", "go-conf", "Go Conference", start)
				mock.ExpectQuery(`SELECT (.+) FROM events WHERE slug = \$1`).
					WithArgs("go-conf").
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			slug: "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM events WHERE slug = \$1`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:    true,
			isNotFound: true,
		},
		{
			name: "db error",
			slug: "go-conf",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM events WHERE slug = \$1`).
					WithArgs("go-conf").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetBySlug(ctx, tt.slug)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.slug, got.Slug)
			assert.Equal(t, []string{"エンジニア"}, got.TargetRoles)
			assert.Equal(t, []string{"バックエンド"}, got.TechCategories)
			assert.Nil(t, got.DesignCategories)
			assert.Nil(t, got.Capacity)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_UpsertMany(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	events := []*domain.Event{
		{ID: "ev-1", Slug: "go-conf", Title: "Go Conference", StartDate: start, Timezone: "Asia/Tokyo", Format: "online", OfficialURL: "https://example.com/go-conf", CreatedAt: start, UpdatedAt: start},
		{ID: "ev-2", Slug: "rust-meetup", Title: "Rust Meetup", StartDate: start, Timezone: "Asia/Tokyo", Format: "offline", OfficialURL: "https://example.com/rust-meetup", CreatedAt: start, UpdatedAt: start},
	}

	t.Run("success commits the batch", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO events (.+) ON CONFLICT \(slug\) DO UPDATE SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO events (.+) ON CONFLICT \(slug\) DO UPDATE SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewEventRepository(db)
		n, err := repo.UpsertMany(ctx, events)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure rolls back the whole batch", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO events`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO events`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewEventRepository(db)
		n, err := repo.UpsertMany(ctx, events)
		require.Error(t, err)
		assert.Zero(t, n)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch touches nothing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewEventRepository(db)
		n, err := repo.UpsertMany(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpsertArgs_IDHandling(t *testing.T) {
	start := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	t.Run("source-minted ID passes through unchanged", func(t *testing.T) {
		// IDs are opaque strings, not UUIDs: collector sources mint
		// their own (e.g. connpass-123) and the store must keep them.
		e := &domain.Event{ID: "connpass-123", Slug: "go-conf", StartDate: start}
		args := upsertArgs(e)
		assert.Equal(t, "connpass-123", args[0])
	})

	t.Run("blank ID gets assigned", func(t *testing.T) {
		e := &domain.Event{Slug: "go-conf", StartDate: start}
		args := upsertArgs(e)
		id, ok := args[0].(string)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})
}

func TestEventRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	repo := NewEventRepository(db)
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
