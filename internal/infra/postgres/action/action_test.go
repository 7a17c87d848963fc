//go:build !integration

package infra_postgres_action

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

type ActionInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db         *sqlx.DB
	mock       sqlmock.Sqlmock
	repository *Repository
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return &resources{
		db:         sqlxDB,
		mock:       mock,
		repository: New(sqlxDB),
		ctx:        context.Background(),
	}
}

var actionColumns = []string{
	"user_id", "movie_id", "liked", "watched", "in_watchlist",
	"liked_at", "watched_at", "watchlisted_at", "created_at", "updated_at",
}

func (suite *ActionInfraUnitSuite) TestLoad(t provider.T) {
	t.Parallel()

	userID, movieID := uuid.New(), uuid.New()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		expectedErr error
		expected    model.MovieAction
	}{
		{
			name: "Should load and lock action",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("FROM movie_actions (.+) FOR UPDATE").
					WithArgs(userID, movieID).
					WillReturnRows(sqlmock.NewRows(actionColumns).
						AddRow(userID.String(), movieID.String(), true, false, true, nil, nil, nil, time.Time{}, time.Time{}))
			},
			expected: model.MovieAction{UserID: userID, MovieID: movieID, Liked: true, InWatchlist: true},
		},
		{
			name: "Should return not found for missing record",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("FROM movie_actions (.+) FOR UPDATE").
					WithArgs(userID, movieID).
					WillReturnRows(sqlmock.NewRows(actionColumns))
			},
			expectedErr: model.ErrNotFound,
		},
		{
			name: "Should wrap db errors",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("FROM movie_actions (.+) FOR UPDATE").
					WithArgs(userID, movieID).
					WillReturnError(errors.New("db down"))
			},
			expectedErr: errors.New("failed to load movie action"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			r := initResources(t)
			defer r.db.Close()
			tc.setupMocks(r)

			action, err := r.repository.Load(r.ctx, userID, movieID)

			switch {
			case tc.expectedErr == nil:
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, action)
			case errors.Is(tc.expectedErr, model.ErrNotFound):
				assert.ErrorIs(t, err, model.ErrNotFound)
			default:
				assert.ErrorContains(t, err, tc.expectedErr.Error())
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (suite *ActionInfraUnitSuite) TestSave(t provider.T) {
	t.Parallel()

	t.Run("Should upsert and return stored record", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		a := model.MovieAction{UserID: uuid.New(), MovieID: uuid.New(), Watched: true}
		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		watchedAt := created.Add(time.Minute)

		r.mock.ExpectQuery("INSERT INTO movie_actions (.+) ON CONFLICT (.+) RETURNING").
			WithArgs(a.UserID, a.MovieID, false, true, false).
			WillReturnRows(sqlmock.NewRows(actionColumns).
				AddRow(a.UserID.String(), a.MovieID.String(), false, true, false, nil, watchedAt, nil, created, created))

		saved, err := r.repository.Save(r.ctx, a)
		assert.NoError(t, err)
		assert.True(t, saved.Watched)
		assert.Equal(t, created, saved.CreatedAt)
		if assert.NotNil(t, saved.WatchedAt) {
			assert.Equal(t, watchedAt, *saved.WatchedAt)
		}
		assert.Nil(t, saved.LikedAt)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should stamp flags as they are turned on", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		a := model.MovieAction{UserID: uuid.New(), MovieID: uuid.New(), Liked: true}

		r.mock.ExpectQuery(`liked_at = CASE\s+WHEN NOT EXCLUDED.liked THEN NULL\s+WHEN movie_actions.liked THEN movie_actions.liked_at\s+ELSE clock_timestamp\(\) END`).
			WithArgs(a.UserID, a.MovieID, true, false, false).
			WillReturnRows(sqlmock.NewRows(actionColumns).
				AddRow(a.UserID.String(), a.MovieID.String(), true, false, false, time.Now(), nil, nil, time.Now(), time.Now()))

		saved, err := r.repository.Save(r.ctx, a)
		assert.NoError(t, err)
		assert.NotNil(t, saved.LikedAt)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should wrap upsert error", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		r.mock.ExpectQuery("INSERT INTO movie_actions").WillReturnError(errors.New("fk violation"))

		_, err := r.repository.Save(r.ctx, model.MovieAction{UserID: uuid.New(), MovieID: uuid.New()})
		assert.ErrorContains(t, err, "failed to save movie action")
	})
}

func (suite *ActionInfraUnitSuite) TestLoadAll(t provider.T) {
	t.Parallel()

	r := initResources(t)
	defer r.db.Close()
	userID := uuid.New()
	m1, m2 := uuid.New(), uuid.New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	r.mock.ExpectQuery("FROM movie_actions WHERE user_id = (.+) ORDER BY created_at, movie_id").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(actionColumns).
			AddRow(userID.String(), m1.String(), true, true, false, base, base.Add(2*time.Minute), nil, base, base).
			AddRow(userID.String(), m2.String(), false, true, true, nil, base.Add(time.Minute), base, base, base))

	actions, err := r.repository.LoadAll(r.ctx, userID)
	assert.NoError(t, err)
	if assert.Len(t, actions, 2) {
		assert.Equal(t, m1, actions[0].MovieID)
		assert.Equal(t, m2, actions[1].MovieID)
	}

	lists := model.ListsFromActions(actions)
	assert.Equal(t, []uuid.UUID{m1}, lists.Liked)
	// m2 was marked watched before m1 although m1 was created first.
	assert.Equal(t, []uuid.UUID{m2, m1}, lists.Watched)
	assert.Equal(t, []uuid.UUID{m2}, lists.Watchlist)
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func TestActionInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(ActionInfraUnitSuite))
}
