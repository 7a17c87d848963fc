//go:build !integration

package infra_postgres_movie

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

type MovieInfraUnitSuite struct {
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

type MovieBuilder struct {
	m model.Movie
}

func NewMovieBuilder() *MovieBuilder {
	return &MovieBuilder{
		m: model.Movie{
			ID:          uuid.New(),
			Title:       "Test Movie",
			Description: "Test description",
			Director:    "Test Director",
			Genres:      []string{"Drama", "Comedy"},
			Poster:      "http://example.com/poster.jpg",
			IMDbRating:  8.5,
			Actors:      []string{"Actor One"},
			Runtime:     "120 min",
		},
	}
}

func (b *MovieBuilder) WithID(id uuid.UUID) *MovieBuilder {
	b.m.ID = id
	return b
}

func (b *MovieBuilder) WithTitle(title string) *MovieBuilder {
	b.m.Title = title
	return b
}

func (b *MovieBuilder) Build() model.Movie {
	return b.m
}

var movieRowColumns = []string{
	"id", "title", "description", "director", "release_date", "genres",
	"poster", "backdrop", "imdb_rating", "actors", "runtime", "average_rating",
	"created_at", "updated_at", "likes",
}

var reviewRowColumns = []string{"id", "movie_id", "user_id", "username", "body", "rating", "created_at"}

func movieRow(rows *sqlmock.Rows, m model.Movie, likes string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		m.ID.String(), m.Title, m.Description, m.Director, nil, "{Drama,Comedy}",
		m.Poster, "", m.IMDbRating, "{\"Actor One\"}", m.Runtime, 4.0,
		now, now, likes,
	)
}

func (suite *MovieInfraUnitSuite) TestStore(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		expectError bool
	}{
		{
			name: "Should store movie successfully",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("INSERT INTO movies").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "Should return error when insert fails",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("INSERT INTO movies").
					WillReturnError(errors.New("insert failed"))
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			r := initResources(t)
			defer r.db.Close()
			tc.setupMocks(r)

			err := r.repository.Store(r.ctx, NewMovieBuilder().Build())

			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to store movie")
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (suite *MovieInfraUnitSuite) TestLoadByID(t provider.T) {
	t.Parallel()

	movie := NewMovieBuilder().Build()
	liker := uuid.New()
	reviewer := uuid.New()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		expectedErr error
		check       func(t provider.T, m model.Movie)
	}{
		{
			name: "Should load movie with likes and reviews",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT (.+) FROM movies m WHERE m.id").
					WithArgs(movie.ID).
					WillReturnRows(movieRow(sqlmock.NewRows(movieRowColumns), movie, "{"+liker.String()+"}"))
				r.mock.ExpectQuery("FROM reviews").
					WithArgs(sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows(reviewRowColumns).
						AddRow(uuid.New().String(), movie.ID.String(), reviewer.String(), "bob", "great", 4.0, time.Now()))
			},
			check: func(t provider.T, m model.Movie) {
				assert.Equal(t, movie.ID, m.ID)
				assert.Equal(t, movie.Title, m.Title)
				assert.Equal(t, []string{"Drama", "Comedy"}, m.Genres)
				assert.Equal(t, []uuid.UUID{liker}, m.Likes)
				assert.Nil(t, m.ReleaseDate)
				if assert.Len(t, m.Reviews, 1) {
					assert.Equal(t, reviewer, m.Reviews[0].UserID)
					assert.Equal(t, 4.0, m.Reviews[0].Rating)
				}
			},
		},
		{
			name: "Should return not found when movie is missing",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT (.+) FROM movies m WHERE m.id").
					WithArgs(movie.ID).
					WillReturnRows(sqlmock.NewRows(movieRowColumns))
			},
			expectedErr: model.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			r := initResources(t)
			defer r.db.Close()
			tc.setupMocks(r)

			m, err := r.repository.LoadByID(r.ctx, movie.ID)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				tc.check(t, m)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (suite *MovieInfraUnitSuite) TestLock(t provider.T) {
	t.Parallel()

	t.Run("Should map missing row to not found", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		id := uuid.New()

		r.mock.ExpectQuery("SELECT id FROM movies WHERE id = (.+) FOR UPDATE").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		err := r.repository.Lock(r.ctx, id)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should lock existing movie", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		id := uuid.New()

		r.mock.ExpectQuery("SELECT id FROM movies WHERE id = (.+) FOR UPDATE").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

		assert.NoError(t, r.repository.Lock(r.ctx, id))
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *MovieInfraUnitSuite) TestUpdate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		expectedErr error
		expectError bool
	}{
		{
			name: "Should update movie",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("UPDATE movies").WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Should return not found when nothing was updated",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("UPDATE movies").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedErr: model.ErrNotFound,
			expectError: true,
		},
		{
			name: "Should return error when update fails",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("UPDATE movies").WillReturnError(errors.New("boom"))
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			r := initResources(t)
			defer r.db.Close()
			tc.setupMocks(r)

			err := r.repository.Update(r.ctx, NewMovieBuilder().WithTitle("Updated").Build())

			if tc.expectError {
				assert.Error(t, err)
				if tc.expectedErr != nil {
					assert.ErrorIs(t, err, tc.expectedErr)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (suite *MovieInfraUnitSuite) TestList(t provider.T) {
	t.Parallel()

	t.Run("Should apply genre and escaped search filters", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		movie := NewMovieBuilder().Build()

		r.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM movies m WHERE \$1 = ANY\(m.genres\) AND m.title ILIKE \$2`).
			WithArgs("Drama", `%50\%%`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
		r.mock.ExpectQuery(`ORDER BY m.created_at, m.id LIMIT \$3 OFFSET \$4`).
			WithArgs("Drama", `%50\%%`, 10, 10).
			WillReturnRows(movieRow(sqlmock.NewRows(movieRowColumns), movie, "{}"))
		r.mock.ExpectQuery("FROM reviews").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(reviewRowColumns))

		movies, total, err := r.repository.List(r.ctx, model.MovieFilter{
			Genre:  "Drama",
			Search: "50%",
			Offset: 10,
			Limit:  10,
		})

		assert.NoError(t, err)
		assert.Equal(t, 11, total)
		if assert.Len(t, movies, 1) {
			assert.Equal(t, movie.ID, movies[0].ID)
			assert.Empty(t, movies[0].Likes)
			assert.NotNil(t, movies[0].Reviews)
		}
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should list without filters", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		r.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM movies m$`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		r.mock.ExpectQuery(`LIMIT \$1 OFFSET \$2`).
			WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows(movieRowColumns))

		movies, total, err := r.repository.List(r.ctx, model.MovieFilter{Limit: 10})

		assert.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, movies)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should return error when count fails", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		r.mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("db down"))

		_, _, err := r.repository.List(r.ctx, model.MovieFilter{Limit: 10})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to count movies")
	})
}

func (suite *MovieInfraUnitSuite) TestEscapeLike(t provider.T) {
	t.Parallel()

	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func (suite *MovieInfraUnitSuite) TestLoadSummaries(t provider.T) {
	t.Parallel()

	t.Run("Should not query for empty ids", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		summaries, err := r.repository.LoadSummaries(r.ctx, nil)
		assert.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should load summaries", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		id1, id2 := uuid.New(), uuid.New()

		r.mock.ExpectQuery(`SELECT id, title, poster, description FROM movies WHERE id IN \((.+)\)`).
			WithArgs(id1, id2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "poster", "description"}).
				AddRow(id1.String(), "One", "p1", "d1").
				AddRow(id2.String(), "Two", "p2", "d2"))

		summaries, err := r.repository.LoadSummaries(r.ctx, []uuid.UUID{id1, id2})
		assert.NoError(t, err)
		assert.Equal(t, []model.MovieSummary{
			{ID: id1, Title: "One", Poster: "p1", Description: "d1"},
			{ID: id2, Title: "Two", Poster: "p2", Description: "d2"},
		}, summaries)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *MovieInfraUnitSuite) TestLikes(t provider.T) {
	t.Parallel()

	movieID, userID := uuid.New(), uuid.New()

	t.Run("Should add like idempotently", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		r.mock.ExpectExec("INSERT INTO movie_likes (.+) ON CONFLICT").
			WithArgs(movieID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, r.repository.AddLike(r.ctx, movieID, userID))
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should remove like", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		r.mock.ExpectExec("DELETE FROM movie_likes").
			WithArgs(movieID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.repository.RemoveLike(r.ctx, movieID, userID))
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should count likes", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		r.mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM movie_likes").
			WithArgs(movieID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := r.repository.LikesCount(r.ctx, movieID)
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *MovieInfraUnitSuite) TestReviews(t provider.T) {
	t.Parallel()

	movieID := uuid.New()

	t.Run("Should store review", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		r.mock.ExpectExec("INSERT INTO reviews").WillReturnResult(sqlmock.NewResult(1, 1))

		err := r.repository.AddReview(r.ctx, model.Review{
			ID:        uuid.New(),
			MovieID:   movieID,
			UserID:    uuid.New(),
			Username:  "alice",
			Body:      "nice",
			Rating:    5,
			CreatedAt: time.Now(),
		})
		assert.NoError(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should load ratings", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		r.mock.ExpectQuery("SELECT rating FROM reviews").
			WithArgs(movieID).
			WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(4.0).AddRow(5.0).AddRow(3.0))

		ratings, err := r.repository.Ratings(r.ctx, movieID)
		assert.NoError(t, err)
		assert.Equal(t, []float64{4, 5, 3}, ratings)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should return not found when setting average of missing movie", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		r.mock.ExpectExec("UPDATE movies SET average_rating").
			WithArgs(movieID, 4.0).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := r.repository.SetAverageRating(r.ctx, movieID, 4.0)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func TestMovieInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(MovieInfraUnitSuite))
}
